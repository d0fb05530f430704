// geoiplookup resolves IP addresses against a legacy .dat database and
// prints the result as text, JSON, or msgpack.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net"
	"os"

	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack"
	"go.uber.org/zap"

	geoip "github.com/UrielCh/geoip-api-go"
)

var (
	dbPath  string
	mode    string
	check   bool
	output  string
	verbose bool
)

func main() {
	cmd := &cobra.Command{
		Use:          "geoiplookup <address>...",
		Short:        "Resolve IP addresses against a legacy GeoIP database",
		Args:         cobra.MinimumNArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}
	cmd.Flags().StringVarP(&dbPath, "file", "f", "GeoIP.dat", "path to the database file")
	cmd.Flags().StringVarP(&mode, "mode", "m", "direct", "storage mode: direct, index, or memory")
	cmd.Flags().BoolVar(&check, "check", false, "reload the database when the file changes on disk")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text, json, or msgpack")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log database open and reload events")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	log := zap.NewNop()
	if verbose {
		var err error
		if log, err = zap.NewDevelopment(); err != nil {
			return err
		}
	}

	opts := []geoip.Option{geoip.WithLogger(log)}
	switch mode {
	case "direct":
	case "index":
		opts = append(opts, geoip.WithMode(geoip.ModeIndexCache))
	case "memory":
		opts = append(opts, geoip.WithMode(geoip.ModeMemoryCache))
	default:
		return fmt.Errorf("unknown mode %q", mode)
	}
	if check {
		opts = append(opts, geoip.WithStalenessCheck())
	}

	db, err := geoip.Open(dbPath, opts...)
	if err != nil {
		return err
	}
	defer db.Close()

	meta, err := db.Metadata()
	if err != nil {
		return err
	}
	for _, arg := range args {
		ip := net.ParseIP(arg)
		if ip == nil {
			return fmt.Errorf("cannot parse address %q", arg)
		}
		result, err := resolve(db, meta.Edition, ip)
		if err != nil {
			return err
		}
		if err := emit(cmd.OutOrStdout(), arg, result); err != nil {
			return err
		}
	}
	return nil
}

func resolve(db *geoip.Service, edition geoip.Edition, ip net.IP) (any, error) {
	switch edition {
	case geoip.EditionCountry, geoip.EditionCountryV6, geoip.EditionProxy:
		return db.Country(ip)
	case geoip.EditionRegionRev0, geoip.EditionRegionRev1:
		return db.Region(ip)
	case geoip.EditionCityRev0, geoip.EditionCityRev1:
		return db.Location(ip)
	case geoip.EditionISP, geoip.EditionOrg, geoip.EditionASN:
		return db.Organization(ip)
	case geoip.EditionNetspeed:
		return db.ID(ip)
	}
	return nil, fmt.Errorf("edition %s has no lookup surface", edition)
}

func emit(w io.Writer, addr string, result any) error {
	switch output {
	case "text":
		switch v := result.(type) {
		case *geoip.Country:
			_, err := fmt.Fprintf(w, "%s: %s, %s\n", addr, v.Code, v.Name)
			return err
		case *geoip.Region:
			_, err := fmt.Fprintf(w, "%s: %s, %s, %s\n", addr, v.CountryCode, v.CountryName, v.Region)
			return err
		case *geoip.Location:
			if v == nil {
				_, err := fmt.Fprintf(w, "%s: no record\n", addr)
				return err
			}
			_, err := fmt.Fprintf(w, "%s: %s, %s, %s, %s, %.4f, %.4f\n",
				addr, v.CountryCode, v.Region, v.City, v.PostalCode, v.Latitude, v.Longitude)
			return err
		case string:
			if v == "" {
				v = "no record"
			}
			_, err := fmt.Fprintf(w, "%s: %s\n", addr, v)
			return err
		default:
			_, err := fmt.Fprintf(w, "%s: %v\n", addr, v)
			return err
		}
	case "json":
		enc := json.NewEncoder(w)
		return enc.Encode(map[string]any{"address": addr, "result": result})
	case "msgpack":
		raw, err := msgpack.Marshal(map[string]any{"address": addr, "result": result})
		if err != nil {
			return err
		}
		_, err = w.Write(raw)
		return err
	}
	return fmt.Errorf("unknown output format %q", output)
}
