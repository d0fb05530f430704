package main

import (
	"fmt"
	"net"

	geoip "github.com/UrielCh/geoip-api-go"
)

func main() {
	db, err := geoip.Open("path/to/GeoIP.dat", geoip.WithMode(geoip.ModeMemoryCache))
	if err != nil {
		panic(err)
	}
	defer db.Close()

	country, err := db.Country(net.ParseIP("8.8.8.8"))
	if err != nil {
		panic(err)
	}
	fmt.Println("The country is:", country.Name)
	fmt.Println("The country code is:", country.Code)
	fmt.Println("Matched prefix length:", db.LastNetmask())
}
