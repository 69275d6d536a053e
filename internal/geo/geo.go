// Package geo serves the static province/city dataset the wizard offers for
// career locations and validates that a chosen city belongs to its province.
package geo

import (
	_ "embed"
	"encoding/json"
	"log"
)

// DefaultCountry is the only country the dataset currently covers.
const DefaultCountry = "Philippines"

// Province is a selectable state/province entry.
type Province struct {
	Name string `json:"name"`
	Key  string `json:"key"`
}

// City is a selectable city; Province holds the owning province's key.
type City struct {
	Name     string `json:"name"`
	Province string `json:"province"`
}

//go:embed philippines-locations.json
var rawLocations []byte

var (
	provinces []Province
	cities    []City
)

func init() {
	var data struct {
		Provinces []Province `json:"provinces"`
		Cities    []City     `json:"cities"`
	}
	if err := json.Unmarshal(rawLocations, &data); err != nil {
		log.Fatalf("invalid embedded locations dataset: %v", err)
	}
	provinces = data.Provinces
	cities = data.Cities
}

// Provinces returns every province in dataset order.
func Provinces() []Province {
	out := make([]Province, len(provinces))
	copy(out, provinces)
	return out
}

// ProvinceByName looks a province up by display name.
func ProvinceByName(name string) (Province, bool) {
	for _, p := range provinces {
		if p.Name == name {
			return p, true
		}
	}
	return Province{}, false
}

// CitiesOf returns the cities belonging to the given province key, in dataset
// order.
func CitiesOf(provinceKey string) []City {
	var out []City
	for _, c := range cities {
		if c.Province == provinceKey {
			out = append(out, c)
		}
	}
	return out
}

// CityBelongs reports whether cityName is listed under the named province.
func CityBelongs(cityName, provinceName string) bool {
	p, ok := ProvinceByName(provinceName)
	if !ok {
		return false
	}
	for _, c := range cities {
		if c.Province == p.Key && c.Name == cityName {
			return true
		}
	}
	return false
}

// DefaultLocation returns the first province and its first city, the defaults
// a fresh draft starts with.
func DefaultLocation() (Province, City) {
	p := provinces[0]
	cs := CitiesOf(p.Key)
	return p, cs[0]
}
