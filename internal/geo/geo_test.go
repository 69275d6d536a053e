package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatasetLoads(t *testing.T) {
	assert.NotEmpty(t, Provinces())
	for _, p := range Provinces() {
		assert.NotEmpty(t, CitiesOf(p.Key), "province %s has no cities", p.Name)
	}
}

func TestCityBelongs(t *testing.T) {
	assert.True(t, CityBelongs("Makati", "Metro Manila"))
	assert.True(t, CityBelongs("Cebu City", "Cebu"))
	assert.False(t, CityBelongs("Makati", "Cebu"))
	assert.False(t, CityBelongs("Makati", "Nowhere"))
}

func TestDefaultLocation(t *testing.T) {
	p, c := DefaultLocation()

	assert.Equal(t, Provinces()[0], p)
	assert.Equal(t, p.Key, c.Province)
}

func TestProvinceByName(t *testing.T) {
	p, ok := ProvinceByName("Laguna")

	assert.True(t, ok)
	assert.Equal(t, "LAG", p.Key)

	_, ok = ProvinceByName("Atlantis")
	assert.False(t, ok)
}
