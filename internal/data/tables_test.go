package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_setsDataDir(t *testing.T) {
	Dir = "../../data"
}

func TestSpeciesTableLookup(t *testing.T) {
	TestMain_setsDataDir(t)
	name, ok := Species().Name(1)
	require.True(t, ok)
	assert.Equal(t, "Bulbasaur", name)

	id, ok := Species().ID("Charmander")
	require.True(t, ok)
	assert.EqualValues(t, 4, id)
}

func TestNatureTableNeutralAndDirectional(t *testing.T) {
	TestMain_setsDataDir(t)

	adamant, ok := Natures().NatureByName("Adamant")
	require.True(t, ok)
	assert.False(t, adamant.Neutral)

	hardy, ok := Natures().Nature(0)
	require.True(t, ok)
	assert.True(t, hardy.Neutral)
}

func TestLevelCurvesMonotonic(t *testing.T) {
	TestMain_setsDataDir(t)
	curves := LevelCurves()
	for class := 0; class < 6; class++ {
		for level := 1; level < 101; level++ {
			assert.GreaterOrEqual(t, curves[level][class], curves[level-1][class])
		}
	}
}

func TestGeonetCountryAndRegion(t *testing.T) {
	TestMain_setsDataDir(t)
	geonet := GeonetGen5()
	country, ok := geonet.Country(1)
	require.True(t, ok)
	assert.Equal(t, "Japan", country)

	region, ok := geonet.Region(1, 0)
	require.True(t, ok)
	assert.Equal(t, "Hokkaido (Sapporo)", region)
}

func TestCharMapRoundTrip(t *testing.T) {
	TestMain_setsDataDir(t)
	id, ok := CharMap().ID('A')
	require.True(t, ok)
	ch, ok := CharMap().Name(id)
	require.True(t, ok)
	assert.Equal(t, 'A', ch)
}
