package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripwise/internal/catalog"
)

func TestResolve_Precedence(t *testing.T) {
	cases := []struct {
		name  string
		label string
		want  string
	}{
		{"exact id", "dubai", "dubai"},
		{"bare name", "Dubai", "dubai"},
		{"bare name lowercase", "dubai", "dubai"},
		{"name with country", "Dubai, UAE", "dubai"},
		{"name with country mixed case", "dUBAI, uae", "dubai"},
		{"surrounding whitespace", "  Singapore  ", "singapore"},
		{"multiword name", "New York", "newyork"},
		{"multiword full label", "new york, usa", "newyork"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, ok := catalog.Resolve(tc.label)
			require.True(t, ok)
			assert.Equal(t, tc.want, d.ID)
		})
	}
}

func TestResolve_Unknown(t *testing.T) {
	for _, label := range []string{"", "   ", "Atlantis", "Dubai, Atlantis"} {
		_, ok := catalog.Resolve(label)
		assert.False(t, ok, "label %q should not resolve", label)
	}
}

func TestByID(t *testing.T) {
	d, ok := catalog.ByID("bali")
	require.True(t, ok)
	assert.Equal(t, "Bali, Indonesia", d.Label())

	_, ok = catalog.ByID("Bali") // ByID is exact, unlike Resolve
	assert.False(t, ok)
}

func TestInSet(t *testing.T) {
	assert.True(t, catalog.InSet(catalog.Airlines, "Any"))
	assert.True(t, catalog.InSet(catalog.Airlines, "emirates"))
	assert.True(t, catalog.InSet(catalog.HotelTiers, " 3 star "))
	assert.False(t, catalog.InSet(catalog.Airlines, "Concorde Air"))
	assert.False(t, catalog.InSet(catalog.Airlines, ""))
}

func TestDestinationsHaveCoordinates(t *testing.T) {
	for _, d := range catalog.Destinations {
		assert.NotEmpty(t, d.ID)
		assert.NotEmpty(t, d.IATA)
		assert.InDelta(t, 0, d.Lat, 90)
		assert.InDelta(t, 0, d.Lng, 180)
	}
}
