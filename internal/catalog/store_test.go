package catalog_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"sneakpeak/internal/catalog"
)

func TestLoadSeedFile(t *testing.T) {
	s, err := catalog.Load("testdata/sneakers.json")
	require.NoError(t, err)
	require.Equal(t, 3, s.Len())

	sn, ok := s.ByID("s2")
	require.True(t, ok)
	require.Equal(t, "Test Runner Two", sn.Name)
	require.Nil(t, sn.StockX)

	_, ok = s.ByID("nope")
	require.False(t, ok)

	// Catalog order is source order.
	all := s.All()
	require.Equal(t, []string{"s1", "s2", "s3"}, ids(all))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := catalog.Load("testdata/does-not-exist.json")
	require.Error(t, err)
}

func TestReadMalformed(t *testing.T) {
	_, err := catalog.Read(strings.NewReader(`{"not": "a list"}`))
	require.Error(t, err)

	_, err = catalog.Read(strings.NewReader(`[{"id": "a"`))
	require.Error(t, err)
}

func TestNewRejectsBadIDs(t *testing.T) {
	_, err := catalog.New([]catalog.Sneaker{{ID: "", Name: "anon"}})
	require.Error(t, err)

	_, err = catalog.New([]catalog.Sneaker{{ID: "dup"}, {ID: "dup"}})
	require.Error(t, err)
}

func TestEffectivePrice(t *testing.T) {
	withAsk := catalog.Sneaker{RetailPrice: 100, StockX: &catalog.StockX{LowestAsk: f64(250)}}
	require.Equal(t, 250.0, withAsk.EffectivePrice())

	// stockx present but no ask still falls back to retail.
	noAsk := catalog.Sneaker{RetailPrice: 100, StockX: &catalog.StockX{HighestBid: f64(90)}}
	require.Equal(t, 100.0, noAsk.EffectivePrice())

	bare := catalog.Sneaker{}
	require.Equal(t, 0.0, bare.EffectivePrice())
}
