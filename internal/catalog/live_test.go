package catalog_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"sneakpeak/internal/catalog"
)

// The simulator is random by design; assert bounds, never exact values.
func TestLiveSnapshotBounds(t *testing.T) {
	sn := catalog.Sneaker{
		ID: "x", Name: "X", Brand: "B", Model: "M", RetailPrice: 120,
		StockX: &catalog.StockX{
			LowestAsk:    f64(200),
			HighestBid:   f64(180),
			LastSale:     f64(190),
			Volatility:   f64(0.05),
			SalesLast72h: intp(10),
		},
	}

	for i := 0; i < 64; i++ {
		snap := catalog.LiveSnapshot(sn)

		require.GreaterOrEqual(t, snap.LowestAsk, int64(190))
		require.LessOrEqual(t, snap.LowestAsk, int64(210))
		require.GreaterOrEqual(t, snap.HighestBid, int64(171))
		require.LessOrEqual(t, snap.HighestBid, int64(189))
		require.GreaterOrEqual(t, snap.LastSale, int64(180))
		require.LessOrEqual(t, snap.LastSale, int64(200))

		require.GreaterOrEqual(t, snap.Volatility, 0.01)
		require.LessOrEqual(t, snap.Volatility, 0.061)

		require.GreaterOrEqual(t, snap.SalesLast72h, 5)
		require.LessOrEqual(t, snap.SalesLast72h, 15)
	}
}

func TestLiveSnapshotFallbacks(t *testing.T) {
	// No stockx block: monetary fields fall back to retail, the counter to 0,
	// volatility to its default.
	sn := catalog.Sneaker{ID: "y", Name: "Y", Brand: "B", Model: "M", RetailPrice: 100}

	for i := 0; i < 64; i++ {
		snap := catalog.LiveSnapshot(sn)

		require.GreaterOrEqual(t, snap.LowestAsk, int64(95))
		require.LessOrEqual(t, snap.LowestAsk, int64(105))
		require.GreaterOrEqual(t, snap.SalesLast72h, 0)
		require.LessOrEqual(t, snap.SalesLast72h, 5)
		require.GreaterOrEqual(t, snap.Volatility, 0.01)
		require.LessOrEqual(t, snap.Volatility, 0.061)
	}
}

func TestLiveSnapshotVolatilityFloor(t *testing.T) {
	sn := catalog.Sneaker{
		ID: "z", Name: "Z", Brand: "B", Model: "M", RetailPrice: 100,
		StockX: &catalog.StockX{Volatility: f64(0)},
	}

	for i := 0; i < 64; i++ {
		snap := catalog.LiveSnapshot(sn)
		require.GreaterOrEqual(t, snap.Volatility, 0.01)
	}
}

func TestLiveSnapshotAsOf(t *testing.T) {
	sn := catalog.Sneaker{ID: "t", Name: "T", Brand: "B", Model: "M", RetailPrice: 100}

	snap := catalog.LiveSnapshot(sn)
	require.True(t, strings.HasSuffix(snap.AsOf, "Z"))

	ts, err := time.Parse(time.RFC3339, snap.AsOf)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().UTC(), ts, time.Minute)
}
