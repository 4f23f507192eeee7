package catalog

import (
	"math"
	"math/rand"
	"time"
)

// Snapshot is a simulated live-market reading, regenerated randomly on each
// request. There is no real venue behind it.
type Snapshot struct {
	LastSale     int64   `json:"lastSale"`
	LowestAsk    int64   `json:"lowestAsk"`
	HighestBid   int64   `json:"highestBid"`
	Volatility   float64 `json:"volatility"`
	SalesLast72h int     `json:"salesLast72h"`
	AsOf         string  `json:"asOf"`
}

const (
	priceJitterPct   = 0.05
	volatilityJitter = 0.01
	volatilityFloor  = 0.01
	salesJitterMax   = 5
)

// LiveSnapshot perturbs the sneaker's marketplace baselines with uniform
// noise. Output is non-deterministic on purpose.
func LiveSnapshot(s Sneaker) Snapshot {
	return Snapshot{
		LastSale:     jitterPrice(s.baselineLastSale()),
		LowestAsk:    jitterPrice(s.baselineLowestAsk()),
		HighestBid:   jitterPrice(s.baselineHighestBid()),
		Volatility:   jitterVolatility(s.baselineVolatility()),
		SalesLast72h: jitterSales(s.baselineSalesLast72h()),
		AsOf:         time.Now().UTC().Format(time.RFC3339),
	}
}

// jitterPrice scales base by a factor in [1-priceJitterPct, 1+priceJitterPct]
// and rounds to the nearest whole amount.
func jitterPrice(base float64) int64 {
	f := 1 + (rand.Float64()*2-1)*priceJitterPct
	return int64(math.Round(base * f))
}

func jitterVolatility(base float64) float64 {
	v := base + (rand.Float64()*2-1)*volatilityJitter
	if v < volatilityFloor {
		v = volatilityFloor
	}
	return math.Round(v*1000) / 1000
}

func jitterSales(base int) int {
	n := base + rand.Intn(2*salesJitterMax+1) - salesJitterMax
	if n < 0 {
		n = 0
	}
	return n
}
