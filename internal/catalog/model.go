package catalog

// StockX carries marketplace figures for a sneaker. Every field is optional
// in the seed data; readers go through the Sneaker baseline accessors, which
// hold all the fallback defaults.
type StockX struct {
	LowestAsk    *float64 `json:"lowestAsk,omitempty"`
	HighestBid   *float64 `json:"highestBid,omitempty"`
	LastSale     *float64 `json:"lastSale,omitempty"`
	Volatility   *float64 `json:"volatility,omitempty"`
	SalesLast72h *int     `json:"salesLast72h,omitempty"`
}

// Sneaker is one catalog record. Records are read-only after load.
// ReleaseDate is an ISO date string compared lexicographically; empty means
// unknown.
type Sneaker struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Brand         string  `json:"brand"`
	Model         string  `json:"model"`
	RetailPrice   float64 `json:"retailPrice"`
	ReleaseDate   string  `json:"releaseDate,omitempty"`
	TrendingScore float64 `json:"trendingScore,omitempty"`
	ImageURL      string  `json:"imageUrl,omitempty"`
	StockX        *StockX `json:"stockx,omitempty"`
}

const defaultVolatility = 0.05

// EffectivePrice is the price used for filters and sorts: the marketplace
// lowest ask when present, else the retail price.
func (s Sneaker) EffectivePrice() float64 {
	if s.StockX != nil && s.StockX.LowestAsk != nil {
		return *s.StockX.LowestAsk
	}
	return s.RetailPrice
}

func (s Sneaker) baselineLowestAsk() float64 {
	if s.StockX != nil && s.StockX.LowestAsk != nil {
		return *s.StockX.LowestAsk
	}
	return s.RetailPrice
}

func (s Sneaker) baselineHighestBid() float64 {
	if s.StockX != nil && s.StockX.HighestBid != nil {
		return *s.StockX.HighestBid
	}
	return s.RetailPrice
}

func (s Sneaker) baselineLastSale() float64 {
	if s.StockX != nil && s.StockX.LastSale != nil {
		return *s.StockX.LastSale
	}
	return s.RetailPrice
}

func (s Sneaker) baselineVolatility() float64 {
	if s.StockX != nil && s.StockX.Volatility != nil {
		return *s.StockX.Volatility
	}
	return defaultVolatility
}

func (s Sneaker) baselineSalesLast72h() int {
	if s.StockX != nil && s.StockX.SalesLast72h != nil {
		return *s.StockX.SalesLast72h
	}
	return 0
}
