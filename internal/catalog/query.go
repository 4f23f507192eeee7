package catalog

import (
	"sort"
	"strings"
)

// DefaultLimit caps the item list when the request does not name one.
const DefaultLimit = 50

// Query holds the listing filters. Zero values mean "not set"; price bounds
// use pointers so an explicit 0 still filters.
type Query struct {
	Q           string
	Brand       string
	Model       string
	MinPrice    *float64
	MaxPrice    *float64
	ReleaseFrom string
	ReleaseTo   string
	Sort        string
	Limit       int
}

// Result is the listing payload. Count is the post-filter size before the
// limit is applied.
type Result struct {
	Count int       `json:"count"`
	Items []Sneaker `json:"items"`
}

// List filters the catalog conjunctively, sorts per q.Sort, then truncates
// to q.Limit. An unrecognized sort key leaves catalog order intact.
func (s *Store) List(q Query) Result {
	items := make([]Sneaker, 0, len(s.items))
	for _, sn := range s.items {
		if q.matches(sn) {
			items = append(items, sn)
		}
	}
	sortSneakers(items, q.Sort)

	count := len(items)
	if q.Limit <= 0 {
		return Result{Count: count, Items: []Sneaker{}}
	}
	if q.Limit < len(items) {
		items = items[:q.Limit]
	}
	return Result{Count: count, Items: items}
}

func (q Query) matches(s Sneaker) bool {
	if q.Q != "" {
		needle := strings.ToLower(q.Q)
		if !strings.Contains(strings.ToLower(s.Name), needle) &&
			!strings.Contains(strings.ToLower(s.Model), needle) &&
			!strings.Contains(strings.ToLower(s.Brand), needle) {
			return false
		}
	}
	if q.Brand != "" && !strings.EqualFold(s.Brand, q.Brand) {
		return false
	}
	if q.Model != "" && !strings.Contains(strings.ToLower(s.Model), strings.ToLower(q.Model)) {
		return false
	}
	if q.MinPrice != nil && s.EffectivePrice() < *q.MinPrice {
		return false
	}
	if q.MaxPrice != nil && s.EffectivePrice() > *q.MaxPrice {
		return false
	}
	// Records without a release date never satisfy a date bound.
	if q.ReleaseFrom != "" && (s.ReleaseDate == "" || s.ReleaseDate < q.ReleaseFrom) {
		return false
	}
	if q.ReleaseTo != "" && (s.ReleaseDate == "" || s.ReleaseDate > q.ReleaseTo) {
		return false
	}
	return true
}

func sortSneakers(items []Sneaker, key string) {
	switch key {
	case "trending":
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].TrendingScore > items[j].TrendingScore
		})
	case "price_asc":
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].EffectivePrice() < items[j].EffectivePrice()
		})
	case "price_desc":
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].EffectivePrice() > items[j].EffectivePrice()
		})
	case "release_asc":
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].ReleaseDate < items[j].ReleaseDate
		})
	case "release_desc":
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].ReleaseDate > items[j].ReleaseDate
		})
	}
}

const trendingSize = 8

// Suggested search terms shown next to the trending list. Fixed, not derived
// from catalog data.
var searchTerms = [trendingSize]string{
	"Jordan 1", "Air Force 1", "Yeezy 350", "Dunk Low",
	"New Balance 550", "AJ4", "Panda Dunks", "Travis Scott",
}

// TopTrending returns the top records by trending score; ties keep catalog
// order.
func (s *Store) TopTrending() []Sneaker {
	items := append([]Sneaker(nil), s.items...)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].TrendingScore > items[j].TrendingScore
	})
	if len(items) > trendingSize {
		items = items[:trendingSize]
	}
	return items
}

func SearchTerms() []string {
	return append([]string(nil), searchTerms[:]...)
}
