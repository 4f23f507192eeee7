package alert

import (
	"errors"
	"strings"
)

// Alert is a price-drop or restock subscription. Type is stored as free text;
// the documented values are "price_drop" and "restock" but the surface has
// always accepted arbitrary strings, and tightening that would break existing
// clients.
type Alert struct {
	ID             string   `json:"id,omitempty"`
	UserID         string   `json:"user_id,omitempty"`
	SneakerID      string   `json:"sneaker_id"`
	Type           string   `json:"type"`
	ThresholdPrice *float64 `json:"threshold_price,omitempty"`
	Email          string   `json:"email,omitempty"`
}

var (
	ErrMissingSneakerID  = errors.New("sneaker_id required")
	ErrMissingType       = errors.New("type required")
	ErrNegativeThreshold = errors.New("threshold_price must be >= 0")
)

func (a *Alert) Validate() error {
	if strings.TrimSpace(a.SneakerID) == "" {
		return ErrMissingSneakerID
	}
	if strings.TrimSpace(a.Type) == "" {
		return ErrMissingType
	}
	if a.ThresholdPrice != nil && *a.ThresholdPrice < 0 {
		return ErrNegativeThreshold
	}
	return nil
}
