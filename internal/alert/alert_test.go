package alert

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }

func TestValidate(t *testing.T) {
	a := Alert{Type: "price_drop"}
	require.ErrorIs(t, a.Validate(), ErrMissingSneakerID)

	a = Alert{SneakerID: "sn1"}
	require.ErrorIs(t, a.Validate(), ErrMissingType)

	a = Alert{SneakerID: "sn1", Type: "price_drop", ThresholdPrice: f64(-1)}
	require.ErrorIs(t, a.Validate(), ErrNegativeThreshold)

	a = Alert{SneakerID: "sn1", Type: "price_drop", ThresholdPrice: f64(0)}
	require.NoError(t, a.Validate())

	// Type is free text; unknown values pass.
	a = Alert{SneakerID: "sn1", Type: "back_in_black"}
	require.NoError(t, a.Validate())
}

func TestMemStoreCreate(t *testing.T) {
	s := NewMemStore()

	id, err := s.Create(context.Background(), Alert{SneakerID: "sn1", Type: "restock", Email: "a@b.c"})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(id, "a_"))

	all := s.All()
	require.Len(t, all, 1)
	require.Equal(t, id, all[0].ID)
	require.Equal(t, "restock", all[0].Type)
}
