package design

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemStoreCreateAssignsID(t *testing.T) {
	s := NewMemStore()

	id, err := s.Create(context.Background(), Design{SneakerID: "sn1", Name: "my colorway"})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(id, "d_"))

	docs, err := s.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.Equal(t, id, docs[0].ID)
}

func TestMemStoreListFiltersByUser(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	_, err := s.Create(ctx, Design{UserID: "u1", SneakerID: "sn1", Name: "first"})
	require.NoError(t, err)
	_, err = s.Create(ctx, Design{UserID: "u2", SneakerID: "sn2", Name: "second"})
	require.NoError(t, err)
	_, err = s.Create(ctx, Design{UserID: "u1", SneakerID: "sn3", Name: "third"})
	require.NoError(t, err)

	docs, err := s.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	// Insertion order preserved.
	require.Equal(t, "first", docs[0].Name)
	require.Equal(t, "third", docs[1].Name)

	all, err := s.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestValidate(t *testing.T) {
	d := Design{Name: "no sneaker"}
	require.ErrorIs(t, d.Validate(), ErrMissingSneakerID)

	d = Design{SneakerID: "sn1"}
	require.ErrorIs(t, d.Validate(), ErrMissingName)

	d = Design{SneakerID: "sn1", Name: "  "}
	require.ErrorIs(t, d.Validate(), ErrMissingName)

	d = Design{SneakerID: "sn1", Name: "ok"}
	require.NoError(t, d.Validate())
	require.NotNil(t, d.Layers)
	require.Empty(t, d.Layers)
	require.False(t, d.IsPublic)
}
