package alert

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestIsUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: pgUniqueCode}
	require.True(t, isUniqueViolation(unique))
	require.True(t, isUniqueViolation(fmt.Errorf("insert alert: %w", unique)))

	require.False(t, isUniqueViolation(nil))
	require.False(t, isUniqueViolation(fmt.Errorf("plain failure")))
	require.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
}
