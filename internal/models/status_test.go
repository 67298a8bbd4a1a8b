package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseStatusCaseInsensitive(t *testing.T) {
	for _, input := range []string{"delivered", "DELIVERED", "Delivered", " delivered "} {
		status, err := ParseStatus(input)
		require.NoError(t, err, "input %q", input)
		require.Equal(t, StatusDelivered, status)
	}
}

func TestParseStatusRejectsUnknown(t *testing.T) {
	for _, input := range []string{"SHIPPED", "", "delivered!"} {
		_, err := ParseStatus(input)
		require.Error(t, err, "input %q", input)
		require.Contains(t, err.Error(), "IN_TRANSIT", "error should list accepted names")
	}
}

func TestStatusLabels(t *testing.T) {
	require.Equal(t, "🔵 created", StatusCreated.Label())
	require.Equal(t, "🟢 delivered", StatusDelivered.Label())
	require.Equal(t, "🔴 cancelled", StatusCancelled.Label())

	// Unknown values fall back to the raw name so logs stay readable.
	require.Equal(t, "LOST", OrderStatus("LOST").Label())
}

func TestAllStatusesOrder(t *testing.T) {
	all := AllStatuses()
	require.Len(t, all, 5)
	require.Equal(t, StatusCreated, all[0])
	require.Equal(t, StatusCancelled, all[len(all)-1])
	for _, s := range all {
		require.True(t, s.Valid())
	}
}
