package update_poll_availability

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateAvailabilityRequestWireKey(t *testing.T) {
	var req UpdateAvailabilityRequest
	err := json.Unmarshal([]byte(`{"selectedSlots":["Monday-10:00","Tuesday-09:30"]}`), &req)
	require.NoError(t, err)

	assert.Equal(t, []string{"Monday-10:00", "Tuesday-09:30"}, req.SelectedSlots)
}
