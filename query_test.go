package uprail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildURL_NoParams(t *testing.T) {
	u, err := buildURL("https://example.com", "/services/v2/locations", nil)

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/services/v2/locations", u)
}

func TestBuildURL_OmitsAbsentOptionals(t *testing.T) {
	params := struct {
		SPLC string `url:"splc,omitempty"`
	}{}

	u, err := buildURL("https://example.com", "/services/v2/locations", params)

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/services/v2/locations", u)
}

func TestBuildURL_CommaJoinsLists(t *testing.T) {
	params := struct {
		EquipmentIDs []string `url:"equipment_id,comma,omitempty"`
	}{EquipmentIDs: []string{"A", "B", "C"}}

	u, err := buildURL("https://example.com", "/services/v2/shipments", params)

	require.NoError(t, err)
	// One parameter name, one comma-joined value, never repeated keys.
	assert.Equal(t, "https://example.com/services/v2/shipments?equipment_id=A%2CB%2CC", u)
}

func TestBuildURL_NilOptionsPointer(t *testing.T) {
	u, err := buildURL("https://example.com", "/services/v2/shipments", (*ShipmentsOptions)(nil))

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/services/v2/shipments", u)
}

func TestPadSPLC(t *testing.T) {
	assert.Equal(t, "123456000", padSPLC("123456"))
	assert.Equal(t, "123456789", padSPLC("123456789"))
	assert.Equal(t, "000000000", padSPLC(""))
}
