package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkp717/uprail-go/model"
)

// seg builds segment JSON with the given carrier and beginning junction.
func seg(carrier, junction string) string {
	loc := `{"id": "L", "city": "X", "state_abbreviation": "NE"}`
	begin := `{"location": ` + loc + `, "carrier": "` + carrier + `"`
	if junction != "" {
		begin += `, "junction_abbreviation": "` + junction + `"`
	}
	begin += `}`
	return `{"beginning": ` + begin + `, "end": {"location": ` + loc + `}, "mileage": 100, "carrier": "` + carrier + `"}`
}

func routeJSON(mileages ...string) []byte {
	carrierLoc := `{"location": {"id": "L", "city": "X", "state_abbreviation": "NE"}}`
	body := `{"id": "RT1", "origin": ` + carrierLoc + `, "destination": ` + carrierLoc
	if len(mileages) > 0 {
		body += `, "route_mileages": [`
		for i, m := range mileages {
			if i > 0 {
				body += ","
			}
			body += m
		}
		body += `]`
	}
	return []byte(body + `}`)
}

func TestRoute_Interchanges_HomeCarrierHandoff(t *testing.T) {
	mileage := `{"mileage": 400, "route_segments": [` +
		seg("UP", "") + `,` + seg("UP", "") + `,` + seg("BNSF", "NORTH") + `,` + seg("BNSF", "") +
		`]}`

	route, err := model.Decode[model.Route](routeJSON(mileage))

	require.NoError(t, err)
	require.Len(t, route.Interchanges, 1)
	assert.Equal(t, "UP-NORTH-BNSF", route.Interchanges[0])
}

func TestRoute_Interchanges_ForeignHandoffNotRecorded(t *testing.T) {
	// BNSF to CSXT never touches UP rails, so only the seed carrier shows.
	mileage := `{"mileage": 250, "route_segments": [` +
		seg("BNSF", "") + `,` + seg("CSXT", "EAST") +
		`]}`

	route, err := model.Decode[model.Route](routeJSON(mileage))

	require.NoError(t, err)
	require.Len(t, route.Interchanges, 1)
	assert.Equal(t, "BNSF", route.Interchanges[0])
}

func TestRoute_Interchanges_MultipleHandoffs(t *testing.T) {
	mileage := `{"mileage": 900, "route_segments": [` +
		seg("UP", "") + `,` + seg("BNSF", "NORTH") + `,` + seg("UP", "WEST") + `,` + seg("CSXT", "EAST") +
		`]}`

	route, err := model.Decode[model.Route](routeJSON(mileage))

	require.NoError(t, err)
	require.Len(t, route.Interchanges, 1)
	assert.Equal(t, "UP-NORTH-BNSF-EAST-CSXT", route.Interchanges[0])
}

func TestRoute_Interchanges_EmptySegmentList(t *testing.T) {
	route, err := model.Decode[model.Route](routeJSON(`{"mileage": 120, "route_segments": []}`))

	require.NoError(t, err)
	require.Len(t, route.Interchanges, 1)
	assert.Equal(t, "", route.Interchanges[0])
}

func TestRoute_Interchanges_OnePerMileageInOrder(t *testing.T) {
	first := `{"mileage": 400, "route_segments": [` + seg("UP", "") + `,` + seg("BNSF", "NORTH") + `]}`
	second := `{"mileage": 410, "route_segments": []}`
	third := `{"mileage": 500, "route_segments": [` + seg("CSXT", "") + `]}`

	route, err := model.Decode[model.Route](routeJSON(first, second, third))

	require.NoError(t, err)
	require.Len(t, route.Interchanges, 3)
	assert.Equal(t, "UP-NORTH-BNSF", route.Interchanges[0])
	assert.Equal(t, "", route.Interchanges[1])
	assert.Equal(t, "CSXT", route.Interchanges[2])
}

func TestRoute_NoMileages(t *testing.T) {
	// Shipment searches often omit mileages and even the route id.
	carrierLoc := `{"location": {"id": "L", "city": "X", "state_abbreviation": "NE"}}`
	data := []byte(`{"origin": ` + carrierLoc + `, "destination": ` + carrierLoc + `}`)

	route, err := model.Decode[model.Route](data)

	require.NoError(t, err)
	assert.Nil(t, route.ID)
	assert.Empty(t, route.Interchanges)
}

func TestRoute_MissingOrigin(t *testing.T) {
	data := []byte(`{"destination": {"location": {"id": "L", "city": "X", "state_abbreviation": "NE"}}}`)

	_, err := model.Decode[model.Route](data)

	var mapErr *model.MappingError
	require.ErrorAs(t, err, &mapErr)
	assert.Equal(t, "Route", mapErr.Shape)
	assert.Equal(t, "origin", mapErr.Field)
}

func TestSegment_MissingMileage(t *testing.T) {
	carrierLoc := `{"location": {"id": "L", "city": "X", "state_abbreviation": "NE"}}`
	data := []byte(`{"beginning": ` + carrierLoc + `, "end": ` + carrierLoc + `}`)

	_, err := model.Decode[model.Segment](data)

	var mapErr *model.MappingError
	require.ErrorAs(t, err, &mapErr)
	assert.Equal(t, "Segment", mapErr.Shape)
	assert.Equal(t, "mileage", mapErr.Field)
}
