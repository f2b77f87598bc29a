package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkp717/uprail-go/model"
)

func TestDecode_Location(t *testing.T) {
	data := []byte(`{
		"id": "LOC1",
		"city": "Omaha",
		"state_abbreviation": "NE",
		"country_abbreviation": "US",
		"splc": "123456789",
		"latitude": 41.25
	}`)

	loc, err := model.Decode[model.Location](data)

	require.NoError(t, err)
	assert.Equal(t, "LOC1", loc.ID)
	assert.Equal(t, "Omaha", loc.City)
	assert.Equal(t, "NE", loc.StateAbbreviation)
	require.NotNil(t, loc.CountryAbbreviation)
	assert.Equal(t, "US", *loc.CountryAbbreviation)
	require.NotNil(t, loc.Latitude)
	assert.Equal(t, 41.25, *loc.Latitude)
	assert.Nil(t, loc.PostalCode)
	assert.Nil(t, loc.TypeCode)
}

func TestDecode_UnknownFieldsIgnored(t *testing.T) {
	data := []byte(`{
		"id": "LOC1",
		"city": "Omaha",
		"state_abbreviation": "NE",
		"brand_new_api_field": {"nested": true},
		"another": 7
	}`)

	loc, err := model.Decode[model.Location](data)

	require.NoError(t, err)
	assert.Equal(t, "LOC1", loc.ID)
}

func TestDecode_MissingRequiredField(t *testing.T) {
	data := []byte(`{"id": "LOC1", "state_abbreviation": "NE"}`)

	_, err := model.Decode[model.Location](data)

	var mapErr *model.MappingError
	require.ErrorAs(t, err, &mapErr)
	assert.Equal(t, "Location", mapErr.Shape)
	assert.Equal(t, "city", mapErr.Field)
	assert.Contains(t, err.Error(), "city")
}

func TestDecode_KindMismatch(t *testing.T) {
	data := []byte(`{"id": "LOC1", "city": 42, "state_abbreviation": "NE"}`)

	_, err := model.Decode[model.Location](data)

	var mapErr *model.MappingError
	require.ErrorAs(t, err, &mapErr)
	assert.Equal(t, "Location", mapErr.Shape)
	assert.Error(t, mapErr.Err)
}

func TestDecode_Idempotent(t *testing.T) {
	data := []byte(`{"id": "LOC1", "city": "Omaha", "state_abbreviation": "NE"}`)

	first, err := model.Decode[model.Location](data)
	require.NoError(t, err)
	second, err := model.Decode[model.Location](data)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDecodeList_PreservesOrder(t *testing.T) {
	data := []byte(`[
		{"id": "A", "city": "Omaha", "state_abbreviation": "NE"},
		{"id": "B", "city": "Chicago", "state_abbreviation": "IL"},
		{"id": "C", "city": "Denver", "state_abbreviation": "CO"}
	]`)

	locs, err := model.DecodeList[model.Location](data)

	require.NoError(t, err)
	require.Len(t, locs, 3)
	assert.Equal(t, "A", locs[0].ID)
	assert.Equal(t, "B", locs[1].ID)
	assert.Equal(t, "C", locs[2].ID)
}

func TestDecodeList_ElementError(t *testing.T) {
	data := []byte(`[
		{"id": "A", "city": "Omaha", "state_abbreviation": "NE"},
		{"id": "B", "state_abbreviation": "IL"}
	]`)

	_, err := model.DecodeList[model.Location](data)

	var mapErr *model.MappingError
	require.ErrorAs(t, err, &mapErr)
	assert.Equal(t, "Location", mapErr.Shape)
	assert.Equal(t, "city", mapErr.Field)
}

func TestDecode_NestedRequiredMissing(t *testing.T) {
	// Shipment load present but its equipment is absent: the innermost
	// failing shape is the one reported.
	data := []byte(`{"id": "SH1", "load": {"waybill": {"id": "WB1"}}}`)

	_, err := model.Decode[model.Shipment](data)

	var mapErr *model.MappingError
	require.ErrorAs(t, err, &mapErr)
	assert.Equal(t, "BillOfLading", mapErr.Shape)
	assert.Equal(t, "equipment", mapErr.Field)
}

func TestDecode_Shipment(t *testing.T) {
	data := []byte(`{
		"id": "SH1",
		"phase_code": "ENROUTE",
		"load": {
			"equipment": {"id": "UP1234", "aar_type": "BOX"},
			"commodities": [{"stcc": "0113110", "description": "WHEAT"}],
			"load_empty_code": "L"
		},
		"current_event": {
			"type_code": "ARRIVAL",
			"offline": false,
			"status_code": "ACTUAL",
			"location": {"id": "LOC1", "city": "Omaha", "state_abbreviation": "NE"}
		}
	}`)

	sh, err := model.Decode[model.Shipment](data)

	require.NoError(t, err)
	assert.Equal(t, "SH1", sh.ID)
	require.NotNil(t, sh.PhaseCode)
	assert.Equal(t, model.PhaseEnRoute, *sh.PhaseCode)
	require.NotNil(t, sh.Load)
	assert.Equal(t, "UP1234", sh.Load.Equipment.ID)
	require.Len(t, sh.Load.Commodities, 1)
	assert.Equal(t, "0113110", sh.Load.Commodities[0].STCC)
	require.NotNil(t, sh.CurrentEvent)
	assert.False(t, sh.CurrentEvent.Offline)
	require.NotNil(t, sh.CurrentEvent.Location)
	assert.Equal(t, "Omaha", sh.CurrentEvent.Location.City)
}

func TestDecode_Event_MissingOffline(t *testing.T) {
	data := []byte(`{"type_code": "ARRIVAL", "status_code": "ACTUAL"}`)

	_, err := model.Decode[model.Event](data)

	var mapErr *model.MappingError
	require.ErrorAs(t, err, &mapErr)
	assert.Equal(t, "Event", mapErr.Shape)
	assert.Equal(t, "offline", mapErr.Field)
}

func TestDecode_Case(t *testing.T) {
	data := []byte(`{
		"id": "CS1",
		"description": "Car not moving",
		"subject": "Stalled shipment",
		"reason_code": "DELAY",
		"status_code": "IN_PROGRESS",
		"created_by": {"user_id": "u123"},
		"created": "2026-08-01T12:00:00Z",
		"tracked_comments": [
			{"body": "looking into it", "created_by": {"user_id": "u456"}, "created": "2026-08-02T09:00:00Z"}
		]
	}`)

	cs, err := model.Decode[model.Case](data)

	require.NoError(t, err)
	assert.Equal(t, "CS1", cs.ID)
	assert.Equal(t, model.CaseStatusInProgress, cs.StatusCode)
	assert.Equal(t, "u123", cs.CreatedBy.UserID)
	require.Len(t, cs.TrackedComments, 1)
	assert.Equal(t, "u456", cs.TrackedComments[0].CreatedBy.UserID)
}
