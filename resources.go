package uprail

import (
	"context"
	"strings"
	"time"

	"github.com/jkp717/uprail-go/model"
)

// RoutesOptions narrows a route search. Junction carriers can only be
// provided when at least one junction is given; a provided junction
// carrier applies to all given junctions.
type RoutesOptions struct {
	OriginCarrier        string `url:"origin_carrier,omitempty"`
	DestinationCarrier   string `url:"destination_carrier,omitempty"`
	JunctionAbbreviation string `url:"junction_abbreviation,omitempty"`
	JunctionCarrier      string `url:"junction_carrier,omitempty"`
}

// LocationsOptions narrows a location search.
type LocationsOptions struct {
	// SPLC is right-padded with zeros to nine characters before encoding.
	SPLC string `url:"-"`
}

// ShipmentsOptions narrows a shipment search. Any combination of filters
// may be set; with no filters all active shipments of the user are
// returned. Each list is serialized as one comma-joined parameter.
type ShipmentsOptions struct {
	EquipmentIDs   []string          `url:"equipment_id,comma,omitempty"`
	WaybillIDs     []string          `url:"waybill_id,comma,omitempty"`
	OriginIDs      []string          `url:"origin_location_id,comma,omitempty"`
	DestinationIDs []string          `url:"destination_location_id,comma,omitempty"`
	PhaseCodes     []model.PhaseCode `url:"phase_codes,comma,omitempty"`
}

// CasesOptions narrows a case search. With no filters all open cases are
// returned. StatusCodes accepts specific codes or the OPEN/CEASED
// groupings.
type CasesOptions struct {
	Created      time.Time          `url:"-"` // rendered as YYYY-MM-DD
	StatusCodes  []model.CaseStatus `url:"status_code,comma,omitempty"`
	EquipmentIDs []string           `url:"equipment_id,comma,omitempty"`
}

// WaybillsOptions narrows a waybill search. At least one filter must be
// provided. When filtering by equipment only, the service honors at most
// the first ten ids.
type WaybillsOptions struct {
	ShipmentIDs  []string `url:"shipment_id,comma,omitempty"`
	EquipmentIDs []string `url:"equipment_id,comma,omitempty"`
}

// GetRoutes finds all applicable routes between an origin and destination
// location id.
func (c *Client) GetRoutes(ctx context.Context, originID, destinationID string, opts *RoutesOptions) ([]model.Route, *Response, error) {
	params := struct {
		OriginID      string `url:"origin_id"`
		DestinationID string `url:"destination_id"`
		RoutesOptions
	}{originID, destinationID, valueOrZero(opts)}

	resp, err := c.get(ctx, routesPath, params)
	if err != nil {
		return nil, nil, err
	}
	routes, err := decodeList[model.Route](c, resp)
	return routes, resp, err
}

// GetRouteByID returns the details of a route, including its segments.
func (c *Client) GetRouteByID(ctx context.Context, routeID string) (*model.Route, *Response, error) {
	resp, err := c.get(ctx, byIDPath(routesPath, routeID), nil)
	if err != nil {
		return nil, nil, err
	}
	route, err := decodeOne[model.Route](c, resp)
	return route, resp, err
}

// GetLocations lists locations. With no SPLC filter, all authorized
// locations of the user are returned; searching by SPLC also includes a
// GENERAL location covering the whole SPLC area. Track data is only
// populated by GetLocationByID.
func (c *Client) GetLocations(ctx context.Context, opts *LocationsOptions) ([]model.Location, *Response, error) {
	params := struct {
		SPLC string `url:"splc,omitempty"`
	}{}
	if o := valueOrZero(opts); o.SPLC != "" {
		params.SPLC = padSPLC(o.SPLC)
	}

	resp, err := c.get(ctx, locationsPath, params)
	if err != nil {
		return nil, nil, err
	}
	locations, err := decodeList[model.Location](c, resp)
	return locations, resp, err
}

// GetLocationByID returns the details of a location, including tracks and
// their capacity at facilities that have them.
func (c *Client) GetLocationByID(ctx context.Context, locationID string) (*model.Location, *Response, error) {
	resp, err := c.get(ctx, byIDPath(locationsPath, locationID), nil)
	if err != nil {
		return nil, nil, err
	}
	location, err := decodeOne[model.Location](c, resp)
	return location, resp, err
}

// GetShipments retrieves shipments for which the user is party to the
// bill. The service thins out per-record detail as result counts grow, so
// optional fields may be absent on large searches.
func (c *Client) GetShipments(ctx context.Context, opts *ShipmentsOptions) ([]model.Shipment, *Response, error) {
	resp, err := c.get(ctx, shipmentsPath, opts)
	if err != nil {
		return nil, nil, err
	}
	shipments, err := decodeList[model.Shipment](c, resp)
	return shipments, resp, err
}

// GetShipmentByID returns a single shipment with all of its events.
func (c *Client) GetShipmentByID(ctx context.Context, shipmentID string) (*model.Shipment, *Response, error) {
	resp, err := c.get(ctx, byIDPath(shipmentsPath, shipmentID), nil)
	if err != nil {
		return nil, nil, err
	}
	shipment, err := decodeOne[model.Shipment](c, resp)
	return shipment, resp, err
}

// GetCases lists customer service cases.
func (c *Client) GetCases(ctx context.Context, opts *CasesOptions) ([]model.Case, *Response, error) {
	o := valueOrZero(opts)
	params := struct {
		Created string `url:"created,omitempty"`
		CasesOptions
	}{CasesOptions: o}
	if !o.Created.IsZero() {
		params.Created = o.Created.Format("2006-01-02")
	}

	resp, err := c.get(ctx, casesPath, params)
	if err != nil {
		return nil, nil, err
	}
	cases, err := decodeList[model.Case](c, resp)
	return cases, resp, err
}

// GetCaseByID returns the details of a single case.
func (c *Client) GetCaseByID(ctx context.Context, caseID string) (*model.Case, *Response, error) {
	resp, err := c.get(ctx, byIDPath(casesPath, caseID), nil)
	if err != nil {
		return nil, nil, err
	}
	cs, err := decodeOne[model.Case](c, resp)
	return cs, resp, err
}

// GetWaybills lists waybills by shipment or equipment ids.
func (c *Client) GetWaybills(ctx context.Context, opts *WaybillsOptions) ([]model.Waybill, *Response, error) {
	resp, err := c.get(ctx, waybillsPath, opts)
	if err != nil {
		return nil, nil, err
	}
	waybills, err := decodeList[model.Waybill](c, resp)
	return waybills, resp, err
}

// GetWaybillByID returns the details of a single waybill. The id is not
// the same as the waybill number.
func (c *Client) GetWaybillByID(ctx context.Context, waybillID string) (*model.Waybill, *Response, error) {
	resp, err := c.get(ctx, byIDPath(waybillsPath, waybillID), nil)
	if err != nil {
		return nil, nil, err
	}
	waybill, err := decodeOne[model.Waybill](c, resp)
	return waybill, resp, err
}

// GetEquipmentByID returns the details of a single piece of equipment.
func (c *Client) GetEquipmentByID(ctx context.Context, equipmentID string) (*model.Equipment, *Response, error) {
	resp, err := c.get(ctx, byIDPath(equipmentPath, equipmentID), nil)
	if err != nil {
		return nil, nil, err
	}
	equipment, err := decodeOne[model.Equipment](c, resp)
	return equipment, resp, err
}

// padSPLC right-pads a Standard Point Location Code with zeros to the
// nine characters the API expects.
func padSPLC(splc string) string {
	if len(splc) >= 9 {
		return splc
	}
	return splc + strings.Repeat("0", 9-len(splc))
}

func valueOrZero[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
