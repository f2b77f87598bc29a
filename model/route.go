package model

import "fmt"

// HomeCarrier is the carrier abbreviation of the railroad that owns this
// API. Interchange strings only record handoffs away from the home
// carrier's rails.
const HomeCarrier = "UP"

// Segment is a single carrier's leg of a route between two carrier
// locations.
type Segment struct {
	Beginning CarrierLocation `json:"beginning"`
	End       CarrierLocation `json:"end"`
	Mileage   float64         `json:"mileage"`
	Carrier   *string         `json:"carrier,omitempty"`
}

// UnmarshalJSON validates the required Segment fields while decoding.
func (s *Segment) UnmarshalJSON(data []byte) error {
	type aux struct {
		Beginning *CarrierLocation `json:"beginning"`
		End       *CarrierLocation `json:"end"`
		Mileage   *float64         `json:"mileage"`
		Carrier   *string          `json:"carrier"`
	}
	var a aux
	if err := unmarshalShape("Segment", data, &a); err != nil {
		return err
	}
	switch {
	case a.Beginning == nil:
		return missingField("Segment", "beginning")
	case a.End == nil:
		return missingField("Segment", "end")
	case a.Mileage == nil:
		return missingField("Segment", "mileage")
	}
	*s = Segment{
		Beginning: *a.Beginning,
		End:       *a.End,
		Mileage:   *a.Mileage,
		Carrier:   a.Carrier,
	}
	return nil
}

// RouteMileage is one mileage alternative for a route, broken into the
// segments each carrier operates.
type RouteMileage struct {
	Mileage       float64   `json:"mileage"`
	RouteSegments []Segment `json:"route_segments,omitempty"`
	TypeCode      *string   `json:"type_code,omitempty"`
}

// UnmarshalJSON validates the required RouteMileage fields while decoding.
func (m *RouteMileage) UnmarshalJSON(data []byte) error {
	type aux struct {
		Mileage       *float64  `json:"mileage"`
		RouteSegments []Segment `json:"route_segments"`
		TypeCode      *string   `json:"type_code"`
	}
	var a aux
	if err := unmarshalShape("RouteMileage", data, &a); err != nil {
		return err
	}
	if a.Mileage == nil {
		return missingField("RouteMileage", "mileage")
	}
	*m = RouteMileage{
		Mileage:       *a.Mileage,
		RouteSegments: a.RouteSegments,
		TypeCode:      a.TypeCode,
	}
	return nil
}

// Route describes how a shipment moves from origin to destination. The id
// and mileages are not always populated on shipment searches.
//
// Interchanges holds one human-readable carrier-interchange string per
// mileage entry, in mileage order, computed when the Route is decoded.
type Route struct {
	Origin                    CarrierLocation   `json:"origin"`
	Destination               CarrierLocation   `json:"destination"`
	ID                        *string           `json:"id,omitempty"`
	RouteMileages             []RouteMileage    `json:"route_mileages,omitempty"`
	Junctions                 []CarrierLocation `json:"junctions,omitempty"`
	LastAccomplishedEventStop *CarrierLocation  `json:"last_accomplished_event_stop,omitempty"`
	Interchanges              []string          `json:"-"`
}

// UnmarshalJSON validates the required Route fields while decoding and
// computes the derived interchange strings.
func (r *Route) UnmarshalJSON(data []byte) error {
	type aux struct {
		Origin                    *CarrierLocation  `json:"origin"`
		Destination               *CarrierLocation  `json:"destination"`
		ID                        *string           `json:"id"`
		RouteMileages             []RouteMileage    `json:"route_mileages"`
		Junctions                 []CarrierLocation `json:"junctions"`
		LastAccomplishedEventStop *CarrierLocation  `json:"last_accomplished_event_stop"`
	}
	var a aux
	if err := unmarshalShape("Route", data, &a); err != nil {
		return err
	}
	switch {
	case a.Origin == nil:
		return missingField("Route", "origin")
	case a.Destination == nil:
		return missingField("Route", "destination")
	}
	*r = Route{
		Origin:                    *a.Origin,
		Destination:               *a.Destination,
		ID:                        a.ID,
		RouteMileages:             a.RouteMileages,
		Junctions:                 a.Junctions,
		LastAccomplishedEventStop: a.LastAccomplishedEventStop,
		Interchanges:              deriveInterchanges(a.RouteMileages),
	}
	return nil
}

// deriveInterchanges builds one interchange string per mileage entry.
// Each string starts with the first segment's carrier and appends
// "-{junction}-{carrier}" whenever the route leaves the home carrier's
// rails. Handoffs between two foreign carriers are not recorded.
func deriveInterchanges(mileages []RouteMileage) []string {
	if mileages == nil {
		return nil
	}
	out := make([]string, 0, len(mileages))
	for _, m := range mileages {
		var current *string
		var s string
		for _, seg := range m.RouteSegments {
			if current == nil {
				current = seg.Carrier
				s = deref(seg.Carrier)
				continue
			}
			if deref(seg.Carrier) == deref(current) {
				continue
			}
			if deref(current) == HomeCarrier {
				s += fmt.Sprintf("-%s-%s", deref(seg.Beginning.JunctionAbbreviation), deref(seg.Carrier))
			}
			current = seg.Carrier
		}
		out = append(out, s)
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
