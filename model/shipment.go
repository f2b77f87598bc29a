package model

// CarrierTrain identifies the train currently moving a shipment.
type CarrierTrain struct {
	Section   *string `json:"section,omitempty"`
	Symbol    *string `json:"symbol,omitempty"`
	StartDate *string `json:"start_date,omitempty"`
}

// Event is a reported movement event for a shipment. Offline marks events
// that occurred outside the UP rail network. DateTime is in
// YYYY-MM-DDTHH:MM:SSZ UTC form.
type Event struct {
	TypeCode            string        `json:"type_code"`
	Offline             bool          `json:"offline"`
	StatusCode          string        `json:"status_code"`
	EventCode           *string       `json:"event_code,omitempty"`
	DateTime            *string       `json:"date_time,omitempty"`
	Location            *Location     `json:"location,omitempty"`
	CarrierAbbreviation *string       `json:"carrier_abbreviation,omitempty"`
	CarrierTrain        *CarrierTrain `json:"carrier_train,omitempty"`
	Equipment           *Equipment    `json:"equipment,omitempty"`
}

// UnmarshalJSON validates the required Event fields while decoding.
func (e *Event) UnmarshalJSON(data []byte) error {
	type aux struct {
		TypeCode            *string       `json:"type_code"`
		Offline             *bool         `json:"offline"`
		StatusCode          *string       `json:"status_code"`
		EventCode           *string       `json:"event_code"`
		DateTime            *string       `json:"date_time"`
		Location            *Location     `json:"location"`
		CarrierAbbreviation *string       `json:"carrier_abbreviation"`
		CarrierTrain        *CarrierTrain `json:"carrier_train"`
		Equipment           *Equipment    `json:"equipment"`
	}
	var a aux
	if err := unmarshalShape("Event", data, &a); err != nil {
		return err
	}
	switch {
	case a.TypeCode == nil:
		return missingField("Event", "type_code")
	case a.Offline == nil:
		return missingField("Event", "offline")
	case a.StatusCode == nil:
		return missingField("Event", "status_code")
	}
	*e = Event{
		TypeCode:            *a.TypeCode,
		Offline:             *a.Offline,
		StatusCode:          *a.StatusCode,
		EventCode:           a.EventCode,
		DateTime:            a.DateTime,
		Location:            a.Location,
		CarrierAbbreviation: a.CarrierAbbreviation,
		CarrierTrain:        a.CarrierTrain,
		Equipment:           a.Equipment,
	}
	return nil
}

// Shipment is the delivery of a loaded or empty piece of rail equipment
// from origin to destination. The shipment id is distinct from the
// equipment id. Load and route details thin out on large search results.
type Shipment struct {
	ID                    string        `json:"id"`
	Load                  *BillOfLading `json:"load,omitempty"`
	CurrentEvent          *Event        `json:"current_event,omitempty"`
	PhaseCode             *PhaseCode    `json:"phase_code,omitempty"`
	Online                *string       `json:"online,omitempty"`
	Route                 *Route        `json:"route,omitempty"`
	HoldCode              *string       `json:"hold_code,omitempty"`
	StartedDwell          *string       `json:"started_dwell,omitempty"`
	OperationalMoveEvents []Event       `json:"operational_move_events,omitempty"`
}

// UnmarshalJSON validates the required Shipment fields while decoding.
func (s *Shipment) UnmarshalJSON(data []byte) error {
	type aux struct {
		ID                    *string       `json:"id"`
		Load                  *BillOfLading `json:"load"`
		CurrentEvent          *Event        `json:"current_event"`
		PhaseCode             *PhaseCode    `json:"phase_code"`
		Online                *string       `json:"online"`
		Route                 *Route        `json:"route"`
		HoldCode              *string       `json:"hold_code"`
		StartedDwell          *string       `json:"started_dwell"`
		OperationalMoveEvents []Event       `json:"operational_move_events"`
	}
	var a aux
	if err := unmarshalShape("Shipment", data, &a); err != nil {
		return err
	}
	if a.ID == nil {
		return missingField("Shipment", "id")
	}
	*s = Shipment{
		ID:                    *a.ID,
		Load:                  a.Load,
		CurrentEvent:          a.CurrentEvent,
		PhaseCode:             a.PhaseCode,
		Online:                a.Online,
		Route:                 a.Route,
		HoldCode:              a.HoldCode,
		StartedDwell:          a.StartedDwell,
		OperationalMoveEvents: a.OperationalMoveEvents,
	}
	return nil
}
