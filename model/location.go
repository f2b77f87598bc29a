package model

// Location is a rail location known to the UP network. Postal code and
// coordinates are only populated by the lookup-by-id service.
type Location struct {
	ID                  string   `json:"id"`
	City                string   `json:"city"`
	StateAbbreviation   string   `json:"state_abbreviation"`
	CountryAbbreviation *string  `json:"country_abbreviation,omitempty"`
	TypeCode            *string  `json:"type_code,omitempty"`
	SPLC                *string  `json:"splc,omitempty"`
	PostalCode          *string  `json:"postal_code,omitempty"`
	Latitude            *float64 `json:"latitude,omitempty"`
	Longitude           *float64 `json:"longitude,omitempty"`
}

// UnmarshalJSON validates the required Location fields while decoding.
func (l *Location) UnmarshalJSON(data []byte) error {
	type aux struct {
		ID                  *string  `json:"id"`
		City                *string  `json:"city"`
		StateAbbreviation   *string  `json:"state_abbreviation"`
		CountryAbbreviation *string  `json:"country_abbreviation"`
		TypeCode            *string  `json:"type_code"`
		SPLC                *string  `json:"splc"`
		PostalCode          *string  `json:"postal_code"`
		Latitude            *float64 `json:"latitude"`
		Longitude           *float64 `json:"longitude"`
	}
	var a aux
	if err := unmarshalShape("Location", data, &a); err != nil {
		return err
	}
	switch {
	case a.ID == nil:
		return missingField("Location", "id")
	case a.City == nil:
		return missingField("Location", "city")
	case a.StateAbbreviation == nil:
		return missingField("Location", "state_abbreviation")
	}
	*l = Location{
		ID:                  *a.ID,
		City:                *a.City,
		StateAbbreviation:   *a.StateAbbreviation,
		CountryAbbreviation: a.CountryAbbreviation,
		TypeCode:            a.TypeCode,
		SPLC:                a.SPLC,
		PostalCode:          a.PostalCode,
		Latitude:            a.Latitude,
		Longitude:           a.Longitude,
	}
	return nil
}

// CarrierLocation pairs a Location with the carrier serving it and, at
// interchange points, the junction abbreviation.
type CarrierLocation struct {
	Location             Location `json:"location"`
	Carrier              *string  `json:"carrier,omitempty"`
	JunctionAbbreviation *string  `json:"junction_abbreviation,omitempty"`
}

// UnmarshalJSON validates the required CarrierLocation fields while decoding.
func (c *CarrierLocation) UnmarshalJSON(data []byte) error {
	type aux struct {
		Location             *Location `json:"location"`
		Carrier              *string   `json:"carrier"`
		JunctionAbbreviation *string   `json:"junction_abbreviation"`
	}
	var a aux
	if err := unmarshalShape("CarrierLocation", data, &a); err != nil {
		return err
	}
	if a.Location == nil {
		return missingField("CarrierLocation", "location")
	}
	*c = CarrierLocation{
		Location:             *a.Location,
		Carrier:              a.Carrier,
		JunctionAbbreviation: a.JunctionAbbreviation,
	}
	return nil
}
