package model

// EquipmentLength holds the exterior length of a piece of equipment, in feet.
type EquipmentLength struct {
	Length *float64 `json:"length,omitempty"`
}

// EquipmentVolume holds the cubic capacity of a piece of equipment.
type EquipmentVolume struct {
	CubicCapacity *float64 `json:"cubic_capacity,omitempty"`
}

// EquipmentDimensions groups the physical dimensions of a piece of equipment.
type EquipmentDimensions struct {
	Exterior *EquipmentLength `json:"exterior,omitempty"`
	Volume   *EquipmentVolume `json:"volume,omitempty"`
	Tare     *float64         `json:"tare,omitempty"`
}

// EquipmentWeight groups the weight limits of a piece of equipment, in pounds.
type EquipmentWeight struct {
	GrossMaximum *float64 `json:"gross_maximum,omitempty"`
	NetMaximum   *float64 `json:"net_maximum,omitempty"`
	Tare         *float64 `json:"tare,omitempty"`
}

// Equipment is a piece of rail equipment. The id is the concatenation of
// equipment initial and number without leading zeros, spaces, or check digit.
type Equipment struct {
	ID            string               `json:"id"`
	AARType       *string              `json:"aar_type,omitempty"`
	UPType        *string              `json:"up_type,omitempty"`
	Weight        *EquipmentWeight     `json:"weight,omitempty"`
	OwnerTypeCode *string              `json:"owner_type_code,omitempty"`
	LesseeInitial *string              `json:"lessee_initial,omitempty"`
	Dimensions    *EquipmentDimensions `json:"dimensions,omitempty"`
}

// UnmarshalJSON validates the required Equipment fields while decoding.
func (e *Equipment) UnmarshalJSON(data []byte) error {
	type aux struct {
		ID            *string              `json:"id"`
		AARType       *string              `json:"aar_type"`
		UPType        *string              `json:"up_type"`
		Weight        *EquipmentWeight     `json:"weight"`
		OwnerTypeCode *string              `json:"owner_type_code"`
		LesseeInitial *string              `json:"lessee_initial"`
		Dimensions    *EquipmentDimensions `json:"dimensions"`
	}
	var a aux
	if err := unmarshalShape("Equipment", data, &a); err != nil {
		return err
	}
	if a.ID == nil {
		return missingField("Equipment", "id")
	}
	*e = Equipment{
		ID:            *a.ID,
		AARType:       a.AARType,
		UPType:        a.UPType,
		Weight:        a.Weight,
		OwnerTypeCode: a.OwnerTypeCode,
		LesseeInitial: a.LesseeInitial,
		Dimensions:    a.Dimensions,
	}
	return nil
}
