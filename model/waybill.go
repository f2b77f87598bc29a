package model

// Commodity identifies freight by its Standard Transportation Commodity Code.
type Commodity struct {
	STCC        string  `json:"stcc"`
	Description *string `json:"description,omitempty"`
}

// UnmarshalJSON validates the required Commodity fields while decoding.
func (c *Commodity) UnmarshalJSON(data []byte) error {
	type aux struct {
		STCC        *string `json:"stcc"`
		Description *string `json:"description"`
	}
	var a aux
	if err := unmarshalShape("Commodity", data, &a); err != nil {
		return err
	}
	if a.STCC == nil {
		return missingField("Commodity", "stcc")
	}
	*c = Commodity{STCC: *a.STCC, Description: a.Description}
	return nil
}

// Waybill is the billing document for a shipment. The id is not the same
// as the waybill number; WaybillDate is in YYYY-MM-DD form.
type Waybill struct {
	ID                         string  `json:"id"`
	PrimaryReferenceID         *string `json:"primary_reference_id,omitempty"`
	PrimaryReferenceIDTypeCode *string `json:"primary_reference_id_type_code,omitempty"`
	WaybillNumber              *string `json:"waybill_number,omitempty"`
	WaybillDate                *string `json:"waybill_date,omitempty"`
}

// UnmarshalJSON validates the required Waybill fields while decoding.
func (w *Waybill) UnmarshalJSON(data []byte) error {
	type aux struct {
		ID                         *string `json:"id"`
		PrimaryReferenceID         *string `json:"primary_reference_id"`
		PrimaryReferenceIDTypeCode *string `json:"primary_reference_id_type_code"`
		WaybillNumber              *string `json:"waybill_number"`
		WaybillDate                *string `json:"waybill_date"`
	}
	var a aux
	if err := unmarshalShape("Waybill", data, &a); err != nil {
		return err
	}
	if a.ID == nil {
		return missingField("Waybill", "id")
	}
	*w = Waybill{
		ID:                         *a.ID,
		PrimaryReferenceID:         a.PrimaryReferenceID,
		PrimaryReferenceIDTypeCode: a.PrimaryReferenceIDTypeCode,
		WaybillNumber:              a.WaybillNumber,
		WaybillDate:                a.WaybillDate,
	}
	return nil
}

// Assessorial carries storage charge information for a load.
type Assessorial struct {
	StorageFirstChargeableDay string `json:"storage_first_chargeable_day"`
}

// UnmarshalJSON validates the required Assessorial fields while decoding.
func (a *Assessorial) UnmarshalJSON(data []byte) error {
	type aux struct {
		StorageFirstChargeableDay *string `json:"storage_first_chargeable_day"`
	}
	var v aux
	if err := unmarshalShape("Assessorial", data, &v); err != nil {
		return err
	}
	if v.StorageFirstChargeableDay == nil {
		return missingField("Assessorial", "storage_first_chargeable_day")
	}
	a.StorageFirstChargeableDay = *v.StorageFirstChargeableDay
	return nil
}

// BillOfLading describes the load of a shipment: the equipment carrying
// it, its waybill, and the commodities on board.
type BillOfLading struct {
	Equipment              Equipment    `json:"equipment"`
	Waybill                *Waybill     `json:"waybill,omitempty"`
	Commodities            []Commodity  `json:"commodities,omitempty"`
	LoadEmptyCode          *string      `json:"load_empty_code,omitempty"`
	AssociatedEquipment    []string     `json:"associated_equipment,omitempty"`
	PickupNumber           *string      `json:"pickup_number,omitempty"`
	YardBlock              *string      `json:"yard_block,omitempty"`
	AssessorialInformation *Assessorial `json:"assessorial_information,omitempty"`
}

// UnmarshalJSON validates the required BillOfLading fields while decoding.
func (b *BillOfLading) UnmarshalJSON(data []byte) error {
	type aux struct {
		Equipment              *Equipment   `json:"equipment"`
		Waybill                *Waybill     `json:"waybill"`
		Commodities            []Commodity  `json:"commodities"`
		LoadEmptyCode          *string      `json:"load_empty_code"`
		AssociatedEquipment    []string     `json:"associated_equipment"`
		PickupNumber           *string      `json:"pickup_number"`
		YardBlock              *string      `json:"yard_block"`
		AssessorialInformation *Assessorial `json:"assessorial_information"`
	}
	var a aux
	if err := unmarshalShape("BillOfLading", data, &a); err != nil {
		return err
	}
	if a.Equipment == nil {
		return missingField("BillOfLading", "equipment")
	}
	*b = BillOfLading{
		Equipment:              *a.Equipment,
		Waybill:                a.Waybill,
		Commodities:            a.Commodities,
		LoadEmptyCode:          a.LoadEmptyCode,
		AssociatedEquipment:    a.AssociatedEquipment,
		PickupNumber:           a.PickupNumber,
		YardBlock:              a.YardBlock,
		AssessorialInformation: a.AssessorialInformation,
	}
	return nil
}
