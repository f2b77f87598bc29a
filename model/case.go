package model

// User identifies the UP customer portal user attached to a case or comment.
type User struct {
	UserID string `json:"user_id"`
}

// UnmarshalJSON validates the required User fields while decoding.
func (u *User) UnmarshalJSON(data []byte) error {
	type aux struct {
		UserID *string `json:"user_id"`
	}
	var a aux
	if err := unmarshalShape("User", data, &a); err != nil {
		return err
	}
	if a.UserID == nil {
		return missingField("User", "user_id")
	}
	u.UserID = *a.UserID
	return nil
}

// CaseComment is a tracked comment on a customer service case. Created is
// in YYYY-MM-DDTHH:MM:SSZ UTC form.
type CaseComment struct {
	Body      string `json:"body"`
	CreatedBy User   `json:"created_by"`
	Created   string `json:"created"`
}

// UnmarshalJSON validates the required CaseComment fields while decoding.
func (c *CaseComment) UnmarshalJSON(data []byte) error {
	type aux struct {
		Body      *string `json:"body"`
		CreatedBy *User   `json:"created_by"`
		Created   *string `json:"created"`
	}
	var a aux
	if err := unmarshalShape("CaseComment", data, &a); err != nil {
		return err
	}
	switch {
	case a.Body == nil:
		return missingField("CaseComment", "body")
	case a.CreatedBy == nil:
		return missingField("CaseComment", "created_by")
	case a.Created == nil:
		return missingField("CaseComment", "created")
	}
	*c = CaseComment{Body: *a.Body, CreatedBy: *a.CreatedBy, Created: *a.Created}
	return nil
}

// Case is a customer service case, optionally tied to a lead shipment,
// lead equipment, or waybill.
type Case struct {
	ID              string        `json:"id"`
	Description     string        `json:"description"`
	Subject         string        `json:"subject"`
	ReasonCode      string        `json:"reason_code"`
	StatusCode      CaseStatus    `json:"status_code"`
	CreatedBy       User          `json:"created_by"`
	Created         string        `json:"created"`
	LastModifiedBy  *User         `json:"last_modified_by,omitempty"`
	LastModified    *string       `json:"last_modified,omitempty"`
	TrackedComments []CaseComment `json:"tracked_comments,omitempty"`
	LeadShipment    *Shipment     `json:"lead_shipment,omitempty"`
	LeadEquipment   *Equipment    `json:"lead_equipment,omitempty"`
	Waybill         *Waybill      `json:"waybill,omitempty"`
}

// UnmarshalJSON validates the required Case fields while decoding.
func (c *Case) UnmarshalJSON(data []byte) error {
	type aux struct {
		ID              *string       `json:"id"`
		Description     *string       `json:"description"`
		Subject         *string       `json:"subject"`
		ReasonCode      *string       `json:"reason_code"`
		StatusCode      *CaseStatus   `json:"status_code"`
		CreatedBy       *User         `json:"created_by"`
		Created         *string       `json:"created"`
		LastModifiedBy  *User         `json:"last_modified_by"`
		LastModified    *string       `json:"last_modified"`
		TrackedComments []CaseComment `json:"tracked_comments"`
		LeadShipment    *Shipment     `json:"lead_shipment"`
		LeadEquipment   *Equipment    `json:"lead_equipment"`
		Waybill         *Waybill      `json:"waybill"`
	}
	var a aux
	if err := unmarshalShape("Case", data, &a); err != nil {
		return err
	}
	switch {
	case a.ID == nil:
		return missingField("Case", "id")
	case a.Description == nil:
		return missingField("Case", "description")
	case a.Subject == nil:
		return missingField("Case", "subject")
	case a.ReasonCode == nil:
		return missingField("Case", "reason_code")
	case a.StatusCode == nil:
		return missingField("Case", "status_code")
	case a.CreatedBy == nil:
		return missingField("Case", "created_by")
	case a.Created == nil:
		return missingField("Case", "created")
	}
	*c = Case{
		ID:              *a.ID,
		Description:     *a.Description,
		Subject:         *a.Subject,
		ReasonCode:      *a.ReasonCode,
		StatusCode:      *a.StatusCode,
		CreatedBy:       *a.CreatedBy,
		Created:         *a.Created,
		LastModifiedBy:  a.LastModifiedBy,
		LastModified:    a.LastModified,
		TrackedComments: a.TrackedComments,
		LeadShipment:    a.LeadShipment,
		LeadEquipment:   a.LeadEquipment,
		Waybill:         a.Waybill,
	}
	return nil
}
