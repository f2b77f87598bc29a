package model

// PhaseCode describes a shipment's current movement phase.
type PhaseCode string

const (
	PhaseEnRoute PhaseCode = "ENROUTE"
)

// CaseStatus represents the status of a customer service case.
// CaseStatusOpen and CaseStatusCeased are search groupings accepted by the
// cases service: OPEN covers IN_PROGRESS, NEW, and AWAITING_FEEDBACK;
// CEASED covers CANCELED and CLOSED.
type CaseStatus string

const (
	CaseStatusNew              CaseStatus = "NEW"
	CaseStatusInProgress       CaseStatus = "IN_PROGRESS"
	CaseStatusAwaitingFeedback CaseStatus = "AWAITING_FEEDBACK"
	CaseStatusCanceled         CaseStatus = "CANCELED"
	CaseStatusClosed           CaseStatus = "CLOSED"

	CaseStatusOpen   CaseStatus = "OPEN"
	CaseStatusCeased CaseStatus = "CEASED"
)
