// Package absence holds the wire shapes for absence requests. Like the
// personnel payloads, the subject's name can arrive denormalized, nested
// under an employee sub-object, or flattened; the normalizer reconciles them.
package absence

// Employee is the nested subject reference.
type Employee struct {
	ID        *int64 `json:"id,omitempty"`
	FullName  string `json:"full_name,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// Record is one absence request as it appears in list payloads.
type Record struct {
	ID *int64 `json:"id,omitempty"`
	PK *int64 `json:"pk,omitempty"`

	// Denormalized subject fields, present on newer payloads.
	EmployeeID   *int64 `json:"employee_id,omitempty"`
	EmployeeName string `json:"employee_name,omitempty"`

	Employee *Employee `json:"employee,omitempty"`

	AbsenceType string `json:"absence_type,omitempty"`
	// Legacy flattened twin of absence_type.
	Type string `json:"type,omitempty"`

	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	RequestDate string `json:"request_date,omitempty"`

	Status          string `json:"status,omitempty"`
	RejectionReason string `json:"rejection_reason,omitempty"`
	// Legacy flattened twin of rejection_reason.
	Reason string `json:"reason,omitempty"`
}

// ApprovePayload is the body of the approve sub-resource action.
type ApprovePayload struct {
	Comment string `json:"comment"`
}

// RejectPayload is the body of the reject sub-resource action.
type RejectPayload struct {
	Reason string `json:"reason"`
}
