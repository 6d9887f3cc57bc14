package absence

import (
	"strings"
	"time"

	"github.com/kbelhadj/roster-management/internal"
	dates "github.com/kbelhadj/roster-management/internal/core/common/dates"
	absenceDatamodel "github.com/kbelhadj/roster-management/internal/core/datamodel/absence"
)

// Status is the workflow status of an absence request. Once a request leaves
// PENDING the status is terminal; this client never transitions it again.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusCancelled Status = "CANCELLED"
)

// ParseStatus defaults anything unrecognized to PENDING, the same default
// the list screens have always assumed for records missing a status.
func ParseStatus(s string) Status {
	switch Status(strings.ToUpper(strings.TrimSpace(s))) {
	case StatusApproved:
		return StatusApproved
	case StatusRejected:
		return StatusRejected
	case StatusCancelled:
		return StatusCancelled
	default:
		return StatusPending
	}
}

// Type is the absence-type category.
type Type string

const (
	TypeAnnual      Type = "ANNUAL"
	TypeSick        Type = "SICK"
	TypeMaternity   Type = "MATERNITY"
	TypeExceptional Type = "EXCEPTIONAL"
	TypeUnpaid      Type = "UNPAID"
	TypeUnknown     Type = "UNKNOWN"
)

func ParseType(s string) Type {
	switch Type(strings.ToUpper(strings.TrimSpace(s))) {
	case TypeAnnual:
		return TypeAnnual
	case TypeSick:
		return TypeSick
	case TypeMaternity:
		return TypeMaternity
	case TypeExceptional:
		return TypeExceptional
	case TypeUnpaid:
		return TypeUnpaid
	default:
		return TypeUnknown
	}
}

// Record is the canonical absence request.
type Record struct {
	ID              int64     `json:"id"`
	PersonnelID     int64     `json:"personnel_id"`
	PersonnelName   string    `json:"personnel_name"`
	Type            Type      `json:"type"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	RequestDate     time.Time `json:"request_date"`
	Status          Status    `json:"status"`
	RejectionReason string    `json:"rejection_reason,omitempty"`
}

func (r Record) RecordID() int64     { return r.ID }
func (r Record) DisplayName() string { return r.PersonnelName }
func (r Record) StatusKey() string   { return string(r.Status) }
func (r Record) CategoryKey() string { return string(r.Type) }

func (r Record) CanBeApproved() bool { return r.Status == StatusPending }
func (r Record) CanBeRejected() bool { return r.Status == StatusPending }

// DurationDays is derived at comparison time, never stored: calendar days
// covered by the request, inclusive of both endpoints.
func (r Record) DurationDays() int {
	return dates.DurationDays(r.StartDate, r.EndDate)
}

// Validate reports invariant violations the normalizer deliberately leaves
// in place: an inverted date range, or a rejection without a reason.
func (r Record) Validate() error {
	if !r.StartDate.IsZero() && !r.EndDate.IsZero() && r.EndDate.Before(r.StartDate) {
		return internal.NewValidationError("end date precedes start date", internal.ErrCodeInvalidDateRange)
	}
	if r.Status == StatusRejected && strings.TrimSpace(r.RejectionReason) == "" {
		return internal.NewValidationError("rejected request carries no reason", internal.ErrCodeEmptyReason)
	}
	return nil
}

func first(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// Normalize reconciles one wire record into the canonical shape, total and
// idempotent the same way the personnel normalizer is.
func Normalize(raw *absenceDatamodel.Record) Record {
	if raw == nil {
		raw = &absenceDatamodel.Record{}
	}

	employee := raw.Employee
	if employee == nil {
		employee = &absenceDatamodel.Employee{}
	}

	var id int64
	switch {
	case raw.ID != nil:
		id = *raw.ID
	case raw.PK != nil:
		id = *raw.PK
	}

	var personnelID int64
	switch {
	case raw.EmployeeID != nil:
		personnelID = *raw.EmployeeID
	case employee.ID != nil:
		personnelID = *employee.ID
	}

	name := strings.TrimSpace(first(raw.EmployeeName, employee.FullName))
	if name == "" {
		name = strings.TrimSpace(strings.TrimSpace(employee.FirstName) + " " + strings.TrimSpace(employee.LastName))
	}

	return Record{
		ID:              id,
		PersonnelID:     personnelID,
		PersonnelName:   name,
		Type:            ParseType(first(raw.AbsenceType, raw.Type)),
		StartDate:       dates.Parse(raw.StartDate),
		EndDate:         dates.Parse(raw.EndDate),
		RequestDate:     dates.Parse(raw.RequestDate),
		Status:          ParseStatus(raw.Status),
		RejectionReason: first(raw.RejectionReason, raw.Reason),
	}
}

// ToDataModel renders a canonical record back to the wire shape.
func ToDataModel(r Record) *absenceDatamodel.Record {
	id := r.ID
	personnelID := r.PersonnelID
	return &absenceDatamodel.Record{
		ID:              &id,
		EmployeeID:      &personnelID,
		EmployeeName:    r.PersonnelName,
		AbsenceType:     string(r.Type),
		StartDate:       dates.Format(r.StartDate),
		EndDate:         dates.Format(r.EndDate),
		RequestDate:     dates.Format(r.RequestDate),
		Status:          string(r.Status),
		RejectionReason: r.RejectionReason,
	}
}
