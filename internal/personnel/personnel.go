package personnel

import (
	"strings"
	"time"

	"github.com/kbelhadj/roster-management/internal"
	dates "github.com/kbelhadj/roster-management/internal/core/common/dates"
	personnelDatamodel "github.com/kbelhadj/roster-management/internal/core/datamodel/personnel"
)

// Category is the position category of a personnel record.
type Category string

const (
	CategoryProfessor     Category = "PROFESSOR"
	CategoryAdministrator Category = "ADMINISTRATOR"
	CategoryPAT           Category = "PAT"
	CategoryContractor    Category = "CONTRACTOR"
	CategoryUnknown       Category = "UNKNOWN"
)

func ParseCategory(s string) Category {
	switch Category(strings.ToUpper(strings.TrimSpace(s))) {
	case CategoryProfessor:
		return CategoryProfessor
	case CategoryAdministrator:
		return CategoryAdministrator
	case CategoryPAT:
		return CategoryPAT
	case CategoryContractor:
		return CategoryContractor
	default:
		return CategoryUnknown
	}
}

// NationalIDLength is the fixed length of the national identity number.
const NationalIDLength = 18

type Identity struct {
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	BirthDate    time.Time `json:"birth_date"`
	BirthPlace   string    `json:"birth_place"`
	NationalID   string    `json:"national_id"`
	Nationality  string    `json:"nationality"`
	Gender       string    `json:"gender"`
	FamilyStatus string    `json:"family_status"`
	Address      string    `json:"address"`
	FatherName   string    `json:"father_name"`
}

type Employment struct {
	Grade           string    `json:"grade"`
	Category        Category  `json:"category"`
	SalaryIndex     int       `json:"salary_index"`
	SeniorityYears  int       `json:"seniority_years"`
	SeniorityDate   time.Time `json:"seniority_date"`
	HireDate        time.Time `json:"hire_date"`
	AppointmentDate time.Time `json:"appointment_date"`
}

// Record is the canonical personnel record. Identity and employment are a
// fixed one-to-one pair; a record never carries one without the other.
type Record struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	Identity   Identity   `json:"identity"`
	Employment Employment `json:"employment"`
}

func (r Record) RecordID() int64     { return r.ID }
func (r Record) DisplayName() string { return r.Name }

// StatusKey is empty: personnel records carry no workflow status, so the
// status filter never excludes them.
func (r Record) StatusKey() string   { return "" }
func (r Record) CategoryKey() string { return string(r.Employment.Category) }

// NationalIDValid reports whether the national identity number, where
// present, is the fixed-length numeric string the registry requires.
func (i Identity) NationalIDValid() bool {
	if i.NationalID == "" {
		return true
	}
	if len(i.NationalID) != NationalIDLength {
		return false
	}
	for _, c := range i.NationalID {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Validate reports data problems the normalizer deliberately does not fix.
func (r Record) Validate() error {
	if !r.Identity.NationalIDValid() {
		return internal.NewValidationFieldError("national_id",
			"national identity number must be an 18-digit numeric string",
			internal.ErrCodeValidationFailed)
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

func firstInt(values ...int) int {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}

// Normalize reconciles one wire record into the canonical shape. It is total:
// every field falls back through denormalized, nested, legacy-flat accessors
// to a typed default, in that order, and it never fails. Normalizing the
// result of ToDataModel yields the same canonical record.
func Normalize(raw *personnelDatamodel.Record) Record {
	if raw == nil {
		raw = &personnelDatamodel.Record{}
	}

	identity := raw.Identity
	if identity == nil {
		identity = &personnelDatamodel.Identity{}
	}
	employment := raw.Employment
	if employment == nil {
		employment = &personnelDatamodel.Employment{}
	}

	var id int64
	switch {
	case raw.ID != nil:
		id = *raw.ID
	case raw.PK != nil:
		id = *raw.PK
	case identity.ID != nil:
		id = *identity.ID
	}

	firstName := first(identity.FirstName, raw.FirstName)
	lastName := first(identity.LastName, raw.LastName)

	name := strings.TrimSpace(raw.FullName)
	if name == "" {
		name = strings.TrimSpace(strings.TrimSpace(firstName) + " " + strings.TrimSpace(lastName))
	}

	return Record{
		ID:   id,
		Name: name,
		Identity: Identity{
			FirstName:    firstName,
			LastName:     lastName,
			BirthDate:    dates.Parse(first(identity.BirthDate, raw.BirthDate)),
			BirthPlace:   first(identity.BirthPlace, raw.BirthPlace),
			NationalID:   first(identity.NationalID, raw.NationalID),
			Nationality:  first(identity.Nationality, raw.Nationality),
			Gender:       first(identity.Gender, raw.Gender),
			FamilyStatus: first(identity.FamilyStatus, raw.FamilyStatus),
			Address:      first(identity.Address, raw.Address),
			FatherName:   first(identity.FatherName, raw.FatherName),
		},
		Employment: Employment{
			Grade:           first(employment.Grade, raw.Grade),
			Category:        ParseCategory(first(employment.Category, raw.Category)),
			SalaryIndex:     firstInt(employment.SalaryIndex, raw.SalaryIndex),
			SeniorityYears:  firstInt(employment.SeniorityYears, raw.SeniorityYears),
			SeniorityDate:   dates.Parse(first(employment.SeniorityDate, raw.SeniorityDate)),
			HireDate:        dates.Parse(first(employment.HireDate, raw.HireDate)),
			AppointmentDate: dates.Parse(first(employment.AppointmentDate, raw.AppointmentDate)),
		},
	}
}

// ToDataModel renders a canonical record back to the wire shape, with the
// denormalized and nested fields populated and no legacy flats.
func ToDataModel(r Record) *personnelDatamodel.Record {
	id := r.ID
	return &personnelDatamodel.Record{
		ID:       &id,
		FullName: r.Name,
		Identity: &personnelDatamodel.Identity{
			FirstName:    r.Identity.FirstName,
			LastName:     r.Identity.LastName,
			BirthDate:    dates.Format(r.Identity.BirthDate),
			BirthPlace:   r.Identity.BirthPlace,
			NationalID:   r.Identity.NationalID,
			Nationality:  r.Identity.Nationality,
			Gender:       r.Identity.Gender,
			FamilyStatus: r.Identity.FamilyStatus,
			Address:      r.Identity.Address,
			FatherName:   r.Identity.FatherName,
		},
		Employment: &personnelDatamodel.Employment{
			Grade:           r.Employment.Grade,
			Category:        string(r.Employment.Category),
			SalaryIndex:     r.Employment.SalaryIndex,
			SeniorityYears:  r.Employment.SeniorityYears,
			SeniorityDate:   dates.Format(r.Employment.SeniorityDate),
			HireDate:        dates.Format(r.Employment.HireDate),
			AppointmentDate: dates.Format(r.Employment.AppointmentDate),
		},
	}
}
