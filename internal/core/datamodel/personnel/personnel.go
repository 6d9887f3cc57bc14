// Package personnel holds the wire shapes the roster service returns for
// personnel profiles. The service has gone through several payload revisions,
// so every field exists in up to three places: a denormalized convenience
// field, a nested sub-object, and a legacy flattened top-level field. All of
// them are optional; reconciliation happens in the normalizer, never here.
package personnel

// Identity is the nested identity sub-object.
type Identity struct {
	ID           *int64 `json:"id,omitempty"`
	FirstName    string `json:"first_name,omitempty"`
	LastName     string `json:"last_name,omitempty"`
	BirthDate    string `json:"birth_date,omitempty"`
	BirthPlace   string `json:"birth_place,omitempty"`
	NationalID   string `json:"national_id,omitempty"`
	Nationality  string `json:"nationality,omitempty"`
	Gender       string `json:"gender,omitempty"`
	FamilyStatus string `json:"family_status,omitempty"`
	Address      string `json:"address,omitempty"`
	FatherName   string `json:"father_name,omitempty"`
}

// Employment is the nested employment sub-object.
type Employment struct {
	Grade           string `json:"grade,omitempty"`
	Category        string `json:"category,omitempty"`
	SalaryIndex     int    `json:"salary_index,omitempty"`
	SeniorityYears  int    `json:"seniority_years,omitempty"`
	SeniorityDate   string `json:"seniority_date,omitempty"`
	HireDate        string `json:"hire_date,omitempty"`
	AppointmentDate string `json:"appointment_date,omitempty"`
}

// Record is one personnel element as it appears in list and detail payloads.
type Record struct {
	ID *int64 `json:"id,omitempty"`
	PK *int64 `json:"pk,omitempty"`

	// Denormalized convenience field, present on newer payloads.
	FullName string `json:"full_name,omitempty"`

	Identity   *Identity   `json:"identity,omitempty"`
	Employment *Employment `json:"employment,omitempty"`

	// Legacy flattened fields, still emitted by older endpoints.
	FirstName       string `json:"first_name,omitempty"`
	LastName        string `json:"last_name,omitempty"`
	BirthDate       string `json:"birth_date,omitempty"`
	BirthPlace      string `json:"birth_place,omitempty"`
	NationalID      string `json:"national_id,omitempty"`
	Nationality     string `json:"nationality,omitempty"`
	Gender          string `json:"gender,omitempty"`
	FamilyStatus    string `json:"family_status,omitempty"`
	Address         string `json:"address,omitempty"`
	FatherName      string `json:"father_name,omitempty"`
	Grade           string `json:"grade,omitempty"`
	Category        string `json:"category,omitempty"`
	SalaryIndex     int    `json:"salary_index,omitempty"`
	SeniorityYears  int    `json:"seniority_years,omitempty"`
	SeniorityDate   string `json:"seniority_date,omitempty"`
	HireDate        string `json:"hire_date,omitempty"`
	AppointmentDate string `json:"appointment_date,omitempty"`
}

// Payload is the nested identity+employment shape the mutation endpoints
// expect. Optional date fields are pointers so a cleared date is sent as an
// explicit null rather than omitted.
type Payload struct {
	Identity   PayloadIdentity   `json:"identity"`
	Employment PayloadEmployment `json:"employment"`
}

type PayloadIdentity struct {
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	BirthDate    *string `json:"birth_date"`
	BirthPlace   string  `json:"birth_place"`
	NationalID   string  `json:"national_id"`
	Nationality  string  `json:"nationality"`
	Gender       string  `json:"gender"`
	FamilyStatus string  `json:"family_status"`
	Address      string  `json:"address"`
	FatherName   string  `json:"father_name"`
}

type PayloadEmployment struct {
	Grade           string  `json:"grade"`
	Category        string  `json:"category"`
	SalaryIndex     int     `json:"salary_index"`
	SeniorityYears  int     `json:"seniority_years"`
	SeniorityDate   *string `json:"seniority_date"`
	HireDate        *string `json:"hire_date"`
	AppointmentDate *string `json:"appointment_date"`
}
