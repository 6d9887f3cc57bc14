package personnel

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/kbelhadj/roster-management/internal"
	personnelDatamodel "github.com/kbelhadj/roster-management/internal/core/datamodel/personnel"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// FormInput is the flat form structure the screens submit. Client validation
// is presence-based only; everything else is the server's call.
type FormInput struct {
	FirstName    string `json:"first_name" validate:"required"`
	LastName     string `json:"last_name" validate:"required"`
	BirthDate    string `json:"birth_date"`
	BirthPlace   string `json:"birth_place"`
	NationalID   string `json:"national_id"`
	Nationality  string `json:"nationality"`
	Gender       string `json:"gender"`
	FamilyStatus string `json:"family_status"`
	Address      string `json:"address"`
	FatherName   string `json:"father_name"`

	Grade           string `json:"grade" validate:"required"`
	Category        string `json:"category" validate:"required"`
	SalaryIndex     int    `json:"salary_index"`
	SeniorityYears  int    `json:"seniority_years"`
	SeniorityDate   string `json:"seniority_date"`
	HireDate        string `json:"hire_date" validate:"required"`
	AppointmentDate string `json:"appointment_date"`
}

func (f FormInput) Validate() error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}
	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}
	var details []internal.ValidationError
	for _, fe := range fieldErrors {
		details = append(details, internal.ValidationError{
			Field:   fe.Field(),
			Message: fmt.Sprintf("%s is required", fe.Field()),
			Code:    string(internal.ErrCodeMissingField),
		})
	}
	return internal.NewValidationError("Validation failed", internal.ErrCodeValidationFailed).
		WithDetails(internal.ValidationErrors{Errors: details})
}

// optionalDate maps a cleared date to an explicit null on the wire rather
// than omitting the field; the update endpoint treats absence as "unchanged".
func optionalDate(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// ToPayload maps the flat form into the nested identity+employment payload
// the mutation endpoints expect.
func (f FormInput) ToPayload() *personnelDatamodel.Payload {
	return &personnelDatamodel.Payload{
		Identity: personnelDatamodel.PayloadIdentity{
			FirstName:    f.FirstName,
			LastName:     f.LastName,
			BirthDate:    optionalDate(f.BirthDate),
			BirthPlace:   f.BirthPlace,
			NationalID:   f.NationalID,
			Nationality:  f.Nationality,
			Gender:       f.Gender,
			FamilyStatus: f.FamilyStatus,
			Address:      f.Address,
			FatherName:   f.FatherName,
		},
		Employment: personnelDatamodel.PayloadEmployment{
			Grade:           f.Grade,
			Category:        f.Category,
			SalaryIndex:     f.SalaryIndex,
			SeniorityYears:  f.SeniorityYears,
			SeniorityDate:   optionalDate(f.SeniorityDate),
			HireDate:        optionalDate(f.HireDate),
			AppointmentDate: optionalDate(f.AppointmentDate),
		},
	}
}

// IdentityRef carries the nested identity id some update forms still use.
type IdentityRef struct {
	ID *int64 `json:"id,omitempty"`
}

// UpdateFormInput is the update variant of the form: the target id can
// arrive in three places depending on which screen produced the form.
type UpdateFormInput struct {
	FormInput

	ID       *int64       `json:"id,omitempty"`
	PK       *int64       `json:"pk,omitempty"`
	Identity *IdentityRef `json:"identity,omitempty"`
}

// ResolveID walks the id fallback chain: explicit id, alternate id, nested
// identity id. It fails fast when none resolve.
func (f UpdateFormInput) ResolveID() (int64, error) {
	switch {
	case f.ID != nil && *f.ID != 0:
		return *f.ID, nil
	case f.PK != nil && *f.PK != 0:
		return *f.PK, nil
	case f.Identity != nil && f.Identity.ID != nil && *f.Identity.ID != 0:
		return *f.Identity.ID, nil
	}
	return 0, internal.ErrUnresolvableID
}
