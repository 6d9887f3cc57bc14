package personnel_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kbelhadj/roster-management/internal"
	"github.com/kbelhadj/roster-management/internal/personnel"
)

func validForm() personnel.FormInput {
	return personnel.FormInput{
		FirstName: "Karim",
		LastName:  "Amrani",
		Grade:     "MCA",
		Category:  "PROFESSOR",
		HireDate:  "2010-09-01",
	}
}

var _ = Describe("FormInput", func() {
	Describe("Validate", func() {
		It("should accept a form with all required fields", func() {
			Expect(validForm().Validate()).To(Succeed())
		})

		It("should report every missing required field by its wire name", func() {
			err := personnel.FormInput{}.Validate()

			Expect(err).To(HaveOccurred())
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))

			details, ok := appErr.Details.(internal.ValidationErrors)
			Expect(ok).To(BeTrue())

			fields := make([]string, 0, len(details.Errors))
			for _, fieldErr := range details.Errors {
				fields = append(fields, fieldErr.Field)
				Expect(fieldErr.Message).To(HaveSuffix("is required"))
			}
			Expect(fields).To(ConsistOf("first_name", "last_name", "grade", "category", "hire_date"))
		})

		It("should not require the optional fields", func() {
			form := validForm()
			form.BirthDate = ""
			form.NationalID = ""
			form.SeniorityYears = 0

			Expect(form.Validate()).To(Succeed())
		})
	})

	Describe("ToPayload", func() {
		It("should nest the flat form into identity and employment", func() {
			form := validForm()
			form.NationalID = "123456789012345678"
			form.SalaryIndex = 650

			payload := form.ToPayload()

			Expect(payload.Identity.FirstName).To(Equal("Karim"))
			Expect(payload.Identity.NationalID).To(Equal("123456789012345678"))
			Expect(payload.Employment.Grade).To(Equal("MCA"))
			Expect(payload.Employment.SalaryIndex).To(Equal(650))
		})

		It("should send cleared optional dates as explicit null", func() {
			form := validForm()
			form.BirthDate = ""
			form.SeniorityDate = "   "

			payload := form.ToPayload()

			Expect(payload.Identity.BirthDate).To(BeNil())
			Expect(payload.Employment.SeniorityDate).To(BeNil())
			Expect(payload.Employment.HireDate).ToNot(BeNil())
			Expect(*payload.Employment.HireDate).To(Equal("2010-09-01"))
		})
	})
})

var _ = Describe("UpdateFormInput", func() {
	Describe("ResolveID", func() {
		It("should prefer the explicit id", func() {
			form := personnel.UpdateFormInput{
				ID:       int64Ptr(5),
				PK:       int64Ptr(6),
				Identity: &personnel.IdentityRef{ID: int64Ptr(7)},
			}

			id, err := form.ResolveID()

			Expect(err).ToNot(HaveOccurred())
			Expect(id).To(Equal(int64(5)))
		})

		It("should fall back to the alternate id", func() {
			form := personnel.UpdateFormInput{PK: int64Ptr(6)}

			id, err := form.ResolveID()

			Expect(err).ToNot(HaveOccurred())
			Expect(id).To(Equal(int64(6)))
		})

		It("should fall back to the nested identity id", func() {
			form := personnel.UpdateFormInput{
				Identity: &personnel.IdentityRef{ID: int64Ptr(7)},
			}

			id, err := form.ResolveID()

			Expect(err).ToNot(HaveOccurred())
			Expect(id).To(Equal(int64(7)))
		})

		It("should skip zero-valued ids in the chain", func() {
			form := personnel.UpdateFormInput{
				ID: int64Ptr(0),
				PK: int64Ptr(6),
			}

			id, err := form.ResolveID()

			Expect(err).ToNot(HaveOccurred())
			Expect(id).To(Equal(int64(6)))
		})

		It("should fail when no position carries an id", func() {
			_, err := personnel.UpdateFormInput{}.ResolveID()

			Expect(err).To(Equal(internal.ErrUnresolvableID))
		})
	})
})
