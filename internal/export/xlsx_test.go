package export_test

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kbelhadj/roster-management/internal/absence"
	"github.com/kbelhadj/roster-management/internal/export"
	"github.com/kbelhadj/roster-management/internal/personnel"
)

func TestExport(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Export Suite")
}

var _ = Describe("PersonnelWorkbook", func() {
	It("should write one row per record under the header", func() {
		view := []personnel.Record{
			{
				ID:   1,
				Name: "Amina Cherif",
				Employment: personnel.Employment{
					Grade:    "A2",
					Category: personnel.CategoryProfessor,
				},
			},
			{ID: 2, Name: "Karim Boudali"},
		}

		f, err := export.PersonnelWorkbook(view)

		Expect(err).ToNot(HaveOccurred())
		defer f.Close()

		rows, err := f.GetRows("Personnel")
		Expect(err).ToNot(HaveOccurred())
		Expect(rows).To(HaveLen(3))
		Expect(rows[0][1]).To(Equal("Full Name"))
		Expect(rows[1][1]).To(Equal("Amina Cherif"))
		Expect(rows[1][8]).To(Equal("PROFESSOR"))
		Expect(rows[2][1]).To(Equal("Karim Boudali"))
	})

	It("should produce a header-only sheet for an empty view", func() {
		f, err := export.PersonnelWorkbook(nil)

		Expect(err).ToNot(HaveOccurred())
		defer f.Close()

		rows, err := f.GetRows("Personnel")
		Expect(err).ToNot(HaveOccurred())
		Expect(rows).To(HaveLen(1))
	})
})

var _ = Describe("AbsenceWorkbook", func() {
	It("should render wire dates and the derived duration", func() {
		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
		view := []absence.Record{
			{
				ID:            1,
				PersonnelName: "Amina Cherif",
				Type:          absence.TypeAnnual,
				StartDate:     start,
				EndDate:       end,
				Status:        absence.StatusPending,
			},
		}

		f, err := export.AbsenceWorkbook(view)

		Expect(err).ToNot(HaveOccurred())
		defer f.Close()

		rows, err := f.GetRows("Absences")
		Expect(err).ToNot(HaveOccurred())
		Expect(rows).To(HaveLen(2))
		Expect(rows[1][1]).To(Equal("Amina Cherif"))
		Expect(rows[1][3]).To(Equal("2024-01-01"))
		Expect(rows[1][5]).To(Equal("5"))
		Expect(rows[1][7]).To(Equal("PENDING"))
	})
})
