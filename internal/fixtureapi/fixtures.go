package fixtureapi

import (
	absenceDatamodel "github.com/kbelhadj/roster-management/internal/core/datamodel/absence"
	personnelDatamodel "github.com/kbelhadj/roster-management/internal/core/datamodel/personnel"
)

func ptr[T any](v T) *T { return &v }

// SeedDefaults loads a small roster that exercises every payload shape the
// normalizer handles: denormalized, nested, and legacy flattened records.
func (s *Server) SeedDefaults() {
	s.SeedPersonnel(
		personnelDatamodel.Record{
			ID:       ptr(int64(1)),
			FullName: "Amina Cherif",
			Identity: &personnelDatamodel.Identity{
				FirstName:    "Amina",
				LastName:     "Cherif",
				BirthDate:    "1985-04-12",
				BirthPlace:   "Oran",
				NationalID:   "198504120000000001",
				Nationality:  "DZ",
				Gender:       "F",
				FamilyStatus: "MARRIED",
				FatherName:   "Mohamed",
			},
			Employment: &personnelDatamodel.Employment{
				Grade:          "A2",
				Category:       "PROFESSOR",
				SalaryIndex:    620,
				SeniorityYears: 12,
				HireDate:       "2012-09-01",
			},
		},
		// Legacy flattened shape, no nested sub-objects.
		personnelDatamodel.Record{
			PK:          ptr(int64(2)),
			FirstName:   "Karim",
			LastName:    "Boudali",
			BirthDate:   "1990-11-03",
			NationalID:  "199011030000000002",
			Grade:       "B1",
			Category:    "PAT",
			SalaryIndex: 410,
			HireDate:    "2018-02-15",
		},
		personnelDatamodel.Record{
			ID:       ptr(int64(3)),
			FullName: "Leila Hamdi",
			Identity: &personnelDatamodel.Identity{
				FirstName: "Leila",
				LastName:  "Hamdi",
			},
			Employment: &personnelDatamodel.Employment{
				Grade:    "C3",
				Category: "ADMINISTRATOR",
				HireDate: "2020-10-05",
			},
		},
	)

	s.SeedAbsences(
		absenceDatamodel.Record{
			ID:           ptr(int64(1)),
			EmployeeID:   ptr(int64(1)),
			EmployeeName: "Amina Cherif",
			AbsenceType:  "ANNUAL",
			StartDate:    "2024-01-01",
			EndDate:      "2024-01-05",
			RequestDate:  "2023-12-20",
			Status:       "PENDING",
		},
		absenceDatamodel.Record{
			ID: ptr(int64(2)),
			Employee: &absenceDatamodel.Employee{
				ID:       ptr(int64(2)),
				FullName: "Karim Boudali",
			},
			AbsenceType: "SICK",
			StartDate:   "2024-02-10",
			EndDate:     "2024-02-12",
			RequestDate: "2024-02-10",
			Status:      "APPROVED",
		},
		absenceDatamodel.Record{
			ID:           ptr(int64(3)),
			EmployeeID:   ptr(int64(3)),
			EmployeeName: "Leila Hamdi",
			Type:         "EXCEPTIONAL",
			StartDate:    "2024-01-10",
			EndDate:      "2024-01-11",
			RequestDate:  "2024-01-08",
			Status:       "PENDING",
		},
	)
}
