// Package export renders roster views to XLSX workbooks for the
// administrative reports the dashboards traditionally offer.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/kbelhadj/roster-management/internal/absence"
	dates "github.com/kbelhadj/roster-management/internal/core/common/dates"
	"github.com/kbelhadj/roster-management/internal/personnel"
)

var personnelHeaders = []interface{}{
	"ID", "Full Name", "National ID", "Birth Date", "Birth Place", "Gender",
	"Family Status", "Grade", "Category", "Salary Index", "Seniority (years)",
	"Hire Date", "Appointment Date",
}

var absenceHeaders = []interface{}{
	"ID", "Personnel", "Type", "Start Date", "End Date", "Days",
	"Request Date", "Status", "Rejection Reason",
}

func personnelRow(r personnel.Record) []interface{} {
	return []interface{}{
		r.ID, r.Name, r.Identity.NationalID, dates.Format(r.Identity.BirthDate),
		r.Identity.BirthPlace, r.Identity.Gender, r.Identity.FamilyStatus,
		r.Employment.Grade, string(r.Employment.Category), r.Employment.SalaryIndex,
		r.Employment.SeniorityYears, dates.Format(r.Employment.HireDate),
		dates.Format(r.Employment.AppointmentDate),
	}
}

func absenceRow(r absence.Record) []interface{} {
	return []interface{}{
		r.ID, r.PersonnelName, string(r.Type), dates.Format(r.StartDate),
		dates.Format(r.EndDate), r.DurationDays(), dates.Format(r.RequestDate),
		string(r.Status), r.RejectionReason,
	}
}

func newWorkbook(sheet string, headers []interface{}) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, err
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	lastColumn, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(sheet, "A1", lastColumn, style); err != nil {
		return nil, err
	}
	return f, nil
}

// PersonnelWorkbook renders a personnel view, one row per record in view
// order.
func PersonnelWorkbook(view []personnel.Record) (*excelize.File, error) {
	const sheet = "Personnel"
	f, err := newWorkbook(sheet, personnelHeaders)
	if err != nil {
		return nil, fmt.Errorf("building personnel workbook: %w", err)
	}
	for i, record := range view {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := personnelRow(record)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("writing personnel row %d: %w", i, err)
		}
	}
	_ = f.SetColWidth(sheet, "B", "B", 28)
	_ = f.SetColWidth(sheet, "C", "C", 22)
	_ = f.SetColWidth(sheet, "H", "I", 18)
	return f, nil
}

// AbsenceWorkbook renders an absence view, one row per record in view order.
func AbsenceWorkbook(view []absence.Record) (*excelize.File, error) {
	const sheet = "Absences"
	f, err := newWorkbook(sheet, absenceHeaders)
	if err != nil {
		return nil, fmt.Errorf("building absence workbook: %w", err)
	}
	for i, record := range view {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := absenceRow(record)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("writing absence row %d: %w", i, err)
		}
	}
	_ = f.SetColWidth(sheet, "B", "B", 28)
	_ = f.SetColWidth(sheet, "I", "I", 40)
	return f, nil
}
