package cmd

import (
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/kbelhadj/roster-management/internal/absence"
	dates "github.com/kbelhadj/roster-management/internal/core/common/dates"
	"github.com/kbelhadj/roster-management/internal/dashboard"
	"github.com/kbelhadj/roster-management/internal/personnel"
)

func newTable(headers []string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(headers)
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	return table
}

func renderPersonnel(view []personnel.Record) {
	table := newTable([]string{"ID", "Name", "National ID", "Grade", "Category", "Index", "Hire Date"})
	for _, r := range view {
		table.Append([]string{
			strconv.FormatInt(r.ID, 10),
			r.Name,
			r.Identity.NationalID,
			r.Employment.Grade,
			string(r.Employment.Category),
			strconv.Itoa(r.Employment.SalaryIndex),
			dates.Format(r.Employment.HireDate),
		})
	}
	table.Render()
}

func renderAbsences(view []absence.Record) {
	table := newTable([]string{"ID", "Personnel", "Type", "Start", "End", "Days", "Status", "Reason"})
	for _, r := range view {
		table.Append([]string{
			strconv.FormatInt(r.ID, 10),
			r.PersonnelName,
			string(r.Type),
			dates.Format(r.StartDate),
			dates.Format(r.EndDate),
			strconv.Itoa(r.DurationDays()),
			string(r.Status),
			r.RejectionReason,
		})
	}
	table.Render()
}

func renderStats(title string, stats []dashboard.GroupStat) {
	table := newTable([]string{title, "Count", "Share"})
	for _, s := range stats {
		table.Append([]string{
			s.Name,
			strconv.Itoa(s.Count),
			strconv.FormatFloat(s.Percentage, 'f', 1, 64) + "%",
		})
	}
	table.Render()
}
