package cmd

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/kbelhadj/roster-management/internal/absence"
	"github.com/kbelhadj/roster-management/internal/export"
	"github.com/kbelhadj/roster-management/internal/personnel"
	"github.com/kbelhadj/roster-management/internal/roster"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a roster view to XLSX",
}

var exportOut string

var exportPersonnelCmd = &cobra.Command{
	Use:   "personnel",
	Short: "Export the personnel roster",
	Run: func(cmd *cobra.Command, args []string) {
		deps := mustInitialize()
		ctx := context.Background()

		store := newPersonnelStore(deps)
		if err := store.Load(ctx); err != nil {
			os.Exit(1)
		}

		cmp, _ := personnel.ComparatorFor(personnel.SortByName, false)
		view := store.View(roster.Filters{}, cmp)

		workbook, err := export.PersonnelWorkbook(view)
		if err != nil {
			deps.Notifier.Error(err.Error())
			os.Exit(1)
		}
		writeWorkbook(deps, workbook, "personnel")
	},
}

var exportAbsencesCmd = &cobra.Command{
	Use:   "absences",
	Short: "Export the absence roster",
	Run: func(cmd *cobra.Command, args []string) {
		deps := mustInitialize()
		ctx := context.Background()

		store := newAbsenceStore(deps, url.Values{})
		if err := store.Load(ctx); err != nil {
			os.Exit(1)
		}

		cmp, _ := absence.ComparatorFor(absence.SortByStartDate, false)
		view := store.View(roster.Filters{}, cmp)

		workbook, err := export.AbsenceWorkbook(view)
		if err != nil {
			deps.Notifier.Error(err.Error())
			os.Exit(1)
		}
		writeWorkbook(deps, workbook, "absences")
	},
}

func writeWorkbook(deps *Dependencies, workbook *excelize.File, name string) {
	path := exportOut
	if path == "" {
		filename := name + "_" + time.Now().Format("2006-01-02") + ".xlsx"
		path = filepath.Join(deps.Config.Export.OutputDir, filename)
	}
	if err := workbook.SaveAs(path); err != nil {
		deps.Notifier.Error(err.Error())
		os.Exit(1)
	}
	deps.Notifier.Info("exported to " + path)
}

func init() {
	exportCmd.PersistentFlags().StringVar(&exportOut, "out", "", "Output file path")
	exportCmd.AddCommand(exportPersonnelCmd)
	exportCmd.AddCommand(exportAbsencesCmd)
}
