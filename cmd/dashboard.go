package cmd

import (
	"context"
	"net/url"
	"os"

	"github.com/spf13/cobra"

	"github.com/kbelhadj/roster-management/internal/dashboard"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Summary tiles over both rosters",
	Run: func(cmd *cobra.Command, args []string) {
		deps := mustInitialize()
		ctx := context.Background()

		personnelStore := newPersonnelStore(deps)
		absenceStore := newAbsenceStore(deps, url.Values{})

		if err := personnelStore.Load(ctx); err != nil {
			os.Exit(1)
		}
		if err := absenceStore.Load(ctx); err != nil {
			os.Exit(1)
		}

		renderStats("Absence Status", dashboard.Aggregate(absenceStore.Records(), dashboard.AbsenceStatusGroups()))
		renderStats("Absence Type", dashboard.Aggregate(absenceStore.Records(), dashboard.AbsenceTypeGroups()))
		renderStats("Personnel Category", dashboard.Aggregate(personnelStore.Records(), dashboard.PersonnelCategoryGroups()))
	},
}
