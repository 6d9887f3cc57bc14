package cmd

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kbelhadj/roster-management/internal/absence"
	"github.com/kbelhadj/roster-management/internal/roster"
)

var absenceCmd = &cobra.Command{
	Use:   "absence",
	Short: "Absence request screens",
}

var (
	absenceStatus   string
	absenceType     string
	absenceSearch   string
	absenceSortKey  string
	absenceSortDesc bool
	approveComment  string
)

var absenceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List absence requests",
	Run: func(cmd *cobra.Command, args []string) {
		deps := mustInitialize()
		ctx := context.Background()

		// Pass the status through for server-side filtering too; the
		// pipeline filters identically either way.
		query := url.Values{}
		if absenceStatus != "" {
			query.Set("status", absenceStatus)
		}

		store := newAbsenceStore(deps, query)
		if err := store.Load(ctx); err != nil {
			os.Exit(1)
		}

		cmp, err := absence.ComparatorFor(absenceSortKey, absenceSortDesc)
		if err != nil {
			deps.Notifier.Error(err.Error())
			os.Exit(1)
		}
		view := store.View(roster.Filters{
			Status:   absenceStatus,
			Category: absenceType,
			Search:   absenceSearch,
		}, cmp)
		renderAbsences(view)
	},
}

var absenceApproveCmd = &cobra.Command{
	Use:   "approve <id>",
	Short: "Approve a pending absence request",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deps := mustInitialize()
		ctx := context.Background()

		id, err := parseID(args[0])
		if err != nil {
			deps.Notifier.Error(err.Error())
			os.Exit(1)
		}

		store := newAbsenceStore(deps, url.Values{})
		if err := store.Load(ctx); err != nil {
			os.Exit(1)
		}

		service := absence.NewService(deps.Client, store, deps.Notifier, deps.Confirmer, deps.Bus, deps.Logger)
		if err := service.Approve(ctx, id, approveComment); err != nil {
			os.Exit(1)
		}
	},
}

var absenceRejectCmd = &cobra.Command{
	Use:   "reject <id>",
	Short: "Reject a pending absence request",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deps := mustInitialize()
		ctx := context.Background()

		id, err := parseID(args[0])
		if err != nil {
			deps.Notifier.Error(err.Error())
			os.Exit(1)
		}

		store := newAbsenceStore(deps, url.Values{})
		if err := store.Load(ctx); err != nil {
			os.Exit(1)
		}

		service := absence.NewService(deps.Client, store, deps.Notifier, deps.Confirmer, deps.Bus, deps.Logger)
		if err := service.Reject(ctx, id); err != nil {
			os.Exit(1)
		}
	},
}

func newAbsenceStore(deps *Dependencies, query url.Values) *roster.Store[absence.Record] {
	fetcher := absence.NewFetcher(deps.Client, query, deps.Logger)
	return roster.NewStore("absences", fetcher, deps.Bus, deps.Logger)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

func init() {
	absenceListCmd.Flags().StringVar(&absenceStatus, "status", "", "Filter by status")
	absenceListCmd.Flags().StringVar(&absenceType, "type", "", "Filter by absence type")
	absenceListCmd.Flags().StringVar(&absenceSearch, "search", "", "Filter by personnel name substring")
	absenceListCmd.Flags().StringVar(&absenceSortKey, "sort", absence.SortByStartDate, "Sort key")
	absenceListCmd.Flags().BoolVar(&absenceSortDesc, "desc", false, "Sort descending")

	absenceApproveCmd.Flags().StringVar(&approveComment, "comment", "", "Audit comment")

	absenceCmd.AddCommand(absenceListCmd)
	absenceCmd.AddCommand(absenceApproveCmd)
	absenceCmd.AddCommand(absenceRejectCmd)
}
