package cmd

import (
	"context"
	"net/url"
	"os"

	"github.com/spf13/cobra"

	"github.com/kbelhadj/roster-management/internal/personnel"
	"github.com/kbelhadj/roster-management/internal/roster"
)

var personnelCmd = &cobra.Command{
	Use:   "personnel",
	Short: "Personnel roster screens",
}

var (
	personnelCategory string
	personnelSearch   string
	personnelSortKey  string
	personnelSortDesc bool
)

var personnelListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the personnel roster",
	Run: func(cmd *cobra.Command, args []string) {
		deps := mustInitialize()
		ctx := context.Background()

		store := newPersonnelStore(deps)
		if err := store.Load(ctx); err != nil {
			os.Exit(1)
		}

		cmp, err := personnel.ComparatorFor(personnelSortKey, personnelSortDesc)
		if err != nil {
			deps.Notifier.Error(err.Error())
			os.Exit(1)
		}
		view := store.View(roster.Filters{
			Category: personnelCategory,
			Search:   personnelSearch,
		}, cmp)
		renderPersonnel(view)
	},
}

var createForm personnel.FormInput

var personnelCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a personnel record",
	Run: func(cmd *cobra.Command, args []string) {
		deps := mustInitialize()
		ctx := context.Background()

		store := newPersonnelStore(deps)
		service := personnel.NewService(deps.Client, store, deps.Notifier, deps.Confirmer, deps.Bus, deps.Logger)
		if err := service.Create(ctx, createForm, nil); err != nil {
			os.Exit(1)
		}
	},
}

var (
	updateID   int64
	updateForm personnel.FormInput
)

var personnelUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Replace a personnel record",
	Run: func(cmd *cobra.Command, args []string) {
		deps := mustInitialize()
		ctx := context.Background()

		store := newPersonnelStore(deps)
		service := personnel.NewService(deps.Client, store, deps.Notifier, deps.Confirmer, deps.Bus, deps.Logger)

		form := personnel.UpdateFormInput{FormInput: updateForm}
		if updateID != 0 {
			form.ID = &updateID
		}
		if err := service.Update(ctx, form, nil); err != nil {
			os.Exit(1)
		}
	},
}

var personnelDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Permanently delete a personnel record",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deps := mustInitialize()
		ctx := context.Background()

		id, err := parseID(args[0])
		if err != nil {
			deps.Notifier.Error(err.Error())
			os.Exit(1)
		}

		store := newPersonnelStore(deps)
		service := personnel.NewService(deps.Client, store, deps.Notifier, deps.Confirmer, deps.Bus, deps.Logger)
		if err := service.Delete(ctx, id); err != nil {
			os.Exit(1)
		}
	},
}

func newPersonnelStore(deps *Dependencies) *roster.Store[personnel.Record] {
	fetcher := personnel.NewFetcher(deps.Client, url.Values{}, deps.Logger)
	return roster.NewStore("personnel", fetcher, deps.Bus, deps.Logger)
}

func registerFormFlags(cmd *cobra.Command, form *personnel.FormInput) {
	cmd.Flags().StringVar(&form.FirstName, "first-name", "", "Given name")
	cmd.Flags().StringVar(&form.LastName, "last-name", "", "Family name")
	cmd.Flags().StringVar(&form.BirthDate, "birth-date", "", "Birth date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&form.BirthPlace, "birth-place", "", "Birth place")
	cmd.Flags().StringVar(&form.NationalID, "national-id", "", "National identity number")
	cmd.Flags().StringVar(&form.Nationality, "nationality", "", "Nationality")
	cmd.Flags().StringVar(&form.Gender, "gender", "", "Gender")
	cmd.Flags().StringVar(&form.FamilyStatus, "family-status", "", "Family status")
	cmd.Flags().StringVar(&form.Address, "address", "", "Address")
	cmd.Flags().StringVar(&form.FatherName, "father-name", "", "Father's name")
	cmd.Flags().StringVar(&form.Grade, "grade", "", "Grade")
	cmd.Flags().StringVar(&form.Category, "category", "", "Position category")
	cmd.Flags().IntVar(&form.SalaryIndex, "salary-index", 0, "Salary index")
	cmd.Flags().IntVar(&form.SeniorityYears, "seniority-years", 0, "Seniority in years")
	cmd.Flags().StringVar(&form.SeniorityDate, "seniority-date", "", "Seniority date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&form.HireDate, "hire-date", "", "Hire date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&form.AppointmentDate, "appointment-date", "", "Appointment date (YYYY-MM-DD)")
}

func init() {
	personnelListCmd.Flags().StringVar(&personnelCategory, "category", "", "Filter by position category")
	personnelListCmd.Flags().StringVar(&personnelSearch, "search", "", "Filter by name substring")
	personnelListCmd.Flags().StringVar(&personnelSortKey, "sort", personnel.SortByName, "Sort key")
	personnelListCmd.Flags().BoolVar(&personnelSortDesc, "desc", false, "Sort descending")

	registerFormFlags(personnelCreateCmd, &createForm)
	registerFormFlags(personnelUpdateCmd, &updateForm)
	personnelUpdateCmd.Flags().Int64Var(&updateID, "id", 0, "Target record id")

	personnelCmd.AddCommand(personnelListCmd)
	personnelCmd.AddCommand(personnelCreateCmd)
	personnelCmd.AddCommand(personnelUpdateCmd)
	personnelCmd.AddCommand(personnelDeleteCmd)
}
