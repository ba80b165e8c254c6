package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/pawmart/pawmart/pkg/dashboard"
	domain "github.com/pawmart/pawmart/pkg/types"
)

func dashboardCmd() *cobra.Command {
	var months int

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Summarise your listings and orders",
		Example: `  pawmart dashboard
  pawmart dashboard --months 12 --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			sess, err := a.state.RequireUser()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			email := sess.Profile.Email

			listings, err := a.readListings(ctx, "your listings", func(ctx context.Context) ([]domain.Listing, error) {
				return a.api.ListMyListings(ctx, email)
			})
			if err != nil {
				return err
			}
			orders := a.readOrders(ctx, email)

			summary := dashboard.Summarize(listings, orders, time.Now(), months)

			if jsonOutput() {
				return outputJSON(summary)
			}
			return printDashboard(cmd.OutOrStdout(), a.styles, &summary)
		},
	}
	cmd.Flags().IntVar(&months, "months", dashboard.DefaultMonths, "months in the activity chart")

	return cmd
}
