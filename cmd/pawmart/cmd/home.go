package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	apiclient "github.com/pawmart/pawmart/internal/api/client"
	"github.com/pawmart/pawmart/pkg/catalog"
	"github.com/pawmart/pawmart/pkg/dashboard"
	domain "github.com/pawmart/pawmart/pkg/types"
)

func homeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "home",
		Short: "Show recently added listings and categories",
		Example: `  pawmart home
  pawmart home --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			recent, err := a.readListings(ctx, "recent listings", func(ctx context.Context) ([]domain.Listing, error) {
				return a.api.ListRecentListings(ctx, a.cfg.Catalog.RecentLimit)
			})
			if err != nil {
				return err
			}
			all, err := a.readListings(ctx, "categories", func(ctx context.Context) ([]domain.Listing, error) {
				return a.api.ListListings(ctx, nil)
			})
			if err != nil {
				return err
			}
			counts := dashboard.CountByCategory(all)

			if jsonOutput() {
				return outputJSON(struct {
					Recent     []domain.Listing          `json:"recent"`
					Categories []dashboard.CategoryCount `json:"categories"`
				}{recent, counts})
			}

			w := cmd.OutOrStdout()
			printTitle(w, a.styles, "Recently Added")
			if len(recent) == 0 {
				fmt.Fprintln(w, "No listings yet.")
			} else if err := printListingsTable(w, recent); err != nil {
				return err
			}

			fmt.Fprintln(w)
			printTitle(w, a.styles, "Browse by category")
			tw := newTabWriter(w)
			for _, c := range counts {
				tw.writef("%s\t%d\t%s\n", c.Name, c.Value, a.styles.Muted.Render("pawmart category "+quoteArg(c.Name)))
			}
			return tw.finish()
		},
	}
}

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "categories",
		Short:   "List the category filter options",
		Example: `  pawmart categories`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			categories, err := a.api.ListCategories(cmd.Context())
			if err != nil {
				a.notifier.Error(fmt.Sprintf("Failed to load categories: %v", err))
				categories = []string{}
			}
			options := append([]string{domain.CategoryAll}, categories...)

			if jsonOutput() {
				return outputJSON(options)
			}
			for _, c := range options {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}

func categoryCmd() *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "category <name>",
		Short: "Show the listings of one category, newest first",
		Long: "Show one category page. The API filters by category; the result is\n" +
			"sorted newest first and split into pages locally.",
		Example: `  pawmart category Pets
  pawmart category "Care Products" --page 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			name := args[0]

			listings, err := a.readListings(cmd.Context(), name, func(ctx context.Context) ([]domain.Listing, error) {
				return a.api.ListListings(ctx, &apiclient.ListListingsParams{Category: name})
			})
			if err != nil {
				return err
			}

			view := catalog.Derive(listings, catalog.NewState(a.cfg.Catalog.PageSize).WithPage(page))

			if jsonOutput() {
				return outputJSON(view)
			}

			w := cmd.OutOrStdout()
			printTitle(w, a.styles, name)
			if view.TotalCount == 0 {
				fmt.Fprintf(w, "No listings in %s.\n", name)
				return nil
			}
			if err := printListingsTable(w, view.Items); err != nil {
				return err
			}
			printPageFooter(w, a.styles, &view)
			return nil
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page number")

	return cmd
}

func quoteArg(s string) string {
	if strings.ContainsAny(s, " \t") {
		return strconv.Quote(s)
	}
	return s
}
