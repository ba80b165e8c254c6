package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pawmart/pawmart/internal/feed"
	"github.com/pawmart/pawmart/pkg/catalog"
	domain "github.com/pawmart/pawmart/pkg/types"
)

func listingsCmd() *cobra.Command {
	listingsRoot := &cobra.Command{
		Use:   "listings",
		Short: "Browse and manage listings",
		Long: "Browse pets for adoption and pet supplies, and add, edit or remove\n" +
			"the listings you own.",
	}

	listingsRoot.AddCommand(
		listingsListCmd(),
		listingsGetCmd(),
		listingsAddCmd(),
		listingsUpdateCmd(),
		listingsDeleteCmd(),
		listingsMineCmd(),
		listingsWatchCmd(),
	)

	return listingsRoot
}

// readListings runs fetch through a feed loader so that a failed read shows
// a message and yields an empty collection instead of an error.
func (a *app) readListings(
	ctx context.Context,
	name string,
	fetch feed.Fetcher,
) ([]domain.Listing, error) {
	return feed.NewLoader(name, a.notifier, a.log).Load(ctx, fetch)
}

func listingsListCmd() *cobra.Command {
	var (
		category string
		sortKey  string
		search   string
		page     int
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all listings with filter, sort and pages",
		Long: "List every listing, filtered by category and name, sorted, and\n" +
			"split into pages. Filtering, sorting and paging run locally.",
		Example: `  # First page, newest first
  pawmart listings list

  # Cheapest care products
  pawmart listings list --category "Care Products" --sort priceLow

  # Search by name, third page of six
  pawmart listings list --search cat --page 3 --page-size 6`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			if sortKey == "" {
				sortKey = a.cfg.Catalog.DefaultSort
			}
			key, err := catalog.ParseSortKey(sortKey)
			if err != nil {
				return err
			}
			if pageSize == 0 {
				pageSize = a.cfg.Catalog.PageSize
			}

			all, err := a.readListings(cmd.Context(), "listings", func(ctx context.Context) ([]domain.Listing, error) {
				return a.api.ListListings(ctx, nil)
			})
			if err != nil {
				return err
			}

			state := catalog.NewState(pageSize).
				WithCategory(category).
				WithSort(key).
				WithSearch(search).
				WithPage(page)
			view := catalog.Derive(all, state)

			if jsonOutput() {
				return outputJSON(view)
			}

			w := cmd.OutOrStdout()
			printTitle(w, a.styles, "All Listings")
			if view.TotalCount == 0 {
				fmt.Fprintln(w, "No listings found.")
				return nil
			}
			if err := printListingsTable(w, view.Items); err != nil {
				return err
			}
			printPageFooter(w, a.styles, &view)
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", domain.CategoryAll, "category filter")
	cmd.Flags().StringVar(&sortKey, "sort", "",
		"sort order (newest, oldest, priceLow, priceHigh, nameAZ, nameZA)")
	cmd.Flags().StringVar(&search, "search", "", "search by name")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "listings per page (default from config)")

	return cmd
}

func listingsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show listing details",
		Example: `  pawmart listings get 665f1a000000000000000001`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			l, err := a.api.GetListing(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(l)
			}
			return printListingDetail(cmd.OutOrStdout(), a.styles, l)
		},
	}
}

type listingFlags struct {
	name        string
	category    string
	price       float64
	location    string
	image       string
	description string
	date        string
}

func (f *listingFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "listing name")
	cmd.Flags().StringVar(&f.category, "category", "", "category (Pets, Foods, Accessories, Care Products, ...)")
	cmd.Flags().Float64Var(&f.price, "price", 0, "price in dollars; 0 for a free adoption")
	cmd.Flags().StringVar(&f.location, "location", "", "pickup location")
	cmd.Flags().StringVar(&f.image, "image", "", "image URL")
	cmd.Flags().StringVar(&f.description, "description", "", "description")
	cmd.Flags().StringVar(&f.date, "date", "", "available or pickup date")
}

// update returns the fields the user set explicitly.
func (f *listingFlags) update(cmd *cobra.Command) *domain.ListingUpdate {
	u := &domain.ListingUpdate{}
	set := func(flag string) bool { return cmd.Flags().Changed(flag) }
	if set("name") {
		u.Name = &f.name
	}
	if set("category") {
		u.Category = &f.category
	}
	if set("price") {
		u.Price = &f.price
	}
	if set("location") {
		u.Location = &f.location
	}
	if set("image") {
		u.Image = &f.image
	}
	if set("description") {
		u.Description = &f.description
	}
	if set("date") {
		u.Date = &f.date
	}
	return u
}

func listingsAddCmd() *cobra.Command {
	var f listingFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a listing",
		Long:  "Publish a pet for adoption or a product for sale under your account.",
		Example: `  pawmart listings add --name "Milo" --category Pets --price 0 \
    --location "Dhaka" --date 2026-05-01 --description "Playful tabby"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if f.name == "" || f.category == "" || f.location == "" {
				return errors.New("--name, --category and --location are required")
			}
			if f.price < 0 {
				return errors.New("--price must not be negative")
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			sess, err := a.state.RequireUser()
			if err != nil {
				return err
			}

			created, err := a.api.CreateListing(cmd.Context(), &domain.Listing{
				Name:        f.name,
				Category:    f.category,
				Price:       f.price,
				Location:    f.location,
				Image:       f.image,
				Description: f.description,
				Date:        f.date,
				Email:       sess.Profile.Email,
			})
			if err != nil {
				a.notifier.Error(fmt.Sprintf("Failed to add listing: %v", err))
				return err
			}

			if jsonOutput() {
				return outputJSON(created)
			}
			a.notifier.Success(fmt.Sprintf("Listing added: %s (%s)", created.Name, created.ID))
			return nil
		},
	}
	f.register(cmd)

	return cmd
}

func listingsUpdateCmd() *cobra.Command {
	var f listingFlags

	cmd := &cobra.Command{
		Use:     "update <id>",
		Short:   "Update one of your listings",
		Example: `  pawmart listings update 665f1a000000000000000003 --price 12.5`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u := f.update(cmd)
			if u.Empty() {
				return errors.New("nothing to update: set at least one field flag")
			}
			if err := u.Validate(); err != nil {
				return err
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			if _, err := a.state.RequireUser(); err != nil {
				return err
			}

			ok, err := a.api.UpdateListing(cmd.Context(), args[0], u)
			if err != nil {
				a.notifier.Error(fmt.Sprintf("Failed to update listing: %v", err))
				return err
			}
			if !ok {
				a.notifier.Info("Listing unchanged.")
				return nil
			}
			a.notifier.Success(fmt.Sprintf("Listing %s updated.", args[0]))
			return nil
		},
	}
	f.register(cmd)

	return cmd
}

func listingsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Short:   "Delete one of your listings",
		Example: `  pawmart listings delete 665f1a000000000000000003`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if _, err := a.state.RequireUser(); err != nil {
				return err
			}

			n, err := a.api.DeleteListing(cmd.Context(), args[0])
			if err != nil {
				a.notifier.Error(fmt.Sprintf("Failed to delete listing: %v", err))
				return err
			}
			if n == 0 {
				a.notifier.Info(fmt.Sprintf("Listing %s was already gone.", args[0]))
				return nil
			}
			a.notifier.Success(fmt.Sprintf("Listing %s deleted.", args[0]))
			return nil
		},
	}
}

func listingsMineCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "mine",
		Short:   "List the listings you own",
		Example: `  pawmart listings mine --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			sess, err := a.state.RequireUser()
			if err != nil {
				return err
			}

			mine, err := a.readListings(cmd.Context(), "your listings", func(ctx context.Context) ([]domain.Listing, error) {
				return a.api.ListMyListings(ctx, sess.Profile.Email)
			})
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(mine)
			}

			w := cmd.OutOrStdout()
			printTitle(w, a.styles, "My Listings")
			if len(mine) == 0 {
				fmt.Fprintln(w, "You have not added any listings yet.")
				return nil
			}
			return printListingsTable(w, catalog.SortListings(mine, catalog.SortNewest))
		},
	}
}
