package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pawmart/pawmart/internal/report"
	"github.com/pawmart/pawmart/pkg/orderform"
	domain "github.com/pawmart/pawmart/pkg/types"
)

func ordersCmd() *cobra.Command {
	ordersRoot := &cobra.Command{
		Use:   "orders",
		Short: "Place and review orders and adoption requests",
	}

	ordersRoot.AddCommand(
		ordersPlaceCmd(),
		ordersMineCmd(),
		ordersReportCmd(),
	)

	return ordersRoot
}

func ordersPlaceCmd() *cobra.Command {
	var in orderform.Input

	cmd := &cobra.Command{
		Use:   "place <listing-id>",
		Short: "Order a product or request an adoption",
		Long: "Submit the order form for a listing. Pets are adopted one at a time,\n" +
			"so --quantity is ignored for them. Buyer name and email come from the\n" +
			"signed-in account.",
		Example: `  pawmart orders place 665f1a000000000000000003 --quantity 2 \
    --address "12 Lake Road, Dhaka" --date 2026-05-02 --phone +8801700000001`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			sess, err := a.state.RequireUser()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			l, err := a.api.GetListing(ctx, args[0])
			if err != nil {
				return err
			}

			in.BuyerName = sess.Profile.Name()
			in.Email = sess.Profile.Email
			order, err := orderform.Build(l, &in, time.Now())
			if err != nil {
				return err
			}

			id, err := a.api.PlaceOrder(ctx, order)
			if err != nil {
				a.notifier.Error(fmt.Sprintf("Failed to place order: %v", err))
				return err
			}
			order.ID = id

			if jsonOutput() {
				return outputJSON(order)
			}

			w := cmd.OutOrStdout()
			printTitle(w, a.styles, orderform.FormTitle(l))
			tw := newTabWriter(w)
			tw.writef("Product:\t%s\n", order.ProductName)
			tw.writef("Quantity:\t%d\n", order.Quantity)
			tw.writef("Price:\t%s\n", order.Price)
			tw.writef("Total:\t%s\n", orderform.FormatPrice(order.Total))
			tw.writef("Status:\t%s\n", order.Status)
			if err := tw.finish(); err != nil {
				return err
			}
			a.notifier.Success(fmt.Sprintf("Order placed: %s", id))
			return nil
		},
	}
	cmd.Flags().IntVar(&in.Quantity, "quantity", 1, "quantity (pets are always 1)")
	cmd.Flags().StringVar(&in.Address, "address", "", "delivery or pickup address")
	cmd.Flags().StringVar(&in.Date, "date", "", "pickup date")
	cmd.Flags().StringVar(&in.Phone, "phone", "", "contact phone")
	cmd.Flags().StringVar(&in.Notes, "notes", "", "additional notes")

	return cmd
}

// readOrders lists the orders of email. A failed read shows a message and
// yields no orders.
func (a *app) readOrders(ctx context.Context, email string) []domain.Order {
	orders, err := a.api.ListOrders(ctx, email)
	if err != nil {
		a.log.Warn("listing orders failed", "error", err)
		a.notifier.Error(fmt.Sprintf("Failed to load orders: %v", err))
		return []domain.Order{}
	}
	return orders
}

func ordersMineCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "mine",
		Short:   "List your orders",
		Example: `  pawmart orders mine`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			sess, err := a.state.RequireUser()
			if err != nil {
				return err
			}

			orders := a.readOrders(cmd.Context(), sess.Profile.Email)

			if jsonOutput() {
				return outputJSON(orders)
			}

			w := cmd.OutOrStdout()
			printTitle(w, a.styles, "My Orders")
			if len(orders) == 0 {
				fmt.Fprintln(w, "No orders yet.")
				return nil
			}
			return printOrdersTable(w, orders)
		},
	}
}

func ordersReportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:     "report",
		Short:   "Download your orders as a PDF",
		Example: `  pawmart orders report --out my-orders.pdf`,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			a, err := newApp()
			if err != nil {
				return err
			}
			sess, err := a.state.RequireUser()
			if err != nil {
				return err
			}

			orders := a.readOrders(cmd.Context(), sess.Profile.Email)
			if len(orders) == 0 {
				a.notifier.Info(report.ErrNoOrders.Error())
				return nil
			}

			f, err := os.Create(out) //nolint:gosec // output path from trusted CLI flag
			if err != nil {
				return fmt.Errorf("creating report file: %w", err)
			}
			defer func() {
				if cerr := f.Close(); cerr != nil && err == nil {
					err = fmt.Errorf("closing report file: %w", cerr)
				}
			}()

			if err := report.Write(f, orders, time.Now()); err != nil {
				return err
			}
			a.notifier.Success(fmt.Sprintf("Report saved to %s", out))
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "my-orders.pdf", "output file")

	return cmd
}
