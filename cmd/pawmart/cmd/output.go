package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/pawmart/pawmart/internal/theme"
	"github.com/pawmart/pawmart/pkg/catalog"
	"github.com/pawmart/pawmart/pkg/dashboard"
	"github.com/pawmart/pawmart/pkg/orderform"
	domain "github.com/pawmart/pawmart/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printTitle(w io.Writer, st theme.Styles, title string) {
	fmt.Fprintln(w, st.Title.Render(title))
}

func printListingsTable(w io.Writer, listings []domain.Listing) error {
	tw := newTabWriter(w)
	tw.writef("ID\tNAME\tCATEGORY\tPRICE\tLOCATION\tADDED\n")
	for i := range listings {
		l := &listings[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\n",
			l.ID,
			truncate(l.Name, 32),
			l.Category,
			orderform.FormPriceLabel(l),
			truncate(l.Location, 24),
			addedDate(l),
		)
	}
	return tw.finish()
}

func printListingDetail(w io.Writer, st theme.Styles, l *domain.Listing) error {
	printTitle(w, st, l.Name)
	tw := newTabWriter(w)
	tw.writef("ID:\t%s\n", l.ID)
	tw.writef("Category:\t%s\n", l.Category)
	tw.writef("Price:\t%s\n", st.Price.Render(orderform.DetailPriceLabel(l)))
	tw.writef("Location:\t%s\n", l.Location)
	if l.Date != "" {
		tw.writef("Available:\t%s\n", l.Date)
	}
	if l.Email != "" {
		tw.writef("Listed by:\t%s\n", l.Email)
	}
	tw.writef("Added:\t%s\n", addedDate(l))
	if l.Image != "" {
		tw.writef("Image:\t%s\n", l.Image)
	}
	if err := tw.finish(); err != nil {
		return err
	}
	if l.Description != "" {
		fmt.Fprintf(w, "\n%s\n", l.Description)
	}
	fmt.Fprintf(w, "\n%s  pawmart orders place %s\n", st.Badge.Render(orderform.ActionLabel(l)), l.ID)
	return nil
}

// printPageFooter renders "Page 2 of 5" and the numbered page controls,
// e.g. "1 … [3] 4 5".
func printPageFooter(w io.Writer, st theme.Styles, v *catalog.View) {
	parts := make([]string, 0, len(v.Links))
	for _, link := range v.Links {
		switch {
		case link.Gap:
			parts = append(parts, "…")
		case link.Current:
			parts = append(parts, st.Badge.Render(fmt.Sprintf("[%d]", link.Number)))
		default:
			parts = append(parts, fmt.Sprintf("%d", link.Number))
		}
	}
	fmt.Fprintf(w, "\n%s  %s\n",
		st.Muted.Render(fmt.Sprintf("Page %d of %d (%d listings)", v.Page.Page, v.TotalPages, v.TotalCount)),
		strings.Join(parts, " "),
	)
}

func printOrdersTable(w io.Writer, orders []domain.Order) error {
	tw := newTabWriter(w)
	tw.writef("ID\tPRODUCT\tQTY\tPRICE\tTOTAL\tSTATUS\tDATE\n")
	for i := range orders {
		o := &orders[i]
		tw.writef("%s\t%s\t%d\t%s\t$%.2f\t%s\t%s\n",
			o.ID,
			truncate(o.ProductName, 32),
			o.Quantity,
			o.Price,
			o.Total,
			o.Status,
			o.Date,
		)
	}
	return tw.finish()
}

func printDashboard(w io.Writer, st theme.Styles, s *dashboard.Summary) error {
	printTitle(w, st, "Dashboard")
	tw := newTabWriter(w)
	tw.writef("Total listings:\t%d\n", s.Stats.TotalListings)
	tw.writef("Total orders:\t%d\n", s.Stats.TotalOrders)
	tw.writef("Pending orders:\t%d\n", s.Stats.PendingOrders)
	tw.writef("Revenue:\t$%.2f\n", s.Stats.Revenue)
	if err := tw.finish(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	printTitle(w, st, "Listings by category")
	tw = newTabWriter(w)
	for _, c := range s.Categories {
		tw.writef("%s\t%d\n", c.Name, c.Value)
	}
	if err := tw.finish(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	printTitle(w, st, "Monthly activity")
	tw = newTabWriter(w)
	tw.writef("MONTH\tLISTINGS\tORDERS\n")
	for _, m := range s.Monthly {
		tw.writef("%s %d\t%s\t%d\n", m.Label, m.Month.Year(), bar(m.Listings), m.Orders)
	}
	return tw.finish()
}

func bar(n int) string {
	return fmt.Sprintf("%s %d", strings.Repeat("█", min(n, 40)), n)
}

func addedDate(l *domain.Listing) string {
	if l.CreatedAt == nil {
		return "-"
	}
	return l.CreatedAt.Format("2006-01-02")
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// truncate shortens s to at most maxLen runes.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
