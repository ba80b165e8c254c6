// Package report renders the "My Orders" PDF report.
package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"

	domain "github.com/pawmart/pawmart/pkg/types"
)

// ErrNoOrders is returned when there is nothing to report.
var ErrNoOrders = errors.New("no orders to generate report")

// Title is the heading printed on the first page.
const Title = "My Orders Report"

// Columns are the table headings, in order.
var Columns = []string{
	"Product Name",
	"Buyer Name",
	"Price",
	"Quantity",
	"Address",
	"Date",
	"Phone",
}

// relative column widths, summing to 1.
var columnShares = []float64{0.20, 0.15, 0.10, 0.09, 0.22, 0.11, 0.13}

const (
	rowHeight  = 18
	fontSize   = 10
	pageMargin = 20
)

// TableRows returns the report body, one row per order.
func TableRows(orders []domain.Order) [][]string {
	rows := make([][]string, 0, len(orders))
	for i := range orders {
		o := &orders[i]
		rows = append(rows, []string{
			o.ProductName,
			o.BuyerName,
			o.Price,
			strconv.Itoa(o.Quantity),
			o.Address,
			FormatDate(o.Date),
			o.Phone,
		})
	}
	return rows
}

// FormatDate renders an order date as M/D/YYYY. Unparseable dates are
// returned unchanged.
func FormatDate(s string) string {
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("1/2/2006")
		}
	}
	return s
}

// Write renders the orders as an A4 PDF to w. generated stamps the
// document's creation date.
func Write(w io.Writer, orders []domain.Order, generated time.Time) error {
	if len(orders) == 0 {
		return ErrNoOrders
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.SetTitle(Title, true)
	pdf.SetCreationDate(generated)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageWidth, _ := pdf.GetPageSize()
	tableWidth := pageWidth - 2*pageMargin
	widths := make([]float64, len(columnShares))
	for i, share := range columnShares {
		widths[i] = tableWidth * share
	}

	header := func() {
		pdf.SetFont("Helvetica", "B", fontSize)
		pdf.SetFillColor(128, 90, 213)
		pdf.SetTextColor(255, 255, 255)
		for i, col := range Columns {
			pdf.CellFormat(widths[i], rowHeight, col, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
	}
	body := func() {
		pdf.SetFont("Helvetica", "", fontSize)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFillColor(245, 245, 245)
	}
	pdf.SetHeaderFunc(func() {
		if pdf.PageNo() > 1 {
			header()
			body()
		}
	})

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 40, Title, "", 1, "C", false, 0, "")
	header()

	body()
	for r, row := range TableRows(orders) {
		fill := r%2 == 1
		for i, cell := range row {
			text := fit(pdf, tr(cell), widths[i]-4)
			pdf.CellFormat(widths[i], rowHeight, text, "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing orders report: %w", err)
	}
	return nil
}

// fit truncates s with "..." so that it renders within width.
func fit(pdf *gofpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		if cand := string(runes) + "..."; pdf.GetStringWidth(cand) <= width {
			return cand
		}
	}
	return ""
}
