// Package orderform derives order and adoption requests from a listing and
// the values a buyer enters on the order form.
package orderform

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pawmart/pawmart/pkg/catalog"
	domain "github.com/pawmart/pawmart/pkg/types"
)

// Validation errors.
var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrMissingField    = errors.New("required field missing")
	ErrNoBuyer         = errors.New("buyer email is required")
)

// Input holds what the buyer entered on the form. Buyer name and email are
// prefilled from the signed-in profile.
type Input struct {
	BuyerName string
	Email     string
	Quantity  int
	Address   string
	Date      string // pickup date
	Phone     string
	Notes     string
}

// Quote is the derived, read-only part of the form.
type Quote struct {
	Quantity   int                `json:"quantity"`
	PriceLabel string             `json:"price"`
	Total      float64            `json:"total"`
	Status     domain.OrderStatus `json:"status"`
}

// Derive computes quantity, price label, total and status for l. Pets are
// adopted one per request, so their quantity is forced to 1 whatever the
// buyer entered. Other listings reject a quantity below 1; there is no
// upper bound or stock check.
func Derive(l *domain.Listing, quantity int) (Quote, error) {
	if l.IsPet() {
		return Quote{
			Quantity:   1,
			PriceLabel: FormPriceLabel(l),
			Total:      catalog.ComputeExtractTotal(l.Price, 1, l.Category),
			Status:     domain.StatusAdoptionRequested,
		}, nil
	}

	if quantity < 1 {
		return Quote{}, fmt.Errorf("%w (got %d)", ErrInvalidQuantity, quantity)
	}

	return Quote{
		Quantity:   quantity,
		PriceLabel: FormPriceLabel(l),
		Total:      catalog.ComputeExtractTotal(l.Price, quantity, l.Category),
		Status:     domain.StatusPending,
	}, nil
}

// Build validates in and returns the order record to POST to the orders
// API, stamped with now.
func Build(l *domain.Listing, in *Input, now time.Time) (*domain.Order, error) {
	q, err := Derive(l, in.Quantity)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(in.Email) == "" {
		return nil, ErrNoBuyer
	}

	var missing []error
	for _, f := range []struct {
		name, value string
	}{
		{"address", in.Address},
		{"date", in.Date},
		{"phone", in.Phone},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, fmt.Errorf("%w: %s", ErrMissingField, f.name))
		}
	}
	if err := errors.Join(missing...); err != nil {
		return nil, err
	}

	return &domain.Order{
		BuyerName:   in.BuyerName,
		Email:       in.Email,
		ProductID:   l.ID,
		ProductName: l.Name,
		Category:    l.Category,
		Quantity:    q.Quantity,
		Price:       q.PriceLabel,
		Total:       q.Total,
		Address:     strings.TrimSpace(in.Address),
		Date:        strings.TrimSpace(in.Date),
		Phone:       strings.TrimSpace(in.Phone),
		Notes:       strings.TrimSpace(in.Notes),
		Status:      q.Status,
		CreatedAt:   now.UTC(),
	}, nil
}

// FormPriceLabel is the unit price as shown on the order form: "Free" for a
// free adoption, otherwise a dollar amount.
func FormPriceLabel(l *domain.Listing) string {
	if l.IsFreeAdoption() {
		return "Free"
	}
	return FormatPrice(l.Price)
}

// DetailPriceLabel is the price as shown on the listing detail page.
func DetailPriceLabel(l *domain.Listing) string {
	if l.IsFreeAdoption() {
		return "Free for Adoption"
	}
	return FormatPrice(l.Price)
}

// FormatPrice renders a dollar amount without trailing zeros: $15, $12.5.
func FormatPrice(p float64) string {
	return "$" + strconv.FormatFloat(p, 'f', -1, 64)
}

// ActionLabel is the call-to-action on the listing detail page.
func ActionLabel(l *domain.Listing) string {
	if l.IsPet() {
		return "Adopt Now"
	}
	return "Order Now"
}

// FormTitle is the heading of the order form.
func FormTitle(l *domain.Listing) string {
	if l.IsPet() {
		return "Adoption Form"
	}
	return "Order Form"
}
