package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// timeLayouts are the createdAt encodings seen from the listings API.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// UnmarshalJSON decodes a listing leniently. A malformed field degrades to
// its zero value instead of failing the whole record, so one bad listing
// never takes down a collection.
func (l *Listing) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*l = Listing{
		ID:          looseString(raw["_id"]),
		Name:        looseString(raw["name"]),
		Category:    looseString(raw["category"]),
		Price:       looseFloat(raw["price"]),
		Location:    looseString(raw["location"]),
		Image:       looseString(raw["image"]),
		Description: looseString(raw["description"]),
		Date:        looseString(raw["date"]),
		Email:       looseString(raw["email"]),
		CreatedAt:   looseTime(raw["createdAt"]),
	}
	if l.ID == "" {
		l.ID = looseString(raw["id"])
	}
	return nil
}

// Listings is a listing collection that skips elements which are not JSON
// objects, e.g. a stray string or null in the array.
type Listings []Listing

// UnmarshalJSON decodes the array element by element.
func (ls *Listings) UnmarshalJSON(data []byte) error {
	out, err := decodeObjects[Listing](data)
	*ls = out
	return err
}

// Orders is the order counterpart of Listings.
type Orders []Order

// UnmarshalJSON decodes the array element by element.
func (o *Orders) UnmarshalJSON(data []byte) error {
	out, err := decodeObjects[Order](data)
	*o = out
	return err
}

// decodeObjects decodes a JSON array, dropping elements that are not
// objects. A body that is not an array is an error; null is empty.
func decodeObjects[T any](data []byte) ([]T, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil, err
	}
	out := make([]T, 0, len(elems))
	for _, e := range elems {
		if t := bytes.TrimSpace(e); len(t) == 0 || t[0] != '{' {
			continue
		}
		var v T
		if err := json.Unmarshal(e, &v); err != nil {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

// UnmarshalJSON decodes an order leniently. Quantity and price arrive as
// strings from form submissions; total is recovered from the price label
// when absent.
func (o *Order) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*o = Order{
		ID:          looseString(raw["_id"]),
		BuyerName:   looseString(raw["buyerName"]),
		Email:       looseString(raw["email"]),
		ProductID:   looseString(raw["productId"]),
		ProductName: looseString(raw["productName"]),
		Category:    looseString(raw["category"]),
		Quantity:    int(looseFloat(raw["quantity"])),
		Price:       looseString(raw["price"]),
		Total:       looseFloat(raw["total"]),
		Address:     looseString(raw["address"]),
		Date:        looseString(raw["date"]),
		Phone:       looseString(raw["phone"]),
		Notes:       looseString(raw["notes"]),
		Status:      OrderStatus(looseString(raw["status"])),
	}
	if t := looseTime(raw["createdAt"]); t != nil {
		o.CreatedAt = *t
	}
	if _, ok := raw["total"]; !ok {
		o.Total = ParsePriceLabel(o.Price)
	}
	return nil
}

// ParsePriceLabel extracts the numeric amount from a label such as "$15" or
// "15.50". Labels without a number, such as "Free", yield 0.
func ParsePriceLabel(label string) float64 {
	s := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(label), "$"))
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return 0
	}
	return f
}

func looseString(msg json.RawMessage) string {
	if len(msg) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(msg, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(msg, &n); err == nil {
		return n.String()
	}
	// Mongo extended JSON, e.g. {"$oid": "..."}.
	var oid struct {
		OID string `json:"$oid"`
	}
	if err := json.Unmarshal(msg, &oid); err == nil {
		return oid.OID
	}
	return ""
}

func looseFloat(msg json.RawMessage) float64 {
	if len(msg) == 0 {
		return 0
	}
	var f float64
	if err := json.Unmarshal(msg, &f); err == nil {
		if f < 0 {
			return 0
		}
		return f
	}
	var s string
	if err := json.Unmarshal(msg, &s); err == nil {
		return ParsePriceLabel(s)
	}
	return 0
}

func looseTime(msg json.RawMessage) *time.Time {
	if len(msg) == 0 {
		return nil
	}
	var s string
	if err := json.Unmarshal(msg, &s); err != nil {
		var ext struct {
			Date string `json:"$date"`
		}
		if err := json.Unmarshal(msg, &ext); err != nil || ext.Date == "" {
			return nil
		}
		s = ext.Date
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
