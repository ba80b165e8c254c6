package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListing_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		check func(t *testing.T, l *Listing)
	}{
		{
			name: "well formed",
			input: `{"_id":"l1","name":"Bella","category":"Pets","price":0,
				"location":"Dhaka","createdAt":"2024-01-01T10:00:00.000Z"}`,
			check: func(t *testing.T, l *Listing) {
				t.Helper()
				assert.Equal(t, "l1", l.ID)
				assert.Equal(t, "Bella", l.Name)
				assert.True(t, l.IsFreeAdoption())
				require.NotNil(t, l.CreatedAt)
				assert.Equal(t, 2024, l.CreatedAt.Year())
			},
		},
		{
			name:  "price as string from form submission",
			input: `{"_id":"l2","name":"Leash","category":"Accessories","price":"15"}`,
			check: func(t *testing.T, l *Listing) {
				t.Helper()
				assert.InDelta(t, 15.0, l.Price, 0.001)
				assert.False(t, l.IsPet())
			},
		},
		{
			name:  "missing name and price default to zero values",
			input: `{"_id":"l3","category":"Foods"}`,
			check: func(t *testing.T, l *Listing) {
				t.Helper()
				assert.Empty(t, l.Name)
				assert.Zero(t, l.Price)
				assert.Nil(t, l.CreatedAt)
				assert.Equal(t, time.Unix(0, 0).UTC(), l.CreatedTime())
			},
		},
		{
			name:  "wrong types degrade instead of failing",
			input: `{"_id":{"$oid":"abc"},"name":42,"price":{"x":1},"createdAt":"yesterday"}`,
			check: func(t *testing.T, l *Listing) {
				t.Helper()
				assert.Equal(t, "abc", l.ID)
				assert.Equal(t, "42", l.Name)
				assert.Zero(t, l.Price)
				assert.Nil(t, l.CreatedAt)
			},
		},
		{
			name:  "date only timestamp",
			input: `{"name":"Kibble","createdAt":"2024-02-01"}`,
			check: func(t *testing.T, l *Listing) {
				t.Helper()
				require.NotNil(t, l.CreatedAt)
				assert.Equal(t, time.February, l.CreatedAt.Month())
			},
		},
		{
			name:  "negative price clamps to zero",
			input: `{"name":"Odd","price":-3}`,
			check: func(t *testing.T, l *Listing) {
				t.Helper()
				assert.Zero(t, l.Price)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var l Listing
			require.NoError(t, json.Unmarshal([]byte(tt.input), &l))
			tt.check(t, &l)
		})
	}
}

func TestListing_UnmarshalCollectionWithBadRecord(t *testing.T) {
	t.Parallel()

	input := `[{"_id":"a","name":"Bella","price":0},{"_id":"b","price":"n/a"},{"_id":"c","name":"Leash","price":15}]`

	var listings []Listing
	require.NoError(t, json.Unmarshal([]byte(input), &listings))
	require.Len(t, listings, 3)
	assert.Equal(t, "b", listings[1].ID)
	assert.Zero(t, listings[1].Price)
	assert.InDelta(t, 15.0, listings[2].Price, 0.001)
}

func TestOrder_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	input := `{"_id":"o1","buyerName":"Rina","email":"rina@example.com",
		"productId":"l2","productName":"Leash","quantity":"3","price":"$15",
		"status":"Pending","createdAt":"2024-03-05T08:00:00Z"}`

	var o Order
	require.NoError(t, json.Unmarshal([]byte(input), &o))
	assert.Equal(t, 3, o.Quantity)
	assert.InDelta(t, 15.0, o.Total, 0.001)
	assert.True(t, o.IsOpen())
	assert.Equal(t, time.March, o.CreatedAt.Month())
}

func TestParsePriceLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		label string
		want  float64
	}{
		{label: "$15", want: 15},
		{label: "15.50", want: 15.5},
		{label: "Free", want: 0},
		{label: "", want: 0},
		{label: " $ 7 ", want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, ParsePriceLabel(tt.label), 0.001)
		})
	}
}

func TestListingUpdate_Apply(t *testing.T) {
	t.Parallel()

	name := "Bella II"
	price := 20.0
	u := ListingUpdate{Name: &name, Price: &price}
	assert.False(t, u.Empty())

	l := Listing{ID: "l1", Name: "Bella", Category: "Pets", Location: "Dhaka"}
	u.Apply(&l)
	assert.Equal(t, "Bella II", l.Name)
	assert.InDelta(t, 20.0, l.Price, 0.001)
	assert.Equal(t, "Dhaka", l.Location)

	assert.True(t, (&ListingUpdate{}).Empty())
}

func TestListingUpdate_Validate(t *testing.T) {
	t.Parallel()

	blank, name := " ", "Bella"
	neg, zero := -5.0, 0.0

	tests := []struct {
		name    string
		update  ListingUpdate
		wantErr []string
	}{
		{name: "free pet", update: ListingUpdate{Name: &name, Price: &zero}},
		{name: "untouched fields", update: ListingUpdate{}},
		{name: "negative price", update: ListingUpdate{Price: &neg}, wantErr: []string{"price"}},
		{
			name:    "blank name and category",
			update:  ListingUpdate{Name: &blank, Category: &blank},
			wantErr: []string{"name", "category"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.update.Validate()
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestListings_SkipsNonObjects(t *testing.T) {
	t.Parallel()

	input := `[{"_id":"a","name":"Bella"},"oops",null,42,{"_id":"b","price":"n/a"}]`

	var listings Listings
	require.NoError(t, json.Unmarshal([]byte(input), &listings))
	require.Len(t, listings, 2)
	assert.Equal(t, "a", listings[0].ID)
	assert.Equal(t, "b", listings[1].ID)

	var orders Orders
	require.NoError(t, json.Unmarshal([]byte(`[{"_id":"o1","quantity":"2"},[]]`), &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, 2, orders[0].Quantity)

	assert.Error(t, json.Unmarshal([]byte(`{"_id":"a"}`), &listings))
}

func TestTheme_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, ThemeLight.Valid())
	assert.True(t, ThemeDark.Valid())
	assert.False(t, Theme("sepia").Valid())
}
