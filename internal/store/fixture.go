package store

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	domain "github.com/pawmart/pawmart/pkg/types"
)

//go:embed testdata/fixture.json
var defaultFixture []byte

// Fixture is the seed data of the dev server.
type Fixture struct {
	Listings []domain.Listing `json:"listings"`
	Orders   []domain.Order   `json:"orders"`
}

// DefaultFixture returns the embedded seed data.
func DefaultFixture() (*Fixture, error) {
	return ParseFixture(defaultFixture)
}

// LoadFixture reads seed data from path.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted config
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	return ParseFixture(data)
}

// ParseFixture decodes seed data. Records are decoded leniently.
func ParseFixture(data []byte) (*Fixture, error) {
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &f, nil
}
