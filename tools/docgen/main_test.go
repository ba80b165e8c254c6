package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenCLI(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, genCLI(dir))

	for _, name := range []string{"pawmart.md", "pawmart_listings_list.md", "pawmart_orders_place.md"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestGenOpenAPI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		file string
		want string
	}{
		{"spec/openapi.json", `"openapi": "3.1.0"`},
		{"spec/openapi.yaml", "openapi: 3.1.0"},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), tt.file)
			require.NoError(t, genOpenAPI(path))

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Contains(t, string(data), tt.want)
			assert.Contains(t, string(data), "PawMart Dev API")
		})
	}
}
