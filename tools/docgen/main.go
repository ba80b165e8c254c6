// Package main generates CLI reference documentation from the pawmart
// command tree, and optionally the dev API's OpenAPI document.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra/doc"

	"github.com/pawmart/pawmart/api/openapi"
	"github.com/pawmart/pawmart/cmd/pawmart/cmd"
	"github.com/pawmart/pawmart/internal/devserver"
	"github.com/pawmart/pawmart/internal/store"
)

func main() {
	output := flag.String("output", "docs/cli", "output directory for generated markdown")
	specOut := flag.String("openapi", "", "also write the dev API OpenAPI document to this .json or .yaml file")
	flag.Parse()

	if err := genCLI(*output); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("CLI docs generated in %s/\n", *output)

	if *specOut != "" {
		if err := genOpenAPI(*specOut); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("OpenAPI document written to %s\n", *specOut)
	}
}

func genCLI(dir string) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	root := cmd.Root()
	root.DisableAutoGenTag = true

	if err := doc.GenMarkdownTree(root, dir); err != nil {
		return fmt.Errorf("generating docs: %w", err)
	}
	return nil
}

func genOpenAPI(path string) error {
	srv, err := devserver.New(devserver.Options{
		TokenSecret: "docgen",
		Store:       store.NewMemoryStore(nil, nil),
		Version:     cmd.Version,
	})
	if err != nil {
		return fmt.Errorf("building dev server: %w", err)
	}

	render := openapi.JSON
	if ext := filepath.Ext(path); ext == ".yaml" || ext == ".yml" {
		render = openapi.YAML
	}
	data, err := render(srv.API())
	if err != nil {
		return fmt.Errorf("rendering OpenAPI document: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing OpenAPI document: %w", err)
	}
	return nil
}
