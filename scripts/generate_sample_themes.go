package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"travelkart/internal/catalog"
)

// Writes the embedded theme catalog out as a JSON file. The result is a
// starting point for a CATALOG_FILE override or an S3 catalog object.
func main() {
	outPath := "data/themes.json"
	if len(os.Args) > 1 {
		outPath = os.Args[1]
	}

	themes, err := catalog.EmbeddedThemes()
	if err != nil {
		log.Fatalf("Failed to decode embedded catalog: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	data, err := json.MarshalIndent(themes, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode catalog: %v", err)
	}

	if err := os.WriteFile(outPath, data, 0644); err != nil {
		log.Fatalf("Failed to write %s: %v", outPath, err)
	}

	fmt.Printf("Wrote %d themes to %s\n", len(themes), outPath)
	for _, theme := range themes {
		fmt.Printf("  - %s (%d products)\n", theme.ID, len(theme.Products))
	}
}
