// Command matrixrun runs the extraction pipeline against a local invoice
// text file and writes the results next to it, without needing the server
// or a database.
// Usage: go run ./cmd/matrixrun -in invoice.txt [-format xlsx|csv] [-v]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"shipmatrix/internal/catalog"
	"shipmatrix/internal/domain"
	"shipmatrix/internal/export"
	"shipmatrix/internal/parser"
	"shipmatrix/internal/tokenizer/plaintext"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	inPath := flag.String("in", "", "path to the invoice text file")
	outPath := flag.String("out", "", "output path (default: input name with new extension)")
	format := flag.String("format", "xlsx", "output format: xlsx or csv")
	verbose := flag.Bool("v", false, "verbose extraction logging")
	flag.Parse()

	if *inPath == "" {
		flag.Usage()
		return fmt.Errorf("-in is required")
	}
	if *format != "xlsx" && *format != "csv" {
		return fmt.Errorf("unsupported format %q", *format)
	}

	f, err := os.Open(*inPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer func() { _ = f.Close() }()

	ctx := context.Background()

	tok := plaintext.New()
	pages, err := tok.Tokenize(ctx, f)
	if err != nil {
		return fmt.Errorf("tokenize: %w", err)
	}

	cat := catalog.New()
	engine := parser.NewEngine(cat, *verbose)
	records, stats, err := engine.ParseDocument(ctx, pages)
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}

	dest := *outPath
	if dest == "" {
		base := strings.TrimSuffix(*inPath, filepath.Ext(*inPath))
		dest = base + "_shipments." + *format
	}

	switch *format {
	case "csv":
		err = writeCSV(dest, cat, records)
	case "xlsx":
		err = writeXLSX(dest, cat, records, stats)
	}
	if err != nil {
		return err
	}

	printSummary(records, stats)
	log.Printf("Wrote %s", dest)
	return nil
}

func writeCSV(dest string, cat *catalog.Catalog, records []domain.ShipmentRecord) error {
	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() { _ = out.Close() }()

	if _, err := out.Write(export.BOM); err != nil {
		return fmt.Errorf("write BOM: %w", err)
	}
	w := export.NewCSVWriter(out, cat)
	if err := w.WriteHeader(); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := w.WriteRecords(records); err != nil {
		return fmt.Errorf("write records: %w", err)
	}
	w.Flush()
	return w.Error()
}

func writeXLSX(dest string, cat *catalog.Catalog, records []domain.ShipmentRecord, stats domain.RunStats) error {
	f, err := export.BuildWorkbook(cat, records, stats)
	if err != nil {
		return fmt.Errorf("build workbook: %w", err)
	}
	if err := f.SaveAs(dest); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func printSummary(records []domain.ShipmentRecord, stats domain.RunStats) {
	log.Printf("Invoices: %d, shipments: %d", stats.TotalInvoices, stats.TotalShipments)
	log.Printf("Published: $%.2f, incentives: $%.2f, billed: $%.2f",
		stats.TotalPublished, stats.TotalIncentive, stats.TotalBilled)

	if len(stats.ServiceTypes) > 0 {
		services := make([]string, 0, len(stats.ServiceTypes))
		for svc := range stats.ServiceTypes {
			services = append(services, svc)
		}
		sort.Strings(services)
		for _, svc := range services {
			log.Printf("  %s: %d", svc, stats.ServiceTypes[svc])
		}
	}
}
