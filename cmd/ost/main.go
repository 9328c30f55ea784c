// Command ost transforms sales-rep order sheets into import-ready CSVs,
// resolving line items against the master catalog and customer names against
// the contacts registry.
//
// Usage:
//
//	ost [flags] <order-sheet> [<order-sheet>...]
package main

import (
	"flag"
	"log"
	"os"

	"ost/pkg/config"
	"ost/pkg/pipeline"
)

func main() {
	var (
		configPath   = flag.String("config", "ost.toml", "path to the TOML run configuration")
		masterPath   = flag.String("master", "input/utils/master-sku.csv", "path to the master SKU catalog")
		variantsPath = flag.String("variants", "input/utils/product-variant-export.csv", "path to the external-ID export")
		contactsPath = flag.String("contacts", "input/utils/contacts.csv", "path to the customer registry (.csv or .db)")
		outDir       = flag.String("out", "", "output directory (overrides config)")
	)
	flag.Parse()

	if flag.NArg() == 0 {
		log.Fatal("usage: ost [flags] <order-sheet> [<order-sheet>...]")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("WARN: %v; using defaults", err)
	}
	if *outDir != "" {
		cfg.OutputDir = *outDir
	}

	p, err := pipeline.New(cfg, *masterPath, *variantsPath, *contactsPath)
	if err != nil {
		log.Fatalf("master data setup failed: %v", err)
	}

	exit := 0
	for _, orderPath := range flag.Args() {
		sum, err := p.Run(orderPath)
		if err != nil {
			log.Printf("ERROR: %s: %v", orderPath, err)
			exit = 1
			continue
		}
		sum.Log()
	}
	os.Exit(exit)
}
