package main

import (
	"flag"
	"fmt"
	"os"

	"kumoart/config"
	"kumoart/internal/delivery/http/view"
	"kumoart/internal/export"
	"kumoart/internal/i18n"
	"kumoart/internal/infra/content"
	logs "kumoart/internal/infra/log"
	"kumoart/internal/infra/whatsapp"
	"kumoart/internal/usecase/impl"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - export:   Render every page into a static directory tree
// - validate: Load the content sources and print the validation report

func main() {
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)

	// export parameters
	exportOutput := exportCmd.String("output", "", "Output directory (overrides configuration)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "export":
		if err = exportCmd.Parse(os.Args[2:]); err == nil {
			err = runExport(*exportOutput)
		}
	case "validate":
		if err = validateCmd.Parse(os.Args[2:]); err == nil {
			err = runValidate()
		}
	default:
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: export <subcommand> [flags]")
	fmt.Fprintln(os.Stderr, "Subcommands:")
	fmt.Fprintln(os.Stderr, "  export    Render every page into a static directory tree")
	fmt.Fprintln(os.Stderr, "  validate  Load the content sources and print the validation report")
}

func runExport(outputOverride string) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "load configuration")
	}
	if outputOverride != "" {
		cfg.Export.OutputDir = outputOverride
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return errors.Wrap(err, "create logger")
	}

	productRepo, err := content.NewProductRepository(cfg, logger)
	if err != nil {
		return errors.Wrap(err, "load products")
	}
	eventRepo, err := content.NewEventRepository(cfg, logger)
	if err != nil {
		return errors.Wrap(err, "load events")
	}

	catalog := impl.NewCatalogService(productRepo, cfg)
	events := impl.NewEventService(eventRepo)

	builder := view.NewBuilder(view.BuilderParams{
		Config:  cfg,
		Bundle:  i18n.NewBundle(),
		Catalog: catalog,
		Events:  events,
		Links:   whatsapp.NewLinkService(cfg),
	})

	renderer, err := view.NewRenderer()
	if err != nil {
		return err
	}

	return export.New(cfg, renderer, builder, productRepo, eventRepo, logger).Run()
}

func runValidate() error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "load configuration")
	}

	_, productReport, err := content.LoadProducts(cfg.Content)
	if err != nil {
		return errors.Wrap(err, "load products")
	}
	_, eventReport, err := content.LoadEvents(cfg.Content)
	if err != nil {
		return errors.Wrap(err, "load events")
	}

	printReport("products", productReport)
	printReport("events", eventReport)

	if !productReport.OK() || !eventReport.OK() {
		return errors.New("content validation failed")
	}

	return nil
}

func printReport(kind string, report *content.Report) {
	fmt.Printf("%s: %d records, %d issues\n", kind, report.Records, len(report.Issues))
	for _, issue := range report.Issues {
		fmt.Printf("  %s: %s %s\n", issue.Source, issue.Field, issue.Reason)
	}
}
