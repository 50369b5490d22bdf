// Package export renders the site into a static directory tree. The same
// view builders and templates back the live server, so exported pages are
// byte-for-byte what the server would respond with.
package export

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"kumoart/config"
	"kumoart/internal/delivery/http/view"
	"kumoart/internal/domain/repository"
	"kumoart/internal/errors"
	"kumoart/internal/i18n"
	"kumoart/internal/usecase"
)

const dirPerm = 0o755

// Exporter writes every page of the site to the output directory. The
// default locale lands at the root; other locales under their own prefix.
type Exporter struct {
	cfg      *config.Config
	renderer *view.Renderer
	builder  *view.Builder
	products repository.ProductRepository
	events   repository.EventRepository
	logger   *slog.Logger
}

// New creates the exporter.
func New(
	cfg *config.Config,
	renderer *view.Renderer,
	builder *view.Builder,
	products repository.ProductRepository,
	events repository.EventRepository,
	logger *slog.Logger,
) *Exporter {
	return &Exporter{
		cfg:      cfg,
		renderer: renderer,
		builder:  builder,
		products: products,
		events:   events,
		logger:   logger,
	}
}

// Run exports all pages for every locale.
func (e *Exporter) Run() error {
	outputDir := e.cfg.Export.OutputDir

	for _, locale := range i18n.AllLocales() {
		root := outputDir
		if locale != i18n.DefaultLocale {
			root = filepath.Join(outputDir, locale.String())
		}

		if err := e.exportLocale(root, locale); err != nil {
			return errors.Wrapf(err, "export locale %s", locale)
		}
	}

	for _, dir := range []string{"assets", "images"} {
		if err := e.copyDir(dir, filepath.Join(outputDir, dir)); err != nil {
			return err
		}
	}

	e.logger.Info("Site exported", slog.String("outputDir", outputDir))

	return nil
}

// copyDir mirrors a local directory into the export tree. Pages link assets
// with absolute paths, so the tree must carry them alongside the HTML.
// A missing source directory is not an error.
func (e *Exporter) copyDir(src, dst string) error {
	if _, err := os.Stat(src); os.IsNotExist(err) {
		return nil
	}

	// CopyFS refuses to overwrite, so clear any previous export first.
	if err := os.RemoveAll(dst); err != nil {
		return errors.Wrapf(err, "clear %s", dst)
	}
	if err := os.CopyFS(dst, os.DirFS(src)); err != nil {
		return errors.Wrapf(err, "copy %s", src)
	}

	return nil
}

func (e *Exporter) exportLocale(root string, locale i18n.Locale) error {
	if err := e.writePage(filepath.Join(root, "index.html"), "home", e.builder.Home(locale)); err != nil {
		return err
	}

	if err := e.exportCatalog(root, locale); err != nil {
		return err
	}
	if err := e.exportEvents(root, locale); err != nil {
		return err
	}

	return e.writePage(filepath.Join(root, "404.html"), "notfound", e.builder.NotFound(locale))
}

func (e *Exporter) exportCatalog(root string, locale i18n.Locale) error {
	first := e.builder.Catalog(locale, usecase.ProductFilter{}, 1)
	if err := e.writePage(filepath.Join(root, "produk", "index.html"), "products", first); err != nil {
		return err
	}

	for page := 2; page <= first.TotalPages; page++ {
		data := e.builder.Catalog(locale, usecase.ProductFilter{}, page)
		path := filepath.Join(root, "produk", "page", fmt.Sprint(page), "index.html")
		if err := e.writePage(path, "products", data); err != nil {
			return err
		}
	}

	for _, slug := range e.products.Slugs() {
		data, err := e.builder.ProductDetail(locale, slug)
		if err != nil {
			return errors.WithStack(err)
		}

		path := filepath.Join(root, "produk", slug, "index.html")
		if err := e.writePage(path, "product_detail", data); err != nil {
			return err
		}
	}

	return nil
}

func (e *Exporter) exportEvents(root string, locale i18n.Locale) error {
	if err := e.writePage(filepath.Join(root, "event", "index.html"), "events", e.builder.EventList(locale)); err != nil {
		return err
	}

	for _, slug := range e.events.Slugs() {
		data, err := e.builder.EventDetail(locale, slug)
		if err != nil {
			return errors.WithStack(err)
		}

		path := filepath.Join(root, "event", slug, "index.html")
		if err := e.writePage(path, "event_detail", data); err != nil {
			return err
		}
	}

	return nil
}

func (e *Exporter) writePage(path, template string, data any) error {
	var buf bytes.Buffer
	if err := e.renderer.Execute(&buf, template, data); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return errors.Wrap(err, "create output directory")
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrap(err, "write page")
	}

	e.logger.Debug("Wrote page", slog.String("path", path))

	return nil
}
