package content

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"kumoart/config"
	"kumoart/internal/domain/entity"
	"kumoart/internal/domain/repository"
	"kumoart/internal/errors"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type productRepository struct {
	products []*entity.Product
}

// NewProductRepository loads the product catalog once according to the
// content configuration and serves it from memory.
func NewProductRepository(cfg *config.Config, logger *slog.Logger) (repository.ProductRepository, error) {
	products, report, err := LoadProducts(cfg.Content)
	if err != nil {
		return nil, err
	}

	report.log(logger, "product")
	logger.Info("product catalog loaded",
		slog.Int("records", report.Records),
		slog.Int("issues", len(report.Issues)),
	)

	return &productRepository{products: products}, nil
}

// LoadProducts reads product records from the configured source and returns
// them together with a validation report. Records with issues are still
// returned; the report is for surfacing authoring mistakes at load time.
func LoadProducts(cfg *config.ContentConfig) ([]*entity.Product, *Report, error) {
	report := &Report{}
	validate := validator.New(validator.WithRequiredStructEnabled())

	if cfg == nil {
		return nil, report, errors.New("content configuration is missing")
	}

	var products []*entity.Product

	switch cfg.Mode {
	case "json":
		if err := loadJSONArray(cfg.ProductsFile, &products); err != nil {
			return nil, report, err
		}
		for i, p := range products {
			report.validateRecord(validate, fmt.Sprintf("%s[%d]", filepath.Base(cfg.ProductsFile), i), p)
		}
	default:
		entries, err := listMarkdownFiles(cfg.ProductsDir)
		if err != nil {
			return nil, report, err
		}
		for _, name := range entries {
			product, parseErr := parseProductFile(filepath.Join(cfg.ProductsDir, name))
			if parseErr != nil {
				// A malformed header still yields a record; only the
				// metadata is lost.
				report.add(name, "", parseErr.Error())
			}
			report.validateRecord(validate, name, product)
			products = append(products, product)
		}
	}

	report.Records = len(products)

	return products, report, nil
}

func parseProductFile(path string) (*entity.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &entity.Product{}, errors.Wrap(err, "read product file")
	}

	product := &entity.Product{}
	header, body := splitFrontMatter(data)
	product.Content = trimBody(body)

	if len(header) == 0 {
		return product, nil
	}
	if err := yaml.Unmarshal(header, product); err != nil {
		return product, errors.Wrap(err, "parse front matter")
	}

	return product, nil
}

// listMarkdownFiles enumerates *.md entries in dir. A missing directory is
// an empty catalog, not an error.
func listMarkdownFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, errors.Wrapf(err, "read content directory %s", dir)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		names = append(names, entry.Name())
	}

	return names, nil
}

func loadJSONArray[T any](path string, out *[]T) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read content file %s", path)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "parse content file %s", path)
	}

	return nil
}

func (r *productRepository) FindAll() []*entity.Product {
	return r.products
}

func (r *productRepository) FindActive() []*entity.Product {
	var active []*entity.Product
	for _, p := range r.products {
		if p.IsActive {
			active = append(active, p)
		}
	}

	return active
}

func (r *productRepository) FindBySlug(slug string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Slug == slug {
			return p, nil
		}
	}

	return nil, repository.ErrProductNotFound
}

func (r *productRepository) Slugs() []string {
	active := r.FindActive()
	slugs := make([]string, 0, len(active))
	for _, p := range active {
		slugs = append(slugs, p.Slug)
	}

	return slugs
}
