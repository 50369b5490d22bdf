package content

import (
	"path/filepath"
	"testing"

	"kumoart/config"
	"kumoart/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func markdownContentConfig() *config.ContentConfig {
	return &config.ContentConfig{
		Mode:        "markdown",
		ProductsDir: filepath.Join("testdata", "products"),
		EventsDir:   filepath.Join("testdata", "events"),
	}
}

func TestLoadProducts_Markdown(t *testing.T) {
	t.Parallel()

	products, report, err := LoadProducts(markdownContentConfig())
	require.NoError(t, err)

	// All four files yield a record, the malformed one included.
	assert.Len(t, products, 4)
	assert.Equal(t, 4, report.Records)

	bySlug := map[string]bool{}
	for _, p := range products {
		bySlug[p.Slug] = true
	}
	assert.True(t, bySlug["tas-rajut-macrame"])
	assert.True(t, bySlug["boneka-amigurumi"])
	assert.True(t, bySlug["syal-rajut"])
}

func TestLoadProducts_MalformedFileStillProducesRecord(t *testing.T) {
	t.Parallel()

	products, report, err := LoadProducts(markdownContentConfig())
	require.NoError(t, err)

	var malformed bool
	for _, p := range products {
		if p.Slug == "" {
			malformed = true
			// Body text survives even when the header does not parse.
			assert.Contains(t, p.Content, "metadata rusak")
		}
	}
	require.True(t, malformed, "malformed file should still yield a record")

	assert.False(t, report.OK())
	var reported bool
	for _, issue := range report.Issues {
		if issue.Source == "rusak.md" {
			reported = true
		}
	}
	assert.True(t, reported, "report should name the malformed file")
}

func TestLoadProducts_BodyAndFrontMatter(t *testing.T) {
	t.Parallel()

	products, _, err := LoadProducts(markdownContentConfig())
	require.NoError(t, err)

	var found bool
	for _, p := range products {
		if p.Slug != "tas-rajut-macrame" {
			continue
		}
		found = true
		assert.Equal(t, "Tas Rajut Macrame", p.Name)
		assert.Equal(t, 150000, p.Price)
		assert.Equal(t, "Tas", p.Category)
		assert.Equal(t, 5, p.Stock)
		assert.True(t, p.IsFeatured)
		assert.Contains(t, p.Content, "benang katun premium")
	}
	require.True(t, found)
}

func TestLoadProducts_MissingDirectoryIsEmpty(t *testing.T) {
	t.Parallel()

	products, report, err := LoadProducts(&config.ContentConfig{
		Mode:        "markdown",
		ProductsDir: filepath.Join("testdata", "does-not-exist"),
	})
	require.NoError(t, err)
	assert.Empty(t, products)
	assert.True(t, report.OK())
}

func TestLoadProducts_JSON(t *testing.T) {
	t.Parallel()

	products, report, err := LoadProducts(&config.ContentConfig{
		Mode:         "json",
		ProductsFile: filepath.Join("testdata", "products.json"),
	})
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, "tas-rajut-macrame", products[0].Slug)
	assert.Equal(t, 150000, products[0].Price)

	// The second entry has an empty slug; it is kept but reported.
	assert.False(t, report.OK())
}

func TestProductRepository_Accessors(t *testing.T) {
	t.Parallel()

	products, _, err := LoadProducts(markdownContentConfig())
	require.NoError(t, err)

	repo := &productRepository{products: products}

	active := repo.FindActive()
	for _, p := range active {
		assert.True(t, p.IsActive)
	}
	// syal-rajut is inactive, rusak.md never sets the flag.
	assert.Len(t, active, 2)

	p, err := repo.FindBySlug("boneka-amigurumi")
	require.NoError(t, err)
	assert.Equal(t, "Boneka Amigurumi", p.Name)
	assert.False(t, p.InStock())

	_, err = repo.FindBySlug("tidak-ada")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)

	slugs := repo.Slugs()
	assert.ElementsMatch(t, []string{"tas-rajut-macrame", "boneka-amigurumi"}, slugs)
}

func TestSplitFrontMatter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		wantHeader string
		wantBody   string
	}{
		{
			name:       "header and body",
			input:      "---\nslug: a\n---\nbody text\n",
			wantHeader: "slug: a\n",
			wantBody:   "body text\n",
		},
		{
			name:       "leading byte order mark",
			input:      "\ufeff---\nslug: a\n---\nbody text\n",
			wantHeader: "slug: a\n",
			wantBody:   "body text\n",
		},
		{
			name:       "no front matter",
			input:      "just a body\n",
			wantHeader: "",
			wantBody:   "just a body\n",
		},
		{
			name:       "unterminated header",
			input:      "---\nslug: a\nbody without closing\n",
			wantHeader: "",
			wantBody:   "---\nslug: a\nbody without closing\n",
		},
		{
			name:       "empty body",
			input:      "---\nslug: a\n---",
			wantHeader: "slug: a\n",
			wantBody:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			header, body := splitFrontMatter([]byte(tt.input))
			assert.Equal(t, tt.wantHeader, string(header))
			assert.Equal(t, tt.wantBody, string(body))
		})
	}
}
