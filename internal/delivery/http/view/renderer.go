package view

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"kumoart/internal/errors"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer renders the embedded page templates. It satisfies echo.Renderer
// and is also used directly by the static exporter.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "parse templates")
	}

	return &Renderer{templates: tmpl}, nil
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return r.Execute(w, name, data)
}

// Execute renders the named template without an echo context.
func (r *Renderer) Execute(w io.Writer, name string, data any) error {
	if err := r.templates.ExecuteTemplate(w, name, data); err != nil {
		return errors.Wrapf(err, "render template %q", name)
	}

	return nil
}
