package render

import (
	"embed"
	"fmt"
	"github.com/labstack/echo/v4"
	"html/template"
	"io"
	"io/fs"
	"path"
)

const layoutTemplate = "base.html"

//go:embed templates/*.html
var templatesFS embed.FS

// TemplateRenderer renders html pages, each page is executed inside base layout
type TemplateRenderer struct {
	pages map[string]*template.Template
}

// New parses all embedded pages
func New() (*TemplateRenderer, error) {
	names, err := fs.Glob(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	pages := make(map[string]*template.Template, len(names))
	for _, name := range names {
		page := path.Base(name)
		if page == layoutTemplate {
			continue
		}

		tmpl, err := template.ParseFS(templatesFS, path.Join("templates", layoutTemplate), name)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s - %w", page, err)
		}
		pages[page] = tmpl
	}

	return &TemplateRenderer{pages: pages}, nil
}

// Render executes named page inside base layout
func (r *TemplateRenderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template %s is not registered", name)
	}
	return tmpl.ExecuteTemplate(w, layoutTemplate, data)
}
