package http

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"github.com/go-extras/go-kit/must"
	"github.com/labstack/echo/v4"

	"github.com/egannguyen/seller-dashboard/internal/money"
)

const (
	navTemplate          = "nav.html"
	dashboardTemplate    = "dashboard.html"
	emptyTemplate        = "empty.html"
	unauthorizedTemplate = "unauthorized.html"
)

//go:embed templates/*.html
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"money": money.Format,
}

// Renderer renders the embedded page templates for echo.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses the layout, the navigation and every page.
func NewRenderer() (*Renderer, error) {
	files := must.Must(fs.Sub(templateFS, "templates"))

	base, err := template.New("base").Funcs(templateFuncs).ParseFS(files, "layout.html", navTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	r := &Renderer{pages: map[string]*template.Template{}}
	for _, name := range []string{dashboardTemplate, emptyTemplate, unauthorizedTemplate} {
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("failed to clone layout for %s: %w", name, err)
		}
		t, err := clone.ParseFS(files, name)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
		r.pages[name] = t
	}
	r.pages[navTemplate] = base
	return r, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template %s not found", name)
	}
	if name == navTemplate {
		return t.ExecuteTemplate(w, "nav", data)
	}
	return t.ExecuteTemplate(w, "layout", data)
}
