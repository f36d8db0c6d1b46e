package rest

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	// safe marks HTML that was sanitised when it was saved.
	"safe": func(s string) template.HTML { return template.HTML(s) },
	"date": func(t time.Time) string { return t.UTC().Format("January 2, 2006") },
	"isoDate": func(t time.Time) string {
		return t.UTC().Format(time.RFC3339)
	},
	"monthName": func(month int) string { return time.Month(month).String() },
}

// Renderer implements echo.Renderer. Every page template is parsed together with base.html.
type Renderer struct {
	templates map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{templates: make(map[string]*template.Template)}

	for _, page := range []string{"archive.html", "detail.html", "error.html"} {
		t, err := template.New(page).Funcs(templateFuncs).ParseFS(templateFS, "templates/base.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		r.templates[page] = t
	}

	t, err := template.New("plugin.html").Funcs(templateFuncs).ParseFS(templateFS, "templates/plugin.html")
	if err != nil {
		return nil, fmt.Errorf("parse template plugin.html: %w", err)
	}
	r.templates["plugin.html"] = t

	return r, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	t, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}

	if name == "plugin.html" {
		return t.ExecuteTemplate(w, "plugin", data)
	}

	return t.ExecuteTemplate(w, "base", data)
}
