// Package page renders the landing page and the users page.
//
// Components are plain values built from the site configuration; the
// embedded templates turn them into markup. Rendering has no side effects,
// so the same inputs always produce the same bytes.
package page

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/Bitlatte/splash/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer executes the component templates.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer(md *Markdown) (*Renderer, error) {
	tmpl, err := template.New("page").Funcs(template.FuncMap{
		"markdown": md.Block,
		"inline":   md.Inline,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Component renders a single named component, without the page layout.
func (r *Renderer) Component(w io.Writer, name string, data any) error {
	if err := r.tmpl.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("failed to execute template '%s': %w", name, err)
	}
	return nil
}

// Index renders the full landing page document.
func (r *Renderer) Index(w io.Writer, p *Index) error {
	return r.page(w, "index", p, model.PageData{
		SiteTitle: p.Site.Title,
		PageTitle: p.Title(),
		BaseURL:   p.Site.BaseURL,
		Language:  p.Language,
	})
}

// Users renders the full users page document.
func (r *Renderer) Users(w io.Writer, site *model.SiteConfig, language string) error {
	return r.page(w, "users", NewUsers(site, language), model.PageData{
		SiteTitle: site.Title,
		PageTitle: "Users · " + site.Title,
		BaseURL:   site.BaseURL,
		Language:  language,
	})
}

func (r *Renderer) page(w io.Writer, name string, data any, pd model.PageData) error {
	var body bytes.Buffer
	if err := r.Component(&body, name, data); err != nil {
		return err
	}
	pd.Content = template.HTML(body.String())
	return r.Component(w, "base", pd)
}
