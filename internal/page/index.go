package page

import (
	"github.com/Bitlatte/splash/internal/content"
	"github.com/Bitlatte/splash/internal/model"
)

// Index is the landing page. Its sections are rendered in method order:
// Splash, then Callout, Features, Problem, Solution, Showcase and Ecosystem
// inside the main container.
type Index struct {
	Site     *model.SiteConfig
	Language string
	Sections content.Sections
}

// NewIndex returns the landing page for language.
func NewIndex(site *model.SiteConfig, language string, sections content.Sections) *Index {
	return &Index{Site: site, Language: language, Sections: sections}
}

func (p *Index) Splash() Splash {
	return NewSplash(p.Site, p.Language)
}

func (p *Index) Callout() Callout {
	return NewCallout(p.Site)
}

func (p *Index) Features() Block {
	b := NewBlock(p.Sections.Features)
	b.Layout = "twoColumn"
	return b
}

func (p *Index) Problem() Block {
	b := NewBlock(p.Sections.Problem)
	b.Background = "light"
	b.Align = "left"
	return b
}

// Solution is the solution block followed by the guiding principle.
func (p *Index) Solution() []Block {
	solution := NewBlock(p.Sections.Solution)
	solution.Align = "left"

	principle := NewBlock(p.Sections.Principle)
	principle.Background = "light"
	principle.Align = "left"

	return []Block{solution, principle}
}

func (p *Index) Showcase() *Showcase {
	return NewShowcase(p.Site, p.Language)
}

func (p *Index) Ecosystem() Block {
	b := NewBlock(p.Sections.Ecosystem)
	b.Layout = "threeColumn"
	return b
}

// Title is the document title of the landing page.
func (p *Index) Title() string {
	if p.Site.Tagline == "" {
		return p.Site.Title
	}
	return p.Site.Title + " · " + p.Site.Tagline
}
