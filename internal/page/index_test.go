package page

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bitlatte/splash/internal/content"
	"github.com/Bitlatte/splash/internal/model"
)

func testSite() *model.SiteConfig {
	return &model.SiteConfig{
		Title:   "dom-testing-library",
		Tagline: "Simple and complete DOM testing utilities",
		BaseURL: "/",
		DocsURL: "docs",
		Users: []model.User{
			{Caption: "Acme", Image: "/img/users/acme.png", InfoLink: "https://acme.example", Pinned: true},
		},
	}
}

func renderIndex(t *testing.T, site *model.SiteConfig, language string) string {
	t.Helper()
	var buf bytes.Buffer
	idx := NewIndex(site, language, content.Defaults(site.BaseURL))
	require.NoError(t, newTestRenderer(t).Index(&buf, idx))
	return buf.String()
}

func TestIndexSectionOrder(t *testing.T) {
	out := renderIndex(t, testSite(), "")

	markers := []string{
		`class="homeContainer"`,
		`class="mainContainer"`,
		"npm install --save-dev dom-testing-library",
		"Write Maintainable Tests",
		"The Problem",
		"The Solution",
		"Guiding Principle",
		"Who is Using This?",
		"React Testing Library",
	}
	last := -1
	for _, m := range markers {
		idx := strings.Index(out, m)
		require.NotEqual(t, -1, idx, "missing %q", m)
		assert.Greater(t, idx, last, "%q out of order", m)
		last = idx
	}
}

func TestIndexSplash(t *testing.T) {
	out := renderIndex(t, testSite(), "en")

	assert.Contains(t, out, `<html lang="en">`)
	assert.Contains(t, out, "<title>dom-testing-library · Simple and complete DOM testing utilities</title>")
	assert.Contains(t, out, `<img src="/img/logo-large.png" alt="Project Logo">`)
	assert.Contains(t, out, `<h2 class="projectTitle">dom-testing-library</h2>`)
	assert.Contains(t, out, `href="/docs/en/intro">Get Started</a>`)
}

func TestIndexGridBlocks(t *testing.T) {
	out := renderIndex(t, testSite(), "")

	assert.Contains(t, out, `class="blockElement alignCenter imageAlignTop twoByGridBlock"`)
	assert.Contains(t, out, `class="blockElement imageAlignSide imageAlignLeft"`)
	assert.Contains(t, out, `class="blockElement imageAlignSide imageAlignRight"`)
	assert.Contains(t, out, `class="blockElement alignCenter imageAlignTop threeByGridBlock"`)
	assert.Contains(t, out, `<h2><a href="./react">React Testing Library</a></h2>`)
	assert.Contains(t, out, `<img src="/img/interrobang-128x128.png" alt="The problem (picture of a question mark)">`)

	// The solution image is placed after the text.
	solution := strings.Index(out, "The Solution")
	star := strings.Index(out, "star-128x128.png")
	assert.Greater(t, star, solution)
}

func TestIndexWithoutUsersOmitsShowcase(t *testing.T) {
	site := testSite()
	site.Users = nil

	out := renderIndex(t, site, "")

	assert.NotContains(t, out, "productShowcaseSection")
	assert.Contains(t, out, "React Testing Library")
}

func TestIndexRenderIsIdempotent(t *testing.T) {
	site := testSite()

	first := renderIndex(t, site, "en")
	second := renderIndex(t, site, "en")

	assert.Equal(t, first, second)
}

func TestIndexTitleWithoutTagline(t *testing.T) {
	idx := NewIndex(&model.SiteConfig{Title: "lib"}, "", content.Sections{})
	assert.Equal(t, "lib", idx.Title())
}
