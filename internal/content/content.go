// Package content provides the blocks shown in each landing page section.
//
// Every section has built-in blocks. A directory named after the section
// inside the content directory replaces them: each *.md file in it becomes
// one block, in lexical file name order. The YAML frontmatter of a file sets
// the block title and image, the markdown body becomes the block content.
package content

import (
	"github.com/Bitlatte/splash/internal/model"
)

// Section names, also the directory names looked up by Load.
const (
	Features  = "features"
	Problem   = "problem"
	Solution  = "solution"
	Principle = "principle"
	Ecosystem = "ecosystem"
)

// SectionNames lists the overridable sections in page order.
var SectionNames = []string{Features, Problem, Solution, Principle, Ecosystem}

// Sections holds the blocks of every grid section of the landing page.
type Sections struct {
	Features  []model.ContentBlock
	Problem   []model.ContentBlock
	Solution  []model.ContentBlock
	Principle []model.ContentBlock
	Ecosystem []model.ContentBlock
}

// Get returns the blocks of the named section.
func (s *Sections) Get(name string) []model.ContentBlock {
	switch name {
	case Features:
		return s.Features
	case Problem:
		return s.Problem
	case Solution:
		return s.Solution
	case Principle:
		return s.Principle
	case Ecosystem:
		return s.Ecosystem
	}
	return nil
}

func (s *Sections) set(name string, blocks []model.ContentBlock) {
	switch name {
	case Features:
		s.Features = blocks
	case Problem:
		s.Problem = blocks
	case Solution:
		s.Solution = blocks
	case Principle:
		s.Principle = blocks
	case Ecosystem:
		s.Ecosystem = blocks
	}
}

// Defaults returns the built-in sections with image paths under baseURL.
func Defaults(baseURL string) Sections {
	img := func(name string) string { return baseURL + "img/" + name }

	return Sections{
		Features: []model.ContentBlock{
			{
				Content:    "Tests only break when your app breaks, not implementation details",
				Image:      img("wrench-128x128.png"),
				ImageAlign: "top",
				Title:      "Write Maintainable Tests",
			},
			{
				Content:    "Interact with your app the same way as your users",
				Image:      img("check-128x128.png"),
				ImageAlign: "top",
				Title:      "Develop with Confidence",
			},
			{
				Content:    "Built-in selectors use semantic HTML and ARIA roles to help you write inclusive code",
				Image:      img("tada-128x128.png"),
				ImageAlign: "top",
				Title:      "Accessible by Default",
			},
		},
		Problem: []model.ContentBlock{
			{
				Content: "## The Problem \n" +
					" - You want tests for your web UI that avoid including implementation details and rather focus on making your tests give you the confidence for which they are intended. \n" +
					" - You want your tests to be maintainable so refactors _(changes to implementation but not functionality)_ don't break your tests and slow you and your team down.",
				Image:      img("interrobang-128x128.png"),
				ImageAlt:   "The problem (picture of a question mark)",
				ImageAlign: "left",
			},
		},
		Solution: []model.ContentBlock{
			{
				Image:      img("star-128x128.png"),
				ImageAlign: "right",
				ImageAlt:   "The solution (picture of a star)",
				Content: "## The Solution \n" +
					" `dom-testing-library` is a very light-weight solution for testing DOM nodes (whether simulated with [JSDOM](https://github.com/jsdom/jsdom) in [Jest](https://jestjs.io) or in the browser). " +
					"The main utilities it provides involve querying the DOM for nodes in a way that's similar to how the user finds elements on the page. " +
					"In this way, the library helps ensure your tests give you confidence in your UI code.",
			},
		},
		Principle: []model.ContentBlock{
			{
				Title:      "Guiding Principle",
				Image:      img("trophy-128x128.png"),
				ImageAlign: "left",
				ImageAlt:   "The guiding principle (picture of a brick wall)",
				Content:    "_The more your tests resemble the way your software is used, the more confidence they can give you._",
			},
		},
		Ecosystem: []model.ContentBlock{
			{
				Content:    "For testing React Components",
				Image:      img("react-128x128.png"),
				ImageAlign: "top",
				Title:      "[React Testing Library](./react)",
			},
			{
				Content:    "End-to-End Tests",
				Image:      img("evergreen-128x128.png"),
				ImageAlign: "top",
				Title:      "[Cypress Testing Library](./cypress)",
			},
			{
				Content:    "Explore the ecosystem",
				Image:      img("construction-128x128.png"),
				ImageAlign: "top",
				Title:      "[And more...](./docs/ecosystem-user-event)",
			},
		},
	}
}
