package model

import "html/template"

// PageData is what the base layout is executed with.
type PageData struct {
	SiteTitle string
	PageTitle string
	Content   template.HTML
	BaseURL   string
	Language  string
}

// Lang is the value of the html lang attribute.
func (p PageData) Lang() string {
	if p.Language == "" {
		return "en"
	}
	return p.Language
}
