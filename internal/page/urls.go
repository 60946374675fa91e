package page

import "github.com/Bitlatte/splash/internal/model"

// DocURL builds the link to a documentation page. Inputs are concatenated
// as given; nothing is escaped or validated.
func DocURL(site *model.SiteConfig, language, doc string) string {
	docsPart := ""
	if site.DocsURL != "" {
		docsPart = site.DocsURL + "/"
	}
	return site.BaseURL + docsPart + langPart(language) + doc
}

// PageURL builds the link to another generated page of the site.
func PageURL(site *model.SiteConfig, language, page string) string {
	return site.BaseURL + langPart(language) + page
}

// AssetURL builds the link to a file copied from the static directory.
func AssetURL(site *model.SiteConfig, path string) string {
	return site.BaseURL + path
}

func langPart(language string) string {
	if language == "" {
		return ""
	}
	return language + "/"
}
