package page

import (
	"strings"

	"github.com/Bitlatte/splash/internal/model"
)

// Splash is the banner at the top of the landing page.
type Splash struct {
	Title         string
	Tagline       string
	LogoURL       string
	GetStartedURL string
}

// NewSplash links the call to action to the intro doc for language.
func NewSplash(site *model.SiteConfig, language string) Splash {
	return Splash{
		Title:         site.Title,
		Tagline:       site.Tagline,
		LogoURL:       AssetURL(site, "img/logo-large.png"),
		GetStartedURL: DocURL(site, language, "intro"),
	}
}

const (
	defaultQuote   = "The more your tests resemble the way your software is used, \nthe more confidence they can give you."
	defaultInstall = "`npm install --save-dev dom-testing-library`"
)

// Callout is the quote and install command shown under the splash.
type Callout struct {
	QuoteLines []string
	Install    string
}

// NewCallout uses the site's callout text where set.
func NewCallout(site *model.SiteConfig) Callout {
	quote, install := defaultQuote, defaultInstall
	if c := site.Callout; c != nil {
		if c.Quote != "" {
			quote = c.Quote
		}
		if c.Install != "" {
			install = c.Install
		}
	}
	return Callout{
		QuoteLines: strings.Split(quote, "\n"),
		Install:    install,
	}
}

// ContainerClass is the class list of the callout container.
func (Callout) ContainerClass() string {
	return containerClass("", "light", []string{"top", "bottom"})
}
