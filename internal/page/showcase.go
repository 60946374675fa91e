package page

import "github.com/Bitlatte/splash/internal/model"

// Showcase lists the pinned users on the landing page.
type Showcase struct {
	SiteTitle string
	Users     []model.User
	MoreURL   string
}

// NewShowcase returns nil when the site has no users at all, in which case
// nothing is rendered. A site whose users are all unpinned still gets the
// section with only the link to the users page.
func NewShowcase(site *model.SiteConfig, language string) *Showcase {
	if len(site.Users) == 0 {
		return nil
	}
	return &Showcase{
		SiteTitle: site.Title,
		Users:     site.PinnedUsers(),
		MoreURL:   PageURL(site, language, "users.html"),
	}
}

// Users is the page listing every user of the project.
type Users struct {
	SiteTitle string
	Users     []model.User
	HomeURL   string
}

// NewUsers builds the users page for language.
func NewUsers(site *model.SiteConfig, language string) Users {
	return Users{
		SiteTitle: site.Title,
		Users:     site.Users,
		HomeURL:   PageURL(site, language, ""),
	}
}
