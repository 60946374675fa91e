package model

// User is a single entry of the "who is using this" showcase.
type User struct {
	Caption  string `yaml:"caption"`
	Image    string `yaml:"image"`
	InfoLink string `yaml:"infoLink"`
	Pinned   bool   `yaml:"pinned"`
}

// Callout overrides the text of the feature callout below the splash.
type Callout struct {
	Quote   string `yaml:"quote"`
	Install string `yaml:"install"`
}

// SiteConfig holds the site-wide settings every component renders from.
// It is read once per build and never mutated while rendering.
type SiteConfig struct {
	Title   string   `yaml:"title"`
	Tagline string   `yaml:"tagline"`
	BaseURL string   `yaml:"baseUrl"`
	DocsURL string   `yaml:"docsUrl"`
	Users   []User   `yaml:"users"`
	Callout *Callout `yaml:"callout,omitempty"`
}

// PinnedUsers returns the users flagged for the homepage, in config order.
func (s *SiteConfig) PinnedUsers() []User {
	var pinned []User
	for _, u := range s.Users {
		if u.Pinned {
			pinned = append(pinned, u)
		}
	}
	return pinned
}

// ContentBlock is one cell of a grid block.
type ContentBlock struct {
	Title      string `yaml:"title"`
	Content    string `yaml:"content"`
	Image      string `yaml:"image"`
	ImageAlign string `yaml:"imageAlign"`
	ImageAlt   string `yaml:"imageAlt"`
	ImageLink  string `yaml:"imageLink"`
}
