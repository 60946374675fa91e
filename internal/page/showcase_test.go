package page

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bitlatte/splash/internal/model"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer(NewMarkdown())
	require.NoError(t, err)
	return r
}

func renderShowcase(t *testing.T, site *model.SiteConfig, language string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, newTestRenderer(t).Component(&buf, "showcase", NewShowcase(site, language)))
	return buf.String()
}

func TestShowcaseEmptyUsers(t *testing.T) {
	site := &model.SiteConfig{Title: "lib", BaseURL: "/"}

	assert.Nil(t, NewShowcase(site, ""))
	assert.Empty(t, renderShowcase(t, site, ""))

	site.Users = []model.User{}
	assert.Empty(t, renderShowcase(t, site, ""))
}

func TestShowcasePinnedUsersInOrder(t *testing.T) {
	site := &model.SiteConfig{
		Title:   "lib",
		BaseURL: "/",
		Users: []model.User{
			{Caption: "Zeta", Image: "/img/zeta.png", InfoLink: "https://zeta.example", Pinned: true},
			{Caption: "Hidden", Image: "/img/hidden.png", InfoLink: "https://hidden.example"},
			{Caption: "Alpha", Image: "/img/alpha.png", InfoLink: "https://alpha.example", Pinned: true},
		},
	}

	showcase := NewShowcase(site, "en")
	require.NotNil(t, showcase)
	require.Len(t, showcase.Users, 2)
	assert.Equal(t, "Zeta", showcase.Users[0].Caption)
	assert.Equal(t, "Alpha", showcase.Users[1].Caption)
	assert.Equal(t, "/en/users.html", showcase.MoreURL)

	out := renderShowcase(t, site, "en")
	assert.Contains(t, out, "Who is Using This?")
	assert.NotContains(t, out, "Hidden")
	assert.Equal(t, 2, strings.Count(out, "<img "))
	assert.Less(t, strings.Index(out, "zeta.example"), strings.Index(out, "alpha.example"))
	assert.Contains(t, out, `href="/en/users.html">More lib Users</a>`)
}

func TestShowcaseWithoutPinnedUsers(t *testing.T) {
	site := &model.SiteConfig{
		Title: "lib",
		Users: []model.User{{Caption: "Hidden", Image: "h.png", InfoLink: "https://hidden.example"}},
	}

	out := renderShowcase(t, site, "")

	assert.Contains(t, out, "Who is Using This?")
	assert.NotContains(t, out, "<img ")
	assert.Contains(t, out, `href="users.html"`)
}

func TestUsersPage(t *testing.T) {
	site := &model.SiteConfig{
		Title:   "lib",
		BaseURL: "/",
		Users: []model.User{
			{Caption: "Pinned", Image: "/p.png", InfoLink: "https://p.example", Pinned: true},
			{Caption: "Other", Image: "/o.png", InfoLink: "https://o.example"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, newTestRenderer(t).Users(&buf, site, ""))
	out := buf.String()

	assert.Contains(t, out, "<title>Users · lib</title>")
	assert.Contains(t, out, `title="Pinned"`)
	assert.Contains(t, out, `title="Other"`)
	assert.Contains(t, out, `href="/">Back to lib</a>`)

	buf.Reset()
	require.NoError(t, newTestRenderer(t).Users(&buf, &model.SiteConfig{Title: "lib"}, ""))
	assert.Contains(t, buf.String(), "No users are listed yet.")
}
