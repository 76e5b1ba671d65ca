package landing

import (
	"testing"

	"minaret/internal/browser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivateShortcuts(t *testing.T) {
	sc := Shortcuts()
	require.Len(t, sc, 5)

	assert.Equal(t, Action{Kind: ActionOpen, URL: "https://youtube.com"}, Activate(sc[0]))
	assert.Equal(t, Action{Kind: ActionRoute, URL: BrowserRoute}, Activate(sc[3]))

	n := Activate(sc[4])
	assert.Equal(t, ActionNotice, n.Kind)
	assert.Equal(t, "Code With H...", n.Notice.Title)
}

func TestSearch(t *testing.T) {
	a := Search("", "how to pray", false)
	assert.Equal(t, ActionOpen, a.Kind)
	assert.Equal(t, browser.DefaultSearchEngine+"how%20to%20pray", a.URL)

	lucky := Search("", "qibla", true)
	assert.Equal(t, browser.DefaultSearchEngine+"qibla&btnI=1", lucky.URL)

	empty := Search("", "  ", false)
	assert.Equal(t, ActionNotice, empty.Kind)
	assert.Equal(t, "Please enter a search query", empty.Notice.Title)

	emptyLucky := Search("", "", true)
	assert.Equal(t, "I'm Feeling Lucky", emptyLucky.Notice.Title)
}

func TestQueryFromLocation(t *testing.T) {
	assert.Equal(t, "prayer times", QueryFromLocation("https://minaret.local/?search=prayer%20times"))
	assert.Equal(t, "zakat", QueryFromLocation("/?search=zakat&x=1"))
	assert.Equal(t, "", QueryFromLocation("https://minaret.local/"))
	assert.Equal(t, "", QueryFromLocation("http://[::1"))
}
