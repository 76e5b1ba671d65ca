package browser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"example.com", "https://example.com"},
		{"https://x.com", "https://x.com"},
		{"http://x.com/a?b=c", "http://x.com/a?b=c"},
		{"how to pray", DefaultSearchEngine + "how%20to%20pray"},
		{"fajr&isha", DefaultSearchEngine + "fajr%26isha"},
		{"what's (dua)!", DefaultSearchEngine + "what's%20(dua)!"},
		{"a*b~c+d", DefaultSearchEngine + "a*b~c%2Bd"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Resolve(tc.in, DefaultSearchEngine), "input %q", tc.in)
	}
}

func TestSearchURL(t *testing.T) {
	got := SearchURL("", "how to pray", false)
	assert.True(t, strings.HasPrefix(got, DefaultSearchEngine))
	assert.Contains(t, got, "how%20to%20pray")

	lucky := SearchURL("https://duckduckgo.com/?q=", "zakat", true)
	assert.Equal(t, "https://duckduckgo.com/?q=zakat&btnI=1", lucky)
}

func TestDomain(t *testing.T) {
	assert.Equal(t, "quran.com", Domain("https://www.quran.com/1"))
	assert.Equal(t, "en.islamway.net", Domain("https://en.islamway.net"))
	assert.Equal(t, "not a url", Domain("not a url"))
	assert.Equal(t, "%zz", Domain("%zz"))
}
