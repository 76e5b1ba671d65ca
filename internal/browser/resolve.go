package browser

import (
	"net/url"
	"strings"
)

const DefaultSearchEngine = "https://www.google.com/search?q="

func hasScheme(raw string) bool {
	return strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://")
}

// Resolve classifies address bar input: URLs with a scheme pass through,
// anything with a dot is treated as a bare domain, the rest is a search.
func Resolve(raw, engine string) string {
	if hasScheme(raw) {
		return raw
	}
	if strings.Contains(raw, ".") {
		return "https://" + raw
	}
	return SearchURL(engine, raw, false)
}

func SearchURL(engine, query string, lucky bool) string {
	if engine == "" {
		engine = DefaultSearchEngine
	}
	out := engine + encodeComponent(query)
	if lucky {
		out += "&btnI=1"
	}
	return out
}

// componentUnescaper undoes the QueryEscape output that encodeURIComponent
// leaves alone: spaces are %20 and ! ' ( ) * stay literal.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeComponent escapes like encodeURIComponent.
func encodeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}

// Domain returns the host of raw without its "www." prefix. Input that does
// not parse as an absolute URL is returned unchanged.
func Domain(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return raw
	}
	return strings.Replace(u.Hostname(), "www.", "", 1)
}
