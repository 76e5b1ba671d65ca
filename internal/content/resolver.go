package content

import (
	"fmt"
	"net/url"
	"strings"

	"minaret/internal/browser"
)

// Page is canned display content for a URL, as markdown.
type Page struct {
	Title    string
	Markdown string
	Known    bool
}

// Snapshot carries the session lists the new tab page shows.
type Snapshot struct {
	Bookmarks []browser.Bookmark
	History   []browser.HistoryItem
}

type rule struct {
	match string
	page  func(rawURL string) Page
}

// Resolver maps URLs to canned pages. Rules are checked in order and the
// first substring match wins.
type Resolver struct {
	rules []rule
}

func NewResolver() *Resolver {
	r := &Resolver{}
	r.rules = append(r.rules, rule{match: "google.com/search", page: searchPage})
	for _, s := range Sites() {
		site := s
		r.rules = append(r.rules, rule{match: browser.Domain(site.URL), page: func(raw string) Page {
			return sitePage(site, raw)
		}})
	}
	r.rules = append(r.rules,
		rule{match: "bayyinah.tv", page: func(raw string) Page {
			return sitePage(Site{Name: "Bayyinah TV", Description: "Quran and Arabic video courses", Icon: "🎓"}, raw)
		}},
		rule{match: "youtube.com", page: func(raw string) Page {
			return sitePage(Site{Name: "YouTube", Description: "Video sharing", Icon: "🎥"}, raw)
		}},
		rule{match: "chat.openai.com", page: func(raw string) Page {
			return sitePage(Site{Name: "ChatGPT", Description: "Conversational assistant", Icon: "🤖"}, raw)
		}},
		rule{match: "facebook.com", page: func(raw string) Page {
			return sitePage(Site{Name: "Facebook", Description: "Social network", Icon: "📘"}, raw)
		}},
	)
	return r
}

func (r *Resolver) Resolve(rawURL string, snap Snapshot) Page {
	if browser.IsBlank(rawURL) {
		return NewTabPage(snap)
	}
	for _, rl := range r.rules {
		if strings.Contains(rawURL, rl.match) {
			p := rl.page(rawURL)
			p.Known = true
			return p
		}
	}
	return genericPage(rawURL)
}

const quote = "> \"And whoever relies upon Allah - then He is sufficient for him. Indeed, Allah will accomplish His purpose.\"\n>\n> - Quran 65:3\n"

func NewTabPage(snap Snapshot) Page {
	var b strings.Builder
	b.WriteString("# 🕌 Islamic Web Browser\n\n")
	b.WriteString("_Bismillah - Start your Islamic journey with blessed browsing_\n\n")

	b.WriteString("## Islamic Sites\n\n")
	for i, s := range Sites() {
		fmt.Fprintf(&b, "%d. %s **%s** - %s  \n   %s\n", i+1, s.Icon, s.Name, s.Description, s.URL)
	}

	b.WriteString("\n## Bookmarks\n\n")
	if len(snap.Bookmarks) == 0 {
		b.WriteString("_No bookmarks yet_\n")
	}
	for _, bm := range snap.Bookmarks {
		fmt.Fprintf(&b, "- **%s** `%s` - %s\n", bm.Title, bm.Category, bm.URL)
	}

	b.WriteString("\n## History\n\n")
	if len(snap.History) == 0 {
		b.WriteString("_No browsing history yet_\n")
	}
	for _, h := range snap.History {
		fmt.Fprintf(&b, "- %s %s\n", h.Timestamp.Format("15:04:05"), h.URL)
	}

	b.WriteString("\n" + quote)
	return Page{Title: browser.NewTabTitle, Markdown: b.String()}
}

func sitePage(s Site, rawURL string) Page {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s %s\n\n", s.Icon, s.Name)
	fmt.Fprintf(&b, "_%s_\n\n", s.Description)
	fmt.Fprintf(&b, "You are viewing **%s**.\n\n", rawURL)
	b.WriteString(featuresBlock)
	return Page{Title: s.Name, Markdown: b.String()}
}

func searchPage(rawURL string) Page {
	q := ""
	if u, err := url.Parse(rawURL); err == nil {
		q = u.Query().Get("q")
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# Search results for \"%s\"\n\n", q)
	b.WriteString("Results are not fetched. Press `o` to run this search in your browser.\n\n")
	b.WriteString("Curated sources that may help:\n\n")
	for _, s := range Sites() {
		fmt.Fprintf(&b, "- %s **%s** - %s\n", s.Icon, s.Name, s.URL)
	}
	return Page{Title: "Search: " + q, Markdown: b.String()}
}

func genericPage(rawURL string) Page {
	domain := browser.Domain(rawURL)
	var b strings.Builder
	fmt.Fprintf(&b, "# Website Content: %s\n\n", domain)
	fmt.Fprintf(&b, "This is a simulation of browsing to: **%s**\n\n", rawURL)
	b.WriteString("In a real browser, this would display the actual website content. ")
	b.WriteString("The Islamic Web Browser provides a safe, curated browsing experience ")
	b.WriteString("with built-in Islamic features and content filtering.\n\n")
	b.WriteString(featuresBlock)
	return Page{Title: domain, Markdown: b.String()}
}

const featuresBlock = "> **Islamic Features:** Built-in prayer time reminders, Qibla direction, " +
	"Islamic calendar, and curated halal content.\n"
