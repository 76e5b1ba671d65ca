package content

// Site is an entry of the curated catalogue shown on the new tab page.
type Site struct {
	Name        string
	URL         string
	Description string
	Icon        string
}

func Sites() []Site {
	return []Site{
		{Name: "Quran.com", URL: "https://quran.com", Description: "Read and listen to the Holy Quran", Icon: "📖"},
		{Name: "IslamQA", URL: "https://islamqa.info", Description: "Islamic Q&A and Fatawa", Icon: "❓"},
		{Name: "Sunnah.com", URL: "https://sunnah.com", Description: "Hadith collections", Icon: "📚"},
		{Name: "IslamicFinder", URL: "https://islamicfinder.org", Description: "Prayer times and Qibla", Icon: "🕌"},
		{Name: "Bayyinah Institute", URL: "https://bayyinah.com", Description: "Arabic and Quran learning", Icon: "🎓"},
		{Name: "SeekersGuidance", URL: "https://seekersguidance.org", Description: "Islamic courses and knowledge", Icon: "📖"},
		{Name: "Islamic Relief", URL: "https://islamic-relief.org", Description: "Charity and humanitarian work", Icon: "🤝"},
		{Name: "Islamway", URL: "https://en.islamway.net", Description: "Islamic content and lectures", Icon: "🎤"},
	}
}
