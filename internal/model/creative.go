package model

// Creative is a generated ad asset shown in the creative library. Like
// campaigns, creatives are demo fixtures with no persistence behind them.
type Creative struct {
	ID       int64
	Title    string
	Kind     string
	Content  string
	Campaign string
	Created  string
}

const (
	CreativeImage = "image"
	CreativeVideo = "video"
	CreativeCopy  = "copy"
)

var creatives = []Creative{
	{ID: 1, Title: "Summer Hero Banner", Kind: CreativeImage, Campaign: "Summer Sale 2026", Created: "Feb 02, 2026"},
	{ID: 2, Title: "Launch Teaser Clip", Kind: CreativeVideo, Campaign: "New Product Launch", Created: "Feb 10, 2026"},
	{ID: 3, Title: "Retargeting Headline A", Kind: CreativeCopy, Content: "Still thinking it over? Your cart misses you — and so does 15% off.", Campaign: "Retargeting Q1", Created: "Jan 14, 2026"},
	{ID: 4, Title: "Brand Story Copy", Kind: CreativeCopy, Content: "Built by a two-person team. Trusted by twelve thousand brands.", Campaign: "Brand Awareness", Created: "Nov 05, 2025"},
	{ID: 5, Title: "Square Product Shot", Kind: CreativeImage, Campaign: "Summer Sale 2026", Created: "Feb 04, 2026"},
	{ID: 6, Title: "Holiday Countdown Loop", Kind: CreativeVideo, Campaign: "Holiday Teaser", Created: "Dec 18, 2025"},
}

// Creatives returns creatives, optionally restricted to one kind.
func Creatives(kind string) []Creative {
	var out []Creative
	for _, c := range creatives {
		if kind == "" || c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}
