package domain

// SiteCopy is the editorial copy and imagery the pages are rendered with.
type SiteCopy struct {
	NoOpen           CallToAction `yaml:"noOpen" json:"noOpen"`
	EmptyHistory     CallToAction `yaml:"emptyHistory" json:"emptyHistory"`
	NoChartImage     Image        `yaml:"noChartImage" json:"noChartImage"`
	AllCouncilsBadge Badge        `yaml:"allCouncilsBadge" json:"allCouncilsBadge"`
}

// CallToAction is a heading, body copy and an optional button.
type CallToAction struct {
	Header     string `yaml:"header" json:"header"`
	Copy       string `yaml:"copy" json:"copy"`
	ButtonText string `yaml:"buttonText" json:"buttonText"`
	ButtonURL  string `yaml:"buttonUrl" json:"buttonUrl"`
}

// HasButton reports whether both button text and target are set.
func (c CallToAction) HasButton() bool {
	return c.ButtonText != "" && c.ButtonURL != ""
}

type Image struct {
	URL     string `yaml:"url" json:"url"`
	Alt     string `yaml:"alt" json:"alt"`
	Caption string `yaml:"caption" json:"caption,omitempty"`
}

type Badge struct {
	Logo       string `yaml:"logo" json:"logo"`
	Background string `yaml:"background" json:"background"`
}

// DefaultSiteCopy returns the copy used when no configuration overrides it.
func DefaultSiteCopy() SiteCopy {
	return SiteCopy{
		NoOpen: CallToAction{
			Header: "No open investments right now",
			Copy:   "This council has no investments open at the moment. Register to hear when the next one launches.",
		},
		EmptyHistory: CallToAction{
			Header: "No investment history yet",
			Copy:   "Once this council's investments close, they will be listed here.",
		},
		AllCouncilsBadge: Badge{
			Logo:       "https://cdn4.sharein.com/abundance/8d9c1ba3-6b73-4bfc-9671-ffc5cee387aa.png",
			Background: "#f8d9e8",
		},
	}
}
