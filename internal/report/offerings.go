package report

import "github.com/totegamma/council-reports/internal/domain"

const (
	NoOpenOfferingsMessage          = "There are no open municipal investments at the moment. Please check again later"
	NoOpenOfferingsForEntityMessage = "There are no open municipal investments for this council at the moment."
	OfferingsFailedMessage          = "Sorry, we couldn't load municipal investments right now."

	defaultStrapline = "[Description coming soon]"
)

// OfferingList is every currently open offering across councils.
type OfferingList struct {
	Complete  bool                  `json:"complete"`
	Offerings Section[OfferingTile] `json:"offerings"`
}

func (b *Builder) Offerings(offerings Feed[domain.Offering]) OfferingList {
	if !offerings.OK() {
		return OfferingList{Offerings: unavailable[OfferingTile](offerings, OfferingsFailedMessage)}
	}
	return OfferingList{Offerings: sectionOf(b.openTiles(offerings.Items, defaultStrapline), NoOpenOfferingsMessage)}
}

func (b *Builder) openTiles(offerings []domain.Offering, strapline string) []OfferingTile {
	var tiles []OfferingTile
	for _, o := range offerings {
		if !o.Status.Open() {
			continue
		}
		tiles = append(tiles, b.offeringTile(o, strapline))
	}
	return tiles
}
