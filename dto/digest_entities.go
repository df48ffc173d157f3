package dto

import "time"

// Item is one card on the page. Title and Summary are escaped for element content;
// RawTitle and RawSummary hold the same text unescaped, for deriving attribute values.
type Item struct {
	Id         string `json:"id"`
	Source     string `json:"source"`
	Title      string `json:"title"`
	Summary    string `json:"summary"`
	RawTitle   string `json:"raw_title"`
	RawSummary string `json:"raw_summary"`
	Link       string `json:"link"`
	Image      string `json:"image,omitempty"` // Empty: no image
}

func (itm *Item) HasImage() bool {
	return itm.Image != ""
}

type Digest struct {
	GeneratedAt time.Time `json:"generated_at"`
	SourceCount int       `json:"source_count"`
	Featured    []*Item   `json:"featured"`
	More        []*Item   `json:"more"`
}

func (d *Digest) ItemCount() int {
	return len(d.Featured) + len(d.More)
}
