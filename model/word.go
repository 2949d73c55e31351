package model

// Dimensions is a width/height snapshot of the page a word came from.
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// WordBox is one extracted word with its position in both normalized and
// absolute page coordinates. The block/line/word ordinal triple is the
// stable ordering key within a page; it is passed through from the page
// source unchanged.
type WordBox struct {
	Page           int        `json:"page"`
	Text           string     `json:"text"`
	BBox           Rect       `json:"bbox"`
	AbsoluteBBox   Rect       `json:"absolute_bbox"`
	PageDimensions Dimensions `json:"page_dimensions"`
	BlockNo        int        `json:"block_no"`
	LineNo         int        `json:"line_no"`
	WordNo         int        `json:"word_no"`
}
