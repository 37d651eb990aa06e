package entities

// Presentation holds the display-ready fields derived from one Record.
// It has no reference back to the Record and is recomputed on every request.
type Presentation struct {
	DisplayName  string   `json:"display_name"`
	DisplayImage ImageRef `json:"display_image,omitempty"`
	AgeText      string   `json:"age_text"`
	FeeText      string   `json:"fee_text"`
}
