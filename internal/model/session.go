package model

// Record is the persisted session state: which images were open and the
// recently viewed list.
type Record struct {
	OpenedImages     []string `json:"opened_images"`
	LastViewedImages []string `json:"last_viewed_images"`
}

// EmptyRecord returns a record with both lists empty (never nil) so it
// serializes as [] rather than null.
func EmptyRecord() *Record {
	return &Record{
		OpenedImages:     []string{},
		LastViewedImages: []string{},
	}
}

// Normalize replaces nil lists with empty ones.
func (r *Record) Normalize() {
	if r.OpenedImages == nil {
		r.OpenedImages = []string{}
	}
	if r.LastViewedImages == nil {
		r.LastViewedImages = []string{}
	}
}
