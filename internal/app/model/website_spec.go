package model

// WebsiteSpec is the structured description of a business site extracted from free text.
// The JSON keys match the ones the language model is asked to produce.
type WebsiteSpec struct {
	Name     string   `json:"name"`
	Category string   `json:"type"`
	Style    string   `json:"style"`
	Services []string `json:"services"`
}

// EmptyWebsiteSpec returns a structurally complete spec with no values.
func EmptyWebsiteSpec() WebsiteSpec {
	return WebsiteSpec{Services: []string{}}
}

// Complete fills in the zero values that would leave the record partially shaped.
func (s WebsiteSpec) Complete() WebsiteSpec {
	if s.Services == nil {
		s.Services = []string{}
	}
	return s
}
