package dto

import (
	"voice2site/internal/app/model"
)

// Response formats
const (
	FormatJSON = "json"
	FormatHTML = "html"
)

// GenerateFromTextRequest is the body of POST /api/v1/sites/text
type GenerateFromTextRequest struct {
	Text string `json:"text" binding:"required"`
}

// FormatQuery selects the response representation
type FormatQuery struct {
	Format string `form:"format" binding:"omitempty,oneof=json html"`
}

// SiteResponse is the JSON envelope of a generated site
type SiteResponse struct {
	BusinessName string   `json:"business_name"`
	WebsiteType  string   `json:"website_type"`
	Style        string   `json:"style"`
	Services     []string `json:"services"`
	HTML         string   `json:"html"`
	Transcript   string   `json:"transcript"`
}

// NewSiteResponse builds the envelope from an extracted spec and its document
func NewSiteResponse(spec model.WebsiteSpec, html, transcript string) *SiteResponse {
	spec = spec.Complete()
	return &SiteResponse{
		BusinessName: spec.Name,
		WebsiteType:  spec.Category,
		Style:        spec.Style,
		Services:     spec.Services,
		HTML:         html,
		Transcript:   transcript,
	}
}
