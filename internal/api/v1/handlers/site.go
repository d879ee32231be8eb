package handlers

import (
	stderrors "errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"voice2site/internal/api/errors"
	"voice2site/internal/api/middleware"
	"voice2site/internal/api/v1/dto"
	"voice2site/internal/api/v1/services"
)

// AudioField is the multipart field carrying the recording
const AudioField = "audio"

// SiteHandler handles website generation endpoints
type SiteHandler struct {
	service services.SiteService
}

// NewSiteHandler creates a new site handler
func NewSiteHandler(service services.SiteService) *SiteHandler {
	return &SiteHandler{
		service: service,
	}
}

// GenerateFromAudio handles POST /api/v1/sites/audio.
// Responds with the JSON envelope unless ?format=html.
func (h *SiteHandler) GenerateFromAudio(c *gin.Context) {
	h.generateFromAudio(c, dto.FormatJSON)
}

// GenerateWebsite handles the legacy POST /generate-website, which answers with the
// bare document unless ?format=json.
func (h *SiteHandler) GenerateWebsite(c *gin.Context) {
	h.generateFromAudio(c, dto.FormatHTML)
}

// GenerateFromText handles POST /api/v1/sites/text
func (h *SiteHandler) GenerateFromText(c *gin.Context) {
	format, ok := h.format(c, dto.FormatJSON)
	if !ok {
		return
	}

	var req dto.GenerateFromTextRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.GenerateFromText(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	respond(c, format, response)
}

func (h *SiteHandler) generateFromAudio(c *gin.Context, defaultFormat string) {
	format, ok := h.format(c, defaultFormat)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile(AudioField)
	if err != nil {
		middleware.HandleError(c, uploadError(err, "No audio file uploaded (multipart field \"audio\")"))
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		middleware.HandleError(c, uploadError(err, "Failed to read uploaded audio"))
		return
	}

	response, err := h.service.GenerateFromAudio(c.Request.Context(), header.Filename, audio)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	respond(c, format, response)
}

func (h *SiteHandler) format(c *gin.Context, fallback string) (string, bool) {
	var query dto.FormatQuery
	if err := middleware.ValidateQuery(c, &query); err != nil {
		middleware.HandleError(c, err)
		return "", false
	}
	if query.Format == "" {
		return fallback, true
	}
	return query.Format, true
}

func uploadError(err error, message string) *errors.APIError {
	var maxErr *http.MaxBytesError
	if stderrors.As(err, &maxErr) {
		return errors.NewPayloadTooLargeError(maxErr.Limit)
	}
	return errors.NewBadRequestError(message)
}

func respond(c *gin.Context, format string, response *dto.SiteResponse) {
	if format == dto.FormatHTML {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(response.HTML))
		return
	}
	c.JSON(http.StatusOK, response)
}
