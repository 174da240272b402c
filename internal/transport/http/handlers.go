package http

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sandevgo/brandgen/internal/core"
	"github.com/sandevgo/brandgen/internal/service/brand"
	"github.com/sandevgo/brandgen/internal/service/studio"
	"github.com/sandevgo/brandgen/pkg/log"
)

const (
	sessionHeader    = "X-Session-ID"
	defaultSessionID = "local"

	maxUploadSize = 20 << 20 // 20MB
)

// Handler handles HTTP requests.
type Handler struct {
	studio *studio.Studio
	brand  *brand.Service
}

func NewHandler(studioSvc *studio.Studio, brandSvc *brand.Service) *Handler {
	return &Handler{
		studio: studioSvc,
		brand:  brandSvc,
	}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/v1/brand/guidelines", h.UploadGuidelines)
	e.POST("/v1/brand/guidelines/import", h.ImportGuidelines)
	e.POST("/v1/brand/reference", h.UploadReference)
	e.PUT("/v1/brand/style", h.SetStyle)
	e.GET("/v1/brand", h.GetBrand)

	e.POST("/v1/copy", h.GenerateCopy)
	e.POST("/v1/visuals", h.GenerateVisual)

	e.GET("/v1/history", h.GetHistory)
	e.GET("/v1/history/:id/download", h.DownloadAsset)

	e.GET("/health", h.Health)
}

func sessionID(c echo.Context) string {
	if id := strings.TrimSpace(c.Request().Header.Get(sessionHeader)); id != "" {
		return id
	}
	return defaultSessionID
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": core.BrandGenVersion,
	})
}

// UploadGuidelines accepts a brand-guidelines PDF (multipart "file") or a
// plain "text" form field.
func (h *Handler) UploadGuidelines(c echo.Context) error {
	ctx := c.Request().Context()
	session := sessionID(c)

	if file, err := c.FormFile("file"); err == nil {
		data, err := readUpload(file)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorBody(err))
		}

		chars, err := h.brand.LoadGuidelinesPDF(ctx, session, data)
		if err != nil {
			return c.JSON(http.StatusUnprocessableEntity, errorBody(err))
		}
		return c.JSON(http.StatusOK, map[string]any{"chars": chars})
	}

	text := c.FormValue("text")
	if err := h.brand.LoadGuidelinesText(ctx, session, text); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody(err))
	}
	return c.JSON(http.StatusOK, map[string]any{"chars": len(text)})
}

// ImportGuidelines loads guidelines from a web page.
func (h *Handler) ImportGuidelines(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		URL string `json:"url"`
	}
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.URL) == "" {
		return c.JSON(http.StatusBadRequest, errorBody(fmt.Errorf("url is required")))
	}

	chars, err := h.brand.ImportGuidelinesURL(ctx, sessionID(c), req.URL)
	if err != nil {
		return c.JSON(http.StatusBadGateway, errorBody(err))
	}
	return c.JSON(http.StatusOK, map[string]any{"chars": chars})
}

// UploadReference stores the style-reference image.
func (h *Handler) UploadReference(c echo.Context) error {
	ctx := c.Request().Context()

	file, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody(fmt.Errorf("file is required")))
	}
	data, err := readUpload(file)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody(err))
	}

	mime := file.Header.Get("Content-Type")
	style, err := h.brand.SetReference(ctx, sessionID(c), data, mime)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorBody(err))
	}
	return c.JSON(http.StatusOK, map[string]any{"style": style})
}

// SetStyle sets the manual style description.
func (h *Handler) SetStyle(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		Style string `json:"style"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody(err))
	}

	if err := h.brand.SetStyle(ctx, sessionID(c), req.Style); err != nil {
		return c.JSON(http.StatusInternalServerError, errorBody(err))
	}
	return c.JSON(http.StatusOK, map[string]any{"style": req.Style})
}

// GetBrand returns a summary of the session's brand kit.
func (h *Handler) GetBrand(c echo.Context) error {
	ctx := c.Request().Context()

	kit, err := h.brand.Kit(ctx, sessionID(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorBody(err))
	}
	return c.JSON(http.StatusOK, map[string]any{
		"guidelines_chars": len(kit.Guidelines),
		"style":            kit.Style(),
		"has_reference":    len(kit.ReferenceImage) > 0,
	})
}

// GenerateCopy writes on-brand marketing copy for a campaign brief.
func (h *Handler) GenerateCopy(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		Prompt string `json:"prompt"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody(err))
	}

	asset, err := h.studio.GenerateCopy(ctx, sessionID(c), req.Prompt)
	if errors.Is(err, core.ErrEmptyBrief) {
		return c.JSON(http.StatusBadRequest, errorBody(err))
	}
	if err != nil {
		log.FromCtx(ctx).Error().Err(err).Msg("copy generation failed")
		return c.JSON(http.StatusBadGateway, errorBody(err))
	}

	return c.JSON(http.StatusOK, map[string]any{
		"id":         asset.ID,
		"content":    asset.Content,
		"created_at": asset.CreatedAt.Format(time.RFC3339),
	})
}

// GenerateVisual renders an on-brand campaign visual and returns the image
// bytes directly.
func (h *Handler) GenerateVisual(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		Prompt string `json:"prompt"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody(err))
	}

	asset, err := h.studio.GenerateVisual(ctx, sessionID(c), req.Prompt)
	if errors.Is(err, core.ErrEmptyBrief) {
		return c.JSON(http.StatusBadRequest, errorBody(err))
	}
	if err != nil {
		log.FromCtx(ctx).Error().Err(err).Msg("visual generation failed")
		return c.JSON(http.StatusBadGateway, errorBody(err))
	}

	c.Response().Header().Set("X-Asset-ID", asset.ID)
	return c.Blob(http.StatusOK, asset.MIME, asset.Blob)
}

// GetHistory lists generated assets, newest first. Image bytes are not
// inlined; fetch them through the download endpoint.
func (h *Handler) GetHistory(c echo.Context) error {
	ctx := c.Request().Context()

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit <= 0 {
		limit = 50
	}

	assets, err := h.studio.History(ctx, sessionID(c), limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorBody(err))
	}
	if assets == nil {
		assets = []core.Asset{}
	}
	return c.JSON(http.StatusOK, map[string]any{
		"assets": assets,
		"count":  len(assets),
	})
}

// DownloadAsset returns the stored bytes of one history record.
func (h *Handler) DownloadAsset(c echo.Context) error {
	ctx := c.Request().Context()

	asset, err := h.studio.Asset(ctx, sessionID(c), c.Param("id"))
	if errors.Is(err, core.ErrAssetNotFound) {
		return c.JSON(http.StatusNotFound, errorBody(err))
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorBody(err))
	}

	if asset.Kind == core.AssetVisual {
		c.Response().Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", asset.ID+".png"))
		return c.Blob(http.StatusOK, asset.MIME, asset.Blob)
	}
	return c.Blob(http.StatusOK, "text/plain; charset=utf-8", []byte(asset.Content))
}

func errorBody(err error) map[string]string {
	return map[string]string{"error": err.Error()}
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	if fh.Size > maxUploadSize {
		return nil, fmt.Errorf("upload exceeds %d bytes", int64(maxUploadSize))
	}
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxUploadSize))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	return data, nil
}
