package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tcprodojo/backend/internal/media"
)

// uploadTimeout is generous because video uploads are forwarded in full to
// the external host.
const uploadTimeout = 60 * time.Second

// MediaGateway is the slice of the media gateway the handler needs; tests
// substitute a fake.
type MediaGateway interface {
	Upload(ctx context.Context, r io.Reader, contentType string) (*media.UploadResult, error)
	List(ctx context.Context) ([]media.Asset, error)
	Delete(ctx context.Context, publicID string) error
}

// Media exposes the external-host asset management endpoints.
type Media struct {
	gw MediaGateway
}

func NewMedia(gw MediaGateway) *Media {
	return &Media{gw: gw}
}

// Upload handles POST /api/admin/upload: reads the multipart "file" part and
// forwards it to the media host.
func (h *Media) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "file is required"})
	}
	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not read file"})
	}
	defer src.Close()

	ctx, cancel := context.WithTimeout(c.Request().Context(), uploadTimeout)
	defer cancel()

	res, err := h.gw.Upload(ctx, src, fh.Header.Get(echo.HeaderContentType))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, res)
}

// List handles GET /api/admin/media and returns the host's assets under the
// site namespace, newest first.
func (h *Media) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	files, err := h.gw.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, files)
}

// Delete handles DELETE /api/admin/media/* where the wildcard is the asset's
// public id (public ids contain slashes, so a plain path param won't do).
func (h *Media) Delete(c echo.Context) error {
	publicID := c.Param("*")
	if publicID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "public id is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if err := h.gw.Delete(ctx, publicID); err != nil {
		if errors.Is(err, media.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "file not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "file deleted successfully"})
}
