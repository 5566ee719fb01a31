package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/tcprodojo/backend/internal/media"
)

// fakeGateway records the last upload and serves a canned asset list.
type fakeGateway struct {
	assets    []media.Asset
	lastType  string
	uploadErr error
	deletedID string
	deleteErr error
}

func (f *fakeGateway) Upload(ctx context.Context, r io.Reader, contentType string) (*media.UploadResult, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	f.lastType = contentType
	return &media.UploadResult{
		URL:          "https://res.example/tcprodojo/clip.mp4",
		Filename:     "tcprodojo/clip",
		ResourceType: "video",
		PublicID:     "tcprodojo/clip",
	}, nil
}

func (f *fakeGateway) List(ctx context.Context) ([]media.Asset, error) {
	return f.assets, nil
}

func (f *fakeGateway) Delete(ctx context.Context, publicID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedID = publicID
	return nil
}

func multipartUpload(t *testing.T, contentType string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	hdr := make(map[string][]string)
	hdr["Content-Disposition"] = []string{`form-data; name="file"; filename="clip.mp4"`}
	hdr["Content-Type"] = []string{contentType}
	part, err := w.CreatePart(hdr)
	if err != nil {
		t.Fatalf("creating part failed: %v", err)
	}
	_, _ = part.Write([]byte("fake bytes"))
	_ = w.Close()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestMediaUpload(t *testing.T) {
	gw := &fakeGateway{}
	h := NewMedia(gw)

	c, rec := multipartUpload(t, "video/mp4")
	assert.NoError(t, h.Upload(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "video/mp4", gw.lastType)

	var resp media.UploadResult
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	assert.Equal(t, "tcprodojo/clip", resp.PublicID)
	assert.Equal(t, "video", resp.ResourceType)
}

func TestMediaUploadRequiresFile(t *testing.T) {
	h := NewMedia(&fakeGateway{})
	c, rec := newContext(http.MethodPost, "/api/admin/upload", nil)
	assert.NoError(t, h.Upload(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMediaUploadFailurePassesMessage(t *testing.T) {
	gw := &fakeGateway{uploadErr: errors.New("upload failed: host unreachable")}
	h := NewMedia(gw)

	c, rec := multipartUpload(t, "image/png")
	assert.NoError(t, h.Upload(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "host unreachable")
}

func TestMediaList(t *testing.T) {
	gw := &fakeGateway{assets: []media.Asset{
		{Filename: "new.jpg", PublicID: "tcprodojo/new", Created: time.Now()},
		{Filename: "old.jpg", PublicID: "tcprodojo/old", Created: time.Now().Add(-time.Hour)},
	}}
	h := NewMedia(gw)

	c, rec := newContext(http.MethodGet, "/api/admin/media", nil)
	assert.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got []media.Asset
	_ = json.Unmarshal(rec.Body.Bytes(), &got)
	assert.Len(t, got, 2)
	assert.Equal(t, "tcprodojo/new", got[0].PublicID)
}

func TestMediaDelete(t *testing.T) {
	gw := &fakeGateway{}
	h := NewMedia(gw)

	// Public ids contain slashes, hence the wildcard route.
	c, rec := newContext(http.MethodDelete, "/api/admin/media/tcprodojo/clip", nil)
	c.SetParamNames("*")
	c.SetParamValues("tcprodojo/clip")
	assert.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "tcprodojo/clip", gw.deletedID)
}

func TestMediaDeleteNotFound(t *testing.T) {
	gw := &fakeGateway{deleteErr: media.ErrNotFound}
	h := NewMedia(gw)

	c, rec := newContext(http.MethodDelete, "/api/admin/media/tcprodojo/nope", nil)
	c.SetParamNames("*")
	c.SetParamValues("tcprodojo/nope")
	assert.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "file not found")
}
