// Package media forwards binary uploads to the external hosting service and
// manages previously uploaded assets.  The host is treated as an opaque
// upload/list/delete service; everything lives under one folder namespace so
// the account can be shared.
package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// folder is the fixed namespace all assets are uploaded under.
const folder = "tcprodojo"

// maxListResults caps a single asset listing per resource type.
const maxListResults = 500

// ErrNotFound is returned when the host reports that a deletion target does
// not exist.
var ErrNotFound = errors.New("file not found")

// UploadResult is the wire shape returned after a successful upload.
type UploadResult struct {
	URL          string `json:"url"`
	Filename     string `json:"filename"`
	ResourceType string `json:"resource_type"`
	PublicID     string `json:"public_id"`
}

// Asset describes one previously uploaded file.
type Asset struct {
	Filename     string    `json:"filename"`
	URL          string    `json:"url"`
	Size         int       `json:"size"`
	Created      time.Time `json:"created"`
	ResourceType string    `json:"resource_type"`
	PublicID     string    `json:"public_id"`
}

// Gateway wraps the Cloudinary client.  It is constructed once at startup
// with credentials from configuration and injected into the media handler.
type Gateway struct {
	cld *cloudinary.Cloudinary
}

// NewGateway builds a Gateway from explicit credentials.
func NewGateway(cloudName, apiKey, apiSecret string) (*Gateway, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	cld.Config.URL.Secure = true
	return &Gateway{cld: cld}, nil
}

// resourceType classifies an upload by its content type; everything that is
// not a video is stored as an image.
func resourceType(contentType string) string {
	if strings.HasPrefix(contentType, "video/") {
		return "video"
	}
	return "image"
}

// Upload forwards the file to the host under the fixed folder, letting the
// host derive a collision-free name from the original filename.
func (g *Gateway) Upload(ctx context.Context, r io.Reader, contentType string) (*UploadResult, error) {
	rt := resourceType(contentType)
	res, err := g.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder:         folder,
		ResourceType:   rt,
		UseFilename:    api.Bool(true),
		UniqueFilename: api.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("upload failed: %w", err)
	}
	return &UploadResult{
		URL:          res.SecureURL,
		Filename:     res.PublicID,
		ResourceType: rt,
		PublicID:     res.PublicID,
	}, nil
}

// List fetches the assets stored under the folder, newest first.  Images and
// videos are listed separately by the host, so both queries are issued and
// the results merged.
func (g *Gateway) List(ctx context.Context) ([]Asset, error) {
	out := []Asset{}
	for _, at := range []api.AssetType{api.Image, api.Video} {
		res, err := g.cld.Admin.Assets(ctx, admin.AssetsParams{
			AssetType:    at,
			DeliveryType: "upload",
			Prefix:       folder,
			MaxResults:   maxListResults,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list files: %w", err)
		}
		for _, a := range res.Assets {
			out = append(out, Asset{
				Filename:     path.Base(a.PublicID),
				URL:          a.SecureURL,
				Size:         a.Bytes,
				Created:      a.CreatedAt,
				ResourceType: string(at),
				PublicID:     a.PublicID,
			})
		}
	}
	newestFirst(out)
	return out, nil
}

// newestFirst orders the merged image and video assets by creation time,
// most recent first, so the two per-type listings come back as one timeline.
func newestFirst(assets []Asset) {
	sort.Slice(assets, func(i, j int) bool { return assets[i].Created.After(assets[j].Created) })
}

// Delete removes an asset by its public id and invalidates cached copies.
// ErrNotFound is returned when the host does not report "ok".
func (g *Gateway) Delete(ctx context.Context, publicID string) error {
	res, err := g.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:   publicID,
		Invalidate: api.Bool(true),
	})
	if err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}
	if res.Result != "ok" {
		return ErrNotFound
	}
	return nil
}
