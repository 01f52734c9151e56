// Package media uploads and deletes assets on the Cloudinary media host.
package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"

	"github.com/lentefilmes/site-admin/internal/core/domain"
)

const (
	defaultTimeout = 2 * time.Minute
	defaultFolder  = "site"
)

var ErrNotConfigured = errors.New("media: cloudinary credentials not configured")

// Config carries the account credentials and the root folder every upload
// is placed under.
type Config struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
	Timeout   time.Duration
}

// Cloudinary implements ports.MediaStore.
type Cloudinary struct {
	cld     *cloudinary.Cloudinary
	root    string
	timeout time.Duration
}

func NewCloudinary(cfg Config) (*Cloudinary, error) {
	if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, ErrNotConfigured
	}
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary: %w", err)
	}

	root := SanitizeFolder(cfg.Folder)
	if root == "" {
		root = defaultFolder
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Cloudinary{cld: cld, root: root, timeout: timeout}, nil
}

// Upload sends file to <root>/<folder>. The resource type is detected by the
// host so one endpoint serves images and videos.
func (c *Cloudinary) Upload(ctx context.Context, file io.Reader, filename, folder string) (*domain.MediaAsset, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	target := c.root
	if sub := SanitizeFolder(folder); sub != "" {
		target = path.Join(c.root, sub)
	}

	params := uploader.UploadParams{
		Folder:       target,
		ResourceType: "auto",
	}
	if base := domain.Slugify(strings.TrimSuffix(filename, path.Ext(filename))); base != "" {
		params.PublicID = base + "-" + uuid.NewString()[:8]
	}

	res, err := c.cld.Upload.Upload(ctx, file, params)
	if err != nil {
		return nil, fmt.Errorf("cloudinary upload: %w", err)
	}
	if res.Error.Message != "" {
		return nil, fmt.Errorf("cloudinary upload: %s", res.Error.Message)
	}

	return &domain.MediaAsset{
		URL:          res.SecureURL,
		PublicID:     res.PublicID,
		ResourceType: res.ResourceType,
		Format:       res.Format,
		Width:        res.Width,
		Height:       res.Height,
		Bytes:        res.Bytes,
	}, nil
}

// Destroy deletes publicID. Photos are almost always images, so the image
// namespace is tried first and video second.
func (c *Cloudinary) Destroy(ctx context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	for _, rt := range []string{"image", "video"} {
		res, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{
			PublicID:     publicID,
			ResourceType: rt,
			Invalidate:   api.Bool(true),
		})
		if err != nil {
			return fmt.Errorf("cloudinary destroy %s: %w", publicID, err)
		}
		if res.Error.Message != "" {
			return fmt.Errorf("cloudinary destroy %s: %s", publicID, res.Error.Message)
		}
		if res.Result == "ok" {
			return nil
		}
	}
	return domain.ErrNotFound
}

var folderUnsafe = regexp.MustCompile(`[^a-z0-9/_-]+`)

// SanitizeFolder lowercases folder, keeps only [a-z0-9/_-] and drops empty
// or dot segments, so callers cannot escape the root folder.
func SanitizeFolder(folder string) string {
	folder = folderUnsafe.ReplaceAllString(strings.ToLower(strings.TrimSpace(folder)), "")
	var parts []string
	for _, p := range strings.Split(folder, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "/")
}
