// Package filestore uploads generated cover images to a local directory or
// an S3 bucket.
package filestore

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/igolaizola/songstudio/pkg/filestore/local"
	"github.com/igolaizola/songstudio/pkg/filestore/s3"
)

type fs interface {
	Upload(ctx context.Context, path, name string) error
	Download(ctx context.Context, path, name string) error
	Delete(ctx context.Context, name string) error
}

type Store struct {
	fs fs
}

// New creates a store. Conn is a directory for "local" and
// "key:secret@bucket.region" for "s3".
func New(ctx context.Context, typ, conn string, debug bool) (*Store, error) {
	var fs fs
	switch typ {
	case "s3":
		split := strings.Split(conn, "@")
		if len(split) != 2 {
			return nil, fmt.Errorf("filestore: invalid s3 connection string %q", conn)
		}
		var key, secret string
		if split[0] != "" {
			auth := strings.Split(split[0], ":")
			if len(auth) != 2 {
				return nil, fmt.Errorf("filestore: invalid s3 auth string %q", conn)
			}
			key, secret = auth[0], auth[1]
		}
		loc := strings.Split(split[1], ".")
		if len(loc) != 2 {
			return nil, fmt.Errorf("filestore: invalid s3 location string %q", conn)
		}
		candidate, err := s3.New(ctx, key, secret, loc[1], loc[0], debug)
		if err != nil {
			return nil, fmt.Errorf("filestore: %w", err)
		}
		fs = candidate
	case "local", "":
		candidate, err := local.New(conn, debug)
		if err != nil {
			return nil, fmt.Errorf("filestore: %w", err)
		}
		fs = candidate
	default:
		return nil, fmt.Errorf("filestore: unknown file storage type %q", typ)
	}
	return &Store{fs: fs}, nil
}

// SetCover uploads a data URL image as the cover of a project and returns
// the stored name.
func (s *Store) SetCover(ctx context.Context, dataURL, id string) (string, error) {
	ext, data, err := DecodeDataURL(dataURL)
	if err != nil {
		return "", err
	}
	tmp, err := os.CreateTemp("", "cover-*"+ext)
	if err != nil {
		return "", fmt.Errorf("filestore: couldn't create temp file: %w", err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("filestore: couldn't write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("filestore: couldn't close temp file: %w", err)
	}
	name := Cover(id, ext)
	if err := s.fs.Upload(ctx, tmp.Name(), name); err != nil {
		return "", fmt.Errorf("filestore: couldn't upload %s: %w", name, err)
	}
	return name, nil
}

// GetCover downloads a stored cover to path. The extension of path selects
// the stored name.
func (s *Store) GetCover(ctx context.Context, path, id string) error {
	name := Cover(id, filepath.Ext(path))
	if err := s.fs.Download(ctx, path, name); err != nil {
		return fmt.Errorf("filestore: couldn't download %s: %w", name, err)
	}
	return nil
}

// DeleteCover removes the stored cover of a project.
func (s *Store) DeleteCover(ctx context.Context, id, ext string) error {
	name := Cover(id, ext)
	if err := s.fs.Delete(ctx, name); err != nil {
		return fmt.Errorf("filestore: couldn't delete %s: %w", name, err)
	}
	return nil
}

// CoverExt returns the extension a data URL cover is stored with.
func CoverExt(dataURL string) string {
	ext, _, err := DecodeDataURL(dataURL)
	if err != nil {
		return ".png"
	}
	return ext
}

// Cover returns the stored name of a project cover.
func Cover(id, ext string) string {
	if ext == "" {
		ext = ".png"
	}
	return id + ext
}

// DecodeDataURL returns the file extension and the bytes of a base64 image
// data URL.
func DecodeDataURL(u string) (string, []byte, error) {
	header, payload, ok := strings.Cut(u, ",")
	if !ok || !strings.HasPrefix(header, "data:image/") || !strings.HasSuffix(header, ";base64") {
		return "", nil, fmt.Errorf("filestore: not a base64 image data url")
	}
	mime := strings.TrimSuffix(strings.TrimPrefix(header, "data:"), ";base64")
	var ext string
	switch mime {
	case "image/png":
		ext = ".png"
	case "image/jpeg", "image/jpg":
		ext = ".jpg"
	case "image/webp":
		ext = ".webp"
	default:
		return "", nil, fmt.Errorf("filestore: unsupported image type %q", mime)
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("filestore: couldn't decode image: %w", err)
	}
	return ext, data, nil
}
