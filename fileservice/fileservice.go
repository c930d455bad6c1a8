// Package fileservice stores uploaded photos on the local filesystem and
// serves them back by stored name. It owns the two upload predicates
// (IsImage, CheckSize) the admin surface validates with.
package fileservice

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const thumbPrefix = "thumb_"
const thumbWidth = 320

var imageExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

type Service struct {
	Root         string // directory stored files live in
	PublicPrefix string // URL prefix static serving maps to Root
}

func New(root, publicPrefix string) *Service {
	return &Service{Root: root, PublicPrefix: strings.TrimSuffix(publicPrefix, "/")}
}

// IsImage reports whether the upload looks like an image: the extension must
// be on the allow-list and the declared content type must match it.
func (s *Service) IsImage(file *multipart.FileHeader) bool {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	want, ok := imageExtensions[ext]
	if !ok {
		return false
	}
	// Browsers send the real type; some clients only send octet-stream.
	declared := file.Header.Get("Content-Type")
	return declared == "" || declared == "application/octet-stream" || declared == want
}

// CheckSize reports whether the upload fits under maxKB kilobytes.
func (s *Service) CheckSize(file *multipart.FileHeader, maxKB int64) bool {
	return file.Size <= maxKB*1024
}

// Upload persists the file under Root and returns its stored name. The name
// is uuid-based so shoppers cannot guess or collide with each other's
// filenames. A width-bounded thumbnail is written next to the original on a
// best-effort basis.
func (s *Service) Upload(file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(s.Root, os.ModePerm); err != nil {
		return "", errors.Wrap(err, "create upload folder")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := fmt.Sprintf("%s%s", uuid.New().String(), ext)

	src, err := file.Open()
	if err != nil {
		return "", errors.Wrap(err, "open upload")
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.Root, name))
	if err != nil {
		return "", errors.Wrap(err, "create stored file")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", errors.Wrap(err, "write stored file")
	}

	s.writeThumbnail(file, name, ext)
	return name, nil
}

func (s *Service) writeThumbnail(file *multipart.FileHeader, name, ext string) {
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		return // gif/webp stay full-size
	}
	src, err := file.Open()
	if err != nil {
		return
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		logrus.WithError(err).WithField("file", name).Warn("thumbnail skipped: undecodable image")
		return
	}
	thumb := resize.Thumbnail(thumbWidth, thumbWidth, img, resize.Lanczos3)

	out, err := os.Create(filepath.Join(s.Root, thumbPrefix+name))
	if err != nil {
		return
	}
	defer out.Close()

	if ext == ".png" {
		err = png.Encode(out, thumb)
	} else {
		err = jpeg.Encode(out, thumb, nil)
	}
	if err != nil {
		os.Remove(out.Name())
	}
}

// Delete removes a stored file and its thumbnail. A missing file is a no-op.
func (s *Service) Delete(name string) error {
	if name == "" {
		return nil
	}
	if err := os.Remove(filepath.Join(s.Root, name)); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "delete stored file")
	}
	if err := os.Remove(filepath.Join(s.Root, thumbPrefix+name)); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "delete thumbnail")
	}
	return nil
}

// URL maps a stored name to its public URL.
func (s *Service) URL(name string) string {
	if name == "" {
		return ""
	}
	return s.PublicPrefix + "/" + name
}
