package fileservice

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fileHeader builds a real *multipart.FileHeader the way gin would hand one
// to a handler.
func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("photo", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	return form.File["photo"][0]
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestIsImage(t *testing.T) {
	s := New(t.TempDir(), "/uploads")

	assert.True(t, s.IsImage(fileHeader(t, "flower.jpg", []byte("x"))))
	assert.True(t, s.IsImage(fileHeader(t, "flower.PNG", []byte("x"))))
	assert.False(t, s.IsImage(fileHeader(t, "notes.txt", []byte("x"))))
	assert.False(t, s.IsImage(fileHeader(t, "archive", []byte("x"))))
}

func TestCheckSize(t *testing.T) {
	s := New(t.TempDir(), "/uploads")

	small := fileHeader(t, "a.jpg", bytes.Repeat([]byte("x"), 1024))
	big := fileHeader(t, "b.jpg", bytes.Repeat([]byte("x"), 3*1024))

	assert.True(t, s.CheckSize(small, 1))
	assert.False(t, s.CheckSize(big, 2))
}

func TestUploadStoresFileWithThumbnail(t *testing.T) {
	root := t.TempDir()
	s := New(root, "/uploads")

	name, err := s.Upload(fileHeader(t, "bouquet.png", pngBytes(t)))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".png"))
	assert.NotContains(t, name, "bouquet") // stored name is uuid-based

	_, err = os.Stat(filepath.Join(root, name))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(root, thumbPrefix+name))
	assert.NoError(t, err)

	assert.Equal(t, "/uploads/"+name, s.URL(name))
}

func TestDeleteRemovesFileAndThumbnail(t *testing.T) {
	root := t.TempDir()
	s := New(root, "/uploads")

	name, err := s.Upload(fileHeader(t, "bouquet.png", pngBytes(t)))
	require.NoError(t, err)

	require.NoError(t, s.Delete(name))
	_, err = os.Stat(filepath.Join(root, name))
	assert.True(t, os.IsNotExist(err))
}

func TestDeleteMissingFileIsNoOp(t *testing.T) {
	s := New(t.TempDir(), "/uploads")
	assert.NoError(t, s.Delete("never-stored.jpg"))
	assert.NoError(t, s.Delete(""))
}
