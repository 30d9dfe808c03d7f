package uploads

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// buildMultipartFile builds a real multipart file + header the way net/http
// hands them to a handler.
func buildMultipartFile(t *testing.T, filename, contentType string, content []byte) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := make(map[string][]string)
	h["Content-Disposition"] = []string{`form-data; name="avatar"; filename="` + filename + `"`}
	h["Content-Type"] = []string{contentType}
	part, err := mw.CreatePart(h)
	assert.NoError(t, err)
	_, err = part.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, mw.Close())

	req := httptest.NewRequest("PATCH", "/users/profile", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	assert.NoError(t, req.ParseMultipartForm(32<<20))

	file, header, err := req.FormFile("avatar")
	assert.NoError(t, err)
	return file, header
}

func TestAvatarStore_Save(t *testing.T) {
	dir := t.TempDir()
	store, err := NewAvatarStore(dir)
	assert.NoError(t, err)

	t.Run("accepts png", func(t *testing.T) {
		file, header := buildMultipartFile(t, "me.png", "image/png", []byte("png-bytes"))
		defer file.Close()

		url, err := store.Save(file, header)
		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(url, "/uploads/avatars/avatar-"))
		assert.True(t, strings.HasSuffix(url, ".png"))

		stored := filepath.Join(dir, "avatars", filepath.Base(url))
		data, err := os.ReadFile(stored)
		assert.NoError(t, err)
		assert.Equal(t, []byte("png-bytes"), data)
	})

	t.Run("rejects non-image type", func(t *testing.T) {
		file, header := buildMultipartFile(t, "notes.txt", "text/plain", []byte("hello"))
		defer file.Close()

		_, err := store.Save(file, header)
		assert.ErrorIs(t, err, ErrInvalidFileType)
	})

	t.Run("rejects oversized file", func(t *testing.T) {
		file, header := buildMultipartFile(t, "big.jpg", "image/jpeg", []byte("x"))
		defer file.Close()

		header.Size = MaxAvatarSize + 1
		_, err := store.Save(file, header)
		assert.ErrorIs(t, err, ErrFileTooLarge)
	})

	t.Run("unique filenames", func(t *testing.T) {
		f1, h1 := buildMultipartFile(t, "a.jpg", "image/jpeg", []byte("a"))
		defer f1.Close()
		f2, h2 := buildMultipartFile(t, "a.jpg", "image/jpeg", []byte("b"))
		defer f2.Close()

		u1, err := store.Save(f1, h1)
		assert.NoError(t, err)
		u2, err := store.Save(f2, h2)
		assert.NoError(t, err)
		assert.NotEqual(t, u1, u2)
	})
}
