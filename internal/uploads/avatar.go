package uploads

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-travel-diary/internal/logger"
)

var (
	// ErrInvalidFileType is returned when the uploaded file is not an accepted image.
	ErrInvalidFileType = errors.New("only jpg, jpeg and png files are allowed")
	// ErrFileTooLarge is returned when the uploaded file exceeds the size limit.
	ErrFileTooLarge = errors.New("file exceeds maximum allowed size")
)

// MaxAvatarSize is the upload limit for avatar images.
const MaxAvatarSize = 5 << 20 // 5 MB

var allowedAvatarTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
}

// AvatarStore writes accepted avatar files to a local directory and hands
// back the relative URL they are served from. The rest of the application
// only depends on that contract.
type AvatarStore struct {
	dir string
}

// NewAvatarStore creates the avatars directory under dir if needed.
func NewAvatarStore(dir string) (*AvatarStore, error) {
	avatarDir := filepath.Join(dir, "avatars")
	if err := os.MkdirAll(avatarDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &AvatarStore{dir: avatarDir}, nil
}

// Save validates and stores an uploaded avatar, returning its relative URL.
func (s *AvatarStore) Save(file multipart.File, header *multipart.FileHeader) (string, error) {
	if header.Size > MaxAvatarSize {
		return "", ErrFileTooLarge
	}

	contentType := header.Header.Get("Content-Type")
	ext, ok := allowedAvatarTypes[strings.ToLower(contentType)]
	if !ok {
		return "", ErrInvalidFileType
	}

	if origExt := strings.ToLower(filepath.Ext(header.Filename)); origExt != "" {
		ext = origExt
	}

	name := fmt.Sprintf("avatar-%d-%d%s", time.Now().UnixNano(), rand.Intn(1_000_000_000), ext)
	path := filepath.Join(s.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		logger.Log.Errorw("failed to create avatar file", "path", path, "error", err)
		return "", err
	}
	defer dst.Close()

	written, err := io.Copy(dst, io.LimitReader(file, MaxAvatarSize+1))
	if err != nil {
		os.Remove(path)
		logger.Log.Errorw("failed to write avatar file", "path", path, "error", err)
		return "", err
	}
	if written > MaxAvatarSize {
		os.Remove(path)
		return "", ErrFileTooLarge
	}

	logger.Log.Infow("avatar stored", "file", name, "size", written)

	return "/uploads/avatars/" + name, nil
}
