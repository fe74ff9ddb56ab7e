package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// LocalPhotoStorage writes uploaded photos to a directory served under
// /uploads. Filenames get a time+random suffix so uploads never collide.
type LocalPhotoStorage struct {
	Dir string
}

func NewLocalPhotoStorage(dir string) (*LocalPhotoStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("erro ao criar pasta de uploads: %w", err)
	}

	return &LocalPhotoStorage{Dir: dir}, nil
}

func (s *LocalPhotoStorage) Save(file multipart.File, header *multipart.FileHeader) (string, error) {
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), filepath.Ext(header.Filename))

	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}

	return "/uploads/" + name, nil
}
