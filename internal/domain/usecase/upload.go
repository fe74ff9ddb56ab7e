package usecase

import "mime/multipart"

// SavePhotoStorage persists an uploaded photo and returns the public path it
// will be served from.
type SavePhotoStorage interface {
	Save(file multipart.File, header *multipart.FileHeader) (string, error)
}
