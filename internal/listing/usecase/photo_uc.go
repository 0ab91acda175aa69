package usecase

import (
	"context"

	"github.com/sohaum/nepalibazar/internal/listing/domain"
	"github.com/sohaum/nepalibazar/internal/platform/logger"
)

// ImageFile is one file from the sell form, already decoded to bytes.
type ImageFile struct {
	Name string
	Data []byte
}

type PhotoUsecase struct {
	storage domain.ImageStorage
	logger  *logger.Logger
}

func NewPhotoUsecase(storage domain.ImageStorage, log *logger.Logger) *PhotoUsecase {
	return &PhotoUsecase{storage: storage, logger: log}
}

// UploadImages stores the files in form order and returns their URLs.
// The first URL becomes the listing's thumbnail once the caller passes
// the slice to Create. One failed upload fails the batch; nothing is
// attached to any listing yet at that point.
func (uc *PhotoUsecase) UploadImages(ctx context.Context, files []ImageFile) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, f := range files {
		url, err := uc.storage.Upload(ctx, f.Name, f.Data)
		if err != nil {
			uc.logger.Error("image upload failed", "file", f.Name, "error", err.Error())
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}
