package usecase

import (
	"bytes"
	"context"
	"image"
	"strings"

	// Decoders for probing image dimensions.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"devblog/internal/domain/model"
	"devblog/internal/domain/repository/minio"
	"devblog/pkg/logger"
	"devblog/pkg/utils"
)

// Media uploads and deletes blog attachments against the media store.
type Media struct {
	uploader minio.Uploader
	remover  minio.Remover
}

func NewMedia(uploader minio.Uploader, remover minio.Remover) *Media {
	return &Media{
		uploader: uploader,
		remover:  remover,
	}
}

// Classify buckets a MIME type on its "video/" prefix; everything else is
// treated as an image.
func (m *Media) Classify(mimeType string) string {
	if strings.HasPrefix(mimeType, "video/") {
		return model.ResourceTypeVideo
	}

	return model.ResourceTypeImage
}

// Upload writes the attachment under folder/<uuid> and returns its
// descriptor. The content type is sniffed from the bytes rather than
// trusted from the request.
func (m *Media) Upload(ctx context.Context, data []byte, folder, resourceType string) (*model.MediaDescriptor, error) {
	detected := mimetype.Detect(data)
	objectName := folder + "/" + uuid.New().String()

	result, err := m.uploader.UploadObject(ctx, objectName, data, detected.String())
	if err != nil {
		return nil, err
	}

	width, height := 0, 0
	if resourceType == model.ResourceTypeImage {
		if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
			width, height = cfg.Width, cfg.Height
		}
	}

	return &model.MediaDescriptor{
		URL:          result.Location,
		PublicID:     result.ObjectName,
		Format:       utils.FormatFromMimeType(detected.String()),
		ResourceType: resourceType,
		Width:        width,
		Height:       height,
	}, nil
}

// Delete removes the object best-effort. A failed cleanup is logged and
// swallowed so it never fails the enclosing blog operation.
func (m *Media) Delete(ctx context.Context, publicID, resourceType string) {
	if err := m.remover.RemoveObject(ctx, publicID); err != nil {
		logger.Warn("failed to delete media object",
			"public_id", publicID, "resource_type", resourceType, "err", err.Error())
	}
}
