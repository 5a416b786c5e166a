package abstraction

import (
	"context"

	"devblog/internal/domain/model"
)

// Media orchestrates attachments against the external media store.
type Media interface {
	// Classify buckets a MIME type into image or video.
	Classify(mimeType string) string

	// Upload stores the attachment and returns its descriptor. Failures
	// propagate and abort the enclosing operation.
	Upload(ctx context.Context, data []byte, folder, resourceType string) (*model.MediaDescriptor, error)

	// Delete removes an attachment best-effort: failures are logged and
	// swallowed so cleanup never blocks the primary operation.
	Delete(ctx context.Context, publicID, resourceType string)
}
