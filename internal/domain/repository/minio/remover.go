package minio

import "context"

type Remover interface {
	RemoveObject(ctx context.Context, objectName string) error
}
