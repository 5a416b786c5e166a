package minio

import (
	"context"
	"time"

	"github.com/minio/minio-go/v7"
)

type Remover struct {
	client *Client
	cfg    *RemoverConfig
}

func NewRemover(client *Client, cfg *RemoverConfig) *Remover {
	return &Remover{
		client: client,
		cfg:    cfg,
	}
}

func (r *Remover) RemoveObject(ctx context.Context, objectName string) error {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(r.cfg.Timeout)*time.Millisecond)
	defer cancel()

	return r.client.MinioClient.RemoveObject(ctx, r.cfg.Bucket, objectName, minio.RemoveObjectOptions{})
}
