// Package cloudwriter uploads exported reports to object storage.
package cloudwriter

import (
	"context"
	"fmt"
	"strings"
)

// CloudWriter buffers an object and uploads it on Close.
type CloudWriter interface {
	Write(data []byte) (int, error)
	Close() error
}

type CloudWriterFactory interface {
	NewWriter(ctx context.Context, bucket, objectPath, contentType string) (CloudWriter, error)
}

// NewFactory returns the writer factory for a storage provider.
func NewFactory(ctx context.Context, provider, region string) (CloudWriterFactory, error) {
	switch strings.ToLower(provider) {
	case "s3", "":
		return NewS3WriterFactory(ctx, region)
	default:
		return nil, fmt.Errorf("unsupported cloud storage provider: %s", provider)
	}
}
