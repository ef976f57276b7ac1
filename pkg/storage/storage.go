package storage

import (
	"context"
	"io"
)

// Storage defines the object operations the publisher needs.
type Storage interface {
	// Put uploads the contents of r under the key given with WithKey.
	Put(ctx context.Context, r io.Reader, size int64, opts ...Option) (*FileInfo, error)

	// Delete removes an object.
	Delete(ctx context.Context, key string) error

	// URL returns the public URL of an object, or a presigned one when
	// WithSigned is given.
	URL(ctx context.Context, key string, opts ...URLOption) (string, error)
}

// Config holds S3-compatible storage configuration.
type Config struct {
	// Bucket is the S3 bucket name (required).
	Bucket string

	// AccessKey is the access key ID (required).
	AccessKey string

	// SecretKey is the secret access key (required).
	SecretKey string

	// Endpoint is a custom endpoint for MinIO, R2 and the like.
	Endpoint string

	// Region is the AWS region (default: us-east-1).
	Region string

	// PublicURL is the CDN or website prefix public URLs are built from.
	PublicURL string

	// DefaultACL applies when Put gets no WithACL (default: private).
	DefaultACL ACL

	// PathStyle enables path-style addressing (required for MinIO).
	PathStyle bool
}

// FileInfo describes an uploaded object.
type FileInfo struct {
	Key          string
	ContentType  string
	CacheControl string
	ACL          ACL
	Size         int64
}

// ACL represents access control levels for stored objects.
type ACL string

const (
	// ACLPrivate makes the object reachable through signed URLs only.
	ACLPrivate ACL = "private"

	// ACLPublicRead makes the object publicly readable.
	ACLPublicRead ACL = "public-read"
)

// DefaultRegion is used when Config.Region is empty.
const DefaultRegion = "us-east-1"

func (c *Config) applyDefaults() {
	if c.Region == "" {
		c.Region = DefaultRegion
	}
	if c.DefaultACL == "" {
		c.DefaultACL = ACLPrivate
	}
}

func (c *Config) validate() error {
	if c.Bucket == "" || c.AccessKey == "" || c.SecretKey == "" {
		return ErrInvalidConfig
	}
	switch c.DefaultACL {
	case ACLPrivate, ACLPublicRead:
	default:
		return ErrInvalidConfig
	}
	return nil
}
