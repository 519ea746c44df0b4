package storage

import (
	"context"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog"

	"github.com/modelshape/modelshape/pkg/errors"
	"github.com/modelshape/modelshape/pkg/logging"
)

// S3Config carries the connection settings for an S3-compatible store.
type S3Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// S3Lister lists object keys from an S3-compatible bucket.
type S3Lister struct {
	client *minio.Client
	bucket string
	logger zerolog.Logger
}

// NewS3Lister creates a lister for the configured bucket.
func NewS3Lister(cfg S3Config) (*S3Lister, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, errors.New(errors.ErrConfigInvalid, "s3 endpoint is required")
	}
	access := strings.TrimSpace(cfg.AccessKey)
	secret := strings.TrimSpace(cfg.SecretKey)
	if access == "" || secret == "" {
		return nil, errors.New(errors.ErrConfigInvalid, "s3 access key and secret key are required")
	}
	bucket := strings.TrimSpace(cfg.Bucket)
	if bucket == "" {
		return nil, errors.New(errors.ErrConfigInvalid, "s3 bucket is required")
	}
	region := strings.TrimSpace(cfg.Region)
	if region == "" {
		region = "us-east-1"
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(access, secret, ""),
		Secure: cfg.UseSSL,
		Region: region,
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrStorageAccess, "init s3 client")
	}

	return &S3Lister{
		client: client,
		bucket: bucket,
		logger: logging.GetLogger("storage.s3"),
	}, nil
}

// List returns every object key under prefix. The engine sorts and
// deduplicates, so no ordering is promised here.
func (s *S3Lister) List(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    strings.TrimSuffix(prefix, "/") + "/",
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, errors.Wrapf(obj.Err, errors.ErrStorageList,
				"failed to list s3://%s/%s", s.bucket, prefix)
		}
		if obj.Key == "" {
			continue
		}
		keys = append(keys, obj.Key)
	}

	s.logger.Debug().
		Str("bucket", s.bucket).
		Str("prefix", prefix).
		Int("keyCount", len(keys)).
		Msg("Listed s3 objects")
	return keys, nil
}
