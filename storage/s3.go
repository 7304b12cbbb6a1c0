// Package storage uploads submission files to object storage.
package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/davlindh/zeppelin-cloud-flight-sub002/assets"
	"github.com/davlindh/zeppelin-cloud-flight-sub002/config"
	"github.com/davlindh/zeppelin-cloud-flight-sub002/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ObjectAPI is the subset of the S3 client used for uploads.
type ObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Storage writes objects to one bucket of an S3 compatible service and
// reports their public URLs through an asset resolver.
type S3Storage struct {
	client   ObjectAPI
	bucket   string
	resolver assets.Resolver
	logger   zerolog.Logger
}

// NewS3Storage builds a client from cfg. Static credentials are used when
// both keys are set, otherwise the default AWS credential chain applies.
func NewS3Storage(ctx context.Context, cfg config.Storage, resolver assets.Resolver) (*S3Storage, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.ForcePathStyle
	})
	return NewS3StorageWithClient(client, cfg.UploadBucket, resolver), nil
}

func NewS3StorageWithClient(client ObjectAPI, bucket string, resolver assets.Resolver) *S3Storage {
	return &S3Storage{
		client:   client,
		bucket:   bucket,
		resolver: resolver,
		logger:   log.With().Str("component", "s3Storage").Str("bucket", bucket).Logger(),
	}
}

// Upload stores body under key and returns its public URL.
func (s *S3Storage) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", errs.NewStorageUnavailableError("upload", fmt.Errorf("put object %s: %w", key, err))
	}
	s.logger.Debug().Str("key", key).Msg("uploaded object")
	return s.resolver.Resolve(s.bucket, key), nil
}

func (s *S3Storage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return errs.NewStorageUnavailableError("delete", fmt.Errorf("delete object %s: %w", key, err))
	}
	return nil
}
