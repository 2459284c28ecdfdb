// Package storage provides the S3-compatible object store used by the log
// backup job.
package storage

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/pkg/errors"

	"github.com/thebabumosai/PujoAtlasKol-Backend/config"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/service"
)

// s3Store implements service.ObjectStore against any S3-compatible endpoint.
type s3Store struct {
	client *s3.Client
	bucket string
}

// NewS3Store builds an object store from the storage configuration. A custom
// endpoint points the client at MinIO or another S3-compatible target.
func NewS3Store(cfg *config.Config) (service.ObjectStore, error) {
	if cfg.Storage == nil || cfg.Storage.Bucket == "" {
		return nil, errors.New("object storage bucket must be configured")
	}

	storageCfg := cfg.Storage

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(storageCfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(storageCfg.AccessKey, storageCfg.SecretKey, ""),
		),
	}
	if storageCfg.Endpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(
			func(service, region string, options ...interface{}) (aws.Endpoint, error) {
				return aws.Endpoint{URL: storageCfg.Endpoint}, nil
			})
		opts = append(opts, awsconfig.WithEndpointResolverWithOptions(resolver))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, errors.Wrap(err, "load object storage config")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		// MinIO requires path-style addressing.
		o.UsePathStyle = true
	})

	return &s3Store{
		client: client,
		bucket: storageCfg.Bucket,
	}, nil
}

// Upload stores the local file under the given key.
func (s *s3Store) Upload(ctx context.Context, key, localPath string) error {
	file, err := os.Open(localPath)
	if err != nil {
		return errors.Wrapf(err, "open %s", localPath)
	}
	defer file.Close()

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
		Body:   file,
	})
	if err != nil {
		return errors.Wrapf(err, "upload %s", key)
	}

	return nil
}

// Exists reports whether an object with the given key is present.
func (s *s3Store) Exists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return false, nil
		}

		return false, errors.Wrapf(err, "head %s", key)
	}

	return true, nil
}
