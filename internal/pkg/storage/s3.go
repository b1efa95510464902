package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/piresc/bikeparts/internal/pkg/circuitbreaker"
	"github.com/piresc/bikeparts/internal/pkg/models"
	nrpkg "github.com/piresc/bikeparts/internal/pkg/newrelic"
)

// S3API is the subset of the S3 client used by S3Store
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Store writes objects to a single bucket and returns their public URL.
// Uploads fail fast while the bucket keeps erroring.
type S3Store struct {
	client        S3API
	breaker       *circuitbreaker.Breaker
	bucket        string
	region        string
	publicBaseURL string
}

// NewS3Store builds a store from the default AWS credential chain
func NewS3Store(ctx context.Context, cfg models.StorageConfig) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}
	return NewS3StoreWithClient(s3.NewFromConfig(awsCfg), cfg), nil
}

// NewS3StoreWithClient wraps an existing client
func NewS3StoreWithClient(client S3API, cfg models.StorageConfig) *S3Store {
	return &S3Store{
		client:        client,
		breaker:       circuitbreaker.New(circuitbreaker.DefaultConfig("s3:" + cfg.Bucket)),
		bucket:        cfg.Bucket,
		region:        cfg.Region,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}
}

// Put uploads body under key and returns the object URL
func (s *S3Store) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	url := s.URL(key)
	err := s.breaker.Execute(ctx, func(ctx context.Context) error {
		return nrpkg.WithExternalSegment(ctx, "S3", "PutObject", url, func() error {
			_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
				Bucket:        aws.String(s.bucket),
				Key:           aws.String(key),
				Body:          body,
				ContentType:   aws.String(contentType),
				ContentLength: aws.Int64(size),
			})
			return err
		})
	})
	if err != nil {
		return "", fmt.Errorf("unable to upload %s to S3: %w", key, err)
	}
	return url, nil
}

// URL returns the address an uploaded key is served from
func (s *S3Store) URL(key string) string {
	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
