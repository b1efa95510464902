package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/piresc/bikeparts/internal/pkg/circuitbreaker"
	"github.com/piresc/bikeparts/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	calls int
	input *s3.PutObjectInput
	body  string
	err   error
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.calls++
	f.input = params
	if params.Body != nil {
		b, _ := io.ReadAll(params.Body)
		f.body = string(b)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestS3Store_Put(t *testing.T) {
	client := &fakeS3{}
	store := NewS3StoreWithClient(client, models.StorageConfig{Bucket: "rider-proofs", Region: "ap-south-1"})

	url, err := store.Put(context.Background(), "proofs/r/t/p.jpg", "image/jpeg", strings.NewReader("jpeg-bytes"), 10)

	require.NoError(t, err)
	assert.Equal(t, "https://rider-proofs.s3.ap-south-1.amazonaws.com/proofs/r/t/p.jpg", url)
	assert.Equal(t, "rider-proofs", aws.ToString(client.input.Bucket))
	assert.Equal(t, "proofs/r/t/p.jpg", aws.ToString(client.input.Key))
	assert.Equal(t, "image/jpeg", aws.ToString(client.input.ContentType))
	assert.Equal(t, int64(10), aws.ToInt64(client.input.ContentLength))
	assert.Equal(t, "jpeg-bytes", client.body)
}

func TestS3Store_PublicBaseURL(t *testing.T) {
	store := NewS3StoreWithClient(&fakeS3{}, models.StorageConfig{Bucket: "b", PublicBaseURL: "https://cdn.example.com/"})

	assert.Equal(t, "https://cdn.example.com/proofs/x.png", store.URL("proofs/x.png"))
}

func TestS3Store_PutError(t *testing.T) {
	store := NewS3StoreWithClient(&fakeS3{err: errors.New("AccessDenied")}, models.StorageConfig{Bucket: "b"})

	url, err := store.Put(context.Background(), "proofs/x.png", "image/png", strings.NewReader("x"), 1)

	require.Error(t, err)
	assert.Empty(t, url)
	assert.Contains(t, err.Error(), "AccessDenied")
}

func TestS3Store_FailsFastWhileBucketIsDown(t *testing.T) {
	client := &fakeS3{err: errors.New("ServiceUnavailable")}
	store := NewS3StoreWithClient(client, models.StorageConfig{Bucket: "b"})

	threshold := circuitbreaker.DefaultConfig("s3:b").FailureThreshold
	for i := 0; i < threshold; i++ {
		_, err := store.Put(context.Background(), "proofs/x.png", "image/png", strings.NewReader("x"), 1)
		require.Error(t, err)
	}

	_, err := store.Put(context.Background(), "proofs/x.png", "image/png", strings.NewReader("x"), 1)

	assert.ErrorIs(t, err, circuitbreaker.ErrOpen)
	assert.Equal(t, threshold, client.calls)
}
