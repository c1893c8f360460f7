package archive_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/landkit/pkg/archive"
)

type MockS3Client struct {
	mock.Mock
}

func (m *MockS3Client) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, params, optFns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.PutObjectOutput), args.Error(1)
}

func newArchive(t *testing.T, client archive.S3Client, prefix string) *archive.Archive {
	t.Helper()
	arc, err := archive.New(context.Background(), archive.Config{
		Bucket: "leads-bucket",
		Region: "us-east-1",
		Prefix: prefix,
	}, archive.WithS3Client(client))
	require.NoError(t, err)
	return arc
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("missing bucket", func(t *testing.T) {
		t.Parallel()
		_, err := archive.New(context.Background(), archive.Config{Region: "us-east-1"})
		assert.ErrorIs(t, err, archive.ErrInvalidConfig)
	})

	t.Run("missing region", func(t *testing.T) {
		t.Parallel()
		_, err := archive.New(context.Background(), archive.Config{Bucket: "b"})
		assert.ErrorIs(t, err, archive.ErrInvalidConfig)
	})

	t.Run("prefix normalization", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			prefix string
			want   string
		}{
			{"", "a.json"},
			{"leads", "leads/a.json"},
			{"/leads/", "leads/a.json"},
			{"leads//2026/", "leads/2026/a.json"},
		}
		for _, tt := range tests {
			arc := newArchive(t, new(MockS3Client), tt.prefix)
			assert.Equal(t, tt.want, arc.Key("a.json"), "prefix %q", tt.prefix)
		}
	})
}

func TestArchive_Put(t *testing.T) {
	t.Parallel()

	t.Run("writes json document", func(t *testing.T) {
		t.Parallel()
		client := new(MockS3Client)
		var captured []byte
		client.On("PutObject",
			mock.Anything,
			mock.MatchedBy(func(params *s3.PutObjectInput) bool {
				if params.Bucket == nil || *params.Bucket != "leads-bucket" {
					return false
				}
				if params.Key == nil || *params.Key != "leads/2026/abc.json" {
					return false
				}
				if params.ContentType == nil || *params.ContentType != "application/json; charset=utf-8" {
					return false
				}
				body, err := io.ReadAll(params.Body)
				if err != nil {
					return false
				}
				captured = body
				return true
			}),
			mock.Anything,
		).Return(&s3.PutObjectOutput{}, nil).Once()

		arc := newArchive(t, client, "leads/")
		key, err := arc.Put(context.Background(), "2026/abc.json", map[string]string{"name": "Jordan"})
		require.NoError(t, err)
		assert.Equal(t, "leads/2026/abc.json", key)

		var doc map[string]string
		require.NoError(t, json.Unmarshal(captured, &doc))
		assert.Equal(t, "Jordan", doc["name"])
		client.AssertExpectations(t)
	})

	t.Run("rejects invalid key", func(t *testing.T) {
		t.Parallel()
		client := new(MockS3Client)
		arc := newArchive(t, client, "")

		_, err := arc.Put(context.Background(), "  ", struct{}{})
		assert.ErrorIs(t, err, archive.ErrInvalidKey)
		_, err = arc.Put(context.Background(), "../escape.json", struct{}{})
		assert.ErrorIs(t, err, archive.ErrInvalidKey)
		client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("encode failure", func(t *testing.T) {
		t.Parallel()
		arc := newArchive(t, new(MockS3Client), "")
		_, err := arc.Put(context.Background(), "x.json", make(chan int))
		assert.ErrorIs(t, err, archive.ErrEncode)
	})

	t.Run("classifies sdk errors", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			name string
			err  error
			want error
		}{
			{"access denied", &smithy.GenericAPIError{Code: "AccessDenied"}, archive.ErrAccessDenied},
			{"no such bucket", &smithy.GenericAPIError{Code: "NoSuchBucket"}, archive.ErrBucketNotFound},
			{"slow down", &smithy.GenericAPIError{Code: "SlowDown"}, archive.ErrServiceUnavailable},
			{"deadline", context.DeadlineExceeded, archive.ErrOperationTimeout},
			{"canceled", context.Canceled, archive.ErrOperationCanceled},
			{"other", errors.New("boom"), archive.ErrPutFailed},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()
				client := new(MockS3Client)
				client.On("PutObject", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)
				arc := newArchive(t, client, "")
				_, err := arc.Put(context.Background(), "x.json", struct{}{})
				assert.ErrorIs(t, err, tt.want)
			})
		}
	})
}
