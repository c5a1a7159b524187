package objectstore

import (
	"context"
	"io"
	"log"
	"os"

	"lexintake/internal/infrastructure/database"
	"lexintake/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const defaultAttachmentsBucket = "lead-attachments"

// ConnectS3 creates an S3 client using environment variables.
//
// Supported env vars (local-friendly):
//   - AWS_REGION / AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY
//   - S3_ENDPOINT (optional; e.g. http://minio:9000, enables path-style)
func ConnectS3() *s3.Client {
	cfg, err := database.NewAWSConfigFromEnv(context.Background())
	if err != nil {
		log.Fatalf("failed to create s3 config: %v", err)
	}

	endpoint := os.Getenv("S3_ENDPOINT")
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
}

// S3AttachmentStore holds lead attachments in a single bucket, keyed by
// leads/<lead-id>/<n>-<filename>.

type S3AttachmentStore struct {
	client *s3.Client
	bucket string
}

var _ interfaces.IAttachmentStore = (*S3AttachmentStore)(nil)

func NewS3AttachmentStore(client *s3.Client) *S3AttachmentStore {
	bucket := os.Getenv("ATTACHMENTS_BUCKET")
	if bucket == "" {
		bucket = defaultAttachmentsBucket
	}
	return &S3AttachmentStore{client: client, bucket: bucket}
}

func (s *S3AttachmentStore) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if size > 0 {
		input.ContentLength = aws.Int64(size)
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", err
	}
	return key, nil
}

func (s *S3AttachmentStore) Remove(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}
