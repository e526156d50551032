// Package archive keeps a copy of every uploaded resume in S3-compatible object storage.
package archive

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Archiver stores an uploaded file and returns the object key it was written under.
type Archiver interface {
	Archive(ctx context.Context, filename, contentType string, data []byte) (string, error)
}

// Noop discards uploads. It is used when no bucket is configured.
type Noop struct{}

func (Noop) Archive(context.Context, string, string, []byte) (string, error) {
	return "", nil
}

// Options configures an S3 archiver.
type Options struct {
	Bucket    string
	Endpoint  string // empty uses the AWS default for Region
	Region    string
	AccessKey string
	SecretKey string
}

// S3 writes uploads to resumes/<uuid>/<filename> in one bucket.
type S3 struct {
	client *s3.Client
	bucket string
}

// NewS3 builds the client. Static credentials are used when both keys are set,
// otherwise the default AWS credential chain applies.
func NewS3(ctx context.Context, opts Options) (*S3, error) {
	if opts.Bucket == "" {
		return nil, fmt.Errorf("archive bucket is required")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(opts.Region)}
	if opts.AccessKey != "" && opts.SecretKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})
	return &S3{client: client, bucket: opts.Bucket}, nil
}

func (s *S3) Archive(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	key := ObjectKey(uuid.New(), filename)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return "", fmt.Errorf("failed to put object %s: %w", key, err)
	}
	return key, nil
}

// ObjectKey builds resumes/<id>/<base name>. Blank names become "resume".
func ObjectKey(id uuid.UUID, filename string) string {
	name := path.Base(strings.ReplaceAll(strings.TrimSpace(filename), "\\", "/"))
	if name == "." || name == "/" || name == "" {
		name = "resume"
	}
	return "resumes/" + id.String() + "/" + name
}
