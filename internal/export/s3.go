// Package export uploads rendered reports to S3.
package export

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"path"
	"time"

	"FlowTagger/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const (
	putTimeout = 5 * time.Second
	maxBackoff = 2 * time.Second
)

// S3Uploader uploads rendered reports to an S3 bucket.
type S3Uploader struct {
	cfg    config.S3Config
	client *s3.Client
}

// NewS3Uploader loads the default AWS config for the configured region and
// creates the S3 client. SDK-level retries are disabled; the uploader runs
// its own bounded backoff loop.
func NewS3Uploader(ctx context.Context, cfg config.S3Config) (*S3Uploader, error) {
	awsCfg, err := awscfg.LoadDefaultConfig(ctx, awscfg.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.RetryMaxAttempts = 0
	})

	return &S3Uploader{cfg: cfg, client: client}, nil
}

// UploadReport uploads the rendered report under the configured prefix,
// keyed by the run timestamp. Each attempt gets its own timeout; attempts
// back off exponentially up to maxBackoff and the loop is cancel-safe.
func (u *S3Uploader) UploadReport(ctx context.Context, timestamp string, body []byte) error {
	key := path.Join(u.cfg.Prefix, fmt.Sprintf("report-%s.txt", timestamp))

	var lastErr error
	backoff := 200 * time.Millisecond

	for attempt := 1; attempt <= u.cfg.Retries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := u.putObject(ctx, key, body); err == nil {
			log.Printf("Uploaded report to s3://%s/%s", u.cfg.Bucket, key)
			return nil
		} else {
			lastErr = err
			log.Printf("Warning: S3 upload attempt %d/%d failed: %v", attempt, u.cfg.Retries, err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
			backoff *= 2
			if backoff > maxBackoff {
				backoff = maxBackoff
			}
		}
	}

	return lastErr
}

func (u *S3Uploader) putObject(ctx context.Context, key string, body []byte) error {
	ctx, cancel := context.WithTimeout(ctx, putTimeout)
	defer cancel()

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("text/plain"),
	})
	return err
}
