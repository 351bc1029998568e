package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"

	"github.com/HemInfotech/hem_api/internal/config"
)

// S3Service archives rendered quotation documents in a bucket.
type S3Service struct {
	client   *s3.Client
	bucket   string
	region   string
	endpoint string
}

// NewS3Service creates a new S3 service. Static credentials are used when
// configured; otherwise the default AWS credential chain applies. A custom
// endpoint switches to path-style addressing for S3-compatible stores.
func NewS3Service(ctx context.Context, cfg *config.S3Config) (*S3Service, error) {
	if cfg == nil {
		return nil, fmt.Errorf("S3 config is nil")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Service{
		client:   client,
		bucket:   cfg.Bucket,
		region:   cfg.Region,
		endpoint: strings.TrimRight(cfg.Endpoint, "/"),
	}, nil
}

// QuotationKey is the object key of one rendered version of a quotation.
func QuotationKey(id int, version time.Time) string {
	return fmt.Sprintf("quotations/%d/quotation_%d_%d.pdf", id, id, version.Unix())
}

// UploadQuotationPDF stores a rendered quotation and returns its object URL.
func (s *S3Service) UploadQuotationPDF(ctx context.Context, id int, version time.Time, data []byte) (string, error) {
	key := QuotationKey(id, version)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/pdf"),
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("Failed to upload to S3")
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	log.Info().Str("key", key).Int("bytes", len(data)).Msg("Successfully uploaded to S3")
	return s.GetObjectURL(key), nil
}

// GetObjectURL returns the URL for an S3 object
func (s *S3Service) GetObjectURL(key string) string {
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
