package media

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscreds "github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/vincent-petithory/dataurl"
	"go.uber.org/zap"

	"github.com/ppopeskul/telegram-dashboard/internal/config"
)

// Uploader stores a file and returns a URL the backend can download it from.
type Uploader interface {
	Upload(ctx context.Context, name, contentType string, data []byte) (string, error)
}

// MaxDataURLSize bounds files inlined as data: URLs.
const MaxDataURLSize = 5 * mb

// DataURLUploader inlines small files as base64 data: URLs.
type DataURLUploader struct{}

// Upload inlines data as a base64 data URL. No network call is made.
func (DataURLUploader) Upload(_ context.Context, _ string, contentType string, data []byte) (string, error) {
	if len(data) > MaxDataURLSize {
		return "", fmt.Errorf("%w: data URLs are limited to %d MB", ErrFileTooLarge, MaxDataURLSize/mb)
	}
	return dataurl.New(data, contentType).String(), nil
}

// QRDataURL turns the backend's qr_image_base64 into a displayable data URL.
// Values that already are data URLs are checked and returned unchanged.
func QRDataURL(qrBase64 string) (string, error) {
	qrBase64 = strings.TrimSpace(qrBase64)
	if qrBase64 == "" {
		return "", ErrInvalidQRImage
	}
	if strings.HasPrefix(qrBase64, "data:") {
		if _, err := dataurl.DecodeString(qrBase64); err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidQRImage, err)
		}
		return qrBase64, nil
	}

	raw, err := base64.StdEncoding.DecodeString(qrBase64)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidQRImage, err)
	}
	return dataurl.New(raw, "image/png").String(), nil
}

// PutObjectAPI is the part of the S3 client the uploader needs.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Uploader struct {
	client  PutObjectAPI
	cfg     config.S3Config
	logger  *zap.Logger
	baseURL string
}

// NewS3Client builds an S3 client with static credentials. A custom endpoint
// selects an S3 compatible store such as MinIO.
func NewS3Client(cfg *config.S3Config) *s3.Client {
	awsCfg := aws.Config{
		Region:      cfg.Region,
		Credentials: awscreds.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
	}
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.PathStyle
	})
}

// NewS3Uploader uploads into cfg.Bucket through client.
func NewS3Uploader(client PutObjectAPI, cfg *config.S3Config, logger *zap.Logger) *S3Uploader {
	return &S3Uploader{
		client:  client,
		cfg:     *cfg,
		logger:  logger,
		baseURL: publicBaseURL(cfg),
	}
}

func publicBaseURL(cfg *config.S3Config) string {
	switch {
	case cfg.PublicBaseURL != "":
		return strings.TrimRight(cfg.PublicBaseURL, "/")
	case cfg.Endpoint != "" && cfg.PathStyle:
		return strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	case cfg.Endpoint != "":
		return strings.TrimRight(cfg.Endpoint, "/")
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}
}

// Upload stores data under a unique key and returns its public URL.
func (u *S3Uploader) Upload(ctx context.Context, name, contentType string, data []byte) (string, error) {
	key := "uploads/" + UniqueFilename(name)

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.cfg.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	u.logger.Info("Media uploaded",
		zap.String("bucket", u.cfg.Bucket),
		zap.String("key", key),
		zap.Int("size", len(data)))
	return u.baseURL + "/" + key, nil
}

// NewUploader builds the uploader selected by cfg.Uploader.
func NewUploader(cfg *config.MediaConfig, logger *zap.Logger) (Uploader, error) {
	switch cfg.Uploader {
	case "dataurl", "":
		return DataURLUploader{}, nil
	case "s3":
		if cfg.S3.Bucket == "" {
			return nil, fmt.Errorf("%w: media.s3.bucket is empty", ErrUploaderMissing)
		}
		return NewS3Uploader(NewS3Client(&cfg.S3), &cfg.S3, logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUploaderMissing, cfg.Uploader)
	}
}
