package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	aws_config "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Uploader wraps the S3 client used for profile photos. Credentials come
// from the default provider chain (env locally, IAM role in production).
type Uploader struct {
	cfg           config.StorageConfig
	client        *s3.Client
	presignClient *s3.PresignClient
}

func NewUploader(ctx context.Context, cfg config.StorageConfig) (*Uploader, error) {
	awsCfg, err := aws_config.LoadDefaultConfig(ctx, aws_config.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config for S3: %w", err)
	}

	client := s3.NewFromConfig(awsCfg)
	return &Uploader{
		cfg:           cfg,
		client:        client,
		presignClient: s3.NewPresignClient(client),
	}, nil
}

// Upload streams a multipart file to S3 under the given key and returns the key.
func (u *Uploader) Upload(ctx context.Context, fileHeader *multipart.FileHeader, key string) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	uploader := manager.NewUploader(u.client)

	_, err = uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.cfg.Bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(fileHeader.Header.Get("Content-Type")),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return key, nil
}

// PresignedURL returns a time-limited URL for reading an object.
func (u *Uploader) PresignedURL(ctx context.Context, key string) (string, error) {
	req, err := u.presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(u.cfg.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", fmt.Errorf("failed to presign URL: %w", err)
	}
	return req.URL, nil
}

// Delete removes an object from S3.
func (u *Uploader) Delete(ctx context.Context, key string) error {
	_, err := u.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(u.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete S3 object %s: %w", key, err)
	}
	return nil
}
