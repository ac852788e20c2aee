package services

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"alfredoptarigan/interview-assistant/internal/config"
)

type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
}

type s3StorageService struct {
	client s3API
	bucket string
	prefix string
}

// NewS3StorageService builds an S3 client from cfg. A custom endpoint (R2,
// MinIO) switches the client to path-style addressing.
func NewS3StorageService(ctx context.Context, cfg config.S3Config) (StorageService, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return newS3StorageService(client, cfg.Bucket, cfg.Prefix), nil
}

func newS3StorageService(client s3API, bucket, prefix string) *s3StorageService {
	return &s3StorageService{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

// EnsureUploadDir checks that the bucket is reachable.
func (s *s3StorageService) EnsureUploadDir() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)}); err != nil {
		return fmt.Errorf("failed to reach bucket %s: %w", s.bucket, err)
	}

	log.Printf("🪣 Using bucket %s for uploads", s.bucket)
	return nil
}

func (s *s3StorageService) SaveFile(ctx context.Context, filename string, data []byte) (string, error) {
	key := s.objectKey(filename)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	return s.GetFilePath(filename), nil
}

func (s *s3StorageService) GetFilePath(filename string) string {
	return fmt.Sprintf("s3://%s/%s", s.bucket, s.objectKey(filename))
}

func (s *s3StorageService) objectKey(filename string) string {
	return path.Join(s.prefix, path.Base(filename))
}
