package s3client

import (
	"bytes"
	"context"

	"appraisal-backend/config"

	"github.com/minio/minio-go/v7"
)

var Client *minio.Client

type Provider interface {
	UploadSnapshot(ctx context.Context, objectName string, payload []byte) error
	MakeBucket(ctx context.Context) error
}

func NewClient(minioClient *minio.Client) Provider {
	return &s3client{minioClient: minioClient}
}

type s3client struct {
	minioClient *minio.Client
}

func (s s3client) MakeBucket(ctx context.Context) error {
	bucketName := config.Conf.S3.BucketName
	location := "us-east-1"
	exists, err := s.minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return s.minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location})
}

func (s s3client) UploadSnapshot(ctx context.Context, objectName string, payload []byte) error {
	if err := s.MakeBucket(ctx); err != nil {
		return err
	}
	_, err := s.minioClient.PutObject(ctx, config.Conf.S3.BucketName, objectName,
		bytes.NewReader(payload), int64(len(payload)),
		minio.PutObjectOptions{ContentType: "application/json"})
	return err
}
