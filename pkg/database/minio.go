package database

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/url"
	"os"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIOEndpoint save minio endpoint
var MinIOEndpoint string

// MinIOClientRepo definition object storage access
type MinIOClientRepo interface {
	UploadFile(ctx context.Context, objectName, filePath, contentType string) error
	DownloadFile(ctx context.Context, objectName, destPath string) error
	PresignGetURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
	StatObject(ctx context.Context, objectName string) (minio.ObjectInfo, error)
}

// MinIOClient definition minio client
type MinIOClient struct {
	Client     *minio.Client
	BucketName string
}

// NewMinIOConnection create a new minio connection with retry
func NewMinIOConnection(d MinIOConnection) (*MinIOClient, error) {
	var mc *MinIOClient
	var err error

	for i := 1; i <= d.RetryCount; i++ {
		mc, err = NewMinioClient(d.Endpoint, d.User, d.Password, d.BucketName, d.UseSSL)
		if err == nil {
			MinIOEndpoint = d.Endpoint
			log.Printf("minIO[%s] connected (attempt %d)", d.Endpoint, i)
			return mc, nil
		}

		log.Printf("minIO[%s] connection failed (attempt %d/%d): %v", d.Endpoint, i, d.RetryCount, err)
		time.Sleep(d.RetryInterval)
	}

	return mc, err
}

// NewMinioClient create a new minio client and ensure the bucket exists
func NewMinioClient(endpoint, accessKey, secretKey, bucketName string, useSSL bool) (*MinIOClient, error) {
	minioClient, err := minio.New(endpoint,
		&minio.Options{
			Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
			Secure: useSSL,
		})
	if err != nil {
		return nil, fmt.Errorf("init MinIO failed: %v", err)
	}

	ctx := context.Background()
	exists, err := minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return nil, fmt.Errorf("check bucket [%s] failed: %v", bucketName, err)
	}

	if !exists {
		if err = minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket [%s] failed: %v", bucketName, err)
		}
		log.Printf("Bucket [%s] created", bucketName)
	} else {
		log.Printf("Bucket [%s] already exists", bucketName)
	}

	return &MinIOClient{
		Client:     minioClient,
		BucketName: bucketName,
	}, nil
}

// UploadFile minio upload file func
func (m *MinIOClient) UploadFile(ctx context.Context, objectName, filePath, contentType string) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("open file failed: %v", err)
	}
	defer file.Close()

	_, err = m.Client.PutObject(ctx, m.BucketName, objectName, file, -1, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

// DownloadFile minio download file func
func (m *MinIOClient) DownloadFile(ctx context.Context, objectName, destPath string) error {
	obj, err := m.Client.GetObject(ctx, m.BucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return fmt.Errorf("get object failed: %v", err)
	}
	defer obj.Close()

	destFile, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("create file failed: %v", err)
	}
	defer destFile.Close()

	_, err = io.Copy(destFile, obj)
	return err
}

// PresignGetURL generate a presigned URL for the given object
func (m *MinIOClient) PresignGetURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	reqParams := make(url.Values)
	presignedURL, err := m.Client.PresignedGetObject(ctx, m.BucketName, objectName, expiry, reqParams)
	if err != nil {
		return "", fmt.Errorf("generate presigned URL failed: %w", err)
	}
	return presignedURL.String(), nil
}

// StatObject check object existence and metadata
func (m *MinIOClient) StatObject(ctx context.Context, objectName string) (minio.ObjectInfo, error) {
	return m.Client.StatObject(ctx, m.BucketName, objectName, minio.StatObjectOptions{})
}
