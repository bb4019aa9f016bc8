package assets

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioUploader stores images in an S3-compatible bucket for sellers who
// host their own assets instead of using Cloudinary.
type MinioUploader struct {
	client    *minio.Client
	endpoint  string
	bucket    string
	folder    string
	useSSL    bool
	publicURL string
}

// NewMinioUploader connects to the endpoint and ensures the bucket
// exists. publicURL optionally overrides the URL prefix returned for
// uploaded objects (for a CDN in front of the bucket); empty means the
// endpoint itself.
func NewMinioUploader(endpoint, accessKey, secretKey, bucket, folder, publicURL string, useSSL bool) (*MinioUploader, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio client: %w", err)
	}
	ctx := context.Background()
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}
	return &MinioUploader{
		client:    client,
		endpoint:  endpoint,
		bucket:    bucket,
		folder:    folder,
		useSSL:    useSSL,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// Upload puts the file under folder/<uuid><ext> and returns its public URL.
func (u *MinioUploader) Upload(ctx context.Context, localPath string) (string, error) {
	file, err := os.Open(localPath)
	if err != nil {
		return "", &UploadError{Host: u.endpoint, Err: err}
	}
	defer file.Close()
	info, err := file.Stat()
	if err != nil {
		return "", &UploadError{Host: u.endpoint, Err: err}
	}

	key := uuid.NewString() + strings.ToLower(filepath.Ext(localPath))
	if u.folder != "" {
		key = strings.TrimRight(u.folder, "/") + "/" + key
	}

	_, err = u.client.PutObject(ctx, u.bucket, key, file, info.Size(), minio.PutObjectOptions{
		ContentType: contentTypeFor(localPath),
	})
	if err != nil {
		return "", &UploadError{Host: u.endpoint, Err: err}
	}
	return u.objectURL(key), nil
}

func (u *MinioUploader) objectURL(key string) string {
	if u.publicURL != "" {
		return u.publicURL + "/" + key
	}
	scheme := "http"
	if u.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, u.endpoint, u.bucket, key)
}
