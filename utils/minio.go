package utils

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/ieee-swc/ClubBack/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var MinioClient *minio.Client

func MinioInit() {
	cfg := config.GetConfig()

	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: !cfg.Debug,
	})
	if err != nil {
		Fatal("❌ MinIO init failed: %v", err)
	}

	MinioClient = client
	Success("MinIO client ready.")
}

// UploadObject stores buf under a generated name with the given prefix and
// returns the public URL.
func UploadObject(ctx context.Context, prefix string, buf *bytes.Buffer, contentType string) (string, error) {
	cfg := config.GetConfig()
	if MinioClient == nil {
		return "", fmt.Errorf("object storage not configured")
	}

	ext := ".bin"
	switch contentType {
	case "image/webp":
		ext = ".webp"
	case "application/pdf":
		ext = ".pdf"
	}
	objectName := prefix + uuid.NewString() + ext

	_, err := MinioClient.PutObject(ctx, cfg.MinioBucket, objectName,
		bytes.NewReader(buf.Bytes()), int64(buf.Len()),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", err
	}

	return cfg.MinioURL + "/" + cfg.MinioBucket + "/" + objectName, nil
}
