package objectstore

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"log"
	"net/http"
	"path"
	"strings"

	"github.com/citizenconnect/complaints-api/internal/config"
	"github.com/google/uuid"
	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Store uploads attachment binaries to a MinIO bucket. A nil Store (MinIO not
// configured) is valid: attachment metadata is still recorded with synthetic
// URLs and the binary is discarded.
type Store struct {
	client *minioSDK.Client
	bucket string
}

func Init() *Store {
	if config.MinioEndpoint == "" {
		log.Println("MinIO not configured, attachment binaries will not be persisted")
		return nil
	}

	transport := &http.Transport{
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: true,
		},
	}

	minioClient, err := minioSDK.New(config.MinioEndpoint, &minioSDK.Options{
		Creds:     credentials.NewStaticV4(config.MinioAccessKey, config.MinioSecretKey, ""),
		Secure:    config.MinioUseSSL,
		Transport: transport,
	})
	if err != nil {
		log.Fatalf("Failed to connect to MinIO: %v", err)
	}

	ctx := context.Background()
	exists, err := minioClient.BucketExists(ctx, config.MinioBucket)
	if err != nil {
		log.Fatalf("Failed to check bucket existence: %v", err)
	}
	if !exists {
		if err := minioClient.MakeBucket(ctx, config.MinioBucket, minioSDK.MakeBucketOptions{}); err != nil {
			log.Fatalf("Failed to create bucket: %v", err)
		}
		log.Printf("Bucket created: %s", config.MinioBucket)
	}

	log.Println("Connected to MinIO")
	return &Store{
		client: minioClient,
		bucket: config.MinioBucket,
	}
}

// ObjectKey builds a collision-free key for an uploaded file.
func ObjectKey(fileName string) string {
	base := strings.ReplaceAll(path.Base(fileName), " ", "_")
	return fmt.Sprintf("complaints/%s-%s", uuid.NewString(), base)
}

// PublicURL maps an object key to the citizen-facing link.
func PublicURL(key string) string {
	return config.PublicBaseURL + "/uploads/" + key
}

func (s *Store) Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	if s == nil {
		return nil
	}
	_, err := s.client.PutObject(ctx, s.bucket, key, reader, size, minioSDK.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}
