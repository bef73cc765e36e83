package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
	"github.com/princeprakhar/movie-review-backend/internal/config"
	"github.com/princeprakhar/movie-review-backend/internal/utils"
	"github.com/princeprakhar/movie-review-backend/pkg/logger"
	"github.com/sirupsen/logrus"
)

// MaxPosterSize caps a single poster upload.
const MaxPosterSize = 10 * 1024 * 1024

var posterTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// PosterStorage persists poster images and returns their public URL.
type PosterStorage interface {
	UploadPoster(ctx context.Context, body io.Reader, filename, contentType string, size int64) (string, error)
}

type S3PosterStorage struct {
	client   *s3.S3
	bucket   string
	region   string
	endpoint string
}

func NewS3PosterStorage(cfg config.S3Config) (*S3PosterStorage, error) {
	awsCfg := &aws.Config{
		Region: aws.String(cfg.Region),
	}
	if cfg.AccessKey != "" {
		awsCfg.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}
	if cfg.Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.Endpoint)
		awsCfg.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create aws session: %w", err)
	}

	return &S3PosterStorage{
		client:   s3.New(sess),
		bucket:   cfg.Bucket,
		region:   cfg.Region,
		endpoint: strings.TrimRight(cfg.Endpoint, "/"),
	}, nil
}

func (s *S3PosterStorage) UploadPoster(ctx context.Context, body io.Reader, filename, contentType string, size int64) (string, error) {
	contentType, err := PosterContentType(filename, contentType, size)
	if err != nil {
		return "", err
	}
	key := PosterKey(time.Now(), contentType, filename)

	// PutObject needs a seekable body.
	buf := bytes.NewBuffer(nil)
	if _, err := io.Copy(buf, io.LimitReader(body, MaxPosterSize+1)); err != nil {
		return "", fmt.Errorf("failed to read poster: %w", err)
	}
	if buf.Len() > MaxPosterSize {
		return "", utils.NewFieldError("poster", fmt.Sprintf("poster must be at most %d bytes", MaxPosterSize))
	}

	_, err = s.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(buf.Bytes()),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("max-age=31536000"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload poster to S3: %w", err)
	}

	url := s.objectURL(key)
	logger.WithFields(logrus.Fields{
		"key":  key,
		"size": buf.Len(),
	}).Info("poster uploaded")
	return url, nil
}

func (s *S3PosterStorage) objectURL(key string) string {
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

// PosterContentType resolves and checks the image type of an upload, falling
// back to the file extension when the client sent no usable content type.
func PosterContentType(filename, contentType string, size int64) (string, error) {
	if size > MaxPosterSize {
		return "", utils.NewFieldError("poster", fmt.Sprintf("poster must be at most %d bytes", MaxPosterSize))
	}

	contentType = strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = strings.TrimSpace(contentType[:i])
	}
	if contentType == "image/jpg" {
		contentType = "image/jpeg"
	}
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = contentTypeFromExtension(filename)
	}

	if _, ok := posterTypes[contentType]; !ok {
		return "", utils.NewFieldError("poster", "poster must be a jpeg, png, webp or gif image")
	}
	return contentType, nil
}

// PosterKey builds the object key posters/YYYY/MM/DD/<uuid><ext>.
func PosterKey(now time.Time, contentType, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if contentTypeFromExtension(filename) != contentType {
		ext = posterTypes[contentType]
	}
	return fmt.Sprintf("posters/%s/%s%s", now.UTC().Format("2006/01/02"), uuid.New().String(), ext)
}

func contentTypeFromExtension(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	case ".gif":
		return "image/gif"
	default:
		return ""
	}
}
