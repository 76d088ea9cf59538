package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/rpupo63/sleeklegal-backend/config"
	"github.com/rpupo63/sleeklegal-backend/errs"
)

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// ObjectPutter is the part of the S3 client used to store images
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// ImageStore uploads attorney portraits and blog images to S3 and returns
// the public URL that goes into imageUrl.
type ImageStore struct {
	client  ObjectPutter
	bucket  string
	prefix  string
	baseURL string
}

// NewImageStore reads S3_BUCKET, S3_PREFIX, S3_PUBLIC_BASE_URL and AWS_REGION
func NewImageStore(ctx context.Context, cfg map[string]string) (*ImageStore, error) {
	bucket := config.GetString(cfg, "S3_BUCKET", "")
	if bucket == "" {
		return nil, errs.NewEnvironmentVariableError("S3_BUCKET")
	}

	var opts []func(*awsconfig.LoadOptions) error
	if region := config.GetString(cfg, "AWS_REGION", ""); region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	baseURL := config.GetString(cfg, "S3_PUBLIC_BASE_URL", fmt.Sprintf("https://%s.s3.amazonaws.com", bucket))
	return NewImageStoreWithClient(s3.NewFromConfig(awsCfg), bucket, config.GetString(cfg, "S3_PREFIX", "images"), baseURL), nil
}

func NewImageStoreWithClient(client ObjectPutter, bucket, prefix, baseURL string) *ImageStore {
	return &ImageStore{
		client:  client,
		bucket:  bucket,
		prefix:  strings.Trim(prefix, "/"),
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// Upload stores body under a fresh key in the given folder and returns its URL
func (s *ImageStore) Upload(ctx context.Context, folder, contentType string, body io.Reader) (string, error) {
	ext, ok := imageExtensions[contentType]
	if !ok {
		return "", errs.NewInvalidFieldError("file", "unsupported image type "+contentType)
	}

	key := path.Join(s.prefix, folder, uuid.NewString()+ext)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         body,
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("public, max-age=31536000"),
	})
	if err != nil {
		return "", errs.NewServiceUnavailableError("s3", err)
	}

	return s.baseURL + "/" + key, nil
}
