package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/sleeklegal-backend/errs"
)

type fakePutter struct {
	input *s3.PutObjectInput
	body  string
	err   error
}

func (f *fakePutter) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	b, _ := io.ReadAll(params.Body)
	f.body = string(b)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestImageStoreUpload(t *testing.T) {
	putter := &fakePutter{}
	store := NewImageStoreWithClient(putter, "site-media", "/images/", "https://cdn.example.com/")

	url, err := store.Upload(context.Background(), "attorneys", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)

	key := aws.ToString(putter.input.Key)
	assert.True(t, strings.HasPrefix(key, "images/attorneys/"))
	assert.True(t, strings.HasSuffix(key, ".png"))
	assert.Equal(t, "site-media", aws.ToString(putter.input.Bucket))
	assert.Equal(t, "image/png", aws.ToString(putter.input.ContentType))
	assert.Equal(t, "png-bytes", putter.body)
	assert.Equal(t, "https://cdn.example.com/"+key, url)
}

func TestImageStoreRejectsUnknownType(t *testing.T) {
	putter := &fakePutter{}
	store := NewImageStoreWithClient(putter, "b", "images", "https://cdn.example.com")

	_, err := store.Upload(context.Background(), "blog", "application/pdf", strings.NewReader("x"))
	assert.True(t, errs.IsInvalidFieldError(err))
	assert.Nil(t, putter.input)
}

func TestImageStoreUploadFailure(t *testing.T) {
	store := NewImageStoreWithClient(&fakePutter{err: errors.New("access denied")}, "b", "images", "https://cdn.example.com")
	_, err := store.Upload(context.Background(), "blog", "image/jpeg", strings.NewReader("x"))
	assert.ErrorIs(t, err, errs.ErrServiceUnavailable)
}
