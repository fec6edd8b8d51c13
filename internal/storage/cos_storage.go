package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/tencentyun/cos-go-sdk-v5"

	"portfolio/internal/config"
)

// cosBucket 将上传写入腾讯云 COS
type cosBucket struct {
	client *cos.Client
	prefix string
}

func NewCOSStorage(cfg config.Config) (Storage, error) {
	rawURL := strings.TrimSpace(cfg.StorageCOSBucketURL)
	if rawURL == "" {
		return nil, errors.New("storage: missing COS bucket URL")
	}
	bucketURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("storage: parse COS bucket URL: %w", err)
	}

	secretID := strings.TrimSpace(cfg.StorageCOSSecretID)
	secretKey := strings.TrimSpace(cfg.StorageCOSSecretKey)
	if secretID == "" || secretKey == "" {
		return nil, errors.New("storage: missing COS credentials")
	}

	client := cos.NewClient(&cos.BaseURL{BucketURL: bucketURL}, &http.Client{
		Transport: &cos.AuthorizationTransport{SecretID: secretID, SecretKey: secretKey},
	})

	return &cosBucket{client: client, prefix: cleanPrefix(cfg.StorageCOSPrefix)}, nil
}

func (b *cosBucket) Save(ctx context.Context, data []byte, opts SaveOptions) (string, error) {
	if err := ensurePayload(ctx, data); err != nil {
		return "", err
	}

	key := objectKey(b.prefix, opts)

	if opts.SkipIfExists {
		resp, err := b.client.Object.Head(ctx, key, nil)
		closeCOSResponse(resp)
		if err == nil {
			return key, nil
		}
		if !cos.IsNotFoundError(err) {
			return "", fmt.Errorf("head object: %w", err)
		}
	}

	putOptions := &cos.ObjectPutOptions{
		ObjectPutHeaderOptions: &cos.ObjectPutHeaderOptions{
			ContentType: contentTypeFor(opts.Extension),
		},
	}
	resp, err := b.client.Object.Put(ctx, key, bytes.NewReader(data), putOptions)
	closeCOSResponse(resp)
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	return key, nil
}

func closeCOSResponse(resp *cos.Response) {
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
}

var _ Storage = (*cosBucket)(nil)
