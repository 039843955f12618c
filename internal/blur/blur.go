package blur

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/disintegration/imaging"

	"github.com/2YH02/portfolio-be/internal/apperr"
)

const (
	Sigma       = 10.0
	JPEGQuality = 60
	dataURLHead = "data:image/jpeg;base64,"
)

// Blurrer turns a remote image into a blurred JPEG data URL for placeholders.
type Blurrer struct {
	client   *http.Client
	maxBytes int64
}

func NewBlurrer(timeout time.Duration, maxBytes int64) *Blurrer {
	return &Blurrer{
		client:   &http.Client{Timeout: timeout},
		maxBytes: maxBytes,
	}
}

func (b *Blurrer) Blur(ctx context.Context, url string) (string, error) {
	if url == "" {
		return "", apperr.BadRequest("url is required")
	}
	data, err := b.fetch(ctx, url)
	if err != nil {
		return "", apperr.BadRequest(fmt.Sprintf("failed to fetch image: %v", err))
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return "", apperr.Internal("decode image", err)
	}
	blurred := imaging.Blur(img, Sigma)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, blurred, imaging.JPEG, imaging.JPEGQuality(JPEGQuality)); err != nil {
		return "", apperr.Internal("encode image", err)
	}
	return dataURLHead + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func (b *Blurrer) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := b.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, b.maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > b.maxBytes {
		return nil, fmt.Errorf("image larger than %d bytes", b.maxBytes)
	}
	return data, nil
}
