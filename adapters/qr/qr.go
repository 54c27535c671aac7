// Package qr renders challenge payloads as QR code image data URLs.
//
// Remote asks an image service such as api.qrserver.com, Local draws the
// PNG in process, and Fallback tries renderers in order.
package qr

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/citizenchain/citizenauth/ports"
)

const (
	// DefaultRemoteURL is the public QR image service
	DefaultRemoteURL = "https://api.qrserver.com/v1/create-qr-code/"
	// DefaultSize is the edge length of rendered images in pixels
	DefaultSize = 220

	maxImageBytes = 1 << 20
)

func dataURL(contentType string, img []byte) string {
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(img)
}

// Remote fetches QR images from an HTTP image service
type Remote struct {
	baseURL string
	size    int
	client  *http.Client
}

// NewRemote creates a renderer backed by the service at baseURL
func NewRemote(baseURL string, size int, timeout time.Duration) *Remote {
	return &Remote{
		baseURL: baseURL,
		size:    size,
		client:  &http.Client{Timeout: timeout},
	}
}

var _ ports.QRRenderer = (*Remote)(nil)

// Render fetches the image for payload and returns it as a data URL
func (r *Remote) Render(ctx context.Context, payload string) (string, error) {
	u, err := url.Parse(r.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid qr service url: %w", err)
	}
	q := u.Query()
	q.Set("size", strconv.Itoa(r.size)+"x"+strconv.Itoa(r.size))
	q.Set("data", payload)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build qr request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("qr request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("qr request failed: status %d", resp.StatusCode)
	}

	img, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read qr image: %w", err)
	}
	if len(img) == 0 {
		return "", errors.New("qr service returned an empty image")
	}

	contentType := "image/png"
	if mt, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type")); err == nil && strings.HasPrefix(mt, "image/") {
		contentType = mt
	}

	return dataURL(contentType, img), nil
}

// Local draws QR codes in process
type Local struct {
	size  int
	level qrcode.RecoveryLevel
}

// NewLocal creates an in-process PNG renderer
func NewLocal(size int) *Local {
	return &Local{size: size, level: qrcode.Medium}
}

var _ ports.QRRenderer = (*Local)(nil)

// Render encodes payload as a PNG data URL
func (l *Local) Render(_ context.Context, payload string) (string, error) {
	png, err := qrcode.Encode(payload, l.level, l.size)
	if err != nil {
		return "", fmt.Errorf("failed to encode qr: %w", err)
	}
	return dataURL("image/png", png), nil
}

// Fallback tries each renderer in turn and returns the first image
type Fallback struct {
	renderers []ports.QRRenderer
	logger    *slog.Logger
}

// NewFallback creates a renderer chain
func NewFallback(logger *slog.Logger, renderers ...ports.QRRenderer) *Fallback {
	if logger == nil {
		logger = slog.Default()
	}
	return &Fallback{renderers: renderers, logger: logger.With("component", "qr")}
}

var _ ports.QRRenderer = (*Fallback)(nil)

// Render returns the first successful rendering, or the joined errors of all
// renderers
func (f *Fallback) Render(ctx context.Context, payload string) (string, error) {
	var errs []error
	for i, r := range f.renderers {
		img, err := r.Render(ctx, payload)
		if err == nil {
			return img, nil
		}
		f.logger.DebugContext(ctx, "qr renderer failed", "index", i, "error", err)
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return "", errors.New("no qr renderer configured")
	}
	return "", errors.Join(errs...)
}
