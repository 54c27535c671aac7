package ports

import "context"

// QRRenderer renders a payload as a QR code image data URL
type QRRenderer interface {
	Render(ctx context.Context, payload string) (string, error)
}
