package dipii

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// GenerateQRCode encodes link as a PNG of size×size pixels.
// For a PDF, size 256 is plenty.
func GenerateQRCode(link string, size int) ([]byte, error) {
	png, err := qrcode.Encode(link, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}
	return png, nil
}
