package storage

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
)

const (
	// maxReceiptWidth bounds what gets sent to the extraction service. Phone
	// photos are routinely 4000px wide; the model reads a 1600px scan just as
	// well and the upload is a fraction of the size.
	maxReceiptWidth    = 1600
	receiptJPEGQuality = 85

	// maxProfileSize bounds avatars and company logos.
	maxProfileSize     = 512
	profileJPEGQuality = 90
)

// NormalizeReceiptImage re-encodes a receipt photo as a bounded-width JPEG.
// Returns the encoded bytes and their MIME type.
func NormalizeReceiptImage(data []byte) ([]byte, string, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode receipt image: %w", err)
	}

	if img.Bounds().Dx() > maxReceiptWidth {
		img = imaging.Resize(img, maxReceiptWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(receiptJPEGQuality)); err != nil {
		return nil, "", fmt.Errorf("failed to encode receipt image: %w", err)
	}
	return buf.Bytes(), "image/jpeg", nil
}

// NormalizeProfileImage fits an avatar or logo into a square bound and
// re-encodes it as JPEG.
func NormalizeProfileImage(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	img = imaging.Fit(img, maxProfileSize, maxProfileSize, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(profileJPEGQuality)); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}
