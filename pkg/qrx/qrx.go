// Package qrx renders string payloads as QR code PNG images and reads them
// back. Images are exchanged as standard base64 so they can be embedded in
// JSON documents.
package qrx

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/png" // PNG decoder for image.Decode

	"github.com/makiuchi-d/gozxing"
	gozxingqr "github.com/makiuchi-d/gozxing/qrcode"
	qrcode "github.com/skip2/go-qrcode"
)

// DefaultSize is the edge length in pixels of generated images.
const DefaultSize = 256

var (
	// ErrEncoding is returned when a payload cannot be rendered, most
	// commonly because it exceeds the symbol capacity for the chosen
	// recovery level. No truncated image is ever produced.
	ErrEncoding = errors.New("qrx: cannot encode payload")

	// ErrDecoding is returned when an image does not contain a readable QR code.
	ErrDecoding = errors.New("qrx: cannot decode image")
)

// Encoder renders QR code images.
type Encoder struct {
	Level qrcode.RecoveryLevel
	Size  int
}

// NewEncoder returns an Encoder using medium error correction and DefaultSize.
func NewEncoder() Encoder {
	return Encoder{Level: qrcode.Medium, Size: DefaultSize}
}

// Encode renders payload as a PNG image.
func (e Encoder) Encode(payload string) ([]byte, error) {
	if payload == "" {
		return nil, fmt.Errorf("%w: empty payload", ErrEncoding)
	}

	size := e.Size
	if size == 0 {
		size = DefaultSize
	}

	png, err := qrcode.Encode(payload, e.Level, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return png, nil
}

// EncodeBase64 renders payload as a PNG image and returns it base64 encoded.
func (e Encoder) EncodeBase64(payload string) (string, error) {
	png, err := e.Encode(payload)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(png), nil
}

// Decode reads the payload of the QR code contained in a PNG image.
func Decode(png []byte) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(png))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecoding, err)
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecoding, err)
	}

	result, err := gozxingqr.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecoding, err)
	}

	return result.GetText(), nil
}

// DecodeBase64 is like Decode but takes a base64 encoded image.
func DecodeBase64(s string) (string, error) {
	png, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return "", fmt.Errorf("%w: invalid base64: %w", ErrDecoding, err)
	}
	return Decode(png)
}
