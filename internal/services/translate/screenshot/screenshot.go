// Package screenshot validates and stores reference screenshots of source
// strings. Objects are content-addressed: the name is the SHA-256 of the
// image bytes plus the extension of the decoded format.
package screenshot

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"regexp"
)

// DefaultMaxBytes is the upload limit applied when none is configured.
const DefaultMaxBytes int64 = 2 << 20

var (
	// ErrEmpty reports a missing or zero-length upload.
	ErrEmpty = errors.New("screenshot is empty")
	// ErrTooLarge reports an upload above the configured limit.
	ErrTooLarge = errors.New("screenshot is too large")
	// ErrUnsupportedFormat reports bytes that are not a PNG, JPEG or GIF image.
	ErrUnsupportedFormat = errors.New("screenshot is not a supported image")
	// ErrInvalidName reports an object name that is not content-addressed.
	ErrInvalidName = errors.New("invalid screenshot name")
)

var formats = map[string]struct {
	ext         string
	contentType string
}{
	"png":  {ext: ".png", contentType: "image/png"},
	"jpeg": {ext: ".jpg", contentType: "image/jpeg"},
	"gif":  {ext: ".gif", contentType: "image/gif"},
}

var namePattern = regexp.MustCompile(`^[0-9a-f]{64}\.(png|jpg|gif)$`)

// Image is a validated screenshot.
type Image struct {
	Name        string
	ContentType string
	Width       int
	Height      int
	Data        []byte
}

// Validate checks size and format and derives the object name.
func Validate(data []byte, maxBytes int64) (Image, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if len(data) == 0 {
		return Image{}, ErrEmpty
	}
	if int64(len(data)) > maxBytes {
		return Image{}, fmt.Errorf("%w: %d bytes exceeds %d", ErrTooLarge, len(data), maxBytes)
	}
	config, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Image{}, ErrUnsupportedFormat
	}
	info, ok := formats[format]
	if !ok {
		return Image{}, ErrUnsupportedFormat
	}
	sum := sha256.Sum256(data)
	return Image{
		Name:        hex.EncodeToString(sum[:]) + info.ext,
		ContentType: info.contentType,
		Width:       config.Width,
		Height:      config.Height,
		Data:        data,
	}, nil
}

// ValidName reports whether name is a content-addressed screenshot name.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// ContentType returns the MIME type for a valid object name.
func ContentType(name string) string {
	if !ValidName(name) {
		return ""
	}
	switch name[len(name)-4:] {
	case ".png":
		return "image/png"
	case ".jpg":
		return "image/jpeg"
	default:
		return "image/gif"
	}
}
