// Package picture prepares uploaded pictures for printing.
package picture

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"

	domainerrors "fishers/internal/domain/errors"
	"fishers/internal/domain/service"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
)

const (
	// DefaultMaxWidth and DefaultMaxHeight bound logos and signatures.
	DefaultMaxWidth  = 800
	DefaultMaxHeight = 400
)

type normalizer struct {
	maxWidth  int
	maxHeight int
}

// NewNormalizer creates an ImageNormalizer bounded by maxWidth x maxHeight.
// Non-positive bounds fall back to the defaults.
func NewNormalizer(maxWidth, maxHeight int) service.ImageNormalizer {
	if maxWidth <= 0 {
		maxWidth = DefaultMaxWidth
	}
	if maxHeight <= 0 {
		maxHeight = DefaultMaxHeight
	}

	return &normalizer{maxWidth: maxWidth, maxHeight: maxHeight}
}

// NewDefaultNormalizer creates an ImageNormalizer with the default bounds.
func NewDefaultNormalizer() service.ImageNormalizer {
	return NewNormalizer(DefaultMaxWidth, DefaultMaxHeight)
}

func (n *normalizer) Normalize(data []byte) ([]byte, error) {
	img, err := decode(data)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	if bounds.Dx() > n.maxWidth || bounds.Dy() > n.maxHeight {
		img = imaging.Fit(img, n.maxWidth, n.maxHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(err, "encode png")
	}

	return buf.Bytes(), nil
}

func decode(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("empty image")
	}

	mtype := mimetype.Detect(data)

	var (
		img image.Image
		err error
	)
	switch {
	case mtype.Is("image/jpeg"):
		img, err = jpeg.Decode(bytes.NewReader(data))
	case mtype.Is("image/png"):
		img, err = png.Decode(bytes.NewReader(data))
	case mtype.Is("image/webp"):
		img, err = webp.Decode(bytes.NewReader(data))
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails("unsupported image format " + mtype.String())
	}
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unreadable image: " + err.Error())
	}

	return img, nil
}
