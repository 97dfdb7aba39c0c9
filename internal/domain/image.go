package domain

import "errors"

// Image-specific validation errors
var (
	// ErrAspectRatioInvalid is returned for an unrecognized aspect ratio.
	ErrAspectRatioInvalid = errors.New("unrecognized aspect ratio")

	// ErrImageSizeInvalid is returned for an unrecognized image size.
	ErrImageSizeInvalid = errors.New("unrecognized image size")
)

// AspectRatio is the shape of a generated image.
type AspectRatio string

const (
	AspectRatioSquare    AspectRatio = "1:1"
	AspectRatioLandscape AspectRatio = "16:9"
	AspectRatioPortrait  AspectRatio = "9:16"
	AspectRatioClassic   AspectRatio = "4:3"
	AspectRatioTall      AspectRatio = "3:4"
)

// IsValid reports whether r is one of the declared aspect ratios.
func (r AspectRatio) IsValid() bool {
	switch r {
	case AspectRatioSquare, AspectRatioLandscape, AspectRatioPortrait,
		AspectRatioClassic, AspectRatioTall:
		return true
	}
	return false
}

// ImageSize is the requested output resolution tier of a generated image.
type ImageSize string

const (
	ImageSizeStandard ImageSize = "1K"
	ImageSizeLarge    ImageSize = "2K"
)

// IsValid reports whether s is one of the declared sizes.
func (s ImageSize) IsValid() bool {
	switch s {
	case ImageSizeStandard, ImageSizeLarge:
		return true
	}
	return false
}

// ImageOptions configure the image generation path. Zero values mean the
// defaults (square, standard size); non-zero values must be recognized.
type ImageOptions struct {
	AspectRatio AspectRatio `json:"aspect_ratio"`
	Size        ImageSize   `json:"size"`
}

// Normalize fills in defaults and validates the result. It returns the
// effective options so callers can use the zero value as "defaults please".
func (o ImageOptions) Normalize() (ImageOptions, error) {
	if o.AspectRatio == "" {
		o.AspectRatio = AspectRatioSquare
	}
	if o.Size == "" {
		o.Size = ImageSizeStandard
	}
	if !o.AspectRatio.IsValid() {
		return ImageOptions{}, ErrAspectRatioInvalid
	}
	if !o.Size.IsValid() {
		return ImageOptions{}, ErrImageSizeInvalid
	}
	return o, nil
}

// GeneratedImage is an inline image returned by the generation or edit path.
type GeneratedImage struct {
	MIMEType string `json:"mime_type"`
	Data     []byte `json:"data"`
}
