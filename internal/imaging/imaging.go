// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package imaging generates scaled variants of uploaded images for the
// banner, gallery and partner screens. Sources may be JPEG, PNG or WebP;
// variants are encoded as JPEG. Variants wider than the source are
// skipped to avoid upscaling.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Variant describes a single output size.
type Variant struct {
	Name    string // e.g., "thumb", "md"
	Width   int    // Target width in pixels
	Quality int    // JPEG quality 1-100
}

// DefaultVariants defines the standard sizes for uploaded images.
var DefaultVariants = []Variant{
	{Name: "thumb", Width: 320, Quality: 75},
	{Name: "md", Width: 1024, Quality: 80},
	{Name: "lg", Width: 1920, Quality: 80},
}

// ProcessedImage holds one generated variant ready for upload.
type ProcessedImage struct {
	Name        string
	Width       int
	Height      int
	Data        []byte
	ContentType string // Always "image/jpeg"
}

// GenerateVariants decodes the source image and scales it to each
// configured width. Larger-than-source variants collapse to the source
// width, and generation stops once the full-size image is produced, so
// at least one variant always comes back.
func GenerateVariants(original []byte, variants []Variant) ([]ProcessedImage, error) {
	if len(variants) == 0 {
		variants = DefaultVariants
	}

	src, _, err := image.Decode(bytes.NewReader(original))
	if err != nil {
		return nil, fmt.Errorf("imaging: decode failed: %w", err)
	}
	origWidth := src.Bounds().Dx()
	origHeight := src.Bounds().Dy()

	var results []ProcessedImage

	for _, v := range variants {
		targetWidth := v.Width
		if origWidth <= targetWidth {
			targetWidth = origWidth
		}
		targetHeight := origHeight * targetWidth / origWidth

		scaled := image.NewRGBA(image.Rect(0, 0, targetWidth, targetHeight))
		draw.CatmullRom.Scale(scaled, scaled.Bounds(), src, src.Bounds(), draw.Over, nil)

		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, scaled, &jpeg.Options{Quality: v.Quality}); err != nil {
			return nil, fmt.Errorf("imaging: encode %s: %w", v.Name, err)
		}

		results = append(results, ProcessedImage{
			Name:        v.Name,
			Width:       targetWidth,
			Height:      targetHeight,
			Data:        buf.Bytes(),
			ContentType: "image/jpeg",
		})

		// The original width was reached; larger variants would only
		// duplicate it.
		if origWidth <= v.Width {
			break
		}
	}

	return results, nil
}
