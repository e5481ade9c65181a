package gui

import "image"

// TextRasterizer measures and rasterizes text. It stands in for the font
// subsystem; the font package provides an implementation on x/image.
type TextRasterizer interface {
	// MeasureText returns the extent of text rendered at pixelHeight.
	MeasureText(text string, pixelHeight float32) (w, h float32)

	// RasterizeText renders text into a new texture.
	RasterizeText(text string, pixelHeight float32, color uint32) (Texture, error)
}

// TextureUploader turns CPU images into renderer textures. Backends implement
// it so text rasterizers don't need to know about GPU APIs.
type TextureUploader interface {
	UploadImage(img *image.RGBA) (Texture, error)
}
