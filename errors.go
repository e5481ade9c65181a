package gui

import (
	"errors"
	"fmt"
)

// Sentinel errors. Widget calls never return these directly; they are logged
// and counted in Context.FrameErrors so one bad frame can't stop the loop.
var (
	// ErrTextureCreateFailed wraps renderer or rasterizer failures while
	// materializing a texture.
	ErrTextureCreateFailed = errors.New("texture creation failed")

	// ErrFontNotInitialized is reported when text is drawn or measured without
	// a TextRasterizer.
	ErrFontNotInitialized = errors.New("font not initialized")

	// ErrContainerUnderflow is reported by EndContainer without a matching
	// BeginContainer.
	ErrContainerUnderflow = errors.New("end container without begin")

	// ErrNoRenderer is returned by New when no renderer is supplied.
	ErrNoRenderer = errors.New("no renderer")

	// ErrNoTexture is reported by Image when given a nil texture.
	ErrNoTexture = errors.New("no texture")

	errContainerActive = errors.New("container is active")
)

// UsageError reports a call made in a state the toolkit doesn't support.
type UsageError struct {
	Op  string
	Err error
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("gui: %s: %v", e.Op, e.Err)
}

func (e *UsageError) Unwrap() error {
	return e.Err
}
