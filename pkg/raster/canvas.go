// Package raster renders display lists to in-memory RGBA images using a
// pure-Go scanline rasterizer. It is the reference backend for headless
// rendering and golden-image tests; GPU backends implement the same
// canvas interface.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/go-drift/dock/pkg/geometry"
	"github.com/go-drift/dock/pkg/paint"
)

// Canvas implements paint.Canvas on top of an in-memory RGBA image.
// Edges are anti-aliased; colors composite with source-over blending.
type Canvas struct {
	img   *image.RGBA
	clip  image.Rectangle
	stack []image.Rectangle
}

// NewCanvas creates a canvas backed by a fresh image of the given pixel size.
func NewCanvas(width, height int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	return &Canvas{img: img, clip: img.Bounds()}
}

// Image returns the backing image. The canvas keeps drawing into it, so
// encode or copy it before reusing the canvas for another frame.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

func (c *Canvas) Save() {
	c.stack = append(c.stack, c.clip)
}

func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.clip = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *Canvas) ClipRect(rect geometry.Rect) {
	c.clip = c.clip.Intersect(outerPixels(rect))
}

func (c *Canvas) Clear(col paint.Color) {
	// Clear resets the whole surface regardless of the current clip.
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(toNRGBA(col)), image.Point{}, draw.Src)
}

func (c *Canvas) DrawRect(rect geometry.Rect, p paint.Paint) {
	if !p.Color.IsVisible() || rect.IsEmpty() {
		return
	}
	switch p.Style {
	case paint.PaintStyleFill:
		c.fillContours([][]geometry.Offset{rectContour(rect, false)}, p.Color)
	case paint.PaintStyleStroke:
		if p.StrokeWidth <= 0 {
			return
		}
		half := geometry.InsetsAll(p.StrokeWidth / 2)
		outer := rect.Expand(half)
		inner := rect.Shrink(half)
		if inner.Width() <= 0 || inner.Height() <= 0 {
			// The stroke band swallows the interior.
			c.fillContours([][]geometry.Offset{rectContour(outer, false)}, p.Color)
			return
		}
		// Opposite windings leave the interior unfilled.
		c.fillContours([][]geometry.Offset{
			rectContour(outer, false),
			rectContour(inner, true),
		}, p.Color)
	}
}

func (c *Canvas) DrawLine(start, end geometry.Offset, p paint.Paint) {
	if !p.Color.IsVisible() || p.StrokeWidth <= 0 {
		return
	}
	length := math.Hypot(end.X-start.X, end.Y-start.Y)
	if length == 0 {
		return
	}
	// Offset both endpoints by half the stroke width perpendicular to
	// the line, giving the stroke as a filled quad.
	half := p.StrokeWidth / 2
	nx := -(end.Y - start.Y) / length * half
	ny := (end.X - start.X) / length * half
	c.fillContours([][]geometry.Offset{{
		{X: start.X + nx, Y: start.Y + ny},
		{X: end.X + nx, Y: end.Y + ny},
		{X: end.X - nx, Y: end.Y - ny},
		{X: start.X - nx, Y: start.Y - ny},
	}}, p.Color)
}

func (c *Canvas) Size() geometry.Size {
	b := c.img.Bounds()
	return geometry.Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// fillContours rasterizes closed contours and composites them over the
// image within the current clip. Contours wound opposite ways cancel,
// which is how stroked rectangles leave their interior empty.
func (c *Canvas) fillContours(contours [][]geometry.Offset, col paint.Color) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, contour := range contours {
		for _, pt := range contour {
			minX = math.Min(minX, pt.X)
			minY = math.Min(minY, pt.Y)
			maxX = math.Max(maxX, pt.X)
			maxY = math.Max(maxY, pt.Y)
		}
	}
	if minX > maxX {
		return
	}
	bounds := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	).Intersect(c.clip)
	if bounds.Empty() {
		return
	}

	z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	ox, oy := float32(bounds.Min.X), float32(bounds.Min.Y)
	for _, contour := range contours {
		if len(contour) < 3 {
			continue
		}
		z.MoveTo(float32(contour[0].X)-ox, float32(contour[0].Y)-oy)
		for _, pt := range contour[1:] {
			z.LineTo(float32(pt.X)-ox, float32(pt.Y)-oy)
		}
		z.ClosePath()
	}
	z.Draw(c.img, bounds, image.NewUniform(toNRGBA(col)), image.Point{})
}

// rectContour returns the rectangle's corners, optionally in reversed
// winding order.
func rectContour(rect geometry.Rect, reversed bool) []geometry.Offset {
	corners := []geometry.Offset{
		{X: rect.Left, Y: rect.Top},
		{X: rect.Right, Y: rect.Top},
		{X: rect.Right, Y: rect.Bottom},
		{X: rect.Left, Y: rect.Bottom},
	}
	if reversed {
		corners[1], corners[3] = corners[3], corners[1]
	}
	return corners
}

// outerPixels returns the smallest pixel rectangle covering rect.
func outerPixels(rect geometry.Rect) image.Rectangle {
	return image.Rect(
		int(math.Floor(rect.Left)), int(math.Floor(rect.Top)),
		int(math.Ceil(rect.Right)), int(math.Ceil(rect.Bottom)),
	)
}

func toNRGBA(c paint.Color) color.NRGBA {
	return color.NRGBA{
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c),
		A: uint8(c >> 24),
	}
}
