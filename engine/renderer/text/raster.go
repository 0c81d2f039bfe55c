package text

import (
	"image"
	"image/draw"
)

// Rasterizer renders overlay items into an RGBA image the size of the
// framebuffer. The image is reused between frames of the same size.
type Rasterizer struct {
	face Face
	img  *image.RGBA
}

func NewRasterizer(face Face) *Rasterizer {
	return &Rasterizer{face: face}
}

func (r *Rasterizer) Face() Face {
	return r.face
}

/**
 * @brief Clears the image to transparent and draws every item. Row 0 of the
 * image is the top of the window.
 */
func (r *Rasterizer) Render(width, height int, items []Item) *image.RGBA {
	if width < 1 || height < 1 {
		return nil
	}
	if r.img == nil || r.img.Rect.Dx() != width || r.img.Rect.Dy() != height {
		r.img = image.NewRGBA(image.Rect(0, 0, width, height))
	} else {
		draw.Draw(r.img, r.img.Rect, image.Transparent, image.Point{}, draw.Src)
	}

	for _, it := range items {
		x, y := r.Origin(width, height, it)
		r.face.Draw(r.img, x, y, it.Text)
	}
	return r.img
}

// Origin returns the baseline origin of it in pixels.
func (r *Rasterizer) Origin(width, height int, it Item) (int, int) {
	lh := r.face.LineHeight()
	cw := r.face.CharWidth()
	ascent := r.face.Ascent()
	margin := lh / 5

	x := 0
	switch it.Anchor {
	case TopRight, BottomRight:
		x = width - it.columns()*cw
	default:
		x = cw / 10
	}

	var y int
	switch it.Anchor {
	case BottomLeft, BottomRight:
		y = height - margin - it.Line*lh - (lh - ascent)
	default:
		y = it.Line*lh + ascent
	}
	return x, y
}
