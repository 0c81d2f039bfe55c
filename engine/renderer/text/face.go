package text

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"
	"strings"

	"github.com/fzipp/bmfont"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Face draws single lines of monospaced overlay text.
type Face interface {
	// LineHeight is the distance between two baselines, in pixels.
	LineHeight() int
	// CharWidth is the advance of one character cell, in pixels.
	CharWidth() int
	// Ascent is the distance from the top of a line to its baseline.
	Ascent() int
	// Draw renders s with its baseline origin at (x, y).
	Draw(dst draw.Image, x, y int, s string)
}

type fontFace struct {
	face font.Face
	src  image.Image
}

// NewBasicFace returns the built-in 7x13 face drawn in col.
func NewBasicFace(col color.Color) Face {
	return &fontFace{face: basicfont.Face7x13, src: image.NewUniform(col)}
}

/**
 * @brief Parses a TrueType or OpenType font and returns a face of the given
 * size in points at 72 DPI, drawn in col.
 */
func NewOpenTypeFace(data []byte, size float64, col color.Color) (Face, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	return &fontFace{face: face, src: image.NewUniform(col)}, nil
}

func (f *fontFace) LineHeight() int {
	return f.face.Metrics().Height.Ceil()
}

func (f *fontFace) CharWidth() int {
	return font.MeasureString(f.face, "0").Ceil()
}

func (f *fontFace) Ascent() int {
	return f.face.Metrics().Ascent.Ceil()
}

func (f *fontFace) Draw(dst draw.Image, x, y int, s string) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  f.src,
		Face: f.face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

type bitmapFace struct {
	font *bmfont.BitmapFont
}

// NewBitmapFace wraps an AngelCode bitmap font. Glyphs keep the colours of
// the font's page sheets.
func NewBitmapFace(f *bmfont.BitmapFont) Face {
	return &bitmapFace{font: f}
}

func (b *bitmapFace) LineHeight() int {
	return int(b.font.Descriptor.Common.LineHeight)
}

func (b *bitmapFace) CharWidth() int {
	return int(b.font.Descriptor.Chars['0'].XAdvance)
}

func (b *bitmapFace) Ascent() int {
	return int(b.font.Descriptor.Common.Base)
}

func (b *bitmapFace) Draw(dst draw.Image, x, y int, s string) {
	b.font.DrawText(dst, image.Pt(x, y-b.Ascent()), s)
}

/**
 * @brief Loads the face at path, chosen by extension: .fnt is an AngelCode
 * bitmap font, .ttf and .otf are parsed with opentype at size points. An
 * empty path returns the built-in face.
 */
func LoadFace(path string, size float64, col color.Color) (Face, error) {
	if path == "" {
		return NewBasicFace(col), nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".fnt":
		f, err := bmfont.Load(path)
		if err != nil {
			return nil, fmt.Errorf("load bitmap font %q: %w", path, err)
		}
		return NewBitmapFace(f), nil
	case ".ttf", ".otf":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read font %q: %w", path, err)
		}
		face, err := NewOpenTypeFace(data, size, col)
		if err != nil {
			return nil, fmt.Errorf("parse font %q: %w", path, err)
		}
		return face, nil
	default:
		return nil, fmt.Errorf("unsupported font type %q", path)
	}
}
