package karte

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// sheetGrid is the glyph layout of a sheet: 16 columns by 16 rows, 256
// glyphs, indexed row-major in code page 437 order.
const sheetGrid = 16

// Texture is a glyph sheet: a single image holding a 16×16 grid of equally
// sized glyphs. Magenta pixels in the source image are treated as
// transparent.
type Texture struct {
	image  *ebiten.Image
	Width  int
	Height int
	GlyphW int
	GlyphH int
	rects  [sheetGrid * sheetGrid]image.Rectangle
}

// LoadTexture reads the glyph sheet at path. The image dimensions must
// divide evenly into the 16×16 grid.
func LoadTexture(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: open sheet: %w", err)
	}
	defer f.Close()

	tex, keyed, err := decodeSheet(f)
	if err != nil {
		return nil, fmt.Errorf("texture: sheet %s: %w", path, err)
	}
	tex.image = ebiten.NewImageFromImage(keyed)
	return tex, nil
}

// decodeSheet decodes the sheet image, validates the grid, keys out
// magenta, and computes the per-glyph source rectangles. The ebiten image
// is created by the caller so this stays testable without a display.
func decodeSheet(r io.Reader) (*Texture, *image.RGBA, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, nil, fmt.Errorf("decode: %w", err)
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w%sheetGrid != 0 || h%sheetGrid != 0 {
		return nil, nil, fmt.Errorf("dimensions %dx%d do not divide into a %dx%d grid",
			w, h, sheetGrid, sheetGrid)
	}

	keyed := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.RGBAModel.Convert(src.At(x, y)).(color.RGBA)
			if c.R == 255 && c.G == 0 && c.B == 255 {
				c = color.RGBA{}
			}
			keyed.SetRGBA(x-bounds.Min.X, y-bounds.Min.Y, c)
		}
	}

	tex := &Texture{
		Width:  w,
		Height: h,
		GlyphW: w / sheetGrid,
		GlyphH: h / sheetGrid,
	}
	for i := range tex.rects {
		gx := (i % sheetGrid) * tex.GlyphW
		gy := (i / sheetGrid) * tex.GlyphH
		tex.rects[i] = image.Rect(gx, gy, gx+tex.GlyphW, gy+tex.GlyphH)
	}
	return tex, keyed, nil
}

// GlyphRect returns the source rectangle for a glyph index. Out-of-range
// indices fall back to glyph 0.
func (t *Texture) GlyphRect(index int) image.Rectangle {
	if index < 0 || index >= len(t.rects) {
		return t.rects[0]
	}
	return t.rects[index]
}

// glyphImage returns the sub-image for a glyph index.
func (t *Texture) glyphImage(index int) *ebiten.Image {
	return t.image.SubImage(t.GlyphRect(index)).(*ebiten.Image)
}

// Free releases the GPU-side image. Safe to call twice.
func (t *Texture) Free() {
	if t.image != nil {
		t.image.Deallocate()
		t.image = nil
	}
}
