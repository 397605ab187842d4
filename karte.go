package karte

// Color is an RGBA color with 8-bit components, matching the glyph sheet's
// palette depth. Alpha is straight (not premultiplied); premultiplication
// happens at draw submission.
type Color struct {
	R, G, B, A uint8
}

// Named editor colors.
var (
	ColorLightGrey  = Color{200, 200, 200, 255}
	ColorGrey       = Color{130, 130, 130, 255}
	ColorDarkGrey   = Color{80, 80, 80, 255}
	ColorYellow     = Color{253, 249, 0, 255}
	ColorGold       = Color{255, 203, 0, 255}
	ColorOrange     = Color{255, 161, 0, 255}
	ColorPink       = Color{255, 109, 194, 255}
	ColorRed        = Color{230, 41, 55, 255}
	ColorMaroon     = Color{190, 33, 55, 255}
	ColorGreen      = Color{0, 228, 48, 255}
	ColorLime       = Color{0, 158, 47, 255}
	ColorDarkGreen  = Color{0, 117, 44, 255}
	ColorSkyBlue    = Color{102, 191, 255, 255}
	ColorBlue       = Color{0, 121, 241, 255}
	ColorDarkBlue   = Color{0, 82, 172, 255}
	ColorPurple     = Color{200, 122, 255, 255}
	ColorViolet     = Color{135, 60, 190, 255}
	ColorDarkPurple = Color{112, 31, 126, 255}
	ColorBeige      = Color{211, 176, 131, 255}
	ColorBrown      = Color{127, 106, 79, 255}
	ColorDarkBrown  = Color{76, 63, 47, 255}
	ColorWhite      = Color{255, 255, 255, 255}
	ColorBlack      = Color{0, 0, 0, 255}
	ColorBlank      = Color{0, 0, 0, 0}
)

// Palette is the color table the color selectors present, in display order.
var Palette = []Color{
	ColorLightGrey, ColorGrey, ColorDarkGrey,
	ColorYellow, ColorGold, ColorOrange,
	ColorPink, ColorRed, ColorMaroon,
	ColorGreen, ColorLime, ColorDarkGreen,
	ColorSkyBlue, ColorBlue, ColorDarkBlue,
	ColorPurple, ColorViolet, ColorDarkPurple,
	ColorBeige, ColorBrown, ColorDarkBrown,
	ColorWhite, ColorBlack, ColorBlank,
}

// Rect is an axis-aligned rectangle in glyph coordinates. The origin is the
// top-left cell, with Y increasing downward.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W &&
		y >= r.Y && y < r.Y+r.H
}
