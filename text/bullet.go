package text

// BulletShape selects the glyph drawn in front of a bullet list item.
type BulletShape int

const (
	BulletCircle BulletShape = iota
	BulletSquare
)

func (s BulletShape) String() string {
	if s == BulletSquare {
		return "square"
	}
	return "circle"
}

// BulletDraw selects between a filled and an outlined bullet.
type BulletDraw int

const (
	BulletFill BulletDraw = iota
	BulletStroke
)

// Bullet describes how the marker of a bullet list item is drawn. It is pure
// data consumed by a renderer; this package never draws it. Compared by
// structural equality like every other annotation.
type Bullet struct {
	Shape   BulletShape
	Width   TextUnit
	Height  TextUnit
	Padding TextUnit // distance between the marker and the item text

	Brush Color   // 0 picks up the current text color
	Alpha float64 // 0 inherits the current alpha, otherwise (0, 1]

	Draw        BulletDraw
	StrokeWidth TextUnit // only used when Draw is BulletStroke
}

func (Bullet) annotation() {}

// DefaultBullet is the marker used by bullet list sugar when the caller does
// not provide one.
var DefaultBullet = Bullet{
	Shape:   BulletCircle,
	Width:   Em(0.25),
	Height:  Em(0.25),
	Padding: Em(0.25),
	Draw:    BulletFill,
}

// DefaultBulletIndentation is the per-level indentation used by bullet list
// sugar when the caller does not provide one.
var DefaultBulletIndentation = Em(1)
