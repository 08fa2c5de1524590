package entities

// Shape 粒子的基本形状
type Shape int

const (
	ShapeRect    Shape = iota // 矩形（彩纸）
	ShapeCircle               // 实心圆
	ShapeRing                 // 空心圆（气泡）
	ShapeEllipse              // 椭圆（叶子、气球）
	ShapeStar                 // 星形
	ShapeHeart                // 爱心
	ShapeGlyph                // 文字/表情字形
)

func (s Shape) String() string {
	switch s {
	case ShapeRect:
		return "rect"
	case ShapeCircle:
		return "circle"
	case ShapeRing:
		return "ring"
	case ShapeEllipse:
		return "ellipse"
	case ShapeStar:
		return "star"
	case ShapeHeart:
		return "heart"
	case ShapeGlyph:
		return "glyph"
	default:
		return "unknown"
	}
}

// VisualDescription is what an animation type's renderer produces for one
// particle. The engine never interprets it; surfaces do.
type VisualDescription struct {
	Shape  Shape
	Color  string // hex color
	Glyph  string // set for ShapeGlyph (and as a terminal fallback)
	Width  float64
	Height float64
	ScaleX float64 // multiplicative perturbation (spin3D flip, pulse)
	ScaleY float64
	Glow   bool
}

// Style is the per-frame placement of a particle, derived by the engine from
// particle state.
type Style struct {
	X, Y     float64
	Opacity  float64
	Rotation float64 // degrees
}

// Sprite pairs a particle's style with its visual description.
type Sprite struct {
	ID     string
	Style  Style
	Visual VisualDescription
}
