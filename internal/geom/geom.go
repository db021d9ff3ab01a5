package geom

// V2 is a 2D float vector. Positions are in tiles, velocities in tiles/second.
type V2 struct {
	X, Y float64
}

// Add returns v + o.
func (v V2) Add(o V2) V2 { return V2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v V2) Sub(o V2) V2 { return V2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s.
func (v V2) Scale(s float64) V2 { return V2{v.X * s, v.Y * s} }

// V2i is an integer vector used for tile grid cells.
type V2i struct {
	X, Y int
}

// V2 converts the cell to float coordinates.
func (v V2i) V2() V2 { return V2{float64(v.X), float64(v.Y)} }

// Box is an axis-aligned box given by its top-left and bottom-right corners.
type Box struct {
	TL, BR V2
}

// Translate returns the box moved by d.
func (b Box) Translate(d V2) Box {
	return Box{TL: b.TL.Add(d), BR: b.BR.Add(d)}
}

// Size returns the width and height of the box.
func (b Box) Size() V2 { return b.BR.Sub(b.TL) }
