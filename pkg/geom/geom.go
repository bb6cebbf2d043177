// pkg/geom/geom.go
package geom

import "math"

// Vec2 is a point or direction in arena space.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Mul(s float64) Vec2   { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Len() float64         { return math.Hypot(v.X, v.Y) }
func (v Vec2) IsZero() bool         { return v.X == 0 && v.Y == 0 }
func (v Vec2) Dist(o Vec2) float64  { return v.Sub(o).Len() }
func (v Vec2) Dist2(o Vec2) float64 { d := v.Sub(o); return d.X*d.X + d.Y*d.Y }

// Norm returns the unit vector in the direction of v, or the zero vector for zero input.
func (v Vec2) Norm() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Rect is an axis-aligned box given by its min corner and size.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Clamp moves p to the nearest point inside r.
func (r Rect) Clamp(p Vec2) Vec2 {
	return Vec2{
		X: Clamp(p.X, r.X, r.X+r.W),
		Y: Clamp(p.Y, r.Y, r.Y+r.H),
	}
}

// Overlaps is the AABB test. Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// BoxAround returns the square of side size centred on p.
func BoxAround(p Vec2, size float64) Rect {
	return Rect{X: p.X - size/2, Y: p.Y - size/2, W: size, H: size}
}

// CirclesOverlap tests two circles given by diameters. The contact distance
// is (sizeA+sizeB)/2, i.e. the sum of the radii.
func CirclesOverlap(a Vec2, sizeA float64, b Vec2, sizeB float64) bool {
	reach := (sizeA + sizeB) / 2
	return a.Dist2(b) < reach*reach
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt limits v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// LaneCenter returns the x coordinate of the centre of lane i when width is split into n lanes.
func LaneCenter(width float64, n, i int) float64 {
	if n <= 0 {
		return width / 2
	}
	i = ClampInt(i, 0, n-1)
	laneW := width / float64(n)
	return laneW*float64(i) + laneW/2
}

// NearestLane returns the lane index whose centre is closest to x.
func NearestLane(width float64, n int, x float64) int {
	if n <= 0 || width <= 0 {
		return 0
	}
	laneW := width / float64(n)
	return ClampInt(int(x/laneW), 0, n-1)
}
