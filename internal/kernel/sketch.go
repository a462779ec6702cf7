package kernel

import (
	"fmt"
	"math"

	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/model"
)

// CurveKind identifies the type of a sketch curve.
type CurveKind string

const (
	CurveLine    CurveKind = "line"
	CurveCircle  CurveKind = "circle"
	CurveArc     CurveKind = "arc"
	CurveSpline  CurveKind = "spline"
	CurveEllipse CurveKind = "ellipse"
	CurveText    CurveKind = "text"
)

// Curve is one curve of a sketch. Only the fields relevant to the kind are
// set.
type Curve struct {
	Kind   CurveKind
	Points []model.Point
	Radius float64
	Text   string
}

// Sketch is a 2D sketch on a construction plane, optionally offset from the
// base plane.
type Sketch struct {
	token  string
	name   string
	plane  model.Plane
	offset float64
	curves []Curve

	// profileArea is the area of the sketch's first closed profile, when it
	// can be derived analytically (circles and rectangles). Zero means
	// unknown; dependent solids then report zero volume.
	profileArea float64
	profiles    int
}

func (s *Sketch) Token() string { return s.token }
func (s *Sketch) Name() string  { return s.name }

// Plane returns the base construction plane of the sketch.
func (s *Sketch) Plane() model.Plane { return s.plane }

// Offset returns the sketch plane offset from the base plane.
func (s *Sketch) Offset() float64 { return s.offset }

// Curves returns the curves of the sketch in creation order.
func (s *Sketch) Curves() []Curve { return s.curves }

// ProfileCount returns the number of closed profiles in the sketch.
func (s *Sketch) ProfileCount() int { return s.profiles }

// AddSketch creates a new sketch on the given base plane. A non-zero offset
// creates the sketch on an offset construction plane, like the original
// offset-plane-then-sketch sequence.
func (d *Design) AddSketch(plane model.Plane, offset float64) (*Sketch, error) {
	if !plane.Valid() {
		return nil, fmt.Errorf("plane %q: %w", plane, model.ErrNotValid)
	}
	d.beginStep()
	s := &Sketch{
		token:  newToken(),
		name:   d.nextName("Sketch"),
		plane:  plane,
		offset: offset,
	}
	d.sketches = append(d.sketches, s)
	d.register(s)
	return s, nil
}

// AddCircle adds a circle by center and radius, closing one profile.
func (s *Sketch) AddCircle(center model.Point, radius float64) error {
	if radius <= 0 {
		return fmt.Errorf("radius must be positive: %w", model.ErrNotValid)
	}
	s.curves = append(s.curves, Curve{Kind: CurveCircle, Points: []model.Point{center}, Radius: radius})
	s.closeProfile(math.Pi * radius * radius)
	return nil
}

// AddRectangle adds a two-point rectangle, closing one profile.
func (s *Sketch) AddRectangle(p1, p2 model.Point) {
	s.curves = append(s.curves, Curve{Kind: CurveLine, Points: []model.Point{p1, p2}})
	s.closeProfile(math.Abs((p2.X - p1.X) * (p2.Y - p1.Y)))
}

// AddCenterRectangle adds a center-point rectangle with the given width and
// height, closing one profile.
func (s *Sketch) AddCenterRectangle(center model.Point, width, height float64) {
	corner := model.Point{X: center.X + width/2, Y: center.Y + height/2, Z: center.Z}
	s.curves = append(s.curves, Curve{Kind: CurveLine, Points: []model.Point{center, corner}})
	s.closeProfile(math.Abs(width * height))
}

// AddLines draws lines between consecutive points and closes the shape by
// connecting the last point back to the first, closing one profile.
func (s *Sketch) AddLines(points []model.Point) error {
	if len(points) < 2 {
		return fmt.Errorf("need at least two points: %w", model.ErrNotValid)
	}
	for i := 0; i < len(points)-1; i++ {
		s.curves = append(s.curves, Curve{Kind: CurveLine, Points: []model.Point{points[i], points[i+1]}})
	}
	s.curves = append(s.curves, Curve{Kind: CurveLine, Points: []model.Point{points[len(points)-1], points[0]}})
	s.closeProfile(polygonArea(points))
	return nil
}

// AddLine adds a single unclosed line between two points.
func (s *Sketch) AddLine(p1, p2 model.Point) {
	s.curves = append(s.curves, Curve{Kind: CurveLine, Points: []model.Point{p1, p2}})
}

// AddArc adds a three-point arc. With connect set, a chord line between the
// arc endpoints is added too, closing a profile.
func (s *Sketch) AddArc(p1, p2, p3 model.Point, connect bool) {
	s.curves = append(s.curves, Curve{Kind: CurveArc, Points: []model.Point{p1, p2, p3}})
	if connect {
		s.curves = append(s.curves, Curve{Kind: CurveLine, Points: []model.Point{p1, p3}})
		s.closeProfile(0)
	}
}

// AddSpline adds a fitted spline through the given points. A spline whose
// last point meets its first closes a profile.
func (s *Sketch) AddSpline(points []model.Point) error {
	if len(points) < 2 {
		return fmt.Errorf("need at least two points: %w", model.ErrNotValid)
	}
	s.curves = append(s.curves, Curve{Kind: CurveSpline, Points: points})
	if points[0] == points[len(points)-1] {
		s.closeProfile(0)
	}
	return nil
}

// AddEllipse adds an ellipse by center, major axis point and through point,
// closing one profile.
func (s *Sketch) AddEllipse(center, major, through model.Point) {
	s.curves = append(s.curves, Curve{Kind: CurveEllipse, Points: []model.Point{center, major, through}})
	a := math.Hypot(major.X-center.X, major.Y-center.Y)
	b := math.Hypot(through.X-center.X, through.Y-center.Y)
	s.closeProfile(math.Pi * a * b)
}

// AddText adds multi-line sketch text between two corner points. The text
// outline counts as one profile so it can be extruded.
func (s *Sketch) AddText(text string, height float64, p1, p2 model.Point) error {
	if text == "" {
		return fmt.Errorf("text must not be empty: %w", model.ErrNotValid)
	}
	s.curves = append(s.curves, Curve{Kind: CurveText, Points: []model.Point{p1, p2}, Radius: height, Text: text})
	s.closeProfile(0)
	return nil
}

// closeProfile records a closed profile, keeping the first profile's area
// for solid volume derivation.
func (s *Sketch) closeProfile(area float64) {
	if s.profiles == 0 {
		s.profileArea = area
	}
	s.profiles++
}

// polygonArea computes the area of a closed polygon projected on the sketch
// plane (shoelace formula over the first two coordinates).
func polygonArea(points []model.Point) float64 {
	var sum float64
	for i := range points {
		j := (i + 1) % len(points)
		sum += points[i].X*points[j].Y - points[j].X*points[i].Y
	}
	return math.Abs(sum) / 2
}
