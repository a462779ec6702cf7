package ops

import (
	"fmt"

	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/model"
)

// CircleParams draws a circle on a new sketch.
type CircleParams struct {
	Radius float64
	X, Y   float64
	Plane  model.Plane
}

func drawCircle(c *Context, params any) (*model.EntityData, error) {
	p, err := paramsAs[CircleParams](params)
	if err != nil {
		return nil, err
	}
	s, err := c.Design.AddSketch(p.Plane, c.takePlaneOffset())
	if err != nil {
		return nil, err
	}
	return nil, s.AddCircle(model.Point{X: p.X, Y: p.Y}, p.Radius)
}

// Rectangle2DParams draws a two-point rectangle on a new sketch.
type Rectangle2DParams struct {
	X1, Y1 float64
	X2, Y2 float64
	Plane  model.Plane
}

func draw2DRectangle(c *Context, params any) (*model.EntityData, error) {
	p, err := paramsAs[Rectangle2DParams](params)
	if err != nil {
		return nil, err
	}
	s, err := c.Design.AddSketch(p.Plane, c.takePlaneOffset())
	if err != nil {
		return nil, err
	}
	s.AddRectangle(model.Point{X: p.X1, Y: p.Y1}, model.Point{X: p.X2, Y: p.Y2})
	return nil, nil
}

// LinesParams draws a closed polyline through the points on a new sketch.
type LinesParams struct {
	Points []model.Point
	Plane  model.Plane
}

func drawLines(c *Context, params any) (*model.EntityData, error) {
	p, err := paramsAs[LinesParams](params)
	if err != nil {
		return nil, err
	}
	s, err := c.Design.AddSketch(p.Plane, c.takePlaneOffset())
	if err != nil {
		return nil, err
	}
	return nil, s.AddLines(p.Points)
}

// OneLineParams draws a single line on the last sketch, creating a sketch
// on the XY plane when none exists yet.
type OneLineParams struct {
	X1, Y1 float64
	X2, Y2 float64
}

func drawOneLine(c *Context, params any) (*model.EntityData, error) {
	p, err := paramsAs[OneLineParams](params)
	if err != nil {
		return nil, err
	}
	s, err := c.Design.LastSketch()
	if err != nil {
		if s, err = c.Design.AddSketch(model.PlaneXY, c.takePlaneOffset()); err != nil {
			return nil, err
		}
	}
	s.AddLine(model.Point{X: p.X1, Y: p.Y1}, model.Point{X: p.X2, Y: p.Y2})
	return nil, nil
}

// ArcParams draws a three-point arc on a new sketch, optionally closed with
// a chord line.
type ArcParams struct {
	P1, P2, P3 model.Point
	Connect    bool
	Plane      model.Plane
}

func drawArc(c *Context, params any) (*model.EntityData, error) {
	p, err := paramsAs[ArcParams](params)
	if err != nil {
		return nil, err
	}
	s, err := c.Design.AddSketch(p.Plane, c.takePlaneOffset())
	if err != nil {
		return nil, err
	}
	s.AddArc(p.P1, p.P2, p.P3, p.Connect)
	return nil, nil
}

// SplineParams draws a fitted spline through the points on a new sketch.
type SplineParams struct {
	Points []model.Point
	Plane  model.Plane
}

func drawSpline(c *Context, params any) (*model.EntityData, error) {
	p, err := paramsAs[SplineParams](params)
	if err != nil {
		return nil, err
	}
	s, err := c.Design.AddSketch(p.Plane, c.takePlaneOffset())
	if err != nil {
		return nil, err
	}
	return nil, s.AddSpline(p.Points)
}

// EllipseParams draws an ellipse by center, major axis point and through
// point on a new sketch.
type EllipseParams struct {
	Center  model.Point
	Major   model.Point
	Through model.Point
	Plane   model.Plane
}

func drawEllipse(c *Context, params any) (*model.EntityData, error) {
	p, err := paramsAs[EllipseParams](params)
	if err != nil {
		return nil, err
	}
	s, err := c.Design.AddSketch(p.Plane, c.takePlaneOffset())
	if err != nil {
		return nil, err
	}
	s.AddEllipse(p.Center, p.Major, p.Through)
	return nil, nil
}

// TextParams draws sketch text between two corner points on a new sketch.
type TextParams struct {
	Text   string
	Height float64
	X1, Y1 float64
	X2, Y2 float64
	Plane  model.Plane
}

func drawText(c *Context, params any) (*model.EntityData, error) {
	p, err := paramsAs[TextParams](params)
	if err != nil {
		return nil, err
	}
	s, err := c.Design.AddSketch(p.Plane, c.takePlaneOffset())
	if err != nil {
		return nil, err
	}
	return nil, s.AddText(p.Text, p.Height, model.Point{X: p.X1, Y: p.Y1}, model.Point{X: p.X2, Y: p.Y2})
}

// OffsetPlaneParams arms a construction plane offset for the next
// sketch-creating operation.
type OffsetPlaneParams struct {
	Plane  model.Plane
	Offset float64
}

func offsetPlane(c *Context, params any) (*model.EntityData, error) {
	p, err := paramsAs[OffsetPlaneParams](params)
	if err != nil {
		return nil, err
	}
	if !p.Plane.Valid() {
		return nil, fmt.Errorf("plane %q: %w", p.Plane, model.ErrNotValid)
	}
	c.ArmPlaneOffset(p.Offset)
	return nil, nil
}
