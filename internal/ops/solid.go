package ops

import (
	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/model"
)

// BoxParams creates a solid box.
type BoxParams struct {
	Width   float64
	Depth   float64
	Height  float64
	X, Y, Z float64
}

func drawBox(c *Context, params any) (*model.EntityData, error) {
	p, err := paramsAs[BoxParams](params)
	if err != nil {
		return nil, err
	}
	return c.Design.Box(p.Width, p.Depth, p.Height, p.X, p.Y, p.Z)
}

// CylinderParams creates a solid cylinder.
type CylinderParams struct {
	Radius  float64
	Height  float64
	X, Y, Z float64
}

func drawCylinder(c *Context, params any) (*model.EntityData, error) {
	p, err := paramsAs[CylinderParams](params)
	if err != nil {
		return nil, err
	}
	return c.Design.Cylinder(p.Radius, p.Height, p.X, p.Y, p.Z)
}

// SphereParams creates a solid sphere.
type SphereParams struct {
	Radius  float64
	X, Y, Z float64
}

func drawSphere(c *Context, params any) (*model.EntityData, error) {
	p, err := paramsAs[SphereParams](params)
	if err != nil {
		return nil, err
	}
	return c.Design.Sphere(p.Radius, p.X, p.Y, p.Z)
}

// ExtrudeParams extrudes the last sketch's profile.
type ExtrudeParams struct {
	Distance float64
}

func extrudeLastSketch(c *Context, params any) (*model.EntityData, error) {
	p, err := paramsAs[ExtrudeParams](params)
	if err != nil {
		return nil, err
	}
	return c.Design.Extrude(p.Distance)
}

// ExtrudeThinParams extrudes the last sketch's outline as a thin wall.
type ExtrudeThinParams struct {
	Distance  float64
	Thickness float64
}

func extrudeThin(c *Context, params any) (*model.EntityData, error) {
	p, err := paramsAs[ExtrudeThinParams](params)
	if err != nil {
		return nil, err
	}
	return c.Design.ExtrudeThin(p.Distance, p.Thickness)
}

// CutExtrudeParams cuts the last sketch's profile out of the last body.
type CutExtrudeParams struct {
	Distance float64
}

func cutExtrude(c *Context, params any) (*model.EntityData, error) {
	p, err := paramsAs[CutExtrudeParams](params)
	if err != nil {
		return nil, err
	}
	return c.Design.CutExtrude(p.Distance)
}

// LoftParams lofts through the most recent sketches.
type LoftParams struct {
	SketchCount int
}

func loft(c *Context, params any) (*model.EntityData, error) {
	p, err := paramsAs[LoftParams](params)
	if err != nil {
		return nil, err
	}
	return c.Design.Loft(p.SketchCount)
}

// SweepParams sweeps the second-to-last sketch along the last sketch's
// path. The operation takes no parameters but keeps a struct so the task
// payload stays typed.
type SweepParams struct{}

func sweep(c *Context, params any) (*model.EntityData, error) {
	if _, err := paramsAs[SweepParams](params); err != nil {
		return nil, err
	}
	return c.Design.Sweep()
}

// RevolveParams revolves the last sketch's profile around an axis.
type RevolveParams struct {
	Axis model.Axis
}

func revolveProfile(c *Context, params any) (*model.EntityData, error) {
	p, err := paramsAs[RevolveParams](params)
	if err != nil {
		return nil, err
	}
	return c.Design.Revolve(p.Axis)
}
