package ops

import (
	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/model"
)

// ThreadParams cuts a thread on an interactively selected face.
type ThreadParams struct{}

func thread(c *Context, params any) (*model.EntityData, error) {
	if _, err := paramsAs[ThreadParams](params); err != nil {
		return nil, err
	}
	return c.Design.Thread(c.UI)
}

// FilletParams rounds the edges of a body.
type FilletParams struct {
	Radius   float64
	BodyName string
}

func filletEdges(c *Context, params any) (*model.EntityData, error) {
	p, err := paramsAs[FilletParams](params)
	if err != nil {
		return nil, err
	}
	return c.Design.FilletEdges(p.Radius, p.BodyName)
}

// ShellParams hollows a body to a wall thickness.
type ShellParams struct {
	Thickness float64
	BodyName  string
}

func shellBody(c *Context, params any) (*model.EntityData, error) {
	p, err := paramsAs[ShellParams](params)
	if err != nil {
		return nil, err
	}
	return c.Design.ShellBody(p.Thickness, p.BodyName)
}

// HolesParams drills holes into the last body.
type HolesParams struct {
	Diameter float64
	Depth    float64
	Points   []model.Point
}

func holes(c *Context, params any) (*model.EntityData, error) {
	p, err := paramsAs[HolesParams](params)
	if err != nil {
		return nil, err
	}
	return c.Design.Holes(p.Diameter, p.Depth, p.Points)
}

// BooleanParams combines two bodies.
type BooleanParams struct {
	Operation  model.BooleanOp
	TargetBody string
	ToolBody   string
}

func booleanOperation(c *Context, params any) (*model.EntityData, error) {
	p, err := paramsAs[BooleanParams](params)
	if err != nil {
		return nil, err
	}
	return c.Design.Combine(p.Operation, p.TargetBody, p.ToolBody)
}

// CircularPatternParams duplicates the last body around an axis.
type CircularPatternParams struct {
	Axis     model.Axis
	Quantity int
}

func circularPattern(c *Context, params any) (*model.EntityData, error) {
	p, err := paramsAs[CircularPatternParams](params)
	if err != nil {
		return nil, err
	}
	return c.Design.CircularPattern(p.Axis, p.Quantity)
}

// RectangularPatternParams duplicates the last body in a grid.
type RectangularPatternParams struct {
	QuantityOne int
	QuantityTwo int
	DistanceOne float64
	DistanceTwo float64
}

func rectangularPattern(c *Context, params any) (*model.EntityData, error) {
	p, err := paramsAs[RectangularPatternParams](params)
	if err != nil {
		return nil, err
	}
	return c.Design.RectangularPattern(p.QuantityOne, p.QuantityTwo, p.DistanceOne, p.DistanceTwo)
}

// MoveBodyParams translates the last body.
type MoveBodyParams struct {
	X, Y, Z float64
}

func moveBody(c *Context, params any) (*model.EntityData, error) {
	p, err := paramsAs[MoveBodyParams](params)
	if err != nil {
		return nil, err
	}
	return c.Design.MoveLastBody(p.X, p.Y, p.Z)
}
