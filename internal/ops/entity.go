package ops

import (
	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/model"
)

// MoveByTokenParams translates the body with the given token.
type MoveByTokenParams struct {
	BodyToken string
	X, Y, Z   float64
}

func moveBodyByToken(c *Context, params any) (*model.EntityData, error) {
	p, err := paramsAs[MoveByTokenParams](params)
	if err != nil {
		return nil, err
	}
	return c.Design.MoveBodyByToken(p.BodyToken, p.X, p.Y, p.Z)
}

// DeleteByTokenParams removes the body with the given token.
type DeleteByTokenParams struct {
	BodyToken string
}

func deleteBodyByToken(c *Context, params any) (*model.EntityData, error) {
	p, err := paramsAs[DeleteByTokenParams](params)
	if err != nil {
		return nil, err
	}
	return c.Design.DeleteBodyByToken(p.BodyToken)
}

// EditExtrudeParams changes the extent distance of an extrude feature.
type EditExtrudeParams struct {
	FeatureToken string
	Distance     float64
}

func editExtrudeDistance(c *Context, params any) (*model.EntityData, error) {
	p, err := paramsAs[EditExtrudeParams](params)
	if err != nil {
		return nil, err
	}
	return c.Design.EditExtrudeDistance(p.FeatureToken, p.Distance)
}

// BodyInfoParams queries the state of a body.
type BodyInfoParams struct {
	BodyToken string
}

func getBodyInfo(c *Context, params any) (*model.EntityData, error) {
	p, err := paramsAs[BodyInfoParams](params)
	if err != nil {
		return nil, err
	}
	return c.Design.BodyInfo(p.BodyToken)
}

// FeatureInfoParams queries the state of a feature.
type FeatureInfoParams struct {
	FeatureToken string
}

func getFeatureInfo(c *Context, params any) (*model.EntityData, error) {
	p, err := paramsAs[FeatureInfoParams](params)
	if err != nil {
		return nil, err
	}
	return c.Design.FeatureInfo(p.FeatureToken)
}

// VisibilityParams shows or hides a body.
type VisibilityParams struct {
	BodyToken string
	Visible   bool
}

func setBodyVisibility(c *Context, params any) (*model.EntityData, error) {
	p, err := paramsAs[VisibilityParams](params)
	if err != nil {
		return nil, err
	}
	return c.Design.SetBodyVisibility(p.BodyToken, p.Visible)
}

// SelectBodyParams highlights a body by display name.
type SelectBodyParams struct {
	Name string
}

func selectBody(c *Context, params any) (*model.EntityData, error) {
	p, err := paramsAs[SelectBodyParams](params)
	if err != nil {
		return nil, err
	}
	b, err := c.Design.BodyByName(p.Name)
	if err != nil {
		return nil, err
	}
	c.UI.MessageBox("Selected body " + b.Name())
	return &model.EntityData{BodyToken: b.Token(), BodyName: b.Name()}, nil
}

// SelectSketchParams highlights a sketch by display name.
type SelectSketchParams struct {
	Name string
}

func selectSketch(c *Context, params any) (*model.EntityData, error) {
	p, err := paramsAs[SelectSketchParams](params)
	if err != nil {
		return nil, err
	}
	s, err := c.Design.SketchByName(p.Name)
	if err != nil {
		return nil, err
	}
	c.UI.MessageBox("Selected sketch " + s.Name())
	return &model.EntityData{SketchToken: s.Token(), SketchName: s.Name()}, nil
}
