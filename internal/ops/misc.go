package ops

import (
	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/model"
)

// SetParameterParams updates a modeling parameter by name.
type SetParameterParams struct {
	Name  string
	Value float64
}

func setParameter(c *Context, params any) (*model.EntityData, error) {
	p, err := paramsAs[SetParameterParams](params)
	if err != nil {
		return nil, err
	}
	return nil, c.Design.SetParameter(p.Name, p.Value)
}

// UndoParams reverts the most recent modeling operation.
type UndoParams struct{}

func undo(c *Context, params any) (*model.EntityData, error) {
	if _, err := paramsAs[UndoParams](params); err != nil {
		return nil, err
	}
	return nil, c.Design.Undo()
}

// DeleteEverythingParams clears the whole design.
type DeleteEverythingParams struct{}

func deleteEverything(c *Context, params any) (*model.EntityData, error) {
	if _, err := paramsAs[DeleteEverythingParams](params); err != nil {
		return nil, err
	}
	c.Design.DeleteEverything()
	return nil, nil
}

// ExportParams writes the design to a file. An empty file name gets a
// timestamped default.
type ExportParams struct {
	FileName string
}

func exportSTL(c *Context, params any) (*model.EntityData, error) {
	p, err := paramsAs[ExportParams](params)
	if err != nil {
		return nil, err
	}
	path, err := c.Exporter.ExportSTL(c.Design, p.FileName)
	if err != nil {
		return nil, err
	}
	return &model.EntityData{ExportPath: path}, nil
}

func exportSTEP(c *Context, params any) (*model.EntityData, error) {
	p, err := paramsAs[ExportParams](params)
	if err != nil {
		return nil, err
	}
	path, err := c.Exporter.ExportSTEP(c.Design, p.FileName)
	if err != nil {
		return nil, err
	}
	return &model.EntityData{ExportPath: path}, nil
}
