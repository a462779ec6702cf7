// Package ops maps operation names to their handlers. Handlers run on the
// host execution context and receive an explicit bridge context instead of
// reaching for globals, so the same handler table serves production,
// scripted and test hosts.
package ops

import (
	"fmt"

	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/kernel"
	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/model"
)

// Context is everything a handler may touch while executing. It is built
// once at startup and handed to every invocation.
type Context struct {
	Design   *kernel.Design
	UI       kernel.UserInterface
	Exporter *kernel.Exporter

	// planeOffset is the construction plane offset armed by the offset
	// plane operation. The next sketch-creating operation consumes it.
	planeOffset float64
}

// ArmPlaneOffset stores an offset for the next sketch-creating operation.
func (c *Context) ArmPlaneOffset(offset float64) {
	c.planeOffset = offset
}

// takePlaneOffset returns the armed offset and disarms it.
func (c *Context) takePlaneOffset() float64 {
	o := c.planeOffset
	c.planeOffset = 0
	return o
}

// Handler executes one operation against the bridge context. A nil entity
// data return with a nil error is a plain success.
type Handler func(c *Context, params any) (*model.EntityData, error)

// Registry returns the full operation table. The table is static: it is
// built fresh per call and never mutated afterwards.
func Registry() map[model.Op]Handler {
	return map[model.Op]Handler{
		model.OpDrawBox:            drawBox,
		model.OpDrawCylinder:       drawCylinder,
		model.OpDrawSphere:         drawSphere,
		model.OpDrawCircle:         drawCircle,
		model.OpDraw2DRectangle:    draw2DRectangle,
		model.OpDrawLines:          drawLines,
		model.OpDrawOneLine:        drawOneLine,
		model.OpDrawArc:            drawArc,
		model.OpDrawSpline:         drawSpline,
		model.OpDrawEllipse:        drawEllipse,
		model.OpDrawText:           drawText,
		model.OpOffsetPlane:        offsetPlane,
		model.OpExtrudeLastSketch:  extrudeLastSketch,
		model.OpExtrudeThin:        extrudeThin,
		model.OpCutExtrude:         cutExtrude,
		model.OpLoft:               loft,
		model.OpSweep:              sweep,
		model.OpRevolveProfile:     revolveProfile,
		model.OpThread:             thread,
		model.OpFilletEdges:        filletEdges,
		model.OpShellBody:          shellBody,
		model.OpHoles:              holes,
		model.OpBooleanOperation:   booleanOperation,
		model.OpCircularPattern:    circularPattern,
		model.OpRectangularPattern: rectangularPattern,
		model.OpMoveBody:           moveBody,
		model.OpMoveBodyByToken:    moveBodyByToken,
		model.OpDeleteBodyByToken:  deleteBodyByToken,
		model.OpEditExtrudeDist:    editExtrudeDistance,
		model.OpGetBodyInfo:        getBodyInfo,
		model.OpGetFeatureInfo:     getFeatureInfo,
		model.OpSetBodyVisibility:  setBodyVisibility,
		model.OpSelectBody:         selectBody,
		model.OpSelectSketch:       selectSketch,
		model.OpSetParameter:       setParameter,
		model.OpUndo:               undo,
		model.OpDeleteEverything:   deleteEverything,
		model.OpExportSTL:          exportSTL,
		model.OpExportSTEP:         exportSTEP,
	}
}

// paramsAs asserts the task parameters into the handler's own type.
func paramsAs[T any](params any) (T, error) {
	p, ok := params.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("unexpected parameter type %T: %w", params, model.ErrNotValid)
	}
	return p, nil
}
