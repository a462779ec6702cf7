package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/kernel"
	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/model"
	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/ops"
)

func newContext(t *testing.T) *ops.Context {
	t.Helper()
	exporter, err := kernel.NewExporter(t.TempDir())
	require.NoError(t, err)
	return &ops.Context{
		Design:   kernel.NewDesign(),
		UI:       &kernel.ScriptedUI{},
		Exporter: exporter,
	}
}

func TestRegistryCoversAllOperations(t *testing.T) {
	registry := ops.Registry()

	expected := []model.Op{
		model.OpSetParameter, model.OpDrawBox, model.OpDrawCylinder,
		model.OpDrawSphere, model.OpDrawCircle, model.OpDraw2DRectangle,
		model.OpDrawLines, model.OpDrawOneLine, model.OpDrawArc,
		model.OpDrawSpline, model.OpDrawEllipse, model.OpDrawText,
		model.OpOffsetPlane, model.OpExtrudeLastSketch, model.OpExtrudeThin,
		model.OpCutExtrude, model.OpLoft, model.OpSweep,
		model.OpRevolveProfile, model.OpThread, model.OpFilletEdges,
		model.OpShellBody, model.OpHoles, model.OpBooleanOperation,
		model.OpCircularPattern, model.OpRectangularPattern, model.OpMoveBody,
		model.OpMoveBodyByToken, model.OpDeleteBodyByToken, model.OpEditExtrudeDist,
		model.OpGetBodyInfo, model.OpGetFeatureInfo, model.OpSetBodyVisibility,
		model.OpSelectBody, model.OpSelectSketch, model.OpUndo,
		model.OpDeleteEverything, model.OpExportSTL, model.OpExportSTEP,
	}

	assert.Len(t, registry, len(expected))
	for _, op := range expected {
		assert.Contains(t, registry, op, "missing handler for %q", op)
	}
}

func TestHandlersRejectWrongParamsType(t *testing.T) {
	c := newContext(t)
	registry := ops.Registry()

	// Every handler should reject a params payload of the wrong shape.
	for op, handler := range registry {
		_, err := handler(c, "not a params struct")
		assert.ErrorIs(t, err, model.ErrNotValid, "handler for %q accepted bad params", op)
	}
}

func TestDrawBoxHandler(t *testing.T) {
	c := newContext(t)
	handler := ops.Registry()[model.OpDrawBox]

	data, err := handler(c, ops.BoxParams{Width: 2, Depth: 2, Height: 2})
	require.NoError(t, err)
	require.NotNil(t, data)
	require.Len(t, data.Bodies, 1)
	assert.NotEmpty(t, data.Bodies[0].BodyToken)
	assert.Len(t, c.Design.Bodies(), 1)
}

func TestOffsetPlaneArming(t *testing.T) {
	c := newContext(t)
	registry := ops.Registry()

	_, err := registry[model.OpOffsetPlane](c, ops.OffsetPlaneParams{Plane: model.PlaneXY, Offset: 5})
	require.NoError(t, err)

	// The next sketch consumes the armed offset.
	_, err = registry[model.OpDrawCircle](c, ops.CircleParams{Radius: 1, Plane: model.PlaneXY})
	require.NoError(t, err)
	require.Len(t, c.Design.Sketches(), 1)
	assert.Equal(t, 5.0, c.Design.Sketches()[0].Offset())

	// The one after does not.
	_, err = registry[model.OpDrawCircle](c, ops.CircleParams{Radius: 1, Plane: model.PlaneXY})
	require.NoError(t, err)
	assert.Equal(t, 0.0, c.Design.Sketches()[1].Offset())
}

func TestOffsetPlaneRejectsBadPlane(t *testing.T) {
	c := newContext(t)
	_, err := ops.Registry()[model.OpOffsetPlane](c, ops.OffsetPlaneParams{Plane: model.Plane("QZ"), Offset: 1})
	assert.ErrorIs(t, err, model.ErrNotValid)
}

func TestSketchThenExtrudeFlow(t *testing.T) {
	c := newContext(t)
	registry := ops.Registry()

	_, err := registry[model.OpDrawCircle](c, ops.CircleParams{Radius: 2, Plane: model.PlaneXY})
	require.NoError(t, err)

	data, err := registry[model.OpExtrudeLastSketch](c, ops.ExtrudeParams{Distance: 5})
	require.NoError(t, err)
	require.NotNil(t, data)
	require.Len(t, data.Bodies, 1)
	assert.InDelta(t, 62.832, c.Design.Bodies()[0].Volume(), 0.01)
}

func TestExportHandlers(t *testing.T) {
	c := newContext(t)
	registry := ops.Registry()

	_, err := registry[model.OpDrawBox](c, ops.BoxParams{Width: 1, Depth: 1, Height: 1})
	require.NoError(t, err)

	data, err := registry[model.OpExportSTL](c, ops.ExportParams{FileName: "part"})
	require.NoError(t, err)
	require.NotNil(t, data)
	assert.Contains(t, data.ExportPath, "part.stl")

	data, err = registry[model.OpExportSTEP](c, ops.ExportParams{})
	require.NoError(t, err)
	assert.NotEmpty(t, data.ExportPath)
}

func TestSelectHandlers(t *testing.T) {
	c := newContext(t)
	ui := c.UI.(*kernel.ScriptedUI)
	registry := ops.Registry()

	_, err := registry[model.OpDrawBox](c, ops.BoxParams{Width: 1, Depth: 1, Height: 1})
	require.NoError(t, err)

	data, err := registry[model.OpSelectBody](c, ops.SelectBodyParams{Name: "Body1"})
	require.NoError(t, err)
	assert.Equal(t, "Body1", data.BodyName)
	assert.NotEmpty(t, ui.Messages)

	_, err = registry[model.OpSelectBody](c, ops.SelectBodyParams{Name: "Body9"})
	assert.ErrorIs(t, err, model.ErrNotFound)

	_, err = registry[model.OpDrawCircle](c, ops.CircleParams{Radius: 1})
	require.NoError(t, err)

	// Sketch selection answers a token payload just like body selection.
	data, err = registry[model.OpSelectSketch](c, ops.SelectSketchParams{Name: "Sketch1"})
	require.NoError(t, err)
	require.NotNil(t, data)
	assert.Equal(t, "Sketch1", data.SketchName)
	assert.NotEmpty(t, data.SketchToken)
}
