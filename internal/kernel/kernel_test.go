package kernel_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/kernel"
	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/model"
)

func TestBoxCreation(t *testing.T) {
	d := kernel.NewDesign()

	data, err := d.Box(2, 3, 4, 1, 1, 0)
	require.NoError(t, err)
	require.NotNil(t, data)
	require.Len(t, data.Bodies, 1)

	body, ok := d.FindEntityByToken(data.Bodies[0].BodyToken)
	require.True(t, ok)
	b, ok := body.(*kernel.Body)
	require.True(t, ok)

	assert.Equal(t, "Body1", b.Name())
	assert.True(t, b.IsSolid())
	assert.True(t, b.IsVisible())
	assert.InDelta(t, 24.0, b.Volume(), 0.001)
	assert.Equal(t, 6, b.FaceCount())
	assert.Equal(t, 12, b.EdgeCount())
	assert.Equal(t, model.Point{X: 1, Y: 1, Z: 0}, b.BoundingBox().Min)
	assert.Equal(t, model.Point{X: 3, Y: 4, Z: 4}, b.BoundingBox().Max)
}

func TestInvalidDimensions(t *testing.T) {
	tests := map[string]struct {
		op func(d *kernel.Design) error
	}{
		"Zero box width should fail": {
			op: func(d *kernel.Design) error { _, err := d.Box(0, 1, 1, 0, 0, 0); return err },
		},
		"Negative cylinder radius should fail": {
			op: func(d *kernel.Design) error { _, err := d.Cylinder(-1, 2, 0, 0, 0); return err },
		},
		"Zero sphere radius should fail": {
			op: func(d *kernel.Design) error { _, err := d.Sphere(0, 0, 0, 0); return err },
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			d := kernel.NewDesign()
			err := test.op(d)
			assert.ErrorIs(t, err, model.ErrNotValid)
			assert.Empty(t, d.Bodies())
		})
	}
}

func TestSketchAndExtrude(t *testing.T) {
	d := kernel.NewDesign()

	s, err := d.AddSketch(model.PlaneXY, 0)
	require.NoError(t, err)
	require.NoError(t, s.AddCircle(model.Point{}, 2))

	data, err := d.Extrude(5)
	require.NoError(t, err)
	require.Len(t, data.Bodies, 1)

	b := d.Bodies()[0]
	// Circle area pi*r^2 times distance.
	assert.InDelta(t, 62.832, b.Volume(), 0.01)
}

func TestExtrudeWithoutProfile(t *testing.T) {
	d := kernel.NewDesign()

	_, err := d.Extrude(5)
	assert.ErrorIs(t, err, model.ErrNotFound)

	s, err := d.AddSketch(model.PlaneXY, 0)
	require.NoError(t, err)
	s.AddLine(model.Point{}, model.Point{X: 1})

	_, err = d.Extrude(5)
	assert.ErrorIs(t, err, model.ErrNotValid)
}

func TestCutExtrudeReducesVolume(t *testing.T) {
	d := kernel.NewDesign()

	_, err := d.Box(4, 4, 4, 0, 0, 0)
	require.NoError(t, err)

	s, err := d.AddSketch(model.PlaneXY, 0)
	require.NoError(t, err)
	require.NoError(t, s.AddCircle(model.Point{X: 2, Y: 2}, 1))

	_, err = d.CutExtrude(4)
	require.NoError(t, err)

	assert.InDelta(t, 64-12.566, d.Bodies()[0].Volume(), 0.01)
}

func TestUndoRestoresDocument(t *testing.T) {
	d := kernel.NewDesign()

	first, err := d.Box(1, 1, 1, 0, 0, 0)
	require.NoError(t, err)
	_, err = d.Box(2, 2, 2, 5, 5, 5)
	require.NoError(t, err)
	require.Len(t, d.Bodies(), 2)

	require.NoError(t, d.Undo())

	require.Len(t, d.Bodies(), 1)
	_, ok := d.FindEntityByToken(first.Bodies[0].BodyToken)
	assert.True(t, ok)

	require.NoError(t, d.Undo())
	assert.Empty(t, d.Bodies())

	assert.ErrorIs(t, d.Undo(), model.ErrNotValid)
}

func TestUndoRestoresDeletedBody(t *testing.T) {
	d := kernel.NewDesign()

	data, err := d.Box(1, 1, 1, 0, 0, 0)
	require.NoError(t, err)
	token := data.Bodies[0].BodyToken

	_, err = d.DeleteBodyByToken(token)
	require.NoError(t, err)
	require.Empty(t, d.Bodies())

	require.NoError(t, d.Undo())

	require.Len(t, d.Bodies(), 1)
	e, ok := d.FindEntityByToken(token)
	require.True(t, ok)
	assert.Equal(t, "Body1", e.Name())
}

func TestModifyFeatureReportsRealBodyIndex(t *testing.T) {
	d := kernel.NewDesign()

	first, err := d.Box(1, 1, 1, 0, 0, 0)
	require.NoError(t, err)
	_, err = d.Box(1, 1, 1, 5, 5, 5)
	require.NoError(t, err)

	// Moving the first body must report its real position, not the last.
	data, err := d.MoveBodyByToken(first.Bodies[0].BodyToken, 1, 0, 0)
	require.NoError(t, err)
	require.Len(t, data.Bodies, 1)
	assert.Equal(t, 0, data.Bodies[0].BodyIndex)
}

func TestUndoRestoresCombineToolBody(t *testing.T) {
	d := kernel.NewDesign()

	_, err := d.Box(3, 3, 3, 0, 0, 0)
	require.NoError(t, err)
	toolData, err := d.Box(2, 2, 2, 1, 1, 1)
	require.NoError(t, err)
	toolToken := toolData.Bodies[0].BodyToken

	_, err = d.Combine(model.BooleanJoin, "Body1", "Body2")
	require.NoError(t, err)
	require.Len(t, d.Bodies(), 1)

	require.NoError(t, d.Undo())

	require.Len(t, d.Bodies(), 2)
	_, ok := d.FindEntityByToken(toolToken)
	assert.True(t, ok)
	_, err = d.BodyByName("Body2")
	assert.NoError(t, err)

	// A second undo still walks back past the combine checkpoint.
	require.NoError(t, d.Undo())
	require.Len(t, d.Bodies(), 1)
}

func TestDeleteEverything(t *testing.T) {
	d := kernel.NewDesign()

	data, err := d.Box(1, 1, 1, 0, 0, 0)
	require.NoError(t, err)
	_, err = d.AddSketch(model.PlaneXY, 0)
	require.NoError(t, err)

	d.DeleteEverything()

	assert.Empty(t, d.Bodies())
	assert.Empty(t, d.Sketches())
	assert.Empty(t, d.Features())
	_, ok := d.FindEntityByToken(data.Bodies[0].BodyToken)
	assert.False(t, ok)
	assert.ErrorIs(t, d.Undo(), model.ErrNotValid)
}

func TestBooleanCombine(t *testing.T) {
	tests := map[string]struct {
		op        model.BooleanOp
		expVolume float64
	}{
		"Join should add the tool volume":           {op: model.BooleanJoin, expVolume: 27 + 8},
		"Cut should subtract the tool volume":      {op: model.BooleanCut, expVolume: 27 - 8},
		"Intersect should keep the smaller volume": {op: model.BooleanIntersect, expVolume: 8},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			d := kernel.NewDesign()
			_, err := d.Box(3, 3, 3, 0, 0, 0)
			require.NoError(t, err)
			_, err = d.Box(2, 2, 2, 1, 1, 1)
			require.NoError(t, err)

			_, err = d.Combine(test.op, "Body1", "Body2")
			require.NoError(t, err)

			// The tool body is consumed.
			require.Len(t, d.Bodies(), 1)
			assert.InDelta(t, test.expVolume, d.Bodies()[0].Volume(), 0.001)
		})
	}
}

func TestBooleanCombineValidation(t *testing.T) {
	d := kernel.NewDesign()
	_, err := d.Box(1, 1, 1, 0, 0, 0)
	require.NoError(t, err)

	_, err = d.Combine(model.BooleanOp("xor"), "Body1", "Body1")
	assert.ErrorIs(t, err, model.ErrNotValid)

	_, err = d.Combine(model.BooleanCut, "Body1", "Nope")
	assert.ErrorIs(t, err, model.ErrNotFound)

	_, err = d.Combine(model.BooleanCut, "Body1", "Body1")
	assert.ErrorIs(t, err, model.ErrNotValid)
}

func TestPatterns(t *testing.T) {
	d := kernel.NewDesign()
	_, err := d.Box(1, 1, 1, 0, 0, 0)
	require.NoError(t, err)

	data, err := d.CircularPattern(model.AxisZ, 4)
	require.NoError(t, err)
	assert.Len(t, data.Bodies, 4)
	assert.Len(t, d.Bodies(), 4)

	d = kernel.NewDesign()
	_, err = d.Box(1, 1, 1, 0, 0, 0)
	require.NoError(t, err)

	data, err = d.RectangularPattern(2, 3, 5, 5)
	require.NoError(t, err)
	assert.Len(t, data.Bodies, 6)
	assert.Len(t, d.Bodies(), 6)
}

func TestMoveAndTokenOps(t *testing.T) {
	d := kernel.NewDesign()
	data, err := d.Box(1, 1, 1, 0, 0, 0)
	require.NoError(t, err)
	token := data.Bodies[0].BodyToken

	moved, err := d.MoveBodyByToken(token, 2, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, token, moved.MovedBodyToken)

	info, err := d.BodyInfo(token)
	require.NoError(t, err)
	assert.Equal(t, float64(2), info.BoundingBox.Min.X)
	assert.Equal(t, float64(3), info.BoundingBox.Max.X)

	deleted, err := d.DeleteBodyByToken(token)
	require.NoError(t, err)
	assert.Equal(t, token, deleted.DeletedBodyToken)
	assert.Empty(t, d.Bodies())

	_, err = d.BodyInfo(token)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestEditExtrudeDistance(t *testing.T) {
	d := kernel.NewDesign()

	s, err := d.AddSketch(model.PlaneXY, 0)
	require.NoError(t, err)
	s.AddRectangle(model.Point{}, model.Point{X: 2, Y: 2})

	data, err := d.Extrude(3)
	require.NoError(t, err)
	assert.InDelta(t, 12, d.Bodies()[0].Volume(), 0.001)

	edited, err := d.EditExtrudeDistance(data.FeatureToken, 6)
	require.NoError(t, err)
	require.NotNil(t, edited.Distance)
	require.NotNil(t, edited.NewDistance)
	assert.Equal(t, float64(3), *edited.Distance)
	assert.Equal(t, float64(6), *edited.NewDistance)
	assert.InDelta(t, 24, d.Bodies()[0].Volume(), 0.001)

	// Only extrude features can be edited.
	_, err = d.Box(1, 1, 1, 0, 0, 0)
	require.NoError(t, err)
	boxFeature := d.Features()[len(d.Features())-1]
	_, err = d.EditExtrudeDistance(boxFeature.Token(), 2)
	assert.NoError(t, err) // Box features are extrudes.
}

func TestFeatureInfo(t *testing.T) {
	d := kernel.NewDesign()
	data, err := d.Box(1, 1, 1, 0, 0, 0)
	require.NoError(t, err)

	info, err := d.FeatureInfo(data.FeatureToken)
	require.NoError(t, err)
	assert.Equal(t, kernel.FeatureExtrude, info.FeatureType)
	require.NotNil(t, info.IsSuppressed)
	assert.False(t, *info.IsSuppressed)

	_, err = d.FeatureInfo("missing")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestThreadSelection(t *testing.T) {
	d := kernel.NewDesign()
	_, err := d.Cylinder(1, 5, 0, 0, 0)
	require.NoError(t, err)

	// Headless runs fail the selection.
	_, err = d.Thread(kernel.HeadlessUI{})
	assert.ErrorIs(t, err, model.ErrNotValid)

	// A scripted user picks a face.
	face, err := d.Bodies()[0].Face(1)
	require.NoError(t, err)
	ui := &kernel.ScriptedUI{}
	ui.PushSelection(face)

	data, err := d.Thread(ui)
	require.NoError(t, err)
	assert.Equal(t, kernel.FeatureThread, data.FeatureType)
	require.Len(t, data.Bodies, 1)
	assert.Equal(t, d.Bodies()[0].Name(), data.Bodies[0].BodyName)
}

func TestParameters(t *testing.T) {
	d := kernel.NewDesign()

	params := d.Parameters()
	require.Len(t, params, 1)
	assert.Equal(t, "d1", params[0].Name)

	require.NoError(t, d.SetParameter("d1", 2.5))
	assert.Equal(t, "2.5", d.Parameters()[0].Value)
	assert.Equal(t, "2.5 cm", d.Parameters()[0].Expression)

	assert.ErrorIs(t, d.SetParameter("nope", 1), model.ErrNotFound)

	require.NoError(t, d.AddParameter("width", "mm", 10))
	assert.Equal(t, 2, d.ParameterCount())
	assert.ErrorIs(t, d.AddParameter("width", "mm", 10), model.ErrAlreadyExists)

	// Returned slices are copies.
	d.Parameters()[0].Value = "mutated"
	assert.Equal(t, "2.5", d.Parameters()[0].Value)
}

func TestSetBodyVisibility(t *testing.T) {
	d := kernel.NewDesign()
	data, err := d.Box(1, 1, 1, 0, 0, 0)
	require.NoError(t, err)
	token := data.Bodies[0].BodyToken

	res, err := d.SetBodyVisibility(token, false)
	require.NoError(t, err)
	require.NotNil(t, res.IsVisible)
	assert.False(t, *res.IsVisible)
	assert.False(t, d.Bodies()[0].IsVisible())
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	exporter, err := kernel.NewExporter(dir)
	require.NoError(t, err)

	d := kernel.NewDesign()

	// Exporting an empty design fails.
	_, err = exporter.ExportSTL(d, "empty")
	assert.ErrorIs(t, err, model.ErrNotValid)

	_, err = d.Box(1, 1, 1, 0, 0, 0)
	require.NoError(t, err)

	stlPath, err := exporter.ExportSTL(d, "part")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "part.stl"), stlPath)
	content, err := os.ReadFile(stlPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "solid Body1"))

	stepPath, err := exporter.ExportSTEP(d, "")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(stepPath, ".step"))
	content, err = os.ReadFile(stepPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "ISO-10303-21")
}

func TestRevolveAndLoftAndSweep(t *testing.T) {
	d := kernel.NewDesign()

	s, err := d.AddSketch(model.PlaneXZ, 0)
	require.NoError(t, err)
	require.NoError(t, s.AddCircle(model.Point{X: 3}, 1))

	data, err := d.Revolve(model.AxisZ)
	require.NoError(t, err)
	assert.Equal(t, kernel.FeatureRevolve, data.FeatureType)
	assert.Positive(t, d.Bodies()[0].Volume())

	// Loft through two circles on offset planes.
	d = kernel.NewDesign()
	s1, err := d.AddSketch(model.PlaneXY, 0)
	require.NoError(t, err)
	require.NoError(t, s1.AddCircle(model.Point{}, 2))
	s2, err := d.AddSketch(model.PlaneXY, 5)
	require.NoError(t, err)
	require.NoError(t, s2.AddCircle(model.Point{}, 1))

	data, err = d.Loft(2)
	require.NoError(t, err)
	assert.Equal(t, kernel.FeatureLoft, data.FeatureType)

	_, err = d.Loft(5)
	assert.ErrorIs(t, err, model.ErrNotValid)

	// Sweep a profile along a path.
	d = kernel.NewDesign()
	profile, err := d.AddSketch(model.PlaneXY, 0)
	require.NoError(t, err)
	require.NoError(t, profile.AddCircle(model.Point{}, 1))
	path, err := d.AddSketch(model.PlaneXZ, 0)
	require.NoError(t, err)
	path.AddLine(model.Point{}, model.Point{X: 10})

	data, err = d.Sweep()
	require.NoError(t, err)
	assert.Equal(t, kernel.FeatureSweep, data.FeatureType)
	// Circle area times path length.
	assert.InDelta(t, 31.416, d.Bodies()[0].Volume(), 0.01)
}
