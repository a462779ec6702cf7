package kernel

import (
	"fmt"
	"math"

	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/model"
)

// modifyFeature records a timeline feature for an operation that changed an
// existing body and returns the standard payload.
func (d *Design) modifyFeature(featureType string, bodies ...*Body) *model.EntityData {
	f := &Feature{
		token:  newToken(),
		name:   d.nextName(featureType),
		typ:    featureType,
		bodies: bodies,
	}
	d.features = append(d.features, f)
	d.register(f)
	return d.entityData(f)
}

// resolveBody returns the named body, or the last body when name is empty.
func (d *Design) resolveBody(name string) (*Body, error) {
	if name == "" {
		return d.LastBody()
	}
	return d.BodyByName(name)
}

// FilletEdges rounds every edge of the named body (or the last body) with
// the given radius.
func (d *Design) FilletEdges(radius float64, bodyName string) (*model.EntityData, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("fillet radius must be positive: %w", model.ErrNotValid)
	}
	b, err := d.resolveBody(bodyName)
	if err != nil {
		return nil, err
	}
	if b.edges == 0 {
		return nil, fmt.Errorf("body %q has no edges to fillet: %w", b.name, model.ErrNotValid)
	}
	d.beginStep()
	// Each filleted edge becomes a blend face.
	b.faces += b.edges
	return d.modifyFeature(FeatureFillet, b), nil
}

// ShellBody hollows the named body (or the last body) to a wall of the
// given thickness.
func (d *Design) ShellBody(thickness float64, bodyName string) (*model.EntityData, error) {
	if thickness <= 0 {
		return nil, fmt.Errorf("shell thickness must be positive: %w", model.ErrNotValid)
	}
	b, err := d.resolveBody(bodyName)
	if err != nil {
		return nil, err
	}
	d.beginStep()
	size := b.bbox.Max
	inner := math.Max(size.X-b.bbox.Min.X-2*thickness, 0) *
		math.Max(size.Y-b.bbox.Min.Y-2*thickness, 0) *
		math.Max(size.Z-b.bbox.Min.Z-2*thickness, 0)
	b.volume = math.Max(b.volume-inner, 0)
	return d.modifyFeature(FeatureShell, b), nil
}

// Holes drills holes of the given diameter and depth into the last body at
// the given points.
func (d *Design) Holes(diameter, depth float64, points []model.Point) (*model.EntityData, error) {
	if diameter <= 0 || depth <= 0 {
		return nil, fmt.Errorf("hole diameter and depth must be positive: %w", model.ErrNotValid)
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("need at least one hole point: %w", model.ErrNotValid)
	}
	b, err := d.LastBody()
	if err != nil {
		return nil, err
	}
	d.beginStep()
	r := diameter / 2
	b.volume = math.Max(b.volume-float64(len(points))*math.Pi*r*r*depth, 0)
	b.faces += len(points)
	b.edges += 2 * len(points)
	return d.modifyFeature(FeatureHole, b), nil
}

// Thread cuts a thread on a cylindrical face the user picks interactively.
func (d *Design) Thread(ui UserInterface) (*model.EntityData, error) {
	e, err := ui.SelectEntity("Select a cylindrical face for the thread", "Faces")
	if err != nil {
		return nil, fmt.Errorf("thread face selection: %w", err)
	}
	face, ok := e.(*Face)
	if !ok {
		return nil, fmt.Errorf("selected entity %q is not a face: %w", e.Name(), model.ErrNotValid)
	}
	d.beginStep()
	return d.modifyFeature(FeatureThread, face.body), nil
}

// Combine applies a boolean operation between a target body and a tool
// body. The tool body is consumed.
func (d *Design) Combine(op model.BooleanOp, targetName, toolName string) (*model.EntityData, error) {
	if !op.Valid() {
		return nil, fmt.Errorf("boolean operation %q: %w", op, model.ErrNotValid)
	}
	target, err := d.BodyByName(targetName)
	if err != nil {
		return nil, err
	}
	tool, err := d.BodyByName(toolName)
	if err != nil {
		return nil, err
	}
	if target == tool {
		return nil, fmt.Errorf("target and tool are the same body: %w", model.ErrNotValid)
	}
	d.beginStep()
	switch op {
	case model.BooleanJoin:
		target.volume += tool.volume
		target.bbox = unionBBox(target.bbox, tool.bbox)
	case model.BooleanCut:
		target.volume = math.Max(target.volume-tool.volume, 0)
	case model.BooleanIntersect:
		target.volume = math.Min(target.volume, tool.volume)
		target.bbox = intersectBBox(target.bbox, tool.bbox)
	}
	d.removeBody(tool)
	return d.modifyFeature(FeatureCombine, target), nil
}

func unionBBox(a, b model.BoundingBox) model.BoundingBox {
	return model.BoundingBox{
		Min: model.Point{
			X: math.Min(a.Min.X, b.Min.X),
			Y: math.Min(a.Min.Y, b.Min.Y),
			Z: math.Min(a.Min.Z, b.Min.Z),
		},
		Max: model.Point{
			X: math.Max(a.Max.X, b.Max.X),
			Y: math.Max(a.Max.Y, b.Max.Y),
			Z: math.Max(a.Max.Z, b.Max.Z),
		},
	}
}

func intersectBBox(a, b model.BoundingBox) model.BoundingBox {
	return model.BoundingBox{
		Min: model.Point{
			X: math.Max(a.Min.X, b.Min.X),
			Y: math.Max(a.Min.Y, b.Min.Y),
			Z: math.Max(a.Min.Z, b.Min.Z),
		},
		Max: model.Point{
			X: math.Min(a.Max.X, b.Max.X),
			Y: math.Min(a.Max.Y, b.Max.Y),
			Z: math.Min(a.Max.Z, b.Max.Z),
		},
	}
}

// copyBody duplicates a body with a fresh token and the next sequential
// name.
func (d *Design) copyBody(src *Body) *Body {
	b := &Body{
		token:   newToken(),
		name:    d.nextName("Body"),
		solid:   src.solid,
		visible: src.visible,
		volume:  src.volume,
		bbox:    src.bbox,
		faces:   src.faces,
		edges:   src.edges,
	}
	d.bodies = append(d.bodies, b)
	d.register(b)
	return b
}

// CircularPattern duplicates the last body around the given axis so the
// pattern holds quantity instances in total.
func (d *Design) CircularPattern(axis model.Axis, quantity int) (*model.EntityData, error) {
	if !axis.Valid() {
		return nil, fmt.Errorf("axis %q: %w", axis, model.ErrNotValid)
	}
	if quantity < 2 {
		return nil, fmt.Errorf("pattern quantity must be at least 2: %w", model.ErrNotValid)
	}
	src, err := d.LastBody()
	if err != nil {
		return nil, err
	}
	d.beginStep()
	bodies := []*Body{src}
	for i := 1; i < quantity; i++ {
		bodies = append(bodies, d.copyBody(src))
	}
	return d.modifyFeature(FeaturePattern, bodies...), nil
}

// RectangularPattern duplicates the last body in a grid: quantityOne
// instances spaced by distanceOne along the first direction, quantityTwo
// spaced by distanceTwo along the second.
func (d *Design) RectangularPattern(quantityOne, quantityTwo int, distanceOne, distanceTwo float64) (*model.EntityData, error) {
	if quantityOne < 1 || quantityTwo < 1 {
		return nil, fmt.Errorf("pattern quantities must be at least 1: %w", model.ErrNotValid)
	}
	if quantityOne*quantityTwo < 2 {
		return nil, fmt.Errorf("pattern must produce more than one instance: %w", model.ErrNotValid)
	}
	src, err := d.LastBody()
	if err != nil {
		return nil, err
	}
	d.beginStep()
	bodies := []*Body{src}
	for i := 0; i < quantityOne; i++ {
		for j := 0; j < quantityTwo; j++ {
			if i == 0 && j == 0 {
				continue
			}
			b := d.copyBody(src)
			b.translate(float64(i)*distanceOne, float64(j)*distanceTwo, 0)
			bodies = append(bodies, b)
		}
	}
	return d.modifyFeature(FeaturePattern, bodies...), nil
}

// MoveLastBody translates the last body by the given deltas.
func (d *Design) MoveLastBody(x, y, z float64) (*model.EntityData, error) {
	b, err := d.LastBody()
	if err != nil {
		return nil, err
	}
	d.beginStep()
	b.translate(x, y, z)
	data := d.modifyFeature(FeatureMove, b)
	data.MovedBodyToken = b.token
	data.MovedBodyName = b.name
	return data, nil
}

// bodyByToken resolves a token to a live body.
func (d *Design) bodyByToken(token string) (*Body, error) {
	e, ok := d.FindEntityByToken(token)
	if !ok {
		return nil, fmt.Errorf("entity token %q: %w", token, model.ErrNotFound)
	}
	b, ok := e.(*Body)
	if !ok {
		return nil, fmt.Errorf("entity %q is not a body: %w", e.Name(), model.ErrNotValid)
	}
	return b, nil
}

// featureByToken resolves a token to a live feature.
func (d *Design) featureByToken(token string) (*Feature, error) {
	e, ok := d.FindEntityByToken(token)
	if !ok {
		return nil, fmt.Errorf("entity token %q: %w", token, model.ErrNotFound)
	}
	f, ok := e.(*Feature)
	if !ok {
		return nil, fmt.Errorf("entity %q is not a feature: %w", e.Name(), model.ErrNotValid)
	}
	return f, nil
}

// MoveBodyByToken translates the body with the given token.
func (d *Design) MoveBodyByToken(token string, x, y, z float64) (*model.EntityData, error) {
	b, err := d.bodyByToken(token)
	if err != nil {
		return nil, err
	}
	d.beginStep()
	b.translate(x, y, z)
	data := d.modifyFeature(FeatureMove, b)
	data.MovedBodyToken = b.token
	data.MovedBodyName = b.name
	return data, nil
}

// DeleteBodyByToken removes the body with the given token from the design.
func (d *Design) DeleteBodyByToken(token string) (*model.EntityData, error) {
	b, err := d.bodyByToken(token)
	if err != nil {
		return nil, err
	}
	d.beginStep()
	d.removeBody(b)
	return &model.EntityData{
		DeletedBodyToken: b.Token(),
		DeletedBodyName:  b.Name(),
	}, nil
}

// EditExtrudeDistance changes the extent distance of the extrude feature
// with the given token.
func (d *Design) EditExtrudeDistance(token string, distance float64) (*model.EntityData, error) {
	f, err := d.featureByToken(token)
	if err != nil {
		return nil, err
	}
	old := f.Distance()
	d.beginStep()
	if err := f.SetDistance(distance); err != nil {
		return nil, err
	}
	data := d.entityData(f)
	data.Distance = &old
	data.NewDistance = &distance
	return data, nil
}

// BodyInfo returns the state of the body with the given token.
func (d *Design) BodyInfo(token string) (*model.EntityData, error) {
	b, err := d.bodyByToken(token)
	if err != nil {
		return nil, err
	}
	solid := b.IsSolid()
	visible := b.IsVisible()
	volume := b.Volume()
	faces := b.FaceCount()
	edges := b.EdgeCount()
	bbox := b.BoundingBox()
	return &model.EntityData{
		BodyToken:   b.Token(),
		BodyName:    b.Name(),
		IsSolid:     &solid,
		IsVisible:   &visible,
		Volume:      &volume,
		FaceCount:   &faces,
		EdgeCount:   &edges,
		BoundingBox: &bbox,
	}, nil
}

// FeatureInfo returns the state of the feature with the given token.
func (d *Design) FeatureInfo(token string) (*model.EntityData, error) {
	f, err := d.featureByToken(token)
	if err != nil {
		return nil, err
	}
	data := d.entityData(f)
	suppressed := f.IsSuppressed()
	data.IsSuppressed = &suppressed
	if f.typ == FeatureExtrude || f.typ == FeatureExtrudeThin || f.typ == FeatureCutExtrude {
		distance := f.Distance()
		data.Distance = &distance
	}
	return data, nil
}

// SetBodyVisibility shows or hides the body with the given token.
func (d *Design) SetBodyVisibility(token string, visible bool) (*model.EntityData, error) {
	b, err := d.bodyByToken(token)
	if err != nil {
		return nil, err
	}
	b.SetVisible(visible)
	isVisible := b.IsVisible()
	return &model.EntityData{
		BodyToken: b.Token(),
		BodyName:  b.Name(),
		IsVisible: &isVisible,
	}, nil
}
