package kernel

import (
	"fmt"
	"math"

	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/model"
)

// newSolid registers a fresh body together with the feature that produced
// it and returns the standard creation payload.
func (d *Design) newSolid(featureType string, volume float64, bbox model.BoundingBox, faces, edges int) *model.EntityData {
	b := &Body{
		token:   newToken(),
		name:    d.nextName("Body"),
		solid:   true,
		visible: true,
		volume:  volume,
		bbox:    bbox,
		faces:   faces,
		edges:   edges,
	}
	d.bodies = append(d.bodies, b)
	d.register(b)

	f := &Feature{
		token:  newToken(),
		name:   d.nextName(featureType),
		typ:    featureType,
		bodies: []*Body{b},
	}
	d.features = append(d.features, f)
	d.register(f)
	return d.entityData(f)
}

// Box creates a solid box with one corner at the given origin.
func (d *Design) Box(width, depth, height, x, y, z float64) (*model.EntityData, error) {
	if width <= 0 || depth <= 0 || height <= 0 {
		return nil, fmt.Errorf("box dimensions must be positive: %w", model.ErrNotValid)
	}
	d.beginStep()
	bbox := model.BoundingBox{
		Min: model.Point{X: x, Y: y, Z: z},
		Max: model.Point{X: x + width, Y: y + depth, Z: z + height},
	}
	return d.newSolid(FeatureExtrude, width*depth*height, bbox, 6, 12), nil
}

// Cylinder creates a solid cylinder standing on the given base point.
func (d *Design) Cylinder(radius, height, x, y, z float64) (*model.EntityData, error) {
	if radius <= 0 || height <= 0 {
		return nil, fmt.Errorf("cylinder dimensions must be positive: %w", model.ErrNotValid)
	}
	d.beginStep()
	bbox := model.BoundingBox{
		Min: model.Point{X: x - radius, Y: y - radius, Z: z},
		Max: model.Point{X: x + radius, Y: y + radius, Z: z + height},
	}
	return d.newSolid(FeatureExtrude, math.Pi*radius*radius*height, bbox, 3, 2), nil
}

// Sphere creates a solid sphere around the given center point.
func (d *Design) Sphere(radius, x, y, z float64) (*model.EntityData, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("sphere radius must be positive: %w", model.ErrNotValid)
	}
	d.beginStep()
	bbox := model.BoundingBox{
		Min: model.Point{X: x - radius, Y: y - radius, Z: z - radius},
		Max: model.Point{X: x + radius, Y: y + radius, Z: z + radius},
	}
	return d.newSolid(FeatureRevolve, 4.0/3.0*math.Pi*math.Pow(radius, 3), bbox, 1, 0), nil
}

// sketchBBox derives a bounding box for a solid built from the sketch's
// curve points, extruded by distance along the sketch plane normal.
func sketchBBox(s *Sketch, distance float64) model.BoundingBox {
	min := model.Point{X: math.Inf(1), Y: math.Inf(1)}
	max := model.Point{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, c := range s.curves {
		for _, p := range c.Points {
			r := c.Radius
			min.X = math.Min(min.X, p.X-r)
			min.Y = math.Min(min.Y, p.Y-r)
			max.X = math.Max(max.X, p.X+r)
			max.Y = math.Max(max.Y, p.Y+r)
		}
	}
	if min.X > max.X {
		min, max = model.Point{}, model.Point{}
	}
	min.Z = s.offset
	max.Z = s.offset + distance
	if distance < 0 {
		min.Z, max.Z = max.Z, min.Z
	}
	return model.BoundingBox{Min: min, Max: max}
}

// Extrude extrudes the first profile of the last sketch by distance into a
// new solid body.
func (d *Design) Extrude(distance float64) (*model.EntityData, error) {
	s, err := d.LastSketch()
	if err != nil {
		return nil, err
	}
	if s.profiles == 0 {
		return nil, fmt.Errorf("sketch %q has no closed profile: %w", s.name, model.ErrNotValid)
	}
	if distance == 0 {
		return nil, fmt.Errorf("extrude distance must not be zero: %w", model.ErrNotValid)
	}
	d.beginStep()
	ed := d.newSolid(FeatureExtrude, s.profileArea*math.Abs(distance), sketchBBox(s, distance), 3, 2)
	f := d.features[len(d.features)-1]
	f.distance = distance
	return ed, nil
}

// ExtrudeThin extrudes the last sketch's profile outline as a thin wall of
// the given thickness.
func (d *Design) ExtrudeThin(distance, thickness float64) (*model.EntityData, error) {
	s, err := d.LastSketch()
	if err != nil {
		return nil, err
	}
	if s.profiles == 0 {
		return nil, fmt.Errorf("sketch %q has no closed profile: %w", s.name, model.ErrNotValid)
	}
	if distance == 0 || thickness <= 0 {
		return nil, fmt.Errorf("extrude distance and wall thickness required: %w", model.ErrNotValid)
	}
	d.beginStep()
	// Thin walls keep the outline's footprint but only the wall material.
	perimeterArea := s.profileArea - math.Max(s.profileArea-4*thickness*math.Sqrt(s.profileArea), 0)
	ed := d.newSolid(FeatureExtrudeThin, perimeterArea*math.Abs(distance), sketchBBox(s, distance), 4, 8)
	f := d.features[len(d.features)-1]
	f.distance = distance
	return ed, nil
}

// CutExtrude removes the last sketch's profile, extruded by distance, from
// the last body.
func (d *Design) CutExtrude(distance float64) (*model.EntityData, error) {
	s, err := d.LastSketch()
	if err != nil {
		return nil, err
	}
	b, err := d.LastBody()
	if err != nil {
		return nil, err
	}
	if s.profiles == 0 {
		return nil, fmt.Errorf("sketch %q has no closed profile: %w", s.name, model.ErrNotValid)
	}
	d.beginStep()
	removed := s.profileArea * math.Abs(distance)
	b.volume = math.Max(b.volume-removed, 0)
	b.edges += 2

	f := &Feature{
		token:    newToken(),
		name:     d.nextName(FeatureCutExtrude),
		typ:      FeatureCutExtrude,
		bodies:   []*Body{b},
		distance: distance,
	}
	d.features = append(d.features, f)
	d.register(f)
	return d.entityData(f), nil
}

// Revolve revolves the last sketch's profile a full turn around the given
// axis into a new solid body.
func (d *Design) Revolve(axis model.Axis) (*model.EntityData, error) {
	if !axis.Valid() {
		return nil, fmt.Errorf("axis %q: %w", axis, model.ErrNotValid)
	}
	s, err := d.LastSketch()
	if err != nil {
		return nil, err
	}
	if s.profiles == 0 {
		return nil, fmt.Errorf("sketch %q has no closed profile: %w", s.name, model.ErrNotValid)
	}
	d.beginStep()
	bbox := sketchBBox(s, 0)
	span := math.Max(math.Abs(bbox.Max.X), math.Abs(bbox.Min.X))
	// Pappus: the swept volume is the profile area times the path of its
	// centroid, approximated at half the radial span.
	volume := s.profileArea * 2 * math.Pi * span / 2
	bbox = model.BoundingBox{
		Min: model.Point{X: -span, Y: -span, Z: bbox.Min.Y},
		Max: model.Point{X: span, Y: span, Z: bbox.Max.Y},
	}
	return d.newSolid(FeatureRevolve, volume, bbox, 1, 0), nil
}

// Loft builds a solid through the last sketchCount sketches.
func (d *Design) Loft(sketchCount int) (*model.EntityData, error) {
	if sketchCount < 2 {
		return nil, fmt.Errorf("loft needs at least two sketches: %w", model.ErrNotValid)
	}
	if len(d.sketches) < sketchCount {
		return nil, fmt.Errorf("loft needs %d sketches, have %d: %w", sketchCount, len(d.sketches), model.ErrNotValid)
	}
	sections := d.sketches[len(d.sketches)-sketchCount:]
	var area float64
	bbox := sketchBBox(sections[0], 0)
	for _, s := range sections {
		if s.profiles == 0 {
			return nil, fmt.Errorf("sketch %q has no closed profile: %w", s.name, model.ErrNotValid)
		}
		area += s.profileArea
		sb := sketchBBox(s, 0)
		bbox.Min.X = math.Min(bbox.Min.X, sb.Min.X)
		bbox.Min.Y = math.Min(bbox.Min.Y, sb.Min.Y)
		bbox.Min.Z = math.Min(bbox.Min.Z, sb.Min.Z)
		bbox.Max.X = math.Max(bbox.Max.X, sb.Max.X)
		bbox.Max.Y = math.Max(bbox.Max.Y, sb.Max.Y)
		bbox.Max.Z = math.Max(bbox.Max.Z, sb.Max.Z)
	}
	d.beginStep()
	height := bbox.Max.Z - bbox.Min.Z
	volume := area / float64(sketchCount) * math.Max(height, 1)
	return d.newSolid(FeatureLoft, volume, bbox, sketchCount+1, sketchCount*2), nil
}

// Sweep sweeps the second-to-last sketch's profile along the path drawn in
// the last sketch.
func (d *Design) Sweep() (*model.EntityData, error) {
	if len(d.sketches) < 2 {
		return nil, fmt.Errorf("sweep needs a profile sketch and a path sketch: %w", model.ErrNotValid)
	}
	profile := d.sketches[len(d.sketches)-2]
	path := d.sketches[len(d.sketches)-1]
	if profile.profiles == 0 {
		return nil, fmt.Errorf("sketch %q has no closed profile: %w", profile.name, model.ErrNotValid)
	}
	if len(path.curves) == 0 {
		return nil, fmt.Errorf("sketch %q has no path curve: %w", path.name, model.ErrNotValid)
	}
	d.beginStep()
	volume := profile.profileArea * pathLength(path)
	bbox := sketchBBox(path, 0)
	return d.newSolid(FeatureSweep, volume, bbox, 3, 2), nil
}

// pathLength sums the straight-line lengths of a sketch's curves.
func pathLength(s *Sketch) float64 {
	var total float64
	for _, c := range s.curves {
		for i := 0; i < len(c.Points)-1; i++ {
			p, q := c.Points[i], c.Points[i+1]
			total += math.Sqrt(math.Pow(q.X-p.X, 2) + math.Pow(q.Y-p.Y, 2) + math.Pow(q.Z-p.Z, 2))
		}
	}
	return total
}
