package kernel

import (
	"fmt"

	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/model"
)

// Entity is anything addressable by a persistent token: bodies, sketches,
// features and faces.
type Entity interface {
	Token() string
	Name() string
}

// Body is a solid (or surface) body of the root component.
type Body struct {
	token   string
	name    string
	solid   bool
	visible bool
	volume  float64
	bbox    model.BoundingBox
	faces   int
	edges   int
}

func (b *Body) Token() string { return b.token }
func (b *Body) Name() string  { return b.name }

// IsSolid reports whether the body encloses a volume.
func (b *Body) IsSolid() bool { return b.solid }

// IsVisible reports the body's visibility in the viewport.
func (b *Body) IsVisible() bool { return b.visible }

// SetVisible shows or hides the body.
func (b *Body) SetVisible(v bool) { b.visible = v }

// Volume returns the body volume in cubic cm (0 for non-solid bodies).
func (b *Body) Volume() float64 { return b.volume }

// BoundingBox returns the body's axis-aligned bounding box.
func (b *Body) BoundingBox() model.BoundingBox { return b.bbox }

// FaceCount returns the number of faces of the body.
func (b *Body) FaceCount() int { return b.faces }

// EdgeCount returns the number of edges of the body.
func (b *Body) EdgeCount() int { return b.edges }

// Face returns the face of the body at the given index.
func (b *Body) Face(index int) (*Face, error) {
	if index < 0 || index >= b.faces {
		return nil, fmt.Errorf("face index %d out of range (body has %d faces): %w", index, b.faces, model.ErrNotValid)
	}
	return &Face{body: b, index: index}, nil
}

// translate shifts the body's bounding box by the given deltas.
func (b *Body) translate(x, y, z float64) {
	b.bbox.Min.X += x
	b.bbox.Min.Y += y
	b.bbox.Min.Z += z
	b.bbox.Max.X += x
	b.bbox.Max.Y += y
	b.bbox.Max.Z += z
}

// Face is one face of a body. Faces have derived tokens: they are not
// registered in the design token index and only live as selection results.
type Face struct {
	body  *Body
	index int
}

func (f *Face) Token() string { return fmt.Sprintf("%s/face/%d", f.body.token, f.index) }
func (f *Face) Name() string  { return fmt.Sprintf("%s face %d", f.body.name, f.index) }

// Body returns the owning body.
func (f *Face) Body() *Body { return f.body }

// Index returns the face index within the owning body.
func (f *Face) Index() int { return f.index }

// Feature is one timeline entry: the operation that created or modified
// bodies.
type Feature struct {
	token      string
	name       string
	typ        string
	bodies     []*Body
	distance   float64
	suppressed bool
}

func (f *Feature) Token() string { return f.token }
func (f *Feature) Name() string  { return f.name }

// Type returns the feature type, e.g. "Extrude" or "Loft".
func (f *Feature) Type() string { return f.typ }

// Bodies returns the bodies associated with the feature.
func (f *Feature) Bodies() []*Body { return f.bodies }

// Distance returns the extent distance for extrude features.
func (f *Feature) Distance() float64 { return f.distance }

// IsSuppressed reports whether the feature is suppressed in the timeline.
func (f *Feature) IsSuppressed() bool { return f.suppressed }

// SetDistance changes the extent distance of an extrude feature and
// recomputes the volume of its bodies proportionally.
func (f *Feature) SetDistance(distance float64) error {
	if f.typ != FeatureExtrude && f.typ != FeatureExtrudeThin {
		return fmt.Errorf("feature %s is not an extrude feature: %w", f.name, model.ErrNotValid)
	}
	if f.distance != 0 {
		scale := distance / f.distance
		for _, b := range f.bodies {
			b.volume *= scale
			b.bbox.Max.Z = b.bbox.Min.Z + (b.bbox.Max.Z-b.bbox.Min.Z)*scale
		}
	}
	f.distance = distance
	return nil
}

// Feature type names as they appear in entity data payloads.
const (
	FeatureExtrude     = "Extrude"
	FeatureExtrudeThin = "ExtrudeThin"
	FeatureCutExtrude  = "CutExtrude"
	FeatureRevolve     = "Revolve"
	FeatureLoft        = "Loft"
	FeatureSweep       = "Sweep"
	FeatureMove        = "Move"
	FeatureCombine     = "Combine"
	FeatureFillet      = "Fillet"
	FeatureShell       = "Shell"
	FeatureHole        = "Hole"
	FeatureThread      = "Thread"
	FeaturePattern     = "Pattern"
)

// entityData builds the standard creation payload for a feature.
func (d *Design) entityData(f *Feature) *model.EntityData {
	data := &model.EntityData{
		FeatureToken: f.token,
		FeatureName:  f.name,
		FeatureType:  f.typ,
	}
	for _, b := range f.bodies {
		data.Bodies = append(data.Bodies, model.BodyRef{
			BodyToken: b.token,
			BodyName:  b.name,
			BodyIndex: d.bodyIndex(b),
		})
	}
	return data
}

// bodyIndex returns the body's position in the root component, or -1 if
// the body is no longer part of it.
func (d *Design) bodyIndex(b *Body) int {
	for i, other := range d.bodies {
		if other == b {
			return i
		}
	}
	return -1
}
