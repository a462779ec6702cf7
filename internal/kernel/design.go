// Package kernel implements the in-process modeling kernel the bridge
// executes operations against. It is deliberately not safe for concurrent
// use: every mutation must happen on the single host execution context,
// exactly like the desktop CAD API it stands in for.
package kernel

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/model"
)

// Design is the root document: sketches, bodies and features in creation
// order, plus the modeling parameters and the undo timeline.
type Design struct {
	sketches []*Sketch
	bodies   []*Body
	features []*Feature
	params   []model.Parameter

	entities map[string]Entity
	counters map[string]int
	undo     []checkpoint
}

// NewDesign creates an empty design document.
func NewDesign() *Design {
	return &Design{
		entities: map[string]Entity{},
		counters: map[string]int{},
		params: []model.Parameter{
			{Name: "d1", Value: "1", Unit: "cm", Expression: "1 cm"},
		},
	}
}

// newToken returns a fresh persistent entity token.
func newToken() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}

// nextName returns the next sequential name for an entity kind, e.g.
// "Extrude1", "Body3".
func (d *Design) nextName(kind string) string {
	d.counters[kind]++
	return fmt.Sprintf("%s%d", kind, d.counters[kind])
}

// register adds an entity to the token index.
func (d *Design) register(e Entity) {
	d.entities[e.Token()] = e
}

// FindEntityByToken resolves a persistent token back to a live entity.
func (d *Design) FindEntityByToken(token string) (Entity, bool) {
	e, ok := d.entities[token]
	return e, ok
}

// Bodies returns the bodies of the root component in creation order.
func (d *Design) Bodies() []*Body { return d.bodies }

// Sketches returns the sketches in creation order.
func (d *Design) Sketches() []*Sketch { return d.sketches }

// Features returns the timeline features in creation order.
func (d *Design) Features() []*Feature { return d.features }

// LastSketch returns the most recently created sketch.
func (d *Design) LastSketch() (*Sketch, error) {
	if len(d.sketches) == 0 {
		return nil, fmt.Errorf("design has no sketches: %w", model.ErrNotFound)
	}
	return d.sketches[len(d.sketches)-1], nil
}

// LastBody returns the most recently created body.
func (d *Design) LastBody() (*Body, error) {
	if len(d.bodies) == 0 {
		return nil, fmt.Errorf("design has no bodies: %w", model.ErrNotFound)
	}
	return d.bodies[len(d.bodies)-1], nil
}

// BodyByName returns a body by its display name.
func (d *Design) BodyByName(name string) (*Body, error) {
	for _, b := range d.bodies {
		if b.Name() == name {
			return b, nil
		}
	}
	return nil, fmt.Errorf("body %q: %w", name, model.ErrNotFound)
}

// SketchByName returns a sketch by its display name.
func (d *Design) SketchByName(name string) (*Sketch, error) {
	for _, s := range d.sketches {
		if s.Name() == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("sketch %q: %w", name, model.ErrNotFound)
}

// checkpoint records a copy of the document membership before a mutating
// operation. Operations may both add and remove entries (combine consumes
// its tool body, delete removes a body), so a copy is the only restore
// point that works for every operation.
type checkpoint struct {
	sketches []*Sketch
	bodies   []*Body
	features []*Feature
}

// beginStep pushes an undo checkpoint. Every mutating operation calls it
// once before touching the document.
func (d *Design) beginStep() {
	d.undo = append(d.undo, checkpoint{
		sketches: append([]*Sketch(nil), d.sketches...),
		bodies:   append([]*Body(nil), d.bodies...),
		features: append([]*Feature(nil), d.features...),
	})
}

// Undo reverts the most recent operation by restoring the document to its
// last checkpoint. Entities created after the checkpoint drop out of the
// token index; entities the operation removed become resolvable again.
func (d *Design) Undo() error {
	if len(d.undo) == 0 {
		return fmt.Errorf("nothing to undo: %w", model.ErrNotValid)
	}
	cp := d.undo[len(d.undo)-1]
	d.undo = d.undo[:len(d.undo)-1]

	d.sketches = cp.sketches
	d.bodies = cp.bodies
	d.features = cp.features

	d.entities = map[string]Entity{}
	for _, s := range d.sketches {
		d.entities[s.Token()] = s
	}
	for _, b := range d.bodies {
		d.entities[b.Token()] = b
	}
	for _, f := range d.features {
		d.entities[f.Token()] = f
	}
	return nil
}

// DeleteEverything removes every body and sketch from the design. The undo
// timeline is cleared too: there is nothing meaningful to restore through.
func (d *Design) DeleteEverything() {
	d.sketches = nil
	d.bodies = nil
	d.features = nil
	d.undo = nil
	d.entities = map[string]Entity{}
}

// removeBody drops a body from the root component and the token index.
func (d *Design) removeBody(b *Body) {
	for i, other := range d.bodies {
		if other == b {
			d.bodies = append(d.bodies[:i], d.bodies[i+1:]...)
			break
		}
	}
	delete(d.entities, b.Token())
}
