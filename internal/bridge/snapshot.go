package bridge

import (
	"sync/atomic"

	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/model"
)

// Snapshot is the read-side copy of the design's modeling parameters. The
// dispatcher replaces it wholesale on every tick; HTTP readers get the last
// published copy without ever touching the live design.
type Snapshot struct {
	params atomic.Value // []model.Parameter
}

// NewSnapshot returns an empty parameter snapshot.
func NewSnapshot() *Snapshot {
	s := &Snapshot{}
	s.params.Store([]model.Parameter{})
	return s
}

// Replace publishes a new parameter list. The snapshot takes ownership of
// the slice; callers must not mutate it afterwards.
func (s *Snapshot) Replace(params []model.Parameter) {
	if params == nil {
		params = []model.Parameter{}
	}
	s.params.Store(params)
}

// Parameters returns the last published parameter list.
func (s *Snapshot) Parameters() []model.Parameter {
	return s.params.Load().([]model.Parameter)
}

// Count returns the number of parameters in the last published list.
func (s *Snapshot) Count() int {
	return len(s.Parameters())
}
