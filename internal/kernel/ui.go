package kernel

import (
	"fmt"

	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/model"
)

// UserInterface is the surface for operations that need the user in the
// loop, like the interactive face selection of the thread operation.
// Implementations must only be called from the host execution context.
type UserInterface interface {
	// MessageBox shows an informational message to the user.
	MessageBox(text string)
	// SelectEntity blocks until the user selects an entity matching the
	// filter ("Faces", "Bodies", ...) or cancels the selection.
	SelectEntity(prompt, filter string) (Entity, error)
}

// HeadlessUI is the UserInterface for runs without a user attached.
// Messages are dropped and selections always fail, so interactive
// operations degrade into failed task results instead of hanging.
type HeadlessUI struct{}

func (HeadlessUI) MessageBox(string) {}

func (HeadlessUI) SelectEntity(prompt, filter string) (Entity, error) {
	return nil, fmt.Errorf("no user attached to answer %q selection: %w", filter, model.ErrNotValid)
}

// ScriptedUI answers selection prompts from a pre-programmed queue of
// entities. Used in tests and demo runs.
type ScriptedUI struct {
	Messages   []string
	selections []Entity
}

// PushSelection queues an entity to be returned by the next SelectEntity
// call.
func (u *ScriptedUI) PushSelection(e Entity) {
	u.selections = append(u.selections, e)
}

func (u *ScriptedUI) MessageBox(text string) {
	u.Messages = append(u.Messages, text)
}

func (u *ScriptedUI) SelectEntity(prompt, filter string) (Entity, error) {
	if len(u.selections) == 0 {
		return nil, fmt.Errorf("selection cancelled: %w", model.ErrNotValid)
	}
	e := u.selections[0]
	u.selections = u.selections[1:]
	return e, nil
}
