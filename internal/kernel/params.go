package kernel

import (
	"fmt"
	"strconv"

	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/model"
)

// Parameters returns a copy of the design's modeling parameters.
func (d *Design) Parameters() []model.Parameter {
	out := make([]model.Parameter, len(d.params))
	copy(out, d.params)
	return out
}

// ParameterCount returns the number of modeling parameters.
func (d *Design) ParameterCount() int {
	return len(d.params)
}

// SetParameter updates the value of an existing parameter by name.
func (d *Design) SetParameter(name string, value float64) error {
	for i := range d.params {
		if d.params[i].Name != name {
			continue
		}
		d.params[i].Value = strconv.FormatFloat(value, 'g', -1, 64)
		d.params[i].Expression = fmt.Sprintf("%s %s", d.params[i].Value, d.params[i].Unit)
		return nil
	}
	return fmt.Errorf("parameter %q: %w", name, model.ErrNotFound)
}

// AddParameter defines a new modeling parameter.
func (d *Design) AddParameter(name, unit string, value float64) error {
	for _, p := range d.params {
		if p.Name == name {
			return fmt.Errorf("parameter %q: %w", name, model.ErrAlreadyExists)
		}
	}
	v := strconv.FormatFloat(value, 'g', -1, 64)
	d.params = append(d.params, model.Parameter{
		Name:       name,
		Value:      v,
		Unit:       unit,
		Expression: fmt.Sprintf("%s %s", v, unit),
	})
	return nil
}
