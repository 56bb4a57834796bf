// Package gradfile reads and writes gradient documents: a YAML list of
// stops plus the editor's selection and current stop.
package gradfile

import (
	"fmt"
	"strings"

	"github.com/gogpu/gradstops"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// Document is the persisted form of a gradient.
type Document struct {
	Name     string `yaml:"name,omitempty"`
	Stops    []Stop `yaml:"stops"`
	Selected []int  `yaml:"selected,omitempty"`
	Current  *int   `yaml:"current,omitempty"`
}

// Stop is a single persisted stop.
type Stop struct {
	Position float64 `yaml:"position"`
	Color    Color   `yaml:"color"`
}

// Color is a gradient color that decodes from a hex string, an SVG color
// name or a list of 3 or 4 floats, and encodes as "#rrggbbaa".
type Color gradstops.RGBA

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		parsed, err := ParseColor(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*c = Color(parsed)
		return nil
	case yaml.SequenceNode:
		var v []float64
		if err := node.Decode(&v); err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		switch len(v) {
		case 3:
			*c = Color(gradstops.RGB(v[0], v[1], v[2]))
		case 4:
			*c = Color(gradstops.RGBA{R: v[0], G: v[1], B: v[2], A: v[3]})
		default:
			return fmt.Errorf("line %d: color list needs 3 or 4 components, got %d", node.Line, len(v))
		}
		return nil
	}
	return fmt.Errorf("line %d: unsupported color value", node.Line)
}

// MarshalYAML implements yaml.Marshaler.
func (c Color) MarshalYAML() (any, error) {
	return gradstops.RGBA(c).HexString(), nil
}

// ParseColor parses a hex color ("#rgb", "#rrggbbaa", ...) or an SVG
// color name such as "navy".
func ParseColor(s string) (gradstops.RGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return gradstops.RGBA{}, fmt.Errorf("empty color")
	}
	if named, ok := colornames.Map[strings.ToLower(s)]; ok {
		return gradstops.FromColor(named), nil
	}
	return gradstops.ParseHex(s)
}

// Decode parses a YAML gradient document.
func Decode(data []byte) (*Document, error) {
	doc := &Document{}
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("failed to decode gradient: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

// Encode renders the document as YAML.
func Encode(doc *Document) ([]byte, error) {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode gradient: %w", err)
	}
	return data, nil
}

// Validate checks that selection and current indices refer to stops.
func (d *Document) Validate() error {
	for _, i := range d.Selected {
		if i < 0 || i >= len(d.Stops) {
			return fmt.Errorf("selected index %d out of range [0,%d)", i, len(d.Stops))
		}
	}
	if d.Current != nil && (*d.Current < 0 || *d.Current >= len(d.Stops)) {
		return fmt.Errorf("current index %d out of range [0,%d)", *d.Current, len(d.Stops))
	}
	return nil
}

// Model builds a gradient model from the document, restoring selection and
// current stop. Two stops sharing a position after clamping is an error.
func (d *Document) Model(opts ...gradstops.ModelOption) (*gradstops.Model, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	m := gradstops.NewModel(opts...)
	created := make([]*gradstops.Stop, len(d.Stops))
	for i, s := range d.Stops {
		stop := m.AddStop(s.Position, gradstops.RGBA(s.Color))
		if stop == nil {
			return nil, fmt.Errorf("stop %d: position %v already taken", i, s.Position)
		}
		created[i] = stop
	}
	for _, i := range d.Selected {
		m.SelectStop(created[i], true)
	}
	if d.Current != nil {
		m.SetCurrentStop(created[*d.Current])
	}
	return m, nil
}

// FromModel captures the model's stops in position order together with its
// selection and current stop.
func FromModel(name string, m *gradstops.Model) *Document {
	doc := &Document{Name: name}
	for i, s := range m.Stops() {
		doc.Stops = append(doc.Stops, Stop{Position: s.Position(), Color: Color(s.Color())})
		if m.IsSelected(s) {
			doc.Selected = append(doc.Selected, i)
		}
		if m.CurrentStop() == s {
			idx := i
			doc.Current = &idx
		}
	}
	return doc
}
