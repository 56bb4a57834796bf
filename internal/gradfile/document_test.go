package gradfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/gradstops"
)

const sunset = `name: sunset
stops:
  - position: 0
    color: "#ff8000"
  - position: 0.5
    color: navy
  - position: 1
    color: [1, 1, 1, 0.5]
selected: [0, 2]
current: 1
`

func TestDecode(t *testing.T) {
	doc, err := Decode([]byte(sunset))
	require.NoError(t, err)

	assert.Equal(t, "sunset", doc.Name)
	require.Len(t, doc.Stops, 3)
	assert.Equal(t, 0.5, doc.Stops[1].Position)
	assert.InDelta(t, 1.0, doc.Stops[0].Color.R, 1e-9)
	assert.InDelta(t, 128.0/255, doc.Stops[0].Color.G, 1e-9)
	assert.InDelta(t, 128.0/255, doc.Stops[1].Color.B, 1e-9)
	assert.Equal(t, Color{R: 1, G: 1, B: 1, A: 0.5}, doc.Stops[2].Color)
	assert.Equal(t, []int{0, 2}, doc.Selected)
	require.NotNil(t, doc.Current)
	assert.Equal(t, 1, *doc.Current)
}

func TestDecodeErrors(t *testing.T) {
	testCases := []struct {
		name string
		yaml string
	}{
		{name: "bad hex", yaml: "stops:\n  - position: 0\n    color: \"#zz\"\n"},
		{name: "short list", yaml: "stops:\n  - position: 0\n    color: [1, 1]\n"},
		{name: "map color", yaml: "stops:\n  - position: 0\n    color: {r: 1}\n"},
		{name: "selected out of range", yaml: "stops:\n  - position: 0\n    color: red\nselected: [3]\n"},
		{name: "current out of range", yaml: "stops: []\ncurrent: 0\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode([]byte(tc.yaml))
			assert.Error(t, err)
		})
	}
}

func TestParseColor(t *testing.T) {
	testCases := []struct {
		in     string
		expect gradstops.RGBA
	}{
		{in: "red", expect: gradstops.RGB(1, 0, 0)},
		{in: "White", expect: gradstops.RGB(1, 1, 1)},
		{in: "#00f", expect: gradstops.RGB(0, 0, 1)},
		{in: " #000000ff ", expect: gradstops.RGB(0, 0, 0)},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseColor(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.expect, got)
		})
	}

	_, err := ParseColor("")
	assert.Error(t, err)
	_, err = ParseColor("not-a-color")
	assert.Error(t, err)
}

func TestDocumentModel(t *testing.T) {
	doc, err := Decode([]byte(sunset))
	require.NoError(t, err)

	m, err := doc.Model()
	require.NoError(t, err)
	assert.Equal(t, 3, m.Len())

	sel := m.SelectedStops()
	require.Len(t, sel, 2)
	assert.Equal(t, 0.0, sel[0].Position())
	assert.Equal(t, 1.0, sel[1].Position())
	require.NotNil(t, m.CurrentStop())
	assert.Equal(t, 0.5, m.CurrentStop().Position())
}

func TestDocumentModelCollision(t *testing.T) {
	doc := &Document{Stops: []Stop{
		{Position: 1, Color: Color(gradstops.Red)},
		{Position: 3, Color: Color(gradstops.Blue)},
	}}
	_, err := doc.Model()
	assert.Error(t, err)
}

func TestEncodeRoundTrip(t *testing.T) {
	m := gradstops.NewModel()
	a := m.AddStop(0.75, gradstops.RGBA{R: 0, G: 0.5, B: 1, A: 1})
	b := m.AddStop(0.25, gradstops.Red)
	m.SelectStop(a, true)
	m.SetCurrentStop(b)

	doc := FromModel("pair", m)
	data, err := Encode(doc)
	require.NoError(t, err)
	assert.Contains(t, string(data), "#ff0000ff")

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "pair", decoded.Name)
	require.Len(t, decoded.Stops, 2)
	assert.Equal(t, 0.25, decoded.Stops[0].Position)
	assert.Equal(t, 0.75, decoded.Stops[1].Position)
	assert.Equal(t, []int{1}, decoded.Selected)
	require.NotNil(t, decoded.Current)
	assert.Equal(t, 0, *decoded.Current)

	restored, err := decoded.Model()
	require.NoError(t, err)
	assert.Equal(t, m.Len(), restored.Len())
	assert.Equal(t, 0.25, restored.CurrentStop().Position())
}
