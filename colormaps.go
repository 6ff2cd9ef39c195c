package pointviz

import (
	"fmt"
	"image/color"
	"sort"

	"cogentcore.org/core/colors/colormap"
)

// colorTableSize is the number of samples baked per colormap. Matches the
// width of the 1D texture the scene engine uploads.
const colorTableSize = 256

// ColorTable is a colormap baked to a fixed sample table, usable both for
// UI fills (packed vertex colors) and as raw pixels for a GL texture.
type ColorTable struct {
	Name   string
	colors [colorTableSize]color.RGBA
}

// BakeColorMap samples the named map from the shared colormap registry
// into a table. Unknown names return an error; use ColorMapNames for the
// valid set.
func BakeColorMap(name string) (*ColorTable, error) {
	cm, ok := colormap.AvailableMaps[name]
	if !ok {
		return nil, fmt.Errorf("unknown colormap %q", name)
	}
	t := &ColorTable{Name: name}
	for i := range t.colors {
		t.colors[i] = cm.Map(float32(i) / (colorTableSize - 1))
	}
	return t, nil
}

// mustColorMap bakes a map that is known to exist (a registry default).
func mustColorMap(name string) *ColorTable {
	t, err := BakeColorMap(name)
	if err != nil {
		panic(err)
	}
	return t
}

// At returns the packed color at normalized position x, clamped to [0, 1].
func (t *ColorTable) At(x float32) uint32 {
	i := int(clampf(x, 0, 1) * (colorTableSize - 1))
	c := t.colors[i]
	return RGBA(c.R, c.G, c.B, c.A)
}

// Pixels returns the table as tightly packed RGBA bytes, one row of
// colorTableSize texels.
func (t *ColorTable) Pixels() []uint8 {
	px := make([]uint8, 0, colorTableSize*4)
	for _, c := range t.colors {
		px = append(px, c.R, c.G, c.B, c.A)
	}
	return px
}

// ColorMapNames returns the names of every registered colormap, sorted.
func ColorMapNames() []string {
	names := colormap.AvailableMapsList()
	sort.Strings(names)
	return names
}

// defaultColorMap picks the conventional map for a data kind: a
// perceptually uniform ramp for plain values, a diverging map for signed
// symmetric data, a sequential ramp for magnitudes.
func defaultColorMap(kind DataKind) string {
	switch kind {
	case DataSymmetric:
		return "ColdHot"
	case DataMagnitude:
		return "Plasma"
	default:
		return "Viridis"
	}
}
