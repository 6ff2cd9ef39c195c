package pointviz

import (
	"fmt"
	"slices"
)

// colorMapPreviewCache holds every registered colormap baked once, aligned
// with ColorMapNames. Built lazily on the first UI frame; the registry is
// static so the cache never invalidates.
var colorMapPreviewCache struct {
	names  []string
	tables []*ColorTable
}

func colorMapPreviews() ([]string, []*ColorTable) {
	c := &colorMapPreviewCache
	if c.names == nil {
		c.names = ColorMapNames()
		c.tables = make([]*ColorTable, len(c.names))
		for i, name := range c.names {
			if t, err := BakeColorMap(name); err == nil {
				c.tables[i] = t
			}
		}
	}
	return c.names, c.tables
}

// BuildUI appends the quantity's control rows: an enable checkbox with an
// options popup, the colormap picker, the value histogram, and the map
// range slider with its reset button.
func (q *ScalarQuantity) BuildUI(ctx *Context) {
	ctx.Row(func() {
		enabled := q.enabled
		if ctx.Checkbox(q.NiceName(), &enabled) {
			q.SetEnabled(enabled)
		}
		if ctx.SmallButton("Options") {
			ctx.OpenPopup(q.name + "_options")
		}
	})
	if ctx.PopupMenu(q.name+"_options", []string{"Reset colormap range"}) == 0 {
		q.ResetMapRange()
	}

	names, previews := colorMapPreviews()
	sel := slices.Index(names, q.colormap)
	if ctx.ComboBox("Colormap", &sel, names, WithColorPreviews(previews), WithMaxDropdownHeight(240)) {
		if sel >= 0 && sel < len(names) {
			q.SetColorMap(names[sel])
		}
	}

	ctx.Histogram(q.name+"_hist", q.hist)

	lo, hi := q.vizRange.Min, q.vizRange.Max
	boundLo, boundHi := q.mapBounds()
	ctx.Row(func() {
		if ctx.RangeSliderFloat(q.name+"_range", &lo, &hi, boundLo, boundHi) {
			q.SetMapRange(lo, hi)
		}
		if ctx.SmallButton("Reset") {
			q.ResetMapRange()
		}
	})
}

// BuildPickUI appends the readout row for a picked point.
func (q *ScalarQuantity) BuildPickUI(ctx *Context, index int) {
	if index < 0 || index >= len(q.values) {
		return
	}
	ctx.LabelText(q.name, fmt.Sprintf("%g", q.values[index]))
}
