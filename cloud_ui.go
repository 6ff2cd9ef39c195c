package pointviz

import "fmt"

// BuildUI appends the cloud's collapsible section: visibility and point
// radius controls, then each quantity's rows in insertion order.
func (pc *PointCloud) BuildUI(ctx *Context) {
	ctx.Section(pc.name, DefaultOpen())(func() {
		ctx.Row(func() {
			enabled := pc.enabled
			if ctx.Checkbox("Enabled", &enabled) {
				pc.SetEnabled(enabled)
			}
			ctx.TextDisabled(fmt.Sprintf("%d points", len(pc.positions)))
		})

		radius := pc.pointRadius
		if ctx.SliderFloat("Radius", &radius, 0, 0.02, WithFormat("%.4f")) {
			pc.SetPointRadius(radius)
		}

		for _, name := range pc.order {
			pc.quantities[name].BuildUI(ctx)
		}
	})
}

// BuildPickUI appends the pick readout: which point was hit, where it
// sits, then one row per attached quantity.
func (pc *PointCloud) BuildPickUI(ctx *Context, index int) {
	if index < 0 || index >= len(pc.positions) {
		return
	}
	ctx.Text(fmt.Sprintf("%s points[%d]", pc.name, index))
	p := pc.positions[index]
	ctx.LabelText("position", fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z))
	for _, name := range pc.order {
		pc.quantities[name].BuildPickUI(ctx, index)
	}
}
