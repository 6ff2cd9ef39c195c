package pointviz

import "cogentcore.org/core/math32"

// Quantity is a named data overlay attached to a point cloud. Concrete
// quantities are created through the cloud's Add* methods; the unexported
// methods keep the set closed to this package.
type Quantity interface {
	// Name is the registry key the quantity was added under.
	Name() string
	// NiceName is the display name, carrying the quantity type.
	NiceName() string
	// Enabled reports whether the overlay draws.
	Enabled() bool
	// Draw renders the overlay with the given camera matrices. view
	// already includes the owning cloud's transform.
	Draw(view, proj *math32.Matrix4)
	// BuildUI appends the quantity's control rows to the current layout.
	BuildUI(ctx *Context)
	// BuildPickUI appends the quantity's readout row for a picked point.
	BuildPickUI(ctx *Context, index int)

	// disable turns the overlay off without dominance side effects.
	disable()
	// geometryChanged invalidates anything baked from point positions.
	geometryChanged()
	// destroy releases GPU resources.
	destroy()
}
