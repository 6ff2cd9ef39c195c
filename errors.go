package pointviz

import "fmt"

// ValidationError reports data that does not fit the structure it was
// attached to. It is non-fatal: the operation that produced it leaves the
// structure unchanged, and callers are expected to surface it (the viewer
// shows a warning toast) rather than abort.
type ValidationError struct {
	Structure string // structure name, e.g. the point cloud
	Quantity  string // quantity name, empty for structure-level errors
	Got       int
	Want      int
}

func (e *ValidationError) Error() string {
	if e.Quantity != "" {
		return fmt.Sprintf("quantity %q on %q: got %d values, want %d (one per point)",
			e.Quantity, e.Structure, e.Got, e.Want)
	}
	return fmt.Sprintf("structure %q: got %d values, want %d", e.Structure, e.Got, e.Want)
}
