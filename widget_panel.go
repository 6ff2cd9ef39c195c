package pointviz

// Panel is the interface for any openable UI panel or menu.
// Panels can register with a PanelRegistry to get automatic hotkey handling,
// input routing, and mutual exclusion.
type Panel interface {
	// Open opens the panel.
	Open()

	// Close closes the panel.
	Close()

	// Toggle toggles the panel open/closed state.
	// Returns true if the panel is now open.
	Toggle() bool

	// IsOpen returns true if the panel is currently open.
	IsOpen() bool

	// CanOpen returns true if the panel can be opened.
	// Use this for preconditions (e.g., needs a point cloud registered).
	// Default should return true.
	CanOpen() bool

	// Draw renders the panel using the provided context.
	// This is called every frame regardless of open state - panels
	// should return early if not open.
	Draw(ctx *Context)

	// HandleInput processes input for the panel.
	// Returns true if input was consumed.
	// Called only when the panel is open.
	HandleInput(input *InputState) bool
}

// HotkeyCheck is a function that returns true if the panel's hotkey is pressed.
// This allows integration with settings-based rebindable keys.
type HotkeyCheck func() bool

// PanelEntry holds a registered panel with its configuration.
type PanelEntry struct {
	Name        string      // Display name (e.g., "Structures")
	Panel       Panel       // The panel itself
	Hotkey      Key         // Key to toggle the panel (simple mode)
	HotkeyName  string      // Display name for hotkey (used when CheckHotkey is set)
	CheckHotkey HotkeyCheck // Custom hotkey check (overrides Hotkey if set)
	CloseKey    Key         // Key to close the panel (default: KeyEscape)
	CheckClose  HotkeyCheck // Custom close key check (overrides CloseKey if set)
	Priority    int         // Higher priority panels handle input first
	BlockedBy   []string    // Panel names that block this panel's hotkey
}

// IsCloseKeyPressed returns true if the panel's close key is pressed.
// Uses CheckClose if set, otherwise checks CloseKey.
// If neither is set, use defaultCheck (typically the registry's default close check).
func (e *PanelEntry) IsCloseKeyPressed(input *InputState, defaultCheck HotkeyCheck) bool {
	// Panel-specific close check takes priority
	if e.CheckClose != nil {
		return e.CheckClose()
	}
	// Panel-specific close key
	if e.CloseKey != KeyNone {
		return input.KeyPressed(e.CloseKey)
	}
	// Registry-level default close check (from settings)
	if defaultCheck != nil {
		return defaultCheck()
	}
	// Fallback to Escape if nothing else is configured
	return input.KeyPressed(KeyEscape)
}

// PanelRegistry manages a collection of panels with automatic hotkey handling.
// It handles:
// - Opening/closing panels via hotkeys
// - Mutual exclusion (optional - close others when one opens)
// - Routing input to the currently active panel
// - Drawing all panels
type PanelRegistry struct {
	entries           []PanelEntry
	exclusive         bool        // If true, opening one panel closes others
	inputChars        bool        // If true, consume input chars when a panel is open
	defaultCloseCheck HotkeyCheck // Default close check for all panels
}

// NewPanelRegistry creates a new panel registry.
func NewPanelRegistry() *PanelRegistry {
	return &PanelRegistry{
		entries:    make([]PanelEntry, 0, 8),
		exclusive:  true,
		inputChars: true,
	}
}

// SetExclusive sets whether opening one panel closes others.
func (r *PanelRegistry) SetExclusive(exclusive bool) {
	r.exclusive = exclusive
}

// SetDefaultCloseCheck sets the default close key check for all panels.
// Panels can override this with their own CloseKey or CheckClose.
func (r *PanelRegistry) SetDefaultCloseCheck(check HotkeyCheck) {
	r.defaultCloseCheck = check
}

// Register adds a panel to the registry with its hotkey.
// Priority determines input handling order (higher = first).
func (r *PanelRegistry) Register(name string, panel Panel, hotkey Key, priority int) {
	r.entries = append(r.entries, PanelEntry{
		Name:     name,
		Panel:    panel,
		Hotkey:   hotkey,
		Priority: priority,
	})
	// Sort by priority (descending)
	r.sortByPriority()
}

// RegisterWithBinding adds a panel with a custom hotkey check function.
// This allows integration with settings-based rebindable keys.
// blockedBy lists panel names that prevent this panel's hotkey from working.
func (r *PanelRegistry) RegisterWithBinding(name string, panel Panel, checkHotkey HotkeyCheck, priority int, blockedBy ...string) {
	r.entries = append(r.entries, PanelEntry{
		Name:        name,
		Panel:       panel,
		CheckHotkey: checkHotkey,
		Priority:    priority,
		BlockedBy:   blockedBy,
	})
	r.sortByPriority()
}

// SetCloseKey sets the close key for a panel by name.
// Pass KeyNone to use the default (Escape).
func (r *PanelRegistry) SetCloseKey(name string, closeKey Key) {
	for i := range r.entries {
		if r.entries[i].Name == name {
			r.entries[i].CloseKey = closeKey
			r.entries[i].CheckClose = nil // Clear custom check
			return
		}
	}
}

// SetCloseBinding sets a custom close key check function for a panel.
func (r *PanelRegistry) SetCloseBinding(name string, checkClose HotkeyCheck) {
	for i := range r.entries {
		if r.entries[i].Name == name {
			r.entries[i].CheckClose = checkClose
			return
		}
	}
}

// SetHotkeyName sets the display name for a panel's hotkey.
// Use this for panels with custom hotkey checks so help overlays can show
// the actual key.
func (r *PanelRegistry) SetHotkeyName(name string, hotkeyName string) {
	for i := range r.entries {
		if r.entries[i].Name == name {
			r.entries[i].HotkeyName = hotkeyName
			return
		}
	}
}

// Unregister removes a panel from the registry.
func (r *PanelRegistry) Unregister(name string) {
	for i, e := range r.entries {
		if e.Name == name {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return
		}
	}
}

// GetPanel returns a panel by name, or nil if not found.
func (r *PanelRegistry) GetPanel(name string) Panel {
	for _, e := range r.entries {
		if e.Name == name {
			return e.Panel
		}
	}
	return nil
}

// IsAnyOpen returns true if any panel is currently open.
func (r *PanelRegistry) IsAnyOpen() bool {
	for _, e := range r.entries {
		if e.Panel.IsOpen() {
			return true
		}
	}
	return false
}

// CloseAll closes all panels.
func (r *PanelRegistry) CloseAll() {
	for _, e := range r.entries {
		e.Panel.Close()
	}
}

// OpenPanel opens a specific panel by name.
// If exclusive mode is enabled, closes other panels first.
func (r *PanelRegistry) OpenPanel(name string) {
	if r.exclusive {
		for _, e := range r.entries {
			e.Panel.Close()
		}
	}
	if p := r.GetPanel(name); p != nil {
		p.Open()
	}
}

// TogglePanel toggles a panel by name.
// Returns true if the panel is now open.
func (r *PanelRegistry) TogglePanel(name string) bool {
	return r.TogglePanelWithInput(name, nil)
}

// TogglePanelWithInput toggles a panel and optionally consumes input chars.
func (r *PanelRegistry) TogglePanelWithInput(name string, input *InputState) bool {
	for i := range r.entries {
		if r.entries[i].Name == name {
			panel := r.entries[i].Panel
			if panel.IsOpen() {
				panel.Close()
				return false
			}
			// Check if panel can be opened
			if !panel.CanOpen() {
				return false
			}
			if r.exclusive {
				for j := range r.entries {
					r.entries[j].Panel.Close()
				}
			}
			panel.Open()
			// Consume input chars to prevent hotkey from being typed
			if input != nil && r.inputChars {
				input.ConsumeInputChars()
			}
			return true
		}
	}
	return false
}

// HandleHotkeys checks for hotkey presses and opens/closes panels.
// Call this each frame to handle panel hotkeys automatically.
// Returns true if a hotkey was handled.
func (r *PanelRegistry) HandleHotkeys(input *InputState) bool {
	if input == nil {
		return false
	}

	// Check each panel's hotkey
	for i := range r.entries {
		e := &r.entries[i]

		// Check if hotkey is pressed (custom check or simple key)
		hotkeyPressed := false
		if e.CheckHotkey != nil {
			hotkeyPressed = e.CheckHotkey()
		} else if e.Hotkey != KeyNone {
			hotkeyPressed = input.KeyPressed(e.Hotkey)
		}

		if !hotkeyPressed {
			continue
		}

		// Check if blocked by another open panel
		if r.isBlockedBy(e.BlockedBy) {
			continue
		}

		// Toggle the panel
		r.TogglePanelWithInput(e.Name, input)
		return true
	}

	return false
}

// isBlockedBy returns true if any of the named panels are open.
func (r *PanelRegistry) isBlockedBy(blockers []string) bool {
	for _, blocker := range blockers {
		if p := r.GetPanel(blocker); p != nil && p.IsOpen() {
			return true
		}
	}
	return false
}

// HandleInput routes input to open panels.
// Returns true if input was consumed by any panel.
func (r *PanelRegistry) HandleInput(input *InputState) bool {
	if input == nil {
		return false
	}

	// Handle close keys for open panels (centralized close key handling)
	// This prevents the race condition where toggle and close happen in same frame
	for i := range r.entries {
		e := &r.entries[i]
		if e.Panel.IsOpen() && e.IsCloseKeyPressed(input, r.defaultCloseCheck) {
			e.Panel.Close()
			return true
		}
	}

	// Route input to open panels by priority order
	for _, e := range r.entries {
		if e.Panel.IsOpen() {
			if e.Panel.HandleInput(input) {
				return true
			}
		}
	}

	return false
}

// Draw renders all open panels.
func (r *PanelRegistry) Draw(ctx *Context) {
	// Draw in reverse priority order (lowest priority drawn first = behind)
	for i := len(r.entries) - 1; i >= 0; i-- {
		r.entries[i].Panel.Draw(ctx)
	}
}

// sortByPriority sorts entries by priority (highest first).
func (r *PanelRegistry) sortByPriority() {
	// Simple insertion sort (small list)
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// Entries returns all registered panel entries (for inspection/debugging).
func (r *PanelRegistry) Entries() []PanelEntry {
	return r.entries
}
