package pointviz

import (
	"fmt"
	"strings"
)

// HintKey represents a keyboard key for hint display.
// Use the predefined constants for consistency.
type HintKey string

// Standard hint keys with consistent formatting.
// Uses Unicode arrows which are supported by the built-in font.
const (
	HintKeyUp        HintKey = "↑"
	HintKeyDown      HintKey = "↓"
	HintKeyLeft      HintKey = "←"
	HintKeyRight     HintKey = "→"
	HintKeyUpDown    HintKey = "↑↓"
	HintKeyLeftRight HintKey = "←→"
	HintKeyEnter     HintKey = "Enter"
	HintKeyEscape    HintKey = "Esc"
	HintKeySpace     HintKey = "Space"
	HintKeyTab       HintKey = "Tab"
	HintKeyBackspace HintKey = "Bksp"
	HintKeyDelete    HintKey = "Del"
	HintKeyHome      HintKey = "Home"
	HintKeyEnd       HintKey = "End"
	HintKeyScroll    HintKey = "Scroll"
	HintKeyClick     HintKey = "Click"
	HintKeyDrag      HintKey = "Drag"
	HintKeyF1        HintKey = "F1"
)

// HintAction pairs a key with its action description.
type HintAction struct {
	Key    HintKey
	Action string
}

// Hint creates a HintAction for use with HintFooter.
//
// Usage:
//
//	ctx.HintFooter(
//	    pointviz.Hint(pointviz.HintKeyDrag, "Orbit"),
//	    pointviz.Hint(pointviz.HintKeyScroll, "Zoom"),
//	    pointviz.Hint(pointviz.HintKeyEscape, "Close"),
//	)
func Hint(key HintKey, action string) HintAction {
	return HintAction{Key: key, Action: action}
}

// HintFooter draws a consistent footer with keyboard hints.
// Automatically adds a separator before the hints.
//
// Renders as: "[Drag] Orbit  [Scroll] Zoom  [Esc] Close"
func (ctx *Context) HintFooter(hints ...HintAction) {
	if len(hints) == 0 {
		return
	}

	ctx.Separator()

	var parts []string
	for _, h := range hints {
		parts = append(parts, fmt.Sprintf("[%s] %s", h.Key, h.Action))
	}

	text := strings.Join(parts, "  ")
	ctx.TextColored(text, ColorGray)
}

// HintHeader draws a hint at the top of a section (before content).
// Use for instructions like "Click a point to inspect it".
func (ctx *Context) HintHeader(text string) {
	ctx.TextColored(text, ColorGray)
}

// HintEmpty draws an empty state message.
// Use when a list or section has no content.
//
// Usage:
//
//	if len(items) == 0 {
//	    ctx.HintEmpty("No point clouds registered")
//	}
func (ctx *Context) HintEmpty(text string) {
	if text == "" {
		text = "(none)"
	}
	ctx.TextColored(text, ColorGray)
}

// HintStatus draws a status line showing counts or state.
//
// Usage:
//
//	ctx.HintStatus("%d/%d enabled", enabledCount, totalCount)
func (ctx *Context) HintStatus(format string, args ...any) {
	text := fmt.Sprintf(format, args...)
	ctx.TextColored(text, ColorGray)
}

// Common hint presets for frequently used patterns.

// HintFooterNav draws navigation hints: [↑↓] Navigate [Enter] Select [Esc] Close
func (ctx *Context) HintFooterNav() {
	ctx.HintFooter(
		Hint(HintKeyUpDown, "Navigate"),
		Hint(HintKeyEnter, "Select"),
		Hint(HintKeyEscape, "Close"),
	)
}

// HintFooterConfirm draws confirmation hints: [Enter] Confirm [Esc] Cancel
func (ctx *Context) HintFooterConfirm() {
	ctx.HintFooter(
		Hint(HintKeyEnter, "Confirm"),
		Hint(HintKeyEscape, "Cancel"),
	)
}

// HintFooterClose draws a simple close hint: [Esc] Close
func (ctx *Context) HintFooterClose() {
	ctx.HintFooter(
		Hint(HintKeyEscape, "Close"),
	)
}
