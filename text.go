package pointviz

import "strings"

// WrapText wraps text at word boundaries to fit within maxWidth.
// Returns a slice of lines.
func WrapText(ctx *Context, text string, maxWidth float32) []string {
	if maxWidth <= 0 {
		return []string{text}
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	var currentLine string

	for _, word := range words {
		testLine := currentLine
		if testLine != "" {
			testLine += " "
		}
		testLine += word

		width := ctx.MeasureText(testLine).X
		if width > maxWidth && currentLine != "" {
			// Line is too long, start a new line
			lines = append(lines, currentLine)
			currentLine = word
		} else {
			currentLine = testLine
		}
	}

	// Add the last line
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return lines
}

// TruncateText truncates text to fit within maxWidth, adding ellipsis if needed.
func TruncateText(ctx *Context, text string, maxWidth float32) string {
	return TruncateTextWithSuffix(ctx, text, maxWidth, "..")
}

// TruncateTextWithSuffix truncates text and adds a custom suffix.
func TruncateTextWithSuffix(ctx *Context, text string, maxWidth float32, suffix string) string {
	if ctx.MeasureText(text).X <= maxWidth {
		return text
	}

	runes := []rune(text)
	suffixWidth := ctx.MeasureText(suffix).X
	targetWidth := maxWidth - suffixWidth

	for len(runes) > 0 {
		truncated := string(runes) + suffix
		if ctx.MeasureText(string(runes)).X <= targetWidth {
			return truncated
		}
		runes = runes[:len(runes)-1]
	}

	return suffix
}

// TextWidthEllipsis returns text that fits within maxWidth, with ellipsis.
// Unlike TruncateText, this also works with very small widths.
func TextWidthEllipsis(ctx *Context, text string, maxWidth float32) string {
	if maxWidth <= 0 {
		return ""
	}

	if ctx.MeasureText(text).X <= maxWidth {
		return text
	}

	// Try with ".."
	result := TruncateTextWithSuffix(ctx, text, maxWidth, "..")
	if ctx.MeasureText(result).X <= maxWidth {
		return result
	}

	// Fallback to single dot
	result = TruncateTextWithSuffix(ctx, text, maxWidth, ".")
	if ctx.MeasureText(result).X <= maxWidth {
		return result
	}

	// Very small width, return nothing
	return ""
}

// MeasureWrappedText returns the size of text when wrapped to maxWidth.
func MeasureWrappedText(ctx *Context, text string, maxWidth float32) Vec2 {
	lines := WrapText(ctx, text, maxWidth)
	if len(lines) == 0 {
		return Vec2{}
	}

	lineHeight := ctx.lineHeight()
	maxLineWidth := float32(0)

	for _, line := range lines {
		w := ctx.MeasureText(line).X
		if w > maxLineWidth {
			maxLineWidth = w
		}
	}

	return Vec2{
		X: maxLineWidth,
		Y: float32(len(lines)) * lineHeight,
	}
}
