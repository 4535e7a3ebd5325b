package viewstate

// TextMeasurer is the host's text-layout primitive. LineCount returns how many
// lines text occupies when wrapped at width under the host's font metrics.
type TextMeasurer interface {
	LineCount(text string, width int) int
}

// MeasureFunc adapts a function to TextMeasurer.
type MeasureFunc func(text string, width int) int

// LineCount implements TextMeasurer.
func (f MeasureFunc) LineCount(text string, width int) int {
	return f(text, width)
}

// DefaultLineCap is the collapsed preview height in lines.
const DefaultLineCap = 2

// WouldOverflow reports whether text rendered at maxWidth exceeds lineCap lines.
// A nil measurer never overflows, so callers fall back to the full text.
func WouldOverflow(m TextMeasurer, text string, maxWidth, lineCap int) bool {
	if m == nil || text == "" {
		return false
	}
	if lineCap <= 0 {
		lineCap = DefaultLineCap
	}
	return m.LineCount(text, maxWidth) > lineCap
}
