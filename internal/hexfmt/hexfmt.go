// Package hexfmt formats bytes for the hex grid, the preview column, and the
// address column.
package hexfmt

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DefaultPlaceholder is shown in the preview column for bytes that have no
// printable ASCII form.
const DefaultPlaceholder = "."

const charmap = "0123456789abcdef"

// Byte renders b as two lowercase hex digits.
func Byte(b byte) string {
	return string([]byte{charmap[b>>4], charmap[b&0x0f]})
}

// Preview returns the preview glyph for b: printable ASCII renders as
// itself, everything else (including control bytes and DEL) as placeholder.
func Preview(b byte, placeholder string) string {
	if b >= 0x20 && b < 0x7f {
		return string(rune(b))
	}
	return placeholder
}

// Placeholder validates a configured placeholder glyph. It must be a single
// grapheme cluster occupying exactly one terminal cell; anything else falls
// back to DefaultPlaceholder so the preview column stays aligned.
func Placeholder(s string) string {
	if s == "" {
		return DefaultPlaceholder
	}
	if uniseg.GraphemeClusterCount(s) != 1 {
		return DefaultPlaceholder
	}
	if runewidth.StringWidth(s) != 1 {
		return DefaultPlaceholder
	}
	return s
}

// AddressDigits returns how many hex digits are needed to print every offset
// up to lastOffset, with a minimum of 4.
func AddressDigits(lastOffset int) int {
	digits := 4
	for v := lastOffset >> 16; v > 0; v >>= 4 {
		digits++
	}
	return digits
}

// Address renders an offset as 0x-prefixed, zero-padded lowercase hex.
func Address(offset, digits int) string {
	return fmt.Sprintf("0x%0*x", digits, offset)
}

// CursorLabel is the status line for the cursor byte.
func CursorLabel(cursor int) string {
	return fmt.Sprintf("Byte 0-Index: 0x%x (%d)", cursor, cursor)
}

// FileLabel describes the loaded file, or reports that none is loaded.
func FileLabel(name string, size int, loaded bool) string {
	if !loaded {
		return "<No File>"
	}
	return fmt.Sprintf("File: %s  %d (0x%x) bytes", name, size, size)
}

// Truncate shortens s to at most width terminal cells, ending in "…" when
// something was cut.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// Pad right-pads s with spaces to width terminal cells.
func Pad(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
