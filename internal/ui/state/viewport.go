// Package state holds view-only UI state that does not belong in the form
// model, such as scroll positions.
package state

// Viewport tracks the first visible row of a scrolling list.
type Viewport struct {
	Offset int
}

// Ensure adjusts Offset so that cursor stays inside a window of visible rows
// over a list of total rows.
func (v *Viewport) Ensure(cursor, total, visible int) {
	if total <= 0 || visible <= 0 {
		v.Offset = 0
		return
	}
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= total {
		cursor = total - 1
	}
	maxOffset := total - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if v.Offset > maxOffset {
		v.Offset = maxOffset
	}
	if v.Offset < 0 {
		v.Offset = 0
	}
	if cursor < v.Offset {
		v.Offset = cursor
	}
	if upper := v.Offset + visible - 1; cursor > upper {
		v.Offset = cursor - visible + 1
		if v.Offset > maxOffset {
			v.Offset = maxOffset
		}
	}
}

// Window returns the half-open range of rows currently on screen.
func (v *Viewport) Window(total, visible int) (start, end int) {
	if total <= 0 {
		return 0, 0
	}
	if visible <= 0 || visible > total {
		visible = total
	}
	start = v.Offset
	if start < 0 {
		start = 0
	}
	if start+visible > total {
		start = total - visible
	}
	return start, start + visible
}
