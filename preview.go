package textfmt

// Preview collects what printers report while they are built: the total size
// of the output in bytes and what is left of a width budget. Each counter is
// enabled on its own; a disabled counter ignores updates.
//
// The zero Preview has both counters disabled.
type Preview struct {
	sizeOn  bool
	widthOn bool
	size    int
	width   Width
}

// NewPreview returns a Preview with the chosen counters enabled. initial is
// the width budget and is ignored when width is false.
func NewPreview(size, width bool, initial Width) Preview {
	pv := Preview{sizeOn: size, widthOn: width}
	if width {
		pv.width = max(initial, 0)
	}
	return pv
}

// NoPreview returns a Preview that records nothing.
func NoPreview() Preview { return Preview{} }

// SizePreview returns a Preview that only accumulates size.
func SizePreview() Preview { return NewPreview(true, false, 0) }

// WidthPreview returns a Preview that only tracks a width budget of w.
func WidthPreview(w Width) Preview { return NewPreview(false, true, w) }

// SizeAndWidthPreview returns a Preview with both counters enabled.
func SizeAndWidthPreview(w Width) Preview { return NewPreview(true, true, w) }

// SizeRequired reports whether size is accumulated.
func (pv *Preview) SizeRequired() bool { return pv.sizeOn }

// WidthRequired reports whether a width budget is tracked.
func (pv *Preview) WidthRequired() bool { return pv.widthOn }

// AddSize adds n bytes.
func (pv *Preview) AddSize(n int) {
	if pv.sizeOn {
		pv.size += n
	}
}

// AccumulatedSize returns the bytes added so far.
func (pv *Preview) AccumulatedSize() int { return pv.size }

// SubtractWidth takes w from the remaining budget. The budget never goes
// below zero.
func (pv *Preview) SubtractWidth(w Width) {
	if !pv.widthOn {
		return
	}
	if w >= pv.width {
		pv.width = 0
		return
	}
	pv.width -= w
}

// SubtractInt takes n whole columns from the remaining budget.
func (pv *Preview) SubtractInt(n int) { pv.SubtractWidth(WidthFromInt(n)) }

// ClearRemainingWidth spends the whole budget.
func (pv *Preview) ClearRemainingWidth() {
	if pv.widthOn {
		pv.width = 0
	}
}

// RemainingWidth returns what is left of the budget.
func (pv *Preview) RemainingWidth() Width { return pv.width }
