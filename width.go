package textfmt

import (
	"math"
	"strconv"
)

// Width is a display width in 16.16 fixed point, so width functions can
// report fractional widths and budgets can be subtracted from exactly.
type Width int32

const widthShift = 16

// MaxWidth is the largest representable width. It stands for "no limit".
const MaxWidth Width = math.MaxInt32

// WidthFromInt converts a whole number of columns. Values that do not fit
// saturate.
func WidthFromInt(n int) Width {
	switch {
	case n > int(MaxWidth>>widthShift):
		return MaxWidth
	case n <= math.MinInt32>>widthShift:
		return math.MinInt32
	}
	return Width(n << widthShift)
}

// WidthFromFloat converts f, rounding to the nearest 1/65536.
func WidthFromFloat(f float64) Width {
	v := math.Round(f * (1 << widthShift))
	switch {
	case v >= math.MaxInt32:
		return MaxWidth
	case v <= math.MinInt32:
		return math.MinInt32
	}
	return Width(v)
}

// Floor returns the whole part, rounded toward negative infinity.
func (w Width) Floor() int { return int(w >> widthShift) }

// Round rounds to the nearest whole number, halves up.
func (w Width) Round() int {
	return int((int64(w) + 1<<(widthShift-1)) >> widthShift)
}

// Add returns w+o, saturating at the int32 bounds.
func (w Width) Add(o Width) Width { return saturate(int64(w) + int64(o)) }

// Sub returns w-o, saturating at the int32 bounds.
func (w Width) Sub(o Width) Width { return saturate(int64(w) - int64(o)) }

func saturate(v int64) Width {
	switch {
	case v > math.MaxInt32:
		return MaxWidth
	case v < math.MinInt32:
		return math.MinInt32
	}
	return Width(v)
}

func (w Width) String() string {
	if w&(1<<widthShift-1) == 0 {
		return strconv.Itoa(w.Floor())
	}
	return strconv.FormatFloat(float64(w)/(1<<widthShift), 'f', -1, 64)
}
