package textfmt

import "fmt"

// Adapt turns an arbitrary argument into a Printable. Printables pass
// through; strings, byte slices, integers and booleans get their own
// adapters; anything else is formatted through fmt.Stringer, error or %v.
func Adapt(arg any) Printable {
	switch v := arg.(type) {
	case Printable:
		return v
	case string:
		return Str(v)
	case []byte:
		return Text(v, nil)
	case int:
		return Int(int64(v))
	case int8:
		return Int(int64(v))
	case int16:
		return Int(int64(v))
	case int32:
		return Int(int64(v))
	case int64:
		return Int(v)
	case uint:
		return Uint(uint64(v))
	case uint8:
		return Uint(uint64(v))
	case uint16:
		return Uint(uint64(v))
	case uint32:
		return Uint(uint64(v))
	case uint64:
		return Uint(v)
	case uintptr:
		return Uint(uint64(v))
	case bool:
		return Bool(v)
	case fmt.Stringer:
		return goString(v.String())
	case error:
		return goString(v.Error())
	case nil:
		return goString("<nil>")
	default:
		return goString(fmt.Sprintf("%v", v))
	}
}

// goString formats text produced by the Go runtime, which is always UTF-8
// whatever the input charset facet says.
func goString(s string) Value {
	return Text([]byte(s), UTF8)
}
