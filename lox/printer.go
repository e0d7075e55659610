// printer.go — textual forms of runtime values.
package lox

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatValue renders v the way print/println show it: nil → "nil", numbers
// in their shortest decimal form (integral doubles drop the ".0"), strings
// as their raw contents, functions as <fn name> (or <fn> when anonymous),
// builtins as <native fn name>.
func FormatValue(v Value) string {
	switch v.Tag {
	case VTNil:
		return "nil"
	case VTBool:
		if v.Data.(bool) {
			return "true"
		}
		return "false"
	case VTNum:
		return strconv.FormatFloat(v.Data.(float64), 'g', -1, 64)
	case VTStr:
		return v.Data.(string)
	case VTFun:
		f := v.Data.(*Fun)
		if f.Name == "" {
			return "<fn>"
		}
		return "<fn " + f.Name + ">"
	case VTNative:
		return "<native fn " + v.Data.(*NativeFn).Name + ">"
	default:
		return "<unknown>"
	}
}

// DebugValue is the dbg builtin's representation: like FormatValue, except
// strings keep their quotes so `dbg("1", 1)` distinguishes the two.
func DebugValue(v Value) string {
	if v.Tag == VTStr {
		return strconv.Quote(v.Data.(string))
	}
	return FormatValue(v)
}

// DebugValues joins the debug forms of several values, dbg-style.
func DebugValues(vs []Value) string {
	parts := make([]string, 0, len(vs))
	for _, v := range vs {
		parts = append(parts, DebugValue(v))
	}
	return fmt.Sprintf("dbg: %s", strings.Join(parts, " "))
}
