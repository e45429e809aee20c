package types

import "strings"

// Label returns a user-friendly label for a TypeID, suitable for
// diagnostic messages.
func Label(typesIn *Interner, id TypeID) string {
	if id == NoTypeID || typesIn == nil {
		return "?"
	}
	tt, ok := typesIn.Lookup(id)
	if !ok {
		return "?"
	}
	switch tt.Kind {
	case KindBool:
		return "bool"
	case KindInt:
		return formatIntType(tt.Width, true)
	case KindUint:
		return formatIntType(tt.Width, false)
	case KindFloat:
		return formatFloatType(tt.Width)
	case KindString:
		return "string"
	case KindFn:
		info, ok := typesIn.FnInfo(id)
		if !ok {
			return "fun(?)"
		}
		var sb strings.Builder
		sb.WriteString("fun(")
		for i, param := range info.Params {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(Label(typesIn, param))
		}
		sb.WriteString(")")
		if info.Result != NoTypeID {
			sb.WriteString(" @ ")
			sb.WriteString(Label(typesIn, info.Result))
		}
		return sb.String()
	default:
		return "?"
	}
}

func formatIntType(width Width, signed bool) string {
	prefix := "u"
	if signed {
		prefix = "i"
	}
	switch width {
	case Width8:
		return prefix + "8"
	case Width16:
		return prefix + "16"
	case Width32:
		return prefix + "32"
	case Width64:
		return prefix + "64"
	case WidthSize:
		return prefix + "size"
	default:
		return prefix + "?"
	}
}

func formatFloatType(width Width) string {
	switch width {
	case Width32:
		return "f32"
	case Width64:
		return "f64"
	default:
		return "f?"
	}
}
