package token

var keywords = map[string]Kind{
	"fun":    KwFun,
	"let":    KwLet,
	"return": KwReturn,
	"struct": KwStruct,
	"self":   KwSelf,
	"true":   KwTrue,
	"false":  KwFalse,
	"u8":     KwU8,
	"i8":     KwI8,
	"u16":    KwU16,
	"i16":    KwI16,
	"u32":    KwU32,
	"i32":    KwI32,
	"u64":    KwU64,
	"i64":    KwI64,
	"usize":  KwUSize,
	"isize":  KwISize,
	"f32":    KwF32,
	"f64":    KwF64,
	"bool":   KwBool,
}

// LookupKeyword returns the keyword kind for ident, if it is one.
// Keywords are case-sensitive: only lowercase forms are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
