package parser

// status is the three-valued outcome of one grammar rule. Rules that
// can be tried as alternatives return statusNoMatch when their very
// first token does not fit, without reporting anything; statusFailed
// means the rule applied but was malformed and a diagnostic has
// already been emitted.
type status uint8

const (
	statusOK status = iota
	statusNoMatch
	statusFailed
)
