package loxvalue

// String is a Lox string value. Lox has no escape sequences beyond the raw
// contents between quotes, so this wraps a Go string with no further
// interpretation.
type String string

func (String) Type() string    { return "string" }
func (s String) String() string { return string(s) }
