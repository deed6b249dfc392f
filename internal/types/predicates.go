package types

// IsValid reports whether t has been resolved.
func IsValid(t Type) bool {
	return t != Invalid
}

// IsInteger reports whether t is the integer type.
func IsInteger(t Type) bool {
	return t == Int
}

// IsBoolean reports whether t is the boolean type.
func IsBoolean(t Type) bool {
	return t == Bool
}
