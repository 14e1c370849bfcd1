package types

// ParseError is returned when a textual literal cannot be decoded as the
// named Oracle type. The first grammar violation aborts the parse; no
// partial value is produced alongside it.
type ParseError struct {
	typeName string
}

func newParseError(typeName string) *ParseError {
	return &ParseError{typeName: typeName}
}

// TypeName returns the name of the type the literal failed to parse as
func (e *ParseError) TypeName() string {
	return e.typeName
}

func (e *ParseError) Error() string {
	return "unable to parse as " + e.typeName
}
