// Package scan provides the minimal byte cursor used to decode textual
// Oracle literals.
package scan

// Scanner is a cursor over a textual literal. It supports peeking at the
// current byte, advancing, and consuming maximal digit runs. The grammar it
// serves is fully deterministic, so no backtracking is provided.
type Scanner struct {
	input   string
	pos     int // current position in input (points to current byte)
	ndigits int // number of digits consumed by the last ReadDigits call
}

// New creates a new scanner over input
func New(input string) *Scanner {
	return &Scanner{input: input}
}

// Char returns the byte under the cursor without advancing.
// The second return value is false at end of input.
func (s *Scanner) Char() (byte, bool) {
	if s.pos >= len(s.input) {
		return 0, false
	}
	return s.input[s.pos], true
}

// Next advances the cursor by one byte
func (s *Scanner) Next() {
	if s.pos < len(s.input) {
		s.pos++
	}
}

// ReadDigits consumes a maximal run of ASCII decimal digits starting at the
// cursor and returns their value. The second return value is false when the
// run was empty. The run length is available from NDigits until the next
// call.
func (s *Scanner) ReadDigits() (uint64, bool) {
	start := s.pos
	var n uint64
	for s.pos < len(s.input) && isDigit(s.input[s.pos]) {
		n = n*10 + uint64(s.input[s.pos]-'0')
		s.pos++
	}
	s.ndigits = s.pos - start
	if s.ndigits == 0 {
		return 0, false
	}
	return n, true
}

// NDigits returns how many digits the last ReadDigits call consumed
func (s *Scanner) NDigits() int {
	return s.ndigits
}

// isDigit checks if a byte is an ASCII decimal digit
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
