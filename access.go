package fieldpath

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Access declares one member or index access into a bound model. It is the
// static replacement for inspecting an accessor closure: the caller states
// the member symbol, the optional index and the display overrides directly.
//
// An Access with an empty Symbol and an Index is a pure index access, as in
// the second step of Matrix[1][2].
type Access struct {
	// Owner names the model type or form namespace declaring the member.
	Owner  string
	Symbol string
	Index  *int
	// Display is the explicit field-level label.
	Display string
	// LegacyDisplay is consulted only when neither Display nor a catalog
	// entry supplies a label.
	LegacyDisplay string
}

// Member declares a plain member access.
func Member(owner, symbol string) Access {
	return Access{Owner: owner, Symbol: symbol}
}

// At returns a copy of a indexed by i.
func (a Access) At(i int) Access {
	a.Index = &i
	return a
}

// WithDisplay returns a copy of a with an explicit label.
func (a Access) WithDisplay(display string) Access {
	a.Display = display
	return a
}

// String renders the declaration for diagnostics, e.g. shop.Order.Lines[2].
func (a Access) String() string {
	s := a.Symbol
	if a.Owner != "" {
		s = a.Owner + "." + s
	}
	if a.Index != nil {
		s += "[" + strconv.Itoa(*a.Index) + "]"
	}
	return s
}

func (a Access) key() Key {
	return Key{
		Owner:         a.Owner,
		Symbol:        a.Symbol,
		Display:       a.Display,
		LegacyDisplay: a.LegacyDisplay,
	}
}

func (a Access) validate() error {
	switch {
	case a.Symbol == "" && a.Index == nil:
		return invalidPath(a.String(), "empty member symbol")
	case a.Symbol != "" && !isIdentifier(a.Symbol):
		return invalidPath(a.String(), "symbol is not a simple member name")
	case a.Index != nil && *a.Index < 0:
		return invalidPath(a.String(), "negative index")
	}
	return nil
}

// isIdentifier reports whether s is a letter or underscore followed by
// letters, digits and underscores. Separators, operators and call syntax are
// all rejected, so formatted names never need escaping.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == utf8.RuneError {
			return false
		}
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}
