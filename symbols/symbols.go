// Package symbols maps the 59-symbol alphabet onto PF(59).
//
// The alphabet is the Base58 alphabet (no l, I or O) preceded by '0', which
// stands for the zero element and is used as padding.
package symbols

import (
	"rs59/field"
	"strings"

	"golang.org/x/xerrors"
)

// Alphabet lists the symbols, the index of a symbol is its field value.
const Alphabet = "0123456789abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ"

// Pad is the symbol of the zero element.
const Pad = '0'

// ErrInvalidSymbol is returned for a character outside the alphabet.
var ErrInvalidSymbol = xerrors.New("symbol is not in the alphabet")

var lookup = func() [256]int8 {
	var t [256]int8
	for i := range t {
		t[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		t[Alphabet[i]] = int8(i)
	}
	return t
}()

// ToElement returns the field element of the symbol c
func ToElement(c byte) (field.Element, error) {
	v := lookup[c]
	if v < 0 {
		return field.Zero, xerrors.Errorf("%q: %w", c, ErrInvalidSymbol)
	}
	return field.Element(v), nil
}

// FromElement returns the symbol of e. It fails with
// field.ErrInvalidFieldValue if e was not built through the field package.
func FromElement(e field.Element) (byte, error) {
	if e.Int() >= len(Alphabet) {
		return 0, xerrors.Errorf("no symbol for %d: %w", e.Int(), field.ErrInvalidFieldValue)
	}
	return Alphabet[e], nil
}

// Decode turns a word into field elements, first symbol first
func Decode(word string) ([]field.Element, error) {
	res := make([]field.Element, len(word))
	for i := 0; i < len(word); i++ {
		e, err := ToElement(word[i])
		if err != nil {
			return nil, xerrors.Errorf("position %d: %w", i, err)
		}
		res[i] = e
	}
	return res, nil
}

// Encode turns field elements into a word
func Encode(elements []field.Element) (string, error) {
	var sb strings.Builder
	sb.Grow(len(elements))
	for _, e := range elements {
		c, err := FromElement(e)
		if err != nil {
			return "", err
		}
		sb.WriteByte(c)
	}
	return sb.String(), nil
}

// PadLeft prefixes word with Pad symbols up to size. Longer words are
// returned unchanged.
func PadLeft(word string, size int) string {
	if len(word) >= size {
		return word
	}
	return strings.Repeat(string(Pad), size-len(word)) + word
}

// StripLeft removes the leading Pad symbols of word
func StripLeft(word string) string {
	return strings.TrimLeft(word, string(Pad))
}
