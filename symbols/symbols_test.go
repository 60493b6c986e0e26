package symbols

import (
	"errors"
	"rs59/field"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestAlphabet_Table checks the size and the excluded glyphs of the alphabet
func TestAlphabet_Table(t *testing.T) {
	require.Len(t, Alphabet, field.Order)
	for _, c := range []byte{'l', 'I', 'O'} {
		_, err := ToElement(c)
		require.True(t, errors.Is(err, ErrInvalidSymbol))
	}

	seen := make(map[rune]struct{})
	for _, c := range Alphabet {
		seen[c] = struct{}{}
	}
	require.Len(t, seen, field.Order)
}

// TestToElement_Values checks a few fixed positions of the table
func TestToElement_Values(t *testing.T) {
	expected := map[byte]field.Element{
		'0': 0, '9': 9, 'a': 10, 'k': 20, 'm': 21, 'z': 34,
		'A': 35, 'H': 42, 'J': 43, 'N': 47, 'P': 48, 'Z': 58,
	}
	for c, v := range expected {
		e, err := ToElement(c)
		require.NoError(t, err)
		require.Equal(t, v, e, "symbol %q", c)
	}
}

// TestRoundTrip checks that every element maps back to its symbol
func TestRoundTrip(t *testing.T) {
	for v := 0; v < field.Order; v++ {
		c, err := FromElement(field.Element(v))
		require.NoError(t, err)
		e, err := ToElement(c)
		require.NoError(t, err)
		require.Equal(t, field.Element(v), e)
	}

	_, err := FromElement(field.Element(59))
	require.True(t, errors.Is(err, field.ErrInvalidFieldValue))
}

// TestDecode_Invalid checks that the bad symbol is reported
func TestDecode_Invalid(t *testing.T) {
	_, err := Decode("abc!d")
	require.True(t, errors.Is(err, ErrInvalidSymbol))
	require.Contains(t, err.Error(), "position 3")

	elements, err := Decode("1Ah")
	require.NoError(t, err)
	require.Equal(t, []field.Element{1, 35, 17}, elements)

	word, err := Encode(elements)
	require.NoError(t, err)
	require.Equal(t, "1Ah", word)
}

// TestPadding checks left padding and stripping with the zero symbol
func TestPadding(t *testing.T) {
	require.Equal(t, "000abc", PadLeft("abc", 6))
	require.Equal(t, "abc", PadLeft("abc", 2))
	require.Equal(t, "abc", StripLeft("000abc"))
	require.Equal(t, "a0c", StripLeft("a0c"))
	require.Equal(t, "", StripLeft("0000"))
}
