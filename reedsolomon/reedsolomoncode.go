// Package reedsolomon implements a Reed-Solomon code over PF(59) whose
// symbols are taken from the symbols alphabet.
//
// Decoding corrects up to (n-k)/2 corrupted symbols. With more errors the
// decoder does not notice and returns a wrong message; use DecodeStrict to
// re-verify the corrected codeword and get ErrUncorrectable instead.
package reedsolomon

import "rs59/field"

// Encoder is implemented by codes able to encode a message
type Encoder interface {
	// Encode receives a message of at most k symbols and encodes it into a code of n symbols
	Encode(msg string) (string, error)
}

// Decoder is implemented by codes able to recover a message
type Decoder interface {
	// Decode takes a word of n symbols and tries to decode the original k symbols message
	Decode(word string, preserveWidth bool) (string, error)
	// DecodeStrict is Decode but fails when the corrected word is not a codeword
	DecodeStrict(word string, preserveWidth bool) (string, error)
	// Correct returns the corrected codeword and the errors found in word
	Correct(word string) (Correction, error)
}

// Codes is a full Reed-Solomon code
type Codes interface {
	Encoder
	Decoder
	// Verify returns true if word is a codeword
	Verify(word string) (bool, error)
	// Message extracts the message symbols of a codeword
	Message(codeword string, preserveWidth bool) string
	N() int
	K() int
}

// SymbolError describes one corrected symbol
type SymbolError struct {
	// Index of the symbol in the word, 0 is the first symbol
	Index int
	// Power of x the symbol is the coefficient of, 0 is the last symbol
	Power int
	// Magnitude that was subtracted from the received symbol
	Magnitude field.Element
}

// Correction is the result of running error correction on a word
type Correction struct {
	Codeword string
	Errors   []SymbolError
}
