package reedsolomon

import "golang.org/x/xerrors"

var (
	// ErrInvalidParameters is returned for a code that does not satisfy
	// 0 <= k < n < 59.
	ErrInvalidParameters = xerrors.New("invalid code parameters")
	// ErrMessageTooLong is returned when a message has more than k symbols.
	ErrMessageTooLong = xerrors.New("message is too long")
	// ErrInvalidLength is returned when a word does not have n symbols.
	ErrInvalidLength = xerrors.New("word does not have the codeword length")
	// ErrUncorrectable is returned by DecodeStrict when the corrected word is
	// still not a codeword.
	ErrUncorrectable = xerrors.New("too many errors to correct")
)
