package nbt

import "errors"

// Malformed input surfaces as one of these sentinels wrapped with position
// context; errors.Is works through every layer. Malformed input never
// panics.
var (
	// ErrTooShort indicates the buffer cannot hold even an empty document
	// (one kind byte plus an empty name's length prefix plus one payload
	// byte).
	ErrTooShort = errors.New("nbt: document too short")

	// ErrTruncated indicates the data ended inside a structure.
	ErrTruncated = errors.New("nbt: truncated data")

	// ErrUnsupportedType indicates a kind byte outside the decoded set.
	ErrUnsupportedType = errors.New("nbt: unsupported tag type")

	// ErrTrailingData indicates bytes remain after the root tag's payload.
	ErrTrailingData = errors.New("nbt: trailing data after root tag")

	// ErrTooDeep indicates compound nesting beyond ParseOptions.MaxDepth.
	ErrTooDeep = errors.New("nbt: nesting too deep")
)
