package types

const (
	// DefaultMaxRecords caps the number of records one decode may produce.
	// A 64 KiB resource (the largest wLength can describe) holds at most
	// 65536/4 Translation values, so this never triggers on valid input.
	DefaultMaxRecords = 65536

	// MaxResourceLength is the largest length a WORD wLength can declare.
	MaxResourceLength = 0xFFFF
)
