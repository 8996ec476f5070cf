package core

import (
	"strconv"
	"time"
	"unicode/utf8"
)

// Instead of implementing full value objects, alias types and small helpers are used here ...

// PartyIDString is the opaque identity of an authenticated caller
// (librarian/minter, holder, requester).
type PartyIDString = string

// BookIDString is the externally supplied unique book identifier,
// kept as a decimal string so payload predicates can match it.
type BookIDString = string

// AmountUint is an amount of the native value unit.
type AmountUint = uint64

// NoteString is a free-form note attached to accept/return/archive calls.
type NoteString = string

// OccurredAtTS represents when an event occurred.
type OccurredAtTS = time.Time

// ZeroParty is the owner sentinel: a book owned by ZeroParty is out of
// circulation (never registered, removed, or lost).
const ZeroParty PartyIDString = ""

// maxMetadataRunes bounds the free-form metadata strings at the boundary.
const maxMetadataRunes = 256

// ToOccurredAt converts a time to OccurredAtTS with UTC normalization and microsecond precision.
func ToOccurredAt(t time.Time) OccurredAtTS {
	return t.UTC().Truncate(time.Microsecond)
}

// BookIDFromUint converts a numeric book identifier to its canonical string form.
func BookIDFromUint(id uint64) BookIDString {
	return strconv.FormatUint(id, 10)
}

// ValidMetadataString reports whether a metadata string (location, publisher,
// author, title, note) is acceptable: valid UTF-8 and within the length bound.
func ValidMetadataString(s string) bool {
	return utf8.ValidString(s) && utf8.RuneCountInString(s) <= maxMetadataRunes
}
