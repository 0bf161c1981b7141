package model

import internalmodel "github.com/goliatone/go-acroform/internal/model"

// Option re-exports the internal options list entry.
type Option = internalmodel.Option

// Flags re-exports the field flags bitset.
type Flags = internalmodel.Flags

// Kind re-exports the choice presentation enumeration.
type Kind = internalmodel.Kind

// IndexList re-exports the selected-index record.
type IndexList = internalmodel.IndexList

const (
	FlagCombo = internalmodel.FlagCombo
	FlagEdit  = internalmodel.FlagEdit

	KindList  = internalmodel.KindList
	KindCombo = internalmodel.KindCombo
)

var (
	Plain        = internalmodel.Plain
	Pair         = internalmodel.Pair
	NewIndexList = internalmodel.NewIndexList
	Label        = internalmodel.Label
)

// FlagsFor composes the flags bitset for a presentation kind. The edit bit is
// only meaningful on combo boxes and is dropped for lists.
func FlagsFor(kind Kind, editable bool) Flags {
	var flags Flags
	if kind == KindCombo {
		flags |= FlagCombo
		if editable {
			flags |= FlagEdit
		}
	}
	return flags
}
