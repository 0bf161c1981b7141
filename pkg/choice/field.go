package choice

import "github.com/goliatone/go-acroform/pkg/model"

// Field is the view of a choice field's backing store the resolver needs. The
// document model implements it; the resolver reads and writes nothing else.
type Field interface {
	// Options returns the ordered options list. It may be empty.
	Options() []model.Option
	// Flags returns the field flags bitset.
	Flags() model.Flags
	// SetDisplayValue stores value and synchronizes the field appearance.
	// Appearance failures are returned as-is.
	SetDisplayValue(value string) error
	// SetStoredKey overwrites the stored value without touching the
	// appearance.
	SetStoredKey(key string)
	// SelectedIndex returns the selected-index record, or nil when the field
	// does not track one.
	SelectedIndex() *model.IndexList
}
