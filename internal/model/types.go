package model

// Option is a single entry of a choice field's options list. It is either a
// plain option holding one display string or a paired option holding an
// export key and the display value shown to the user. Construct options with
// Plain or Pair; the zero value is a plain option with an empty string.
type Option struct {
	key    string
	value  string
	paired bool
}

// Plain returns an option whose display string is also its stored value.
func Plain(value string) Option {
	return Option{value: value}
}

// Pair returns an option that stores key in the field value while showing
// value to the user.
func Pair(key, value string) Option {
	return Option{key: key, value: value, paired: true}
}

// Paired reports whether the option carries a distinct export key.
func (o Option) Paired() bool {
	return o.paired
}

// Display returns the human-readable string for the option.
func (o Option) Display() string {
	return o.value
}

// Export returns the string stored in the field value when the option is
// selected. Plain options export their display string.
func (o Option) Export() string {
	if o.paired {
		return o.key
	}
	return o.value
}

// Matches reports whether candidate selects this option. Paired options match
// either their export key or their display value; comparison is exact.
func (o Option) Matches(candidate string) bool {
	if o.paired {
		return candidate == o.key || candidate == o.value
	}
	return candidate == o.value
}

// Flags is the field flags bitset (the Ff entry of a field dictionary).
type Flags uint32

const (
	// FlagCombo marks a combo box rather than a list box.
	FlagCombo Flags = 1 << 17
	// FlagEdit allows free-text entry on a combo box.
	FlagEdit Flags = 1 << 18
)

// Has reports whether every bit in mask is set.
func (f Flags) Has(mask Flags) bool {
	return f&mask == mask
}

// Editable reports whether the field accepts values outside its options list.
// Only combo boxes with the edit bit set qualify.
func (f Flags) Editable() bool {
	return f.Has(FlagCombo | FlagEdit)
}

// Kind is the choice field presentation.
type Kind string

const (
	KindList  Kind = "list"
	KindCombo Kind = "combo"
)

// Kind derives the presentation from the combo bit.
func (f Flags) Kind() Kind {
	if f.Has(FlagCombo) {
		return KindCombo
	}
	return KindList
}

// IndexList is the selected-index record (the I entry). A nil *IndexList
// means the field does not track a selected index; a non-nil empty list
// tracks one that is currently unset.
type IndexList struct {
	values []int
}

// NewIndexList returns a present record seeded with indices.
func NewIndexList(indices ...int) *IndexList {
	return &IndexList{values: append([]int(nil), indices...)}
}

// Values returns a copy of the recorded indices.
func (l *IndexList) Values() []int {
	if l == nil || len(l.values) == 0 {
		return nil
	}
	return append([]int(nil), l.values...)
}

// Len reports how many indices are recorded.
func (l *IndexList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.values)
}

// Replace swaps the contents for the supplied indices.
func (l *IndexList) Replace(indices ...int) {
	if l == nil {
		return
	}
	l.values = append(l.values[:0], indices...)
}

// Clear empties the record without removing it.
func (l *IndexList) Clear() {
	if l == nil {
		return
	}
	l.values = l.values[:0]
}
