package testsupport

import (
	"github.com/goliatone/go-acroform/pkg/model"
)

// FieldState is a comparable snapshot of a FakeField.
type FieldState struct {
	Display      string
	Value        string
	IndexPresent bool
	Index        []int
}

// FakeField is an in-memory choice field that records every write. Set
// AppearanceErr to make SetDisplayValue fail without storing anything.
type FakeField struct {
	Opts          []model.Option
	FieldFlags    model.Flags
	Display       string
	Value         string
	Index         *model.IndexList
	AppearanceErr error
	Calls         []string
}

// NewPlainField builds a FakeField whose options are plain strings.
func NewPlainField(flags model.Flags, values ...string) *FakeField {
	opts := make([]model.Option, 0, len(values))
	for _, value := range values {
		opts = append(opts, model.Plain(value))
	}
	return &FakeField{Opts: opts, FieldFlags: flags}
}

func (f *FakeField) Options() []model.Option { return f.Opts }

func (f *FakeField) Flags() model.Flags { return f.FieldFlags }

func (f *FakeField) SetDisplayValue(value string) error {
	f.Calls = append(f.Calls, "display:"+value)
	if f.AppearanceErr != nil {
		return f.AppearanceErr
	}
	f.Display = value
	f.Value = value
	return nil
}

func (f *FakeField) SetStoredKey(key string) {
	f.Calls = append(f.Calls, "key:"+key)
	f.Value = key
}

func (f *FakeField) SelectedIndex() *model.IndexList { return f.Index }

// Snapshot captures the stored state for cmp comparisons.
func (f *FakeField) Snapshot() FieldState {
	return FieldState{
		Display:      f.Display,
		Value:        f.Value,
		IndexPresent: f.Index != nil,
		Index:        f.Index.Values(),
	}
}
