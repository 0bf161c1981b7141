package acroform

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-acroform/pkg/appearance"
	"github.com/goliatone/go-acroform/pkg/choice"
	"github.com/goliatone/go-acroform/pkg/model"
)

func colourDictionary() *Dictionary {
	return &Dictionary{
		Name: "colour",
		Opt: []model.Option{
			model.Pair("r", "Red"),
			model.Pair("g", "Green"),
			model.Plain("Blue"),
		},
		Ff: model.FlagCombo,
		I:  model.NewIndexList(),
	}
}

func TestChoiceFieldSetValuePaired(t *testing.T) {
	field := NewChoiceField(colourDictionary())

	if err := field.SetValue("Green"); err != nil {
		t.Fatalf("set value: %v", err)
	}
	if field.Value() != "g" {
		t.Fatalf("value = %q, want export key g", field.Value())
	}
	if field.Display() != "Green" || field.AppearanceText() != "Green" {
		t.Fatalf("display = %q appearance = %q", field.Display(), field.AppearanceText())
	}
	if diff := cmp.Diff([]int{1}, field.SelectedIndex().Values()); diff != "" {
		t.Fatalf("index mismatch (-want +got):\n%s", diff)
	}
	option, ok := field.SelectedOption()
	if !ok || option.Export() != "g" {
		t.Fatalf("selected option = %+v, %v", option, ok)
	}
}

func TestChoiceFieldAppearanceFailureLeavesDictionary(t *testing.T) {
	dict := colourDictionary()
	dict.Ff |= model.FlagEdit
	dict.MaxLen = 5
	dict.V = "Blue"
	dict.Display = "Blue"
	field := NewChoiceField(dict)

	err := field.SetValue("Turquoise")
	if !errors.Is(err, appearance.ErrValueTooLong) {
		t.Fatalf("expected ErrValueTooLong, got %v", err)
	}
	if field.Value() != "Blue" || field.Display() != "Blue" {
		t.Fatalf("dictionary changed: V=%q display=%q", field.Value(), field.Display())
	}
}

func TestChoiceFieldRejectsUnknownValue(t *testing.T) {
	field := NewChoiceField(colourDictionary())

	err := field.SetValue("Purple")
	if value, ok := choice.RejectedValue(err); !ok || value != "Purple" {
		t.Fatalf("expected rejection of Purple, got %v", err)
	}
}

func TestChoiceFieldCustomAppearanceAndResolver(t *testing.T) {
	dict := colourDictionary()
	dict.Ff |= model.FlagEdit
	dict.I = model.NewIndexList(0)

	field := NewChoiceField(dict,
		WithAppearance(appearance.GeneratorFunc(func(v string) (string, error) {
			return "(" + v + ")", nil
		})),
		WithResolver(choice.New(choice.WithClearIndexOnFreeText(true))),
	)

	if err := field.SetValue("Teal"); err != nil {
		t.Fatalf("set value: %v", err)
	}
	if field.AppearanceText() != "(Teal)" {
		t.Fatalf("appearance = %q", field.AppearanceText())
	}
	if field.SelectedIndex().Len() != 0 {
		t.Fatalf("expected index cleared, got %v", field.SelectedIndex().Values())
	}
	if _, ok := field.SelectedOption(); ok {
		t.Fatalf("expected no selected option")
	}
}

func TestChoiceFieldReset(t *testing.T) {
	dict := colourDictionary()
	dict.DV = "r"
	field := NewChoiceField(dict)

	if err := field.SetValue("Blue"); err != nil {
		t.Fatalf("set value: %v", err)
	}
	if err := field.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if field.Value() != "r" || field.Display() != "Red" {
		t.Fatalf("reset to default failed: V=%q display=%q", field.Value(), field.Display())
	}

	dict.DV = ""
	if err := field.Reset(); err != nil {
		t.Fatalf("reset without default: %v", err)
	}
	if field.Value() != "" || field.Display() != "" || field.SelectedIndex().Len() != 0 {
		t.Fatalf("expected cleared field, got V=%q display=%q index=%v", field.Value(), field.Display(), field.SelectedIndex().Values())
	}
	if field.SelectedIndex() == nil {
		t.Fatalf("reset must keep the index record")
	}
}

func TestChoiceFieldAccessors(t *testing.T) {
	list := NewChoiceField(&Dictionary{Name: "size", Label: "Size"})
	if list.Kind() != model.KindList || list.IsCombo() || list.IsEditable() {
		t.Fatalf("unexpected list flags")
	}
	if list.Name() != "size" || list.Label() != "Size" {
		t.Fatalf("unexpected name/label %q/%q", list.Name(), list.Label())
	}

	combo := NewChoiceField(&Dictionary{Ff: model.FlagCombo | model.FlagEdit})
	if combo.Kind() != model.KindCombo || !combo.IsCombo() || !combo.IsEditable() {
		t.Fatalf("unexpected combo flags")
	}

	empty := NewChoiceField(nil)
	if !errors.Is(empty.SetValue("x"), choice.ErrNoOptionsAvailable) {
		t.Fatalf("expected empty list box to reject values")
	}
}
