package fielddef_test

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-acroform/pkg/choice"
	"github.com/goliatone/go-acroform/pkg/fielddef"
	"github.com/goliatone/go-acroform/pkg/model"
	"github.com/goliatone/go-acroform/pkg/testsupport"
)

const colourYAML = `
fields:
  - name: colour
    label: Colour
    kind: combo
    editable: true
    maxLen: 16
    options:
      - Red
      - [g, Green]
      - {key: b, value: Blue}
    value: g
    selectedIndex: [1]
  - name: size
    options: [S, M, L]
    selectedIndex: []
  - name: notes
    kind: list
    options: ["1", 2]
`

const shippingJSON = `{
  "fields": [
    {
      "name": "shipping",
      "kind": "list",
      "options": ["None", ["ex", "Express"], {"key": "pu", "value": "Pickup"}, 3],
      "default": "None"
    }
  ]
}`

func intsPtr(values ...int) *[]int {
	if values == nil {
		values = []int{}
	}
	return &values
}

func TestParseYAML(t *testing.T) {
	doc, err := fielddef.Parse([]byte(colourYAML), "colour.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := fielddef.Document{Fields: []fielddef.Definition{
		{
			Name:     "colour",
			Label:    "Colour",
			Kind:     model.KindCombo,
			Editable: true,
			MaxLen:   16,
			Options: []fielddef.OptionDef{
				{Value: "Red"},
				{Key: "g", Value: "Green", Paired: true},
				{Key: "b", Value: "Blue", Paired: true},
			},
			Value:         "g",
			SelectedIndex: intsPtr(1),
		},
		{
			Name:          "size",
			Options:       []fielddef.OptionDef{{Value: "S"}, {Value: "M"}, {Value: "L"}},
			SelectedIndex: intsPtr(),
		},
		{
			Name:    "notes",
			Kind:    model.KindList,
			Options: []fielddef.OptionDef{{Value: "1"}, {Value: "2"}},
		},
	}}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Fatalf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestParseJSON(t *testing.T) {
	doc, err := fielddef.Parse([]byte(shippingJSON), "shipping.json")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []fielddef.OptionDef{
		{Value: "None"},
		{Key: "ex", Value: "Express", Paired: true},
		{Key: "pu", Value: "Pickup", Paired: true},
		{Value: "3"},
	}
	if diff := cmp.Diff(want, doc.Fields[0].Options); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
	if doc.Fields[0].SelectedIndex != nil {
		t.Fatalf("expected absent selected index")
	}
}

func TestParseNullOptionsKeepPositions(t *testing.T) {
	want := []fielddef.OptionDef{
		{Value: ""},
		{Value: "x"},
		{Key: "k", Value: "", Paired: true},
	}
	payloads := map[string]string{
		"a.yaml": "fields:\n  - name: a\n    options: [~, x, [k, null]]\n    selectedIndex: [1]\n",
		"a.json": `{"fields":[{"name":"a","options":[null,"x",["k",null]],"selectedIndex":[1]}]}`,
	}
	for source, payload := range payloads {
		t.Run(source, func(t *testing.T) {
			doc, err := fielddef.Parse([]byte(payload), source)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if diff := cmp.Diff(want, doc.Fields[0].Options); diff != "" {
				t.Fatalf("options mismatch (-want +got):\n%s", diff)
			}

			form, err := fielddef.Build(doc)
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			field, _ := form.Field("a")
			option, ok := field.SelectedOption()
			if !ok || option.Display() != "x" {
				t.Fatalf("selected option = %+v, %v; want x", option, ok)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		want    string
	}{
		{name: "empty", payload: "  ", want: "is empty"},
		{name: "garbage", payload: "fields: [", want: "invalid JSON or YAML"},
		{name: "missing name", payload: "fields:\n  - options: [A]\n", want: "has no name"},
		{name: "duplicate", payload: "fields:\n  - name: a\n  - name: a\n", want: "duplicate field"},
		{name: "editable list", payload: "fields:\n  - name: a\n    editable: true\n", want: "only combo boxes"},
		{name: "unknown kind", payload: "fields:\n  - name: a\n    kind: radio\n", want: "unknown kind"},
		{name: "index range", payload: "fields:\n  - name: a\n    options: [A]\n    selectedIndex: [1]\n", want: "out of range"},
		{name: "bad pair", payload: "fields:\n  - name: a\n    options: [[a, b, c]]\n", want: "2 elements"},
		{name: "options mapping", payload: "fields:\n  - name: a\n    options: {a: b}\n", want: "options must be a sequence"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fielddef.Parse([]byte(tc.payload), "bad.yaml")
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not contain %q", err, tc.want)
			}
		})
	}
}

func TestLoadFSMergesFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"forms/a_colour.yaml":   {Data: []byte(colourYAML)},
		"forms/b_shipping.json": {Data: []byte(shippingJSON)},
		"forms/readme.txt":      {Data: []byte("ignored")},
	}

	doc, err := fielddef.LoadFS(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	var names []string
	for _, def := range doc.Fields {
		names = append(names, def.Name)
	}
	if diff := cmp.Diff([]string{"colour", "size", "notes", "shipping"}, names); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFSDuplicateAcrossFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"a.yaml": {Data: []byte("fields:\n  - name: colour\n")},
		"b.yaml": {Data: []byte("fields:\n  - name: colour\n")},
	}
	_, err := fielddef.LoadFS(fsys)
	if err == nil || !strings.Contains(err.Error(), "duplicate field \"colour\"") {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestLoadFileAndDirectory(t *testing.T) {
	dir := t.TempDir()
	path := testsupport.WriteFixture(t, dir, "colour.yaml", colourYAML)

	doc, err := fielddef.Load(path)
	if err != nil {
		t.Fatalf("load file: %v", err)
	}
	if len(doc.Fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(doc.Fields))
	}

	testsupport.WriteFixture(t, dir, "nested/shipping.json", shippingJSON)
	doc, err = fielddef.Load(dir)
	if err != nil {
		t.Fatalf("load dir: %v", err)
	}
	if len(doc.Fields) != 4 {
		t.Fatalf("expected 4 fields, got %d", len(doc.Fields))
	}

	if _, err := fielddef.Load(dir + "/missing.yaml"); err == nil {
		t.Fatalf("expected stat error")
	}
}

func TestBuildAndResolve(t *testing.T) {
	doc, err := fielddef.Parse([]byte(colourYAML), "colour.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	form, err := fielddef.Build(doc)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	colour, ok := form.Field("colour")
	if !ok {
		t.Fatalf("colour field missing")
	}
	if colour.Display() != "Green" || colour.Value() != "g" {
		t.Fatalf("initial display/value = %q/%q", colour.Display(), colour.Value())
	}
	if !colour.IsEditable() {
		t.Fatalf("expected editable combo")
	}

	if err := form.SetValue("colour", "b"); err != nil {
		t.Fatalf("set colour: %v", err)
	}
	if diff := cmp.Diff([]int{2}, colour.SelectedIndex().Values()); diff != "" {
		t.Fatalf("index mismatch (-want +got):\n%s", diff)
	}

	if err := form.SetValue("size", "XL"); !errors.Is(err, choice.ErrValueNotAnOption) {
		t.Fatalf("expected rejection, got %v", err)
	}

	notes, _ := form.Field("notes")
	if err := notes.SetValue("2"); err != nil {
		t.Fatalf("set notes: %v", err)
	}
	if notes.SelectedIndex() != nil {
		t.Fatalf("notes must not gain an index record")
	}
}

func TestBuildSharesResolver(t *testing.T) {
	doc, err := fielddef.Parse([]byte(colourYAML), "colour.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var outcomes []choice.Outcome
	resolver := choice.New(choice.WithLogger(choice.ResolveLoggerFunc(func(event choice.ResolveEvent) {
		outcomes = append(outcomes, event.Outcome)
	})))
	form, err := fielddef.Build(doc, fielddef.WithResolver(resolver))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	_ = form.SetValue("colour", "Magenta")
	_ = form.SetValue("size", "M")

	if diff := cmp.Diff([]choice.Outcome{choice.OutcomeFreeText, choice.OutcomeMatched}, outcomes); diff != "" {
		t.Fatalf("outcomes mismatch (-want +got):\n%s", diff)
	}
}

func TestDefinitionsAndMarshal(t *testing.T) {
	doc, err := fielddef.Parse([]byte(colourYAML), "colour.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	form, err := fielddef.Build(doc)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	out, err := fielddef.Marshal(fielddef.Definitions(form))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	text := string(out)
	for _, fragment := range []string{"- [g, Green]", "- Red", "selectedIndex: []", "kind: combo"} {
		if !strings.Contains(text, fragment) {
			t.Fatalf("marshalled YAML missing %q:\n%s", fragment, text)
		}
	}
}
