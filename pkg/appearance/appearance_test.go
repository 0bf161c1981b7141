package appearance

import (
	"errors"
	"testing"
)

func TestTextCompute(t *testing.T) {
	cases := []struct {
		name  string
		text  Text
		value string
		want  string
	}{
		{name: "plain", value: "Green", want: "Green"},
		{name: "markup stripped", value: "<b>Bold</b> choice", want: "Bold choice"},
		{name: "unlimited", text: Text{MaxLen: 0}, value: "a long option label", want: "a long option label"},
		{name: "exact max", text: Text{MaxLen: 5}, value: "Green", want: "Green"},
		{name: "runes not bytes", text: Text{MaxLen: 3}, value: "äöü", want: "äöü"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.text.Compute(tc.value)
			if err != nil {
				t.Fatalf("compute: %v", err)
			}
			if got != tc.want {
				t.Fatalf("compute = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestTextComputeFailures(t *testing.T) {
	cases := []struct {
		name  string
		text  Text
		value string
		want  error
	}{
		{name: "too long", text: Text{MaxLen: 4}, value: "Green", want: ErrValueTooLong},
		{name: "newline", value: "two\nlines", want: ErrUnprintable},
		{name: "tab", value: "a\tb", want: ErrUnprintable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.text.Compute(tc.value)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			var computation *ComputationError
			if !errors.As(err, &computation) {
				t.Fatalf("expected *ComputationError, got %T", err)
			}
			if computation.Value != tc.value {
				t.Fatalf("error value = %q, want %q", computation.Value, tc.value)
			}
		})
	}
}

func TestGeneratorFunc(t *testing.T) {
	gen := GeneratorFunc(func(v string) (string, error) { return "[" + v + "]", nil })
	got, err := gen.Compute("x")
	if err != nil || got != "[x]" {
		t.Fatalf("compute = %q, %v", got, err)
	}
}
