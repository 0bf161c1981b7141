package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
)

const textLayout = `{% autoescape off %}{% for entry in entries %}{{ entry.Name }} ({{ entry.Kind }}, {{ entry.Editable|yesno:"editable,fixed" }})
  value:    {{ entry.Value }}
  display:  {{ entry.Display }}
  selected: {{ entry.Selected }}
  options:
{% for option in entry.Options %}    {{ forloop.Counter0 }}. {{ option }}
{% empty %}    (none)
{% endfor %}{% endfor %}{% endautoescape %}`

var (
	textTemplateOnce sync.Once
	textTemplate     *pongo2.Template
	textTemplateErr  error
)

type textEntry struct {
	Name     string
	Kind     string
	Editable bool
	Value    string
	Display  string
	Selected string
	Options  []string
}

func renderText(w io.Writer, entries []Entry) error {
	textTemplateOnce.Do(func() {
		textTemplate, textTemplateErr = pongo2.FromString(textLayout)
	})
	if textTemplateErr != nil {
		return fmt.Errorf("report: parse text template: %w", textTemplateErr)
	}

	views := make([]textEntry, 0, len(entries))
	for _, entry := range entries {
		views = append(views, textView(entry))
	}
	if err := textTemplate.ExecuteWriter(pongo2.Context{"entries": views}, w); err != nil {
		return fmt.Errorf("report: render text: %w", err)
	}
	return nil
}

func textView(entry Entry) textEntry {
	view := textEntry{
		Name:     entry.Name,
		Kind:     string(entry.Kind),
		Editable: entry.Editable,
		Value:    entry.Value,
		Display:  entry.Display,
		Selected: "(absent)",
	}
	if entry.SelectedIndex != nil {
		parts := make([]string, 0, len(*entry.SelectedIndex))
		for _, idx := range *entry.SelectedIndex {
			parts = append(parts, strconv.Itoa(idx))
		}
		view.Selected = "[" + strings.Join(parts, ", ") + "]"
	}
	for _, option := range entry.Options {
		if !option.Paired {
			view.Options = append(view.Options, option.Display)
			continue
		}
		view.Options = append(view.Options, option.Display+" ("+option.Export+")")
	}
	return view
}
