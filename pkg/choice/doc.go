// Package choice resolves a candidate string against a choice field's options
// list and applies the result to the field through the Field collaborator.
//
// The scan is first-match-wins in options order. A paired option matches on
// either its export key or its display value; the display value is drawn
// through SetDisplayValue and the export key is then written with
// SetStoredKey. Editable combo boxes accept any string that matches nothing.
// The selected-index record is updated only when the field already tracks
// one; it is never created.
package choice
