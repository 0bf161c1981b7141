// Package acroform is a small in-memory document model for choice fields.
// A Dictionary holds the entries a field dictionary would carry (Opt, Ff, V,
// DV, I, MaxLen) plus the display value and appearance text last drawn.
// ChoiceField implements choice.Field on top of a Dictionary and Form groups
// fields by name. Nothing here is safe for concurrent use.
package acroform
