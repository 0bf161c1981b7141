// Package model defines the value types shared by the choice resolver and the
// in-memory document model. An options list is an ordered []Option where each
// entry is either plain (Plain) or an export key/display pair (Pair); the list
// order defines the selected index. Flags mirrors the field flags bitset and
// only the combo and edit bits are interpreted. IndexList is the optional
// selected-index record: nil means absent, empty means present but unset.
package model
