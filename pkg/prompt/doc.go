// Package prompt collects choice field values interactively. A Session asks
// for a value through a Driver, hands it to the field's resolver and asks
// again when the value is rejected.
package prompt
