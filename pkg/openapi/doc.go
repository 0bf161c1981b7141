// Package openapi imports choice field definitions from OpenAPI documents.
// Every component schema property that declares an enum becomes a field;
// x-enum-labels turns the enum into key/display pairs and the x-acroform-kind
// and x-acroform-editable extensions choose the presentation.
package openapi
