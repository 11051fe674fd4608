// Package types defines the Report value and its Builder, the report
// categories, the Repository contracts every store backend satisfies, and
// the sentinel errors those contracts return.
package types
