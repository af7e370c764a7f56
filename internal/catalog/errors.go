// SPDX-License-Identifier: BSD-2-Clause

package catalog

import "fmt"

// DefinitionError reports a missing, unreadable, or structurally malformed
// catalog source. It is fatal: no partial catalog is ever returned alongside it.
type DefinitionError struct {
	Source string
	Err    error
}

func (e *DefinitionError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("invalid capability catalog: %v", e.Err)
	}
	return fmt.Sprintf("invalid capability catalog %s: %v", e.Source, e.Err)
}

// Unwrap enables errors.Is/As to traverse the underlying cause.
func (e *DefinitionError) Unwrap() error { return e.Err }

// UnknownProfileError reports a request for a profile name that the catalog
// does not define. Callers are expected to check Catalog.Profile before
// consulting the matcher; this error belongs to that caller-side check.
type UnknownProfileError struct {
	Name string
}

func (e *UnknownProfileError) Error() string {
	return fmt.Sprintf("unknown profile %q", e.Name)
}
