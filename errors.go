// Copyright (c) 2024-2026 TCTex Project
// SPDX-License-Identifier: MIT

package layout

import "fmt"

// FormatError reports a layout-line element that does not match the field
// grammar. The whole line is invalid; parsing does not skip or recover.
type FormatError struct {
	Field  string // the offending comma-separated element
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("bad layout field %q: %s", e.Field, e.Reason)
}

// CompileError reports a structurally invalid token sequence or a compiled
// program that violates the mode's declared shape. Compilation of a mode
// either fully succeeds or is rejected in full.
type CompileError struct {
	Mode   uint8
	Reason string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("mode %d: %s", e.Mode, e.Reason)
}

// ConflictError reports two table entries declaring the same mode
// identifier during registry assembly.
type ConflictError struct {
	Mode uint8
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("duplicate mode %d in table", e.Mode)
}
