// Package summary implements spec.md 4.J's plan summary formatter: a pure,
// stateless function turning a Plan and its inputs into a human-readable
// string. No state, no I/O.
//
// Grounded on the teacher's pkg/dungeon/text.go RenderText (header +
// per-entity section layout) and pkg/validation/report.go's Summary
// (score/percentage formatting conventions).
package summary
