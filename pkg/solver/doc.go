// Package solver implements the two search-facing entry points of
// spec.md 6: GeneratePlans (the full normalize -> validate -> group ->
// multi-seed place/order/score loop) and DetectConflicts (validation only,
// no search). Both gate on the same fatal-error rule: any issue other than
// self_reference_ignored prevents the search from ever running.
//
// Grounded on the teacher's pkg/dungeon/dungeon.go DefaultGenerator.Generate:
// stage orchestration, a context.Context deadline threaded through the
// expensive stage, and a fatal-vs-warning gate evaluated before committing
// to that work.
package solver
