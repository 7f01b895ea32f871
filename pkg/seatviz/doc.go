// Package seatviz renders a Plan as an SVG floor diagram: one circle per
// table, laid out on a canvas-spanning ring, with each table's occupants
// labeled around its circumference in their chosen ring order.
//
// Grounded on the teacher's pkg/export/svg.go: an Options struct with
// DefaultOptions, a bytes.Buffer + svgo canvas, and a layout pass that
// positions entities before drawing edges/labels over them.
package seatviz
