package seatviz

import (
	"bytes"
	"strings"
	"testing"

	"github.com/immortalitybytes/seatyr1016-sub001/pkg/seatmodel"
)

func TestRenderSVG_ProducesValidSVGDocument(t *testing.T) {
	plan := seatmodel.Plan{
		Tables: []seatmodel.TableSeating{
			{TableID: "T1", Order: []seatmodel.GuestID{"A", "B"}, AdjacencySatisfaction: 1},
		},
	}
	guests := []seatmodel.Guest{{ID: "A", Name: "Alice", Count: 1}, {ID: "B", Name: "Bob", Count: 1}}
	tables := []seatmodel.Table{{ID: "T1", Name: "Head Table", Capacity: 4}}

	var buf bytes.Buffer
	if err := RenderSVG(&buf, plan, guests, tables, DefaultOptions()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatalf("expected a well-formed svg document, got:\n%s", out)
	}
	if !strings.Contains(out, "Head Table") {
		t.Fatalf("expected table name rendered, got:\n%s", out)
	}
}

func TestRenderSVG_EmptyPlanStillProducesDocument(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderSVG(&buf, seatmodel.Plan{}, nil, nil, Options{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Fatalf("expected svg document even for an empty plan")
	}
}
