package summary

import (
	"fmt"
	"strings"

	"github.com/immortalitybytes/seatyr1016-sub001/pkg/seatmodel"
)

// Summarize renders plan as a human-readable report: a header with the
// three quality percentages and the aggregate score, followed by one
// section per occupied table listing its parties in ring order.
func Summarize(plan seatmodel.Plan, guests []seatmodel.Guest, tables []seatmodel.Table) string {
	guestByID := make(map[seatmodel.GuestID]seatmodel.Guest, len(guests))
	for _, g := range guests {
		guestByID[g.ID] = g
	}
	tableByID := make(map[seatmodel.TableID]seatmodel.Table, len(tables))
	for _, t := range tables {
		tableByID[t.ID] = t
	}

	var sb strings.Builder

	sb.WriteString("==================================================\n")
	sb.WriteString("  SEATING PLAN SUMMARY\n")
	sb.WriteString("==================================================\n\n")

	sb.WriteString(fmt.Sprintf("Score: %.1f%%\n", plan.Score*100))
	sb.WriteString(fmt.Sprintf("  Adjacency satisfaction: %.1f%%\n", plan.AdjacencySatisfaction*100))
	sb.WriteString(fmt.Sprintf("  Capacity utilization:   %.1f%%\n", plan.CapacityUtilization*100))
	sb.WriteString(fmt.Sprintf("  Balance:                %.1f%%\n", plan.Balance*100))
	sb.WriteString("\n")

	if len(plan.Tables) == 0 {
		sb.WriteString("No tables occupied.\n")
		return sb.String()
	}

	for _, ts := range plan.Tables {
		table := tableByID[ts.TableID]
		name := table.Name
		if name == "" {
			name = table.ID
		}

		seated := 0
		for _, g := range ts.Order {
			seated += guestByID[g].Count
		}

		sb.WriteString(fmt.Sprintf("Table %s (%d/%d seats, %.0f%% adjacency):\n", name, seated, table.Capacity, ts.AdjacencySatisfaction*100))
		for _, g := range ts.Order {
			guest := guestByID[g]
			sb.WriteString(fmt.Sprintf("  - %s (party of %d)\n", guest.Name, guest.Count))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
