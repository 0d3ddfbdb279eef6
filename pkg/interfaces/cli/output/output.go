// Package output renders calculation results as human-readable
// tables, JSON, or CSV.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/avelis/bom/pkg/application/services/calc"
	"github.com/avelis/bom/pkg/domain/entities"
)

// Supported output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatCSV   = "csv"
)

// WriteExplosion renders an explosion result in the requested format.
func WriteExplosion(w io.Writer, result *calc.ExplosionResult, format string) error {
	switch format {
	case FormatTable:
		fmt.Fprintf(w, "Explosion of %s x %s (%d components, depth %d)\n\n",
			result.RootID, result.RequestedQty, len(result.Items), result.MaxDepth)
		fmt.Fprintf(w, "%-20s %15s %6s\n", "COMPONENT", "QUANTITY", "LEVEL")
		for _, item := range result.Items {
			fmt.Fprintf(w, "%-20s %15s %6d\n", item.ComponentID, item.TotalQuantity, item.Level)
		}
		return nil
	case FormatJSON:
		return writeJSON(w, result)
	case FormatCSV:
		writer := csv.NewWriter(w)
		if err := writer.Write([]string{"component_id", "total_quantity", "level"}); err != nil {
			return err
		}
		for _, item := range result.Items {
			record := []string{string(item.ComponentID), item.TotalQuantity.String(), fmt.Sprintf("%d", item.Level)}
			if err := writer.Write(record); err != nil {
				return err
			}
		}
		writer.Flush()
		return writer.Error()
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// CostReport is the renderable form of a cost rollup.
type CostReport struct {
	ComponentID entities.ComponentID `json:"component_id"`
	Quantity    decimal.Decimal      `json:"quantity"`
	TotalCost   decimal.Decimal      `json:"total_cost"`
	Drivers     []calc.CostDriver    `json:"drivers,omitempty"`
}

// WriteCost renders a cost report in the requested format.
func WriteCost(w io.Writer, report *CostReport, format string) error {
	switch format {
	case FormatTable:
		fmt.Fprintf(w, "Total cost of %s x %s: %s\n", report.ComponentID, report.Quantity, report.TotalCost)
		if len(report.Drivers) > 0 {
			fmt.Fprintf(w, "\n%-20s %15s %8s\n", "COST DRIVER", "COST", "SHARE")
			for _, driver := range report.Drivers {
				fmt.Fprintf(w, "%-20s %15s %7s%%\n",
					driver.ComponentID, driver.Cost, driver.Percentage.Round(2))
			}
		}
		return nil
	case FormatJSON:
		return writeJSON(w, report)
	case FormatCSV:
		writer := csv.NewWriter(w)
		if err := writer.Write([]string{"component_id", "quantity", "total_cost"}); err != nil {
			return err
		}
		record := []string{string(report.ComponentID), report.Quantity.String(), report.TotalCost.String()}
		if err := writer.Write(record); err != nil {
			return err
		}
		writer.Flush()
		return writer.Error()
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// WhereUsedReport is the renderable form of a where-used query.
type WhereUsedReport struct {
	ComponentID entities.ComponentID   `json:"component_id"`
	Transitive  bool                   `json:"transitive"`
	UsedIn      []entities.ComponentID `json:"used_in"`
}

// WriteWhereUsed renders a where-used report in the requested format.
func WriteWhereUsed(w io.Writer, report *WhereUsedReport, format string) error {
	switch format {
	case FormatTable:
		relation := "used directly in"
		if report.Transitive {
			relation = "used (at any level) in"
		}
		if len(report.UsedIn) == 0 {
			fmt.Fprintf(w, "%s is not used in any assembly\n", report.ComponentID)
			return nil
		}
		fmt.Fprintf(w, "%s is %s %d assemblies:\n", report.ComponentID, relation, len(report.UsedIn))
		for _, parent := range report.UsedIn {
			fmt.Fprintf(w, "  %s\n", parent)
		}
		return nil
	case FormatJSON:
		return writeJSON(w, report)
	case FormatCSV:
		writer := csv.NewWriter(w)
		if err := writer.Write([]string{"component_id"}); err != nil {
			return err
		}
		for _, parent := range report.UsedIn {
			if err := writer.Write([]string{string(parent)}); err != nil {
				return err
			}
		}
		writer.Flush()
		return writer.Error()
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func writeJSON(w io.Writer, value any) error {
	encoded, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	_, err = fmt.Fprintln(w, string(encoded))
	return err
}
