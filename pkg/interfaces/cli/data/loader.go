// Package data loads BOM datasets from JSON or CSV files into a
// repository.
package data

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/avelis/bom/pkg/domain/entities"
	"github.com/avelis/bom/pkg/domain/repositories"
	"github.com/avelis/bom/pkg/infrastructure/repositories/memory"
)

// ComponentRecord is the JSON wire form of a component.
type ComponentRecord struct {
	ID            string `json:"id"`
	Description   string `json:"description"`
	Cost          string `json:"cost"`
	UnitOfMeasure string `json:"uom"`
}

// ItemRecord is the JSON wire form of a usage edge.
type ItemRecord struct {
	ParentID string `json:"parent_id"`
	ChildID  string `json:"child_id"`
	Quantity string `json:"quantity"`
	Sequence int    `json:"sequence"`
}

// Dataset is a complete BOM input file.
type Dataset struct {
	Components []ComponentRecord `json:"components"`
	Items      []ItemRecord      `json:"bom_items"`
}

// Load reads a dataset file (.json or .csv) into a fresh in-memory
// repository.
func Load(filename string) (*memory.Repository, error) {
	dataset, err := LoadDataset(filename)
	if err != nil {
		return nil, err
	}

	repo := memory.NewRepository(len(dataset.Components), len(dataset.Items))
	if err := Populate(repo, dataset); err != nil {
		return nil, err
	}
	return repo, nil
}

// LoadDataset parses a dataset file by extension.
func LoadDataset(filename string) (*Dataset, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file %s: %w", filename, err)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		var dataset Dataset
		if err := json.Unmarshal(content, &dataset); err != nil {
			return nil, fmt.Errorf("failed to parse JSON input %s: %w", filename, err)
		}
		return &dataset, nil
	case ".csv":
		return parseCSV(content)
	default:
		return nil, fmt.Errorf("unsupported input format %q (want .json or .csv)", filepath.Ext(filename))
	}
}

// parseCSV reads the compact CSV form: a header row followed by
// parent,child,quantity[,cost] rows. Components are synthesized on
// first mention; the optional cost column sets the child's direct cost.
func parseCSV(content []byte) (*Dataset, error) {
	reader := csv.NewReader(strings.NewReader(string(content)))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV input: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("CSV input must have a header and at least one data row")
	}

	header := records[0]
	if len(header) < 3 || header[0] != "parent" || header[1] != "child" || header[2] != "quantity" {
		return nil, fmt.Errorf("CSV header mismatch. Expected: parent,child,quantity[,cost], Got: %v", header)
	}

	seen := make(map[string]int)
	dataset := &Dataset{}
	for i, record := range records[1:] {
		if len(record) < 3 {
			return nil, fmt.Errorf("CSV row %d: expected at least 3 columns, got %d", i+2, len(record))
		}

		parent := strings.TrimSpace(record[0])
		child := strings.TrimSpace(record[1])
		quantity := strings.TrimSpace(record[2])

		for _, id := range []string{parent, child} {
			if _, exists := seen[id]; !exists {
				seen[id] = len(dataset.Components)
				dataset.Components = append(dataset.Components, ComponentRecord{
					ID:          id,
					Description: id,
					Cost:        "0",
				})
			}
		}
		if len(record) >= 4 && strings.TrimSpace(record[3]) != "" {
			dataset.Components[seen[child]].Cost = strings.TrimSpace(record[3])
		}

		dataset.Items = append(dataset.Items, ItemRecord{
			ParentID: parent,
			ChildID:  child,
			Quantity: quantity,
		})
	}

	return dataset, nil
}

// Populate adds a dataset's components and edges to a repository.
func Populate(repo repositories.Repository, dataset *Dataset) error {
	for i, record := range dataset.Components {
		costText := record.Cost
		if costText == "" {
			costText = "0"
		}
		cost, err := entities.ParseCost(costText)
		if err != nil {
			return fmt.Errorf("component %d (%s): %w", i+1, record.ID, err)
		}

		component, err := entities.NewComponent(entities.ComponentID(record.ID), record.Description, cost, record.UnitOfMeasure)
		if err != nil {
			return fmt.Errorf("component %d (%s): %w", i+1, record.ID, err)
		}
		if err := repo.AddComponent(*component); err != nil {
			return fmt.Errorf("component %d (%s): %w", i+1, record.ID, err)
		}
	}

	for i, record := range dataset.Items {
		quantity, err := entities.ParseQuantity(record.Quantity)
		if err != nil {
			return fmt.Errorf("BOM item %d (%s -> %s): %w", i+1, record.ParentID, record.ChildID, err)
		}

		item, err := entities.NewBomItem(entities.ComponentID(record.ParentID), entities.ComponentID(record.ChildID), quantity, record.Sequence)
		if err != nil {
			return fmt.Errorf("BOM item %d (%s -> %s): %w", i+1, record.ParentID, record.ChildID, err)
		}
		if err := repo.AddItem(*item); err != nil {
			return fmt.Errorf("BOM item %d (%s -> %s): %w", i+1, record.ParentID, record.ChildID, err)
		}
	}

	return nil
}
