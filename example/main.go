package main

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"github.com/avelis/bom/pkg/application/services/calc"
	"github.com/avelis/bom/pkg/domain/entities"
	"github.com/avelis/bom/pkg/infrastructure/repositories/memory"
)

func main() {
	repo := memory.NewRepository(16, 16)
	engine, err := calc.NewEngine(repo, calc.Config{CacheSize: 64})
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}
	defer engine.Close()

	// Set up a simple rocket engine BOM
	setupRocketEngineBOM(engine)

	fmt.Println("🚀 Rocket engine BOM")

	// Explode: everything needed for 9 engines
	quantity := decimal.NewFromInt(9)
	explosion, err := engine.Explode("ROCKET_ENGINE", quantity)
	if err != nil {
		log.Fatalf("Explosion failed: %v", err)
	}

	fmt.Printf("\nExploding %s engines:\n", quantity)
	for _, item := range explosion.Items {
		fmt.Printf("  %-18s %10s (level %d)\n", item.ComponentID, item.TotalQuantity, item.Level)
	}

	// Cost rollup
	total, err := engine.TotalCost("ROCKET_ENGINE", quantity)
	if err != nil {
		log.Fatalf("Cost rollup failed: %v", err)
	}
	fmt.Printf("\nTotal cost for %s engines: $%s\n", quantity, total)

	// Where-used: what consumes turbopumps?
	parents, err := engine.WhereUsed("TURBOPUMP")
	if err != nil {
		log.Fatalf("Where-used failed: %v", err)
	}
	fmt.Printf("\nTURBOPUMP is used in: %v\n", parents)
}

func setupRocketEngineBOM(engine *calc.Engine) {
	components := []struct {
		id   string
		desc string
		cost string
	}{
		{"ROCKET_ENGINE", "Complete rocket engine", "12000"},
		{"TURBOPUMP", "Turbopump assembly", "45000"},
		{"COMBUSTION_CHAMBER", "Main combustion chamber", "30000"},
		{"NOZZLE", "Engine nozzle", "18000"},
		{"IMPELLER", "Turbopump impeller", "5500"},
		{"HOUSING", "Turbopump housing", "8200.50"},
	}
	for _, c := range components {
		component, err := entities.NewComponent(
			entities.ComponentID(c.id), c.desc, decimal.RequireFromString(c.cost), "EA")
		if err != nil {
			log.Fatalf("Failed to create component %s: %v", c.id, err)
		}
		if err := engine.AddComponent(*component); err != nil {
			log.Fatalf("Failed to add component %s: %v", c.id, err)
		}
	}

	lines := []struct {
		parent string
		child  string
		qty    string
	}{
		{"ROCKET_ENGINE", "TURBOPUMP", "2"},
		{"ROCKET_ENGINE", "COMBUSTION_CHAMBER", "1"},
		{"ROCKET_ENGINE", "NOZZLE", "1"},
		{"TURBOPUMP", "IMPELLER", "2"},
		{"TURBOPUMP", "HOUSING", "1"},
	}
	for _, l := range lines {
		if err := engine.AddLine(entities.ComponentID(l.parent), entities.ComponentID(l.child), l.qty); err != nil {
			log.Fatalf("Failed to add BOM line %s -> %s: %v", l.parent, l.child, err)
		}
	}
}
