package entities

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    string
		wantErr bool
	}{
		{name: "integer", text: "10", want: "10"},
		{name: "fractional", text: "10.5", want: "10.5"},
		{name: "small fraction", text: "0.001", want: "0.001"},
		{name: "zero rejected", text: "0", wantErr: true},
		{name: "negative rejected", text: "-1", wantErr: true},
		{name: "not a number", text: "abc", wantErr: true},
		{name: "empty", text: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseQuantity(tt.text)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidQuantity) {
					t.Fatalf("Expected ErrInvalidQuantity for %q, got %v", tt.text, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Failed to parse %q: %v", tt.text, err)
			}
			if got.String() != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestParseCost(t *testing.T) {
	got, err := ParseCost("0")
	if err != nil {
		t.Fatalf("Expected zero cost to be accepted: %v", err)
	}
	if !got.IsZero() {
		t.Errorf("Expected 0, got %s", got)
	}

	if _, err := ParseCost("-0.01"); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("Expected ErrInvalidQuantity for negative cost, got %v", err)
	}
}

func TestDecimalExactness(t *testing.T) {
	// 0.1 * 0.1 repeated down a deep structure must stay exact, which
	// float64 arithmetic does not guarantee.
	qty, err := ParseQuantity("0.1")
	if err != nil {
		t.Fatalf("Failed to parse quantity: %v", err)
	}

	product := decimal.NewFromInt(1)
	for i := 0; i < 10; i++ {
		product = product.Mul(qty)
	}
	if product.String() != "0.0000000001" {
		t.Errorf("Expected exact 0.0000000001, got %s", product)
	}
}

func TestNewComponentValidation(t *testing.T) {
	if _, err := NewComponent("", "nameless", decimal.Zero, "EA"); err == nil {
		t.Error("Expected error for empty component ID")
	}
	if _, err := NewComponent("A", "negative", decimal.NewFromInt(-1), "EA"); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("Expected ErrInvalidQuantity for negative cost, got %v", err)
	}

	c, err := NewComponent("A", "ok", decimal.Zero, "")
	if err != nil {
		t.Fatalf("Failed to create component: %v", err)
	}
	if c.UnitOfMeasure != "EA" {
		t.Errorf("Expected default UOM EA, got %s", c.UnitOfMeasure)
	}
}

func TestNewBomItemValidation(t *testing.T) {
	if _, err := NewBomItem("A", "A", decimal.NewFromInt(1), 10); !errors.Is(err, ErrSelfReference) {
		t.Errorf("Expected ErrSelfReference, got %v", err)
	}
	if _, err := NewBomItem("A", "B", decimal.Zero, 10); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("Expected ErrInvalidQuantity, got %v", err)
	}

	item, err := NewBomItem("A", "B", decimal.NewFromInt(2), 0)
	if err != nil {
		t.Fatalf("Failed to create BOM item: %v", err)
	}
	if item.Sequence != 10 {
		t.Errorf("Expected default sequence 10, got %d", item.Sequence)
	}
	if item.ID == uuid.Nil {
		t.Error("Expected a generated line ID")
	}
}
