package calc

import (
	"fmt"
	"sync"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/shopspring/decimal"

	"github.com/avelis/bom/pkg/domain/entities"
	"github.com/avelis/bom/pkg/domain/repositories"
	"github.com/avelis/bom/pkg/domain/services"
	"github.com/avelis/bom/pkg/infrastructure/cache"
)

// Config holds configuration for engine result caching.
type Config struct {
	// CacheSize limits the in-memory result cache per result kind
	// (0 disables caching entirely).
	CacheSize int
	// CacheDir, when set, adds a persistent Badger tier under this
	// directory.
	CacheDir string
}

// Engine is the single entry point for BOM computations: it owns one
// repository instance and serializes mutations against in-flight
// queries, so every query observes one consistent graph snapshot.
type Engine struct {
	mu        sync.RWMutex
	repo      repositories.Repository
	exploder  *Exploder
	coster    *Coster
	whereUsed *WhereUsedAnalyzer
	validator *services.BomValidator

	cacheDB        *badger.DB
	explosionCache *cache.Tiered[*ExplosionResult]
	unitCostCache  *cache.Tiered[decimal.Decimal]
}

// NewEngine creates an engine over a repository. Close must be called
// when the engine is no longer needed.
func NewEngine(repo repositories.Repository, config Config) (*Engine, error) {
	e := &Engine{
		repo:      repo,
		exploder:  NewExploder(repo),
		coster:    NewCoster(repo),
		whereUsed: NewWhereUsedAnalyzer(repo),
		validator: services.NewBomValidator(),
	}

	if config.CacheSize > 0 {
		var explosionTier *cache.Persistent[*ExplosionResult]
		var costTier *cache.Persistent[decimal.Decimal]
		if config.CacheDir != "" {
			db, err := cache.OpenDB(config.CacheDir)
			if err != nil {
				return nil, err
			}
			e.cacheDB = db
			explosionTier = cache.NewPersistent[*ExplosionResult](db, "explosion")
			costTier = cache.NewPersistent[decimal.Decimal](db, "unitcost")
		}

		explosionCache, err := cache.NewTiered[*ExplosionResult](config.CacheSize, explosionTier)
		if err != nil {
			return nil, err
		}
		unitCostCache, err := cache.NewTiered[decimal.Decimal](config.CacheSize, costTier)
		if err != nil {
			return nil, err
		}
		e.explosionCache = explosionCache
		e.unitCostCache = unitCostCache
	}

	return e, nil
}

// Close releases engine resources.
func (e *Engine) Close() error {
	if e.cacheDB != nil {
		return e.cacheDB.Close()
	}
	return nil
}

// AddComponent inserts or overwrites a component and invalidates any
// cached results computed from the prior graph.
func (e *Engine) AddComponent(component entities.Component) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.repo.AddComponent(component); err != nil {
		return err
	}
	e.purgeCaches()
	return nil
}

// AddItem inserts a usage edge and invalidates cached results.
func (e *Engine) AddItem(item entities.BomItem) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.repo.AddItem(item); err != nil {
		return err
	}
	e.purgeCaches()
	return nil
}

// AddLine is a convenience wrapper taking the quantity as decimal text.
func (e *Engine) AddLine(parentID, childID entities.ComponentID, quantityText string) error {
	quantity, err := entities.ParseQuantity(quantityText)
	if err != nil {
		return fmt.Errorf("line %s -> %s: %w", parentID, childID, err)
	}
	item, err := entities.NewBomItem(parentID, childID, quantity, 0)
	if err != nil {
		return err
	}
	return e.AddItem(*item)
}

func (e *Engine) purgeCaches() {
	if e.explosionCache != nil {
		e.explosionCache.Purge()
	}
	if e.unitCostCache != nil {
		e.unitCostCache.Purge()
	}
}

// GetComponent returns a component by ID.
func (e *Engine) GetComponent(id entities.ComponentID) (*entities.Component, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.repo.GetComponent(id)
}

// Explode computes the consolidated multi-level bill for quantity
// units of a root component.
func (e *Engine) Explode(rootID entities.ComponentID, quantity decimal.Decimal) (*ExplosionResult, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	key := string(rootID) + "|" + quantity.String()
	if e.explosionCache != nil {
		if result, ok := e.explosionCache.Get(key); ok {
			return result, nil
		}
	}

	result, err := e.exploder.Explode(rootID, quantity)
	if err != nil {
		return nil, err
	}
	if e.explosionCache != nil {
		e.explosionCache.Put(key, result)
	}
	return result, nil
}

// ExplodeSingleLevel expands only direct children.
func (e *Engine) ExplodeSingleLevel(rootID entities.ComponentID, quantity decimal.Decimal) ([]ExplosionItem, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.exploder.ExplodeSingleLevel(rootID, quantity)
}

// Flatten returns per-unit exploded quantities as a plain mapping.
func (e *Engine) Flatten(rootID entities.ComponentID) (map[entities.ComponentID]decimal.Decimal, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.exploder.Flatten(rootID)
}

// TotalCost computes the rolled-up cost of building quantity units of
// a component.
func (e *Engine) TotalCost(id entities.ComponentID, quantity decimal.Decimal) (decimal.Decimal, error) {
	if !quantity.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: requested quantity must be positive, got %s",
			entities.ErrInvalidQuantity, quantity)
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.unitCostCache != nil {
		if unit, ok := e.unitCostCache.Get(string(id)); ok {
			return quantity.Mul(unit), nil
		}
	}

	unit, err := e.coster.UnitCost(id)
	if err != nil {
		return decimal.Zero, err
	}
	if e.unitCostCache != nil {
		e.unitCostCache.Put(string(id), unit)
	}
	return quantity.Mul(unit), nil
}

// CostDrivers breaks a component's unit cost down by descendant.
func (e *Engine) CostDrivers(id entities.ComponentID) ([]CostDriver, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.coster.CostDrivers(id)
}

// WhereUsed returns the direct parents of a component.
func (e *Engine) WhereUsed(id entities.ComponentID) ([]entities.ComponentID, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.whereUsed.Direct(id)
}

// WhereUsedTransitive returns every ancestor of a component.
func (e *Engine) WhereUsedTransitive(id entities.ComponentID) ([]entities.ComponentID, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.whereUsed.Transitive(id)
}

// RootAssemblies returns the top-level assemblies using a component.
func (e *Engine) RootAssemblies(id entities.ComponentID) ([]entities.ComponentID, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.whereUsed.RootAssemblies(id)
}

// Validate lints the whole graph: cycles, duplicate pairs, edges
// naming unregistered components.
func (e *Engine) Validate() *services.ValidationResult {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.validator.Validate(e.repo.Components(), e.repo.AllItems())
}
