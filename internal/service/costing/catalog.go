// Package costing implements the bill-of-materials cost rollup: article
// price resolution, ingredient line costs with yield normalization, recipe
// batch costs, and the product-level food-cost calculation. All functions
// are pure computations over an immutable catalog snapshot; the only error
// the engine can produce is a composition cycle.
package costing

import (
	"errors"

	"github.com/SmekensRuben/RevenuePilot-sub001/internal/domain/models"
)

// Defaults applied when a record omits or carries an unusable value.
const (
	// DefaultVatPct applies when neither the product nor any of its
	// ingredients declares a VAT rate.
	DefaultVatPct = 6.0
	// DefaultYieldPct applies when a composition line omits its yield or
	// the stored value is non-positive.
	DefaultYieldPct = 100.0
)

// ErrCompositionCycle is returned when a recipe reaches itself through its
// own sub-recipe lines. The rollup refuses to recurse unboundedly.
var ErrCompositionCycle = errors.New("composition cycle detected")

// Catalog is the snapshot of purchasing and recipe data one calculation
// runs against. The engine never mutates it; callers may share a catalog
// across concurrent calculations.
type Catalog struct {
	Articles    map[string]models.Article
	Ingredients map[string]models.Ingredient
	Recipes     map[string]models.Recipe
}

// NewCatalog indexes the given collections by id.
func NewCatalog(articles []models.Article, ingredients []models.Ingredient, recipes []models.Recipe) Catalog {
	cat := Catalog{
		Articles:    make(map[string]models.Article, len(articles)),
		Ingredients: make(map[string]models.Ingredient, len(ingredients)),
		Recipes:     make(map[string]models.Recipe, len(recipes)),
	}
	for _, a := range articles {
		cat.Articles[a.ID] = a
	}
	for _, i := range ingredients {
		cat.Ingredients[i.ID] = i
	}
	for _, r := range recipes {
		cat.Recipes[r.ID] = r
	}
	return cat
}

// warnings collects data-quality findings during a calculation. Entries are
// deduplicated so a product using the same unpriced ingredient on several
// lines reports it once.
type warnings struct {
	list []models.Warning
	seen map[models.Warning]struct{}
}

func (w *warnings) add(kind models.WarningKind, id string) {
	entry := models.Warning{Kind: kind, ID: id}
	if w.seen == nil {
		w.seen = make(map[models.Warning]struct{})
	}
	if _, dup := w.seen[entry]; dup {
		return
	}
	w.seen[entry] = struct{}{}
	w.list = append(w.list, entry)
}
