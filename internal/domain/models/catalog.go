package models

// Article is a purchasable unit of an ingredient from a specific supplier,
// with its own price and pack size. Articles are owned by the purchasing
// catalog; the costing engine only reads them.
type Article struct {
	ID                  string   `bson:"_id" json:"id"`
	Name                string   `bson:"name" json:"name"`
	Supplier            string   `bson:"supplier,omitempty" json:"supplier,omitempty"`
	StockUnit           string   `bson:"stock_unit,omitempty" json:"stockUnit,omitempty"`
	PricePerStockUnit   *float64 `bson:"price_per_stock_unit,omitempty" json:"pricePerStockUnit,omitempty"`
	ContentPerStockUnit *float64 `bson:"content_per_stock_unit,omitempty" json:"contentPerStockUnit,omitempty"`
}

// Ingredient is a raw material used in recipes and products. The optional
// price/content pair acts as fallback pricing when none of the linked
// articles carries a usable price.
type Ingredient struct {
	ID                  string   `bson:"_id" json:"id"`
	Name                string   `bson:"name" json:"name"`
	Unit                string   `bson:"unit,omitempty" json:"unit,omitempty"`
	Vat                 *float64 `bson:"vat,omitempty" json:"vat,omitempty"`
	Articles            []string `bson:"articles,omitempty" json:"articles,omitempty"`
	PricePerStockUnit   *float64 `bson:"price_per_stock_unit,omitempty" json:"pricePerStockUnit,omitempty"`
	ContentPerStockUnit *float64 `bson:"content_per_stock_unit,omitempty" json:"contentPerStockUnit,omitempty"`
}

// RecipeLine is one composition entry of a recipe. Exactly one of
// IngredientID and SubRecipeID is expected to be set; lines referencing
// unknown ids are skipped by the rollup.
type RecipeLine struct {
	IngredientID string  `bson:"ingredient_id,omitempty" json:"ingredientId,omitempty"`
	SubRecipeID  string  `bson:"sub_recipe_id,omitempty" json:"subRecipeId,omitempty"`
	Quantity     float64 `bson:"quantity" json:"quantity"`
}

// Recipe describes a preparation yielding Content units of ContentUnit.
type Recipe struct {
	ID          string       `bson:"_id" json:"id"`
	Name        string       `bson:"name" json:"name"`
	Composition []RecipeLine `bson:"composition,omitempty" json:"composition,omitempty"`
	Content     *float64     `bson:"content,omitempty" json:"content,omitempty"`
	ContentUnit string       `bson:"content_unit,omitempty" json:"contentUnit,omitempty"`
}

// ProductLine is one ingredient entry of a product composition. Yield is the
// usable-fraction percentage in (0,100]; when absent it is treated as 100.
type ProductLine struct {
	IngredientID string   `bson:"ingredient_id" json:"ingredientId"`
	Quantity     float64  `bson:"quantity" json:"quantity"`
	Yield        *float64 `bson:"yield,omitempty" json:"yield,omitempty"`
}

// RecipeUsage links a product to a quantity taken from a recipe batch.
type RecipeUsage struct {
	RecipeID string  `bson:"recipe_id" json:"recipeId"`
	Quantity float64 `bson:"quantity" json:"quantity"`
}

// Product is a sellable menu item. Price is the VAT-inclusive sale price.
type Product struct {
	ID          string        `bson:"_id" json:"id"`
	Name        string        `bson:"name" json:"name"`
	Price       float64       `bson:"price" json:"price"`
	Vat         *float64      `bson:"vat,omitempty" json:"vat,omitempty"`
	Composition []ProductLine `bson:"composition,omitempty" json:"composition,omitempty"`
	Recipes     []RecipeUsage `bson:"recipes,omitempty" json:"recipes,omitempty"`
}
