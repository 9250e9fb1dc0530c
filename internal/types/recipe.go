package types

import (
	"github.com/shopspring/decimal"

	"github.com/plateful/recipebook-backend/internal/models"
)

// RecipeSummary is the list/create response shape: identifying fields only.
type RecipeSummary struct {
	ID            uint            `json:"id"`
	Title         string          `json:"title"`
	TimeMinutes   int             `json:"time_minutes"`
	Price         decimal.Decimal `json:"price"`
	Link          string          `json:"link"`
	TagIDs        []uint          `json:"tag_ids"`
	IngredientIDs []uint          `json:"ingredient_ids"`
}

// RecipeDetail is the single-record response shape: the summary fields plus
// the long-form ones.
type RecipeDetail struct {
	RecipeSummary
	Description string `json:"description"`
	Image       string `json:"image"`
}

// NewRecipeSummary renders a recipe in its summary shape.
func NewRecipeSummary(r *models.Recipe) RecipeSummary {
	tagIDs := make([]uint, 0, len(r.Tags))
	for _, t := range r.Tags {
		tagIDs = append(tagIDs, t.ID)
	}
	ingredientIDs := make([]uint, 0, len(r.Ingredients))
	for _, i := range r.Ingredients {
		ingredientIDs = append(ingredientIDs, i.ID)
	}

	return RecipeSummary{
		ID:            r.ID,
		Title:         r.Title,
		TimeMinutes:   r.TimeMinutes,
		Price:         r.Price,
		Link:          r.Link,
		TagIDs:        tagIDs,
		IngredientIDs: ingredientIDs,
	}
}

// NewRecipeSummaries renders a slice of recipes in their summary shape.
func NewRecipeSummaries(recipes []models.Recipe) []RecipeSummary {
	out := make([]RecipeSummary, 0, len(recipes))
	for i := range recipes {
		out = append(out, NewRecipeSummary(&recipes[i]))
	}
	return out
}

// TagSummary is the tag response shape: id and name only.
type TagSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func NewTagSummary(t *models.Tag) TagSummary {
	return TagSummary{ID: t.ID, Name: t.Name}
}

func NewTagSummaries(tags []models.Tag) []TagSummary {
	out := make([]TagSummary, 0, len(tags))
	for i := range tags {
		out = append(out, NewTagSummary(&tags[i]))
	}
	return out
}

// IngredientSummary is the ingredient response shape: id and name only.
type IngredientSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func NewIngredientSummary(i *models.Ingredient) IngredientSummary {
	return IngredientSummary{ID: i.ID, Name: i.Name}
}

func NewIngredientSummaries(ingredients []models.Ingredient) []IngredientSummary {
	out := make([]IngredientSummary, 0, len(ingredients))
	for i := range ingredients {
		out = append(out, NewIngredientSummary(&ingredients[i]))
	}
	return out
}

// NewRecipeDetail renders a recipe in its detail shape. imageURL is the
// client-fetchable rendering of the stored image path.
func NewRecipeDetail(r *models.Recipe, imageURL string) RecipeDetail {
	return RecipeDetail{
		RecipeSummary: NewRecipeSummary(r),
		Description:   r.Description,
		Image:         imageURL,
	}
}
