package types

import "github.com/shopspring/decimal"

// RegisterRequest is the payload for user registration.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=5"`
	Name     string `json:"name"`
}

// TokenRequest is the payload for obtaining an auth token.
type TokenRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest is the payload for PATCH/PUT on the caller's profile.
type UpdateUserRequest struct {
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=5"`
	Name     *string `json:"name"`
}

// CreateRecipeRequest is the payload for recipe creation and full updates.
// A user_id field in the payload is deliberately absent here: ownership comes
// from the auth token and any supplied value is discarded during binding.
type CreateRecipeRequest struct {
	Title         string          `json:"title" binding:"required"`
	TimeMinutes   int             `json:"time_minutes" binding:"min=0"`
	Price         decimal.Decimal `json:"price"`
	Description   string          `json:"description"`
	Link          string          `json:"link" binding:"omitempty,url"`
	TagIDs        []uint          `json:"tag_ids"`
	IngredientIDs []uint          `json:"ingredient_ids"`
}

// UpdateRecipeRequest is the payload for partial updates. Nil fields were not
// submitted and must leave the stored value untouched.
type UpdateRecipeRequest struct {
	Title         *string          `json:"title"`
	TimeMinutes   *int             `json:"time_minutes" binding:"omitempty,min=0"`
	Price         *decimal.Decimal `json:"price"`
	Description   *string          `json:"description"`
	Link          *string          `json:"link" binding:"omitempty,url"`
	TagIDs        *[]uint          `json:"tag_ids"`
	IngredientIDs *[]uint          `json:"ingredient_ids"`
}

// NameRequest is the payload for tag and ingredient creation and updates.
type NameRequest struct {
	Name string `json:"name" binding:"required"`
}
