package model

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	if err := validate.RegisterValidation("priority", validatePriority); err != nil {
		panic(fmt.Sprintf("failed to register priority validator: %v", err))
	}
	if err := validate.RegisterValidation("category", validateCategory); err != nil {
		panic(fmt.Sprintf("failed to register category validator: %v", err))
	}
}

func validatePriority(fl validator.FieldLevel) bool {
	p, ok := fl.Field().Interface().(Priority)
	return ok && p.IsValid()
}

func validateCategory(fl validator.FieldLevel) bool {
	c, ok := fl.Field().Interface().(Category)
	return ok && c.IsValid()
}

// ValidateUniqueIDs rejects a collection where two records share an id.
func ValidateUniqueIDs[T any](items []T, id func(T) string) error {
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		key := id(item)
		if seen[key] {
			return fmt.Errorf("model: duplicate id %q", key)
		}
		seen[key] = true
	}
	return nil
}
