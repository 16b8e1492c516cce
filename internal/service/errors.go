package service

import "errors"

// The three failure conditions surfaced to callers. Everything else in the
// pipeline is total: malformed filter criteria degrade to no-ops and an empty
// retrieval triggers fallback generation instead of failing.
var (
	// ErrNoIngredients is returned when a request carries no ingredients.
	ErrNoIngredients = errors.New("at least one ingredient is required")

	// ErrGenerationUnavailable is returned when the generative capability is
	// not configured, failed to initialize, or did not answer in time.
	ErrGenerationUnavailable = errors.New("recipe generation is unavailable")

	// ErrGenerationParse is returned when the generator's output does not
	// match the expected labeled-field template.
	ErrGenerationParse = errors.New("generated recipe did not match the expected format")
)
