package catalog

import "fmt"

// ValidationError reports a missing or invalid required field on a
// submitted draft. The failed operation leaves the catalog unchanged.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports an operation targeting a recipe that does not
// exist in the catalog.
type NotFoundError struct {
	RecipeID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("recipe %d not found", e.RecipeID)
}

// AuthorizationError reports an actor attempting an operation they are
// not permitted to perform. Checked before any mutation happens.
type AuthorizationError struct {
	Reason string
}

func (e *AuthorizationError) Error() string {
	return e.Reason
}
