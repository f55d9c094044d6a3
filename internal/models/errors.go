package models

import "fmt"

// ValidationError reports caller-supplied data that failed validation
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// MenuNotFoundError reports an order referencing a menu id that does not exist
type MenuNotFoundError struct {
	MenuID int
}

func (e MenuNotFoundError) Error() string {
	return fmt.Sprintf("menu id %d not found", e.MenuID)
}
