package models

// MenuItem represents a purchasable catalog entry
type MenuItem struct {
	ID          int     `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Price       int64   `json:"price" db:"price"`
	Description *string `json:"description" db:"description"`
}

// MenuItemDraft represents a catalog entry before it is persisted
type MenuItemDraft struct {
	Name        string
	Price       int64
	Description string
}

// DefaultCatalog returns the menu entries seeded on first run
func DefaultCatalog() []MenuItemDraft {
	return []MenuItemDraft{
		{Name: "Fried Chicken Bento", Price: 500, Description: "Packed with juicy fried chicken"},
		{Name: "Grilled Beef Bento", Price: 700, Description: "Grilled beef in our special sauce"},
		{Name: "Makunouchi Bento", Price: 600, Description: "A rich variety of side dishes"},
	}
}
