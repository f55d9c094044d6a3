package database

// Menu queries
const (
	ListMenusSQL = `
		SELECT id, name, price, description
		FROM menus
		ORDER BY id ASC`

	GetMenuByIDSQL = `
		SELECT id, name, price, description
		FROM menus WHERE id = $1`

	CountMenusSQL = `
		SELECT COUNT(*) FROM menus`

	InsertMenuSQL = `
		INSERT INTO menus (name, price, description)
		VALUES ($1, $2, $3)`

	LockMenusTableSQL = `
		LOCK TABLE menus IN EXCLUSIVE MODE`
)

// Order queries
const (
	InsertOrderSQL = `
		INSERT INTO orders (user_name, menu_id, quantity, total_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id, ordered_at`

	ListOrderViewsSQL = `
		SELECT o.id, o.user_name, o.menu_id, COALESCE(m.name, 'unknown'),
			   o.quantity, o.total_price, o.ordered_at
		FROM orders o
		LEFT JOIN menus m ON m.id = o.menu_id
		ORDER BY o.ordered_at DESC, o.id DESC`
)
