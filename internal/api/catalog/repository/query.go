package catalogRepository

const (
	queryGetProductByID = `
		SELECT
			p.id, p.name, p.price, p.description, p.category_id,
			c.name AS category_name, p.is_sale, p.sale_price,
			p.created_at, p.updated_at
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.id = :id
	`

	queryGetProductByNameInsensitive = `
		SELECT
			p.id, p.name, p.price, p.description, p.category_id,
			c.name AS category_name, p.is_sale, p.sale_price,
			p.created_at, p.updated_at
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE LOWER(p.name) = LOWER(:name)
	`

	queryGetAllProducts = `
		SELECT
			p.id, p.name, p.price, p.description, p.category_id,
			c.name AS category_name, p.is_sale, p.sale_price,
			p.created_at, p.updated_at
		FROM products p
		JOIN categories c ON c.id = p.category_id
		ORDER BY p.created_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountAllProducts = `
		SELECT COUNT(*)
		FROM products
	`

	queryGetSaleProducts = `
		SELECT
			p.id, p.name, p.price, p.description, p.category_id,
			c.name AS category_name, p.is_sale, p.sale_price,
			p.created_at, p.updated_at
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.is_sale = true
		ORDER BY p.created_at DESC
	`

	queryGetProductsByCategoryName = `
		SELECT
			p.id, p.name, p.price, p.description, p.category_id,
			c.name AS category_name, p.is_sale, p.sale_price,
			p.created_at, p.updated_at
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE LOWER(c.name) = LOWER(:category_name)
		ORDER BY p.name
	`

	queryGetAllCategories = `
		SELECT id, name, created_at
		FROM categories
		ORDER BY name
	`

	queryGetCategoryByName = `
		SELECT id, name, created_at
		FROM categories
		WHERE LOWER(name) = LOWER(:name)
	`
)
