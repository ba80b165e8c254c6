package store

// Listing queries.
const (
	queryInsertListing = `
		INSERT INTO listings (
			id, name, category, price, location,
			image, description, date, email, created_at
		) VALUES (
			@id, @name, @category, @price, @location,
			@image, @description, @date, @email, @created_at
		)
		ON CONFLICT (id) DO NOTHING`

	queryGetListing = baseListingsSelect + `
		WHERE id = $1`

	queryListListingsByOwner = baseListingsSelect + `
		WHERE email = $1
		ORDER BY seq ASC`

	queryListCategories = `
		SELECT category
		FROM listings
		WHERE category <> ''
		GROUP BY category
		ORDER BY MIN(seq)`

	queryUpdateListing = `
		UPDATE listings SET
			name        = COALESCE(@name, name),
			category    = COALESCE(@category, category),
			price       = COALESCE(@price, price),
			location    = COALESCE(@location, location),
			image       = COALESCE(@image, image),
			description = COALESCE(@description, description),
			date        = COALESCE(@date, date)
		WHERE id = @id`

	queryDeleteListing = `DELETE FROM listings WHERE id = $1`

	queryCountListings = `SELECT COUNT(*) FROM listings`
)

// Order queries.
const (
	queryInsertOrder = `
		INSERT INTO orders (
			id, buyer_name, email, product_id, product_name, category,
			quantity, price, total, address, date, phone, notes, status, created_at
		) VALUES (
			@id, @buyer_name, @email, @product_id, @product_name, @category,
			@quantity, @price, @total, @address, @date, @phone, @notes, @status, @created_at
		)
		ON CONFLICT (id) DO NOTHING`

	queryListOrders = `
		SELECT id, buyer_name, email, product_id, product_name, category,
			quantity, price, total::float8, address, date, phone, notes, status, created_at
		FROM orders
		WHERE email = $1
		ORDER BY seq ASC`

	queryCountOrders = `SELECT COUNT(*) FROM orders`
)
