package store

// SQL query constants organized by entity.
// All SQL lives here; PostgresStore methods reference these constants.

// Credential queries.
const (
	queryGetCredential = `
		SELECT access_token, refresh_token, expires_at, updated_at
		FROM credentials
		WHERE instance = $1`

	queryUpsertCredential = `
		INSERT INTO credentials (instance, access_token, refresh_token, expires_at, updated_at)
		VALUES (@instance, @access_token, @refresh_token, @expires_at, now())
		ON CONFLICT (instance) DO UPDATE SET
			access_token = EXCLUDED.access_token,
			refresh_token = EXCLUDED.refresh_token,
			expires_at = EXCLUDED.expires_at,
			updated_at = now()
		RETURNING updated_at`

	queryDeleteCredential = `DELETE FROM credentials WHERE instance = $1`
)

// Listing queries.
const (
	queryInsertListing = `
		INSERT INTO listings (instance, sku, offer_id, title, published, created_at)
		VALUES (@instance, @sku, @offer_id, @title, @published, @created_at)`

	queryGetLastListing = `
		SELECT sku, offer_id, title, published, created_at
		FROM listings
		WHERE instance = $1
		ORDER BY created_at DESC, id DESC
		LIMIT 1`
)
