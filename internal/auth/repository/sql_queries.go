package repository

const (
	createUserQuery = `INSERT INTO users (email, password, fullname, role, organization_id, is_active)
					VALUES ($1, $2, $3, $4, $5, $6) RETURNING *`
	getUserByEmailQuery = `SELECT user_id, email, password, fullname, role, organization_id, is_active, created_at, updated_at
					FROM users WHERE email = $1`
	getUserByIDQuery = `SELECT user_id, email, password, fullname, role, organization_id, is_active, created_at, updated_at
					FROM users WHERE user_id = $1`
	getOrganizationByNameQuery = `SELECT organization_id, name, max_video_size, created_at, updated_at
					FROM organizations WHERE name = $1`
	createOrganizationQuery = `INSERT INTO organizations (name) VALUES ($1)
					ON CONFLICT (name) DO UPDATE SET updated_at = now() RETURNING *`
	getStorageUsageQuery = `SELECT COALESCE(SUM(file_size), 0) FROM videos WHERE user_id = $1`
)
