package repository

const (
	getUsersQuery = `SELECT user_id, email, fullname, role, organization_id, is_active, created_at, updated_at
					FROM users ORDER BY created_at DESC OFFSET $1 LIMIT $2`
	getTotalUsersQuery = `SELECT COUNT(user_id) FROM users`
	getUsersBySearchQuery = `SELECT user_id, email, fullname, role, organization_id, is_active, created_at, updated_at
					FROM users WHERE email ILIKE '%' || $1 || '%' OR fullname ILIKE '%' || $1 || '%'
					ORDER BY created_at DESC OFFSET $2 LIMIT $3`
	getTotalUsersBySearchQuery = `SELECT COUNT(user_id) FROM users
					WHERE email ILIKE '%' || $1 || '%' OR fullname ILIKE '%' || $1 || '%'`
	createUserQuery = `INSERT INTO users (email, password, fullname, role, organization_id, is_active)
					VALUES ($1, $2, $3, $4, $5, $6) RETURNING *`
	updateUserQuery = `UPDATE users
					SET fullname = COALESCE($1, fullname),
					    role = COALESCE($2, role),
					    is_active = COALESCE($3, is_active),
					    updated_at = now()
					WHERE user_id = $4
					RETURNING user_id, email, fullname, role, organization_id, is_active, created_at, updated_at`
	deleteUserQuery = `DELETE FROM users WHERE user_id = $1`
	getStatsQuery   = `SELECT
					COUNT(*) AS total_users,
					COUNT(*) FILTER (WHERE is_active) AS active_users,
					COUNT(*) FILTER (WHERE role = 'admin') AS admins,
					COUNT(*) FILTER (WHERE role = 'editor') AS editors,
					COUNT(*) FILTER (WHERE role = 'viewer') AS viewers,
					(SELECT COUNT(*) FROM videos) AS total_videos
					FROM users`
)
