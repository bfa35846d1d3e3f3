package repository

const (
	createVideoQuery = `INSERT INTO videos (user_id, organization_id, file_name, original_name, mime_type, file_size, storage_key, status, progress)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING *`
	getVideoByIDQuery = `SELECT video_id, user_id, organization_id, file_name, original_name, mime_type, file_size, storage_key,
					processed_key, thumbnail_key, status, progress, processing_error, duration, width, height, uploaded_at, updated_at
					FROM videos WHERE video_id = $1`
	getVideosByUserIDQuery = `SELECT video_id, user_id, organization_id, file_name, original_name, mime_type, file_size, storage_key,
					processed_key, thumbnail_key, status, progress, processing_error, duration, width, height, uploaded_at, updated_at
					FROM videos WHERE user_id = $1 AND ($2 = '' OR status::text = $2)
					ORDER BY uploaded_at DESC OFFSET $3 LIMIT $4`
	getTotalVideosByUserIDQuery = `SELECT COUNT(video_id) FROM videos WHERE user_id = $1 AND ($2 = '' OR status::text = $2)`
	getVideosBySearchQuery      = `SELECT video_id, user_id, organization_id, file_name, original_name, mime_type, file_size, storage_key,
					processed_key, thumbnail_key, status, progress, processing_error, duration, width, height, uploaded_at, updated_at
					FROM videos WHERE user_id = $1 AND original_name ILIKE '%' || $2 || '%' ORDER BY uploaded_at DESC OFFSET $3 LIMIT $4`
	getTotalVideosBySearchQuery = `SELECT COUNT(video_id) FROM videos WHERE user_id = $1 AND original_name ILIKE '%' || $2 || '%'`
	updateProcessingQuery       = `UPDATE videos
					SET status = COALESCE($1, status),
					    progress = COALESCE($2, progress),
					    processed_key = COALESCE($3, processed_key),
					    thumbnail_key = COALESCE($4, thumbnail_key),
					    processing_error = COALESCE($5, processing_error),
					    duration = COALESCE($6, duration),
					    width = COALESCE($7, width),
					    height = COALESCE($8, height),
					    updated_at = now()
					WHERE video_id = $9`
	deleteVideoQuery     = `DELETE FROM videos WHERE video_id = $1 AND user_id = $2`
	getStorageUsageQuery = `SELECT COALESCE(SUM(file_size), 0) FROM videos WHERE user_id = $1`
)
