package repository

import (
	"context"
	"fmt"
	"time"

	"digital-menu/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// galleryRepository implements the GalleryRepository interface using PostgreSQL.
type galleryRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewGalleryRepository creates a new PostgreSQL-backed gallery repository.
func NewGalleryRepository(pool *pgxpool.Pool, logger zerolog.Logger) GalleryRepository {
	return &galleryRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "gallery").Logger(),
	}
}

// GetAll retrieves all gallery images, newest first.
func (r *galleryRepository) GetAll(ctx context.Context) ([]model.GalleryImage, error) {
	query := `
		SELECT id, url, created_at
		FROM gallery_images
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query gallery images")
		return nil, fmt.Errorf("failed to query gallery images: %w", err)
	}
	defer rows.Close()

	var images []model.GalleryImage
	for rows.Next() {
		var img model.GalleryImage
		if err := rows.Scan(&img.ID, &img.URL, &img.CreatedAt); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan gallery image row")
			return nil, fmt.Errorf("failed to scan gallery image: %w", err)
		}
		images = append(images, img)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating gallery image rows")
		return nil, fmt.Errorf("error iterating gallery images: %w", err)
	}

	return images, nil
}

// Add stores a new image URL and returns its ID.
func (r *galleryRepository) Add(ctx context.Context, url string) (string, error) {
	id := uuid.New().String()

	query := `
		INSERT INTO gallery_images (id, url, created_at)
		VALUES ($1, $2, $3)
	`

	if _, err := r.pool.Exec(ctx, query, id, url, time.Now()); err != nil {
		r.logger.Error().Err(err).Msg("failed to insert gallery image")
		return "", fmt.Errorf("failed to insert gallery image: %w", err)
	}

	r.logger.Info().Str("image_id", id).Msg("gallery image added")
	return id, nil
}

// Delete removes a gallery image.
func (r *galleryRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM gallery_images WHERE id = $1`, id); err != nil {
		r.logger.Error().Err(err).Str("image_id", id).Msg("failed to delete gallery image")
		return fmt.Errorf("failed to delete gallery image: %w", err)
	}

	r.logger.Info().Str("image_id", id).Msg("gallery image deleted")
	return nil
}
