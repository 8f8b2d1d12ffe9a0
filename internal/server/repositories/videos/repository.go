// Package videos persists catalog entries in the "videos" collection.
package videos

import (
	"context"

	"github.com/mpetrenko/videostore/internal/server/models"
)

type Repository interface {
	// Create persists a new video and assigns its id.
	Create(ctx context.Context, video *models.Video) (*models.Video, error)

	// GetAll returns the whole catalog.
	GetAll(ctx context.Context) ([]models.Video, error)

	// GetByID returns the video with the given id, or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.Video, error)

	// Update overwrites the video with the given id, or returns
	// common.ErrorNotFound when it does not exist.
	Update(ctx context.Context, video *models.Video) (*models.Video, error)

	// Delete removes the video with the given id, or returns
	// common.ErrorNotFound when it does not exist.
	Delete(ctx context.Context, id string) error

	// GetByCategory returns videos in the given category ("movies"/"tvShows").
	GetByCategory(ctx context.Context, category string) ([]models.Video, error)

	// SearchByTitle returns videos whose title contains the given string,
	// case-insensitively.
	SearchByTitle(ctx context.Context, title string) ([]models.Video, error)

	// GetFeatured returns the featured videos of the given category.
	GetFeatured(ctx context.Context, category string) ([]models.Video, error)
}
