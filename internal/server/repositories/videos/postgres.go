package videos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mpetrenko/videostore/internal/common"
	"github.com/mpetrenko/videostore/internal/server/models"
)

const videoColumns = `id, title, genre, category, year, description, phrase,
	card_image, large_poster, rent_price, buy_price, featured`

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, video *models.Video) (*models.Video, error) {

	query :=
		`INSERT INTO videos (id, title, genre, category, year, description, phrase,
		     card_image, large_poster, rent_price, buy_price, featured)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 `

	video.ID = uuid.NewString()

	_, err := r.db.ExecContext(ctx, query,
		video.ID, video.Title, video.Genre, video.Category, video.Year,
		video.Description, video.Phrase, video.CardImage, video.LargePoster,
		video.RentPrice, video.BuyPrice, video.Featured)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return video, nil
}

func (r *PostgresRepository) GetAll(ctx context.Context) ([]models.Video, error) {
	return r.getMany(ctx, `SELECT `+videoColumns+` FROM videos ORDER BY title`)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Video, error) {

	video := &models.Video{}
	err := r.db.QueryRowContext(ctx, `SELECT `+videoColumns+` FROM videos WHERE id = $1`, id).
		Scan(&video.ID, &video.Title, &video.Genre, &video.Category, &video.Year,
			&video.Description, &video.Phrase, &video.CardImage, &video.LargePoster,
			&video.RentPrice, &video.BuyPrice, &video.Featured)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return video, nil
}

func (r *PostgresRepository) Update(ctx context.Context, video *models.Video) (*models.Video, error) {

	query :=
		`UPDATE videos SET title = $2, genre = $3, category = $4, year = $5,
		     description = $6, phrase = $7, card_image = $8, large_poster = $9,
		     rent_price = $10, buy_price = $11, featured = $12
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query,
		video.ID, video.Title, video.Genre, video.Category, video.Year,
		video.Description, video.Phrase, video.CardImage, video.LargePoster,
		video.RentPrice, video.BuyPrice, video.Featured)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("error checking affected rows: %v", err)
	}
	if affected == 0 {
		return nil, common.ErrorNotFound
	}

	return video, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {

	res, err := r.db.ExecContext(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking affected rows: %v", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) GetByCategory(ctx context.Context, category string) ([]models.Video, error) {
	return r.getMany(ctx,
		`SELECT `+videoColumns+` FROM videos WHERE category = $1 ORDER BY title`, category)
}

func (r *PostgresRepository) SearchByTitle(ctx context.Context, title string) ([]models.Video, error) {
	return r.getMany(ctx,
		`SELECT `+videoColumns+` FROM videos WHERE title ILIKE '%' || $1 || '%' ORDER BY title`, title)
}

func (r *PostgresRepository) GetFeatured(ctx context.Context, category string) ([]models.Video, error) {
	return r.getMany(ctx,
		`SELECT `+videoColumns+` FROM videos WHERE category = $1 AND featured ORDER BY title`, category)
}

func (r *PostgresRepository) getMany(ctx context.Context, query string, args ...any) ([]models.Video, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	defer rows.Close()

	result := []models.Video{}
	for rows.Next() {
		var v models.Video
		err := rows.Scan(&v.ID, &v.Title, &v.Genre, &v.Category, &v.Year,
			&v.Description, &v.Phrase, &v.CardImage, &v.LargePoster,
			&v.RentPrice, &v.BuyPrice, &v.Featured)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %v", err)
		}
		result = append(result, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %v", err)
	}

	return result, nil
}
