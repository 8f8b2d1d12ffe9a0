package customers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mpetrenko/videostore/internal/common"
	"github.com/mpetrenko/videostore/internal/server/models"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, customer *models.Customer) (*models.Customer, error) {

	query :=
		`INSERT INTO customers (id, first_name, last_name, email)
		 VALUES ($1, $2, $3, $4)
		 `

	customer.ID = uuid.NewString()

	_, err := r.db.ExecContext(ctx, query,
		customer.ID, customer.FirstName, customer.LastName, customer.Email)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, &common.DuplicateEmailError{Msg: "a customer with this email already exists"}
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return customer, nil
}

func (r *PostgresRepository) GetAll(ctx context.Context) ([]models.Customer, error) {
	query :=
		`SELECT id, first_name, last_name, email FROM customers
		 ORDER BY last_name, first_name
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	defer rows.Close()

	result := []models.Customer{}
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email); err != nil {
			return nil, fmt.Errorf("error scanning row: %v", err)
		}
		result = append(result, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %v", err)
	}

	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	return r.getOne(ctx,
		`SELECT id, first_name, last_name, email FROM customers
		 WHERE id = $1
		 `, id)
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.Customer, error) {
	return r.getOne(ctx,
		`SELECT id, first_name, last_name, email FROM customers
		 WHERE email = $1
		 `, email)
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, arg any) (*models.Customer, error) {
	customer := &models.Customer{}
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&customer.ID, &customer.FirstName, &customer.LastName, &customer.Email)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return customer, nil
}

func (r *PostgresRepository) Update(ctx context.Context, customer *models.Customer) (*models.Customer, error) {

	query :=
		`UPDATE customers SET first_name = $2, last_name = $3, email = $4
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query,
		customer.ID, customer.FirstName, customer.LastName, customer.Email)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, &common.DuplicateEmailError{Msg: "a customer with this email already exists"}
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("error checking affected rows: %v", err)
	}
	if affected == 0 {
		return nil, common.ErrorNotFound
	}

	return customer, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {

	res, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
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

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "23505" // unique_violation
}
