package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/anglerlog/anglerlog/internal/domain"
)

// GearRepo defines the persistence operations for gear items.
type GearRepo interface {
	Create(ctx context.Context, item domain.GearItem) (domain.GearItem, error)

	// GetByID returns domain.ErrNotFound if no item with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.GearItem, error)

	// List returns all gear items ordered by purchase_date descending.
	List(ctx context.Context) ([]domain.GearItem, error)

	Update(ctx context.Context, item domain.GearItem) (domain.GearItem, error)

	// Delete returns domain.ErrNotFound if the item does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

const gearColumns = `id, name, price, purchase_date, photo, created_at, updated_at`

type pgGearRepo struct {
	db db
}

// NewGearRepo constructs a GearRepo backed by the provided db connection.
func NewGearRepo(db db) GearRepo {
	return &pgGearRepo{db: db}
}

func (r *pgGearRepo) Create(ctx context.Context, item domain.GearItem) (domain.GearItem, error) {
	const q = `
		INSERT INTO gear_items (name, price, purchase_date, photo)
		VALUES (@name, @price, @purchase_date, @photo)
		RETURNING ` + gearColumns

	row := r.db.QueryRow(ctx, q, gearArgs(item))
	result, err := scanGear(row)
	if err != nil {
		return domain.GearItem{}, fmt.Errorf("repo.GearRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgGearRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.GearItem, error) {
	const q = `SELECT ` + gearColumns + ` FROM gear_items WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanGear(row)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.GearItem{}, fmt.Errorf("repo.GearRepo.GetByID: %w", err)
		}
		return domain.GearItem{}, fmt.Errorf("repo.GearRepo.GetByID: %w: %v", domain.ErrFetchFailed, err)
	}
	return result, nil
}

func (r *pgGearRepo) List(ctx context.Context) ([]domain.GearItem, error) {
	const q = `SELECT ` + gearColumns + ` FROM gear_items ORDER BY purchase_date DESC, created_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.GearRepo.List: %w: %v", domain.ErrFetchFailed, err)
	}
	defer rows.Close()

	var items []domain.GearItem
	for rows.Next() {
		g, err := scanGear(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.GearRepo.List: scan: %w: %v", domain.ErrFetchFailed, err)
		}
		items = append(items, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.GearRepo.List: rows: %w: %v", domain.ErrFetchFailed, err)
	}

	return items, nil
}

func (r *pgGearRepo) Update(ctx context.Context, item domain.GearItem) (domain.GearItem, error) {
	const q = `
		UPDATE gear_items
		SET name          = @name,
		    price         = @price,
		    purchase_date = @purchase_date,
		    photo         = @photo,
		    updated_at    = now()
		WHERE id = @id
		RETURNING ` + gearColumns

	args := gearArgs(item)
	args["id"] = item.ID

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanGear(row)
	if err != nil {
		return domain.GearItem{}, fmt.Errorf("repo.GearRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgGearRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM gear_items WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.GearRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.GearRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func gearArgs(g domain.GearItem) pgx.NamedArgs {
	return pgx.NamedArgs{
		"name":          g.Name,
		"price":         g.Price,
		"purchase_date": g.PurchaseDate,
		"photo":         g.Photo,
	}
}

// scanGear maps a single database row into a domain.GearItem.
func scanGear(s scanner) (domain.GearItem, error) {
	var (
		g  domain.GearItem
		id pgtype.UUID
	)

	err := s.Scan(&id, &g.Name, &g.Price, &g.PurchaseDate, &g.Photo, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.GearItem{}, domain.ErrNotFound
		}
		return domain.GearItem{}, err
	}

	g.ID = uuid.UUID(id.Bytes)
	return g, nil
}
