package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/azubair/partscan/internal/model"
)

// PartFilter narrows ListSpareParts results. Zero values mean "no filter".
type PartFilter struct {
	// CarModel filters by compatible vehicle model name,
	// case-insensitively (e.g. "camry" matches "Camry").
	CarModel string

	// MinPrice keeps parts priced at or above the bound.
	MinPrice *float64

	// MaxPrice keeps parts priced at or below the bound.
	MaxPrice *float64
}

// CreateCarModel stores a new car model and sets its ID.
// The (manufacturer, model, year) triple must be unique.
func (pdb *PartsDB) CreateCarModel(ctx context.Context, cm *model.CarModel) error {
	existing, err := pdb.findCarModel(ctx, cm.Manufacturer, cm.Model, cm.Year)
	if err != nil && !errors.Is(err, ErrCarModelNotFound) {
		return err
	}
	if existing != nil {
		return ErrDuplicateCarModel
	}

	res, err := pdb.db.ExecContext(ctx, `
		INSERT INTO car_models (manufacturer, model, year) VALUES (?, ?, ?)`,
		cm.Manufacturer, cm.Model, cm.Year)
	if err != nil {
		return fmt.Errorf("insert car model: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("car model insert id: %w", err)
	}
	cm.ID = id
	return nil
}

// ListCarModels returns every stored car model.
func (pdb *PartsDB) ListCarModels(ctx context.Context) ([]model.CarModel, error) {
	rows, err := pdb.db.QueryContext(ctx, `
		SELECT id, manufacturer, model, year FROM car_models ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query car models: %w", err)
	}
	defer rows.Close() //nolint:errcheck // Rows close error is not actionable

	models := make([]model.CarModel, 0)
	for rows.Next() {
		var cm model.CarModel
		if err := rows.Scan(&cm.ID, &cm.Manufacturer, &cm.Model, &cm.Year); err != nil {
			return nil, fmt.Errorf("scan car model: %w", err)
		}
		models = append(models, cm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate car models: %w", err)
	}
	return models, nil
}

// findCarModel resolves a (manufacturer, model, year) triple
// case-insensitively, matching the lookup the original inventory used.
func (pdb *PartsDB) findCarModel(ctx context.Context, manufacturer, modelName string, year int) (*model.CarModel, error) {
	var cm model.CarModel
	err := pdb.db.QueryRowContext(ctx, `
		SELECT id, manufacturer, model, year FROM car_models
		WHERE manufacturer = ? COLLATE NOCASE
		  AND model = ? COLLATE NOCASE
		  AND year = ?`,
		manufacturer, modelName, year).
		Scan(&cm.ID, &cm.Manufacturer, &cm.Model, &cm.Year)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCarModelNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find car model: %w", err)
	}
	return &cm, nil
}

// CreateSparePart stores a new spare part and sets its ID and timestamps.
// The referenced car model must already exist; parts never create car
// models implicitly. Availability is derived from quantity.
func (pdb *PartsDB) CreateSparePart(ctx context.Context, p *model.SparePart) error {
	cm, err := pdb.findCarModel(ctx, p.CarModel.Manufacturer, p.CarModel.Model, p.CarModel.Year)
	if err != nil {
		return err
	}
	p.CarModel = *cm

	var exists int
	err = pdb.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM spare_parts WHERE part_number = ?`, p.PartNumber).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check part number: %w", err)
	}
	if exists > 0 {
		return ErrDuplicatePartNumber
	}

	now := time.Now().UTC()
	p.AddedOn = now
	p.UpdatedOn = now
	p.RefreshAvailability()

	res, err := pdb.db.ExecContext(ctx, `
		INSERT INTO spare_parts (
			part_name, category, part_number, manufacturer, description,
			price, quantity, min_stock, car_model_id, supplier,
			added_on, updated_on, is_available
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.PartName, p.Category, p.PartNumber, p.Manufacturer, p.Description,
		p.Price, p.Quantity, p.MinStock, cm.ID, p.Supplier,
		p.AddedOn, p.UpdatedOn, p.IsAvailable)
	if err != nil {
		return fmt.Errorf("insert spare part: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("spare part insert id: %w", err)
	}
	p.ID = id
	return nil
}

// GetSparePart returns the spare part with the given ID.
func (pdb *PartsDB) GetSparePart(ctx context.Context, id int64) (*model.SparePart, error) {
	row := pdb.db.QueryRowContext(ctx, selectPartQuery+` WHERE p.id = ?`, id)
	p, err := scanPart(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPartNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get spare part: %w", err)
	}
	return p, nil
}

// ListSpareParts returns spare parts matching the filter, ordered by the
// time they were added.
//
// Both price bounds are applied independently: min_price is a lower bound
// and max_price an upper bound. (The system this reworks applied the
// lower bound twice, making max_price a no-op; that defect is fixed here.)
func (pdb *PartsDB) ListSpareParts(ctx context.Context, filter PartFilter) ([]model.SparePart, error) {
	query := selectPartQuery + ` WHERE 1=1`
	args := make([]any, 0, 3)

	if filter.CarModel != "" {
		query += ` AND c.model = ? COLLATE NOCASE`
		args = append(args, filter.CarModel)
	}
	if filter.MinPrice != nil {
		query += ` AND p.price >= ?`
		args = append(args, *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query += ` AND p.price <= ?`
		args = append(args, *filter.MaxPrice)
	}
	query += ` ORDER BY p.added_on, p.id`

	rows, err := pdb.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query spare parts: %w", err)
	}
	defer rows.Close() //nolint:errcheck // Rows close error is not actionable

	parts := make([]model.SparePart, 0)
	for rows.Next() {
		p, err := scanPart(rows)
		if err != nil {
			return nil, fmt.Errorf("scan spare part: %w", err)
		}
		parts = append(parts, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate spare parts: %w", err)
	}
	return parts, nil
}

// UpdateSparePart replaces the stored fields of the part with p.ID.
// The referenced car model must exist. UpdatedOn and availability are
// recomputed; AddedOn is preserved.
func (pdb *PartsDB) UpdateSparePart(ctx context.Context, p *model.SparePart) error {
	cm, err := pdb.findCarModel(ctx, p.CarModel.Manufacturer, p.CarModel.Model, p.CarModel.Year)
	if err != nil {
		return err
	}
	p.CarModel = *cm

	p.UpdatedOn = time.Now().UTC()
	p.RefreshAvailability()

	res, err := pdb.db.ExecContext(ctx, `
		UPDATE spare_parts SET
			part_name = ?, category = ?, part_number = ?, manufacturer = ?,
			description = ?, price = ?, quantity = ?, min_stock = ?,
			car_model_id = ?, supplier = ?, updated_on = ?, is_available = ?
		WHERE id = ?`,
		p.PartName, p.Category, p.PartNumber, p.Manufacturer,
		p.Description, p.Price, p.Quantity, p.MinStock,
		cm.ID, p.Supplier, p.UpdatedOn, p.IsAvailable,
		p.ID)
	if err != nil {
		return fmt.Errorf("update spare part: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update spare part rows: %w", err)
	}
	if n == 0 {
		return ErrPartNotFound
	}
	return nil
}

// DeleteSparePart removes the spare part with the given ID.
func (pdb *PartsDB) DeleteSparePart(ctx context.Context, id int64) error {
	res, err := pdb.db.ExecContext(ctx, `DELETE FROM spare_parts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete spare part: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete spare part rows: %w", err)
	}
	if n == 0 {
		return ErrPartNotFound
	}
	return nil
}

// selectPartQuery joins spare parts with their car model. Every read
// path goes through this so scanPart sees one column layout.
const selectPartQuery = `
	SELECT p.id, p.part_name, p.category, p.part_number, p.manufacturer,
	       p.description, p.price, p.quantity, p.min_stock, p.supplier,
	       p.added_on, p.updated_on, p.is_available,
	       c.id, c.manufacturer, c.model, c.year
	FROM spare_parts p
	JOIN car_models c ON c.id = p.car_model_id`

// rowScanner abstracts *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanPart reads one selectPartQuery row into a SparePart.
func scanPart(row rowScanner) (*model.SparePart, error) {
	var (
		p    model.SparePart
		desc sql.NullString
	)
	err := row.Scan(
		&p.ID, &p.PartName, &p.Category, &p.PartNumber, &p.Manufacturer,
		&desc, &p.Price, &p.Quantity, &p.MinStock, &p.Supplier,
		&p.AddedOn, &p.UpdatedOn, &p.IsAvailable,
		&p.CarModel.ID, &p.CarModel.Manufacturer, &p.CarModel.Model, &p.CarModel.Year,
	)
	if err != nil {
		return nil, err
	}
	p.Description = desc.String
	return &p, nil
}
