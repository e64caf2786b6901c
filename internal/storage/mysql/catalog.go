package mysql

import (
	"context"
	"fmt"

	"quote-calc/internal/service/calculation"
)

func (s *Storage) GetMaterials(ctx context.Context) ([]calculation.Material, error) {
	const op = "storage.mysql.GetMaterials"

	stmt := `SELECT id, name, price_per_kg, price_per_m2, density, surface_weight, thickness
		FROM materials ORDER BY name`

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	materials := []calculation.Material{}
	for rows.Next() {
		var m calculation.Material
		err := rows.Scan(&m.ID, &m.Name, &m.PricePerKg, &m.PricePerM2, &m.Density, &m.SurfaceWeight, &m.Thickness)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		materials = append(materials, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return materials, nil
}

func (s *Storage) CreateMaterial(ctx context.Context, m calculation.Material) error {
	const op = "storage.mysql.CreateMaterial"

	stmt := `INSERT INTO materials (id, name, price_per_kg, price_per_m2, density, surface_weight, thickness)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, stmt, m.ID, m.Name, m.PricePerKg, m.PricePerM2, m.Density, m.SurfaceWeight, m.Thickness)
	if err != nil {
		return execErr(op, err)
	}

	return nil
}

func (s *Storage) UpdateMaterial(ctx context.Context, m calculation.Material) error {
	const op = "storage.mysql.UpdateMaterial"

	stmt := `UPDATE materials SET name = ?, price_per_kg = ?, price_per_m2 = ?, density = ?, surface_weight = ?, thickness = ?
		WHERE id = ?`

	res, err := s.db.ExecContext(ctx, stmt, m.Name, m.PricePerKg, m.PricePerM2, m.Density, m.SurfaceWeight, m.Thickness, m.ID)
	if err != nil {
		return execErr(op, err)
	}

	return affected(op, res)
}

func (s *Storage) DeleteMaterial(ctx context.Context, id string) error {
	const op = "storage.mysql.DeleteMaterial"

	res, err := s.db.ExecContext(ctx, "DELETE FROM materials WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return affected(op, res)
}

func (s *Storage) GetPackagingCompositions(ctx context.Context) ([]calculation.PackagingComposition, error) {
	const op = "storage.mysql.GetPackagingCompositions"

	stmt := `SELECT id, name, packages_per_pallet, pallets_per_space, composition_cost
		FROM packaging_compositions ORDER BY name`

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	compositions := []calculation.PackagingComposition{}
	for rows.Next() {
		var c calculation.PackagingComposition
		if err := rows.Scan(&c.ID, &c.Name, &c.PackagesPerPallet, &c.PalletsPerSpace, &c.CompositionCost); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		compositions = append(compositions, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return compositions, nil
}

func (s *Storage) CreatePackagingComposition(ctx context.Context, c calculation.PackagingComposition) error {
	const op = "storage.mysql.CreatePackagingComposition"

	stmt := `INSERT INTO packaging_compositions (id, name, packages_per_pallet, pallets_per_space, composition_cost)
		VALUES (?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, stmt, c.ID, c.Name, c.PackagesPerPallet, c.PalletsPerSpace, c.CompositionCost)
	if err != nil {
		return execErr(op, err)
	}

	return nil
}

func (s *Storage) UpdatePackagingComposition(ctx context.Context, c calculation.PackagingComposition) error {
	const op = "storage.mysql.UpdatePackagingComposition"

	stmt := `UPDATE packaging_compositions SET name = ?, packages_per_pallet = ?, pallets_per_space = ?, composition_cost = ?
		WHERE id = ?`

	res, err := s.db.ExecContext(ctx, stmt, c.Name, c.PackagesPerPallet, c.PalletsPerSpace, c.CompositionCost, c.ID)
	if err != nil {
		return execErr(op, err)
	}

	return affected(op, res)
}

func (s *Storage) DeletePackagingComposition(ctx context.Context, id string) error {
	const op = "storage.mysql.DeletePackagingComposition"

	res, err := s.db.ExecContext(ctx, "DELETE FROM packaging_compositions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return affected(op, res)
}
