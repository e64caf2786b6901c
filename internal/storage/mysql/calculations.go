package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"quote-calc/internal/service/calculation"
	"quote-calc/internal/storage"
)

func (s *Storage) GetCalculations(ctx context.Context) ([]storage.CalculationHeader, error) {
	const op = "storage.mysql.GetCalculations"

	stmt := `SELECT id, name, client_id, JSON_LENGTH(tabs), updated_at
		FROM calculations ORDER BY updated_at DESC`

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	headers := []storage.CalculationHeader{}
	for rows.Next() {
		var (
			h        storage.CalculationHeader
			clientID sql.NullString
		)
		if err := rows.Scan(&h.ID, &h.Name, &clientID, &h.TabCount, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		if clientID.Valid {
			h.ClientID = &clientID.String
		}
		headers = append(headers, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return headers, nil
}

func (s *Storage) GetCalculation(ctx context.Context, id string) (*storage.Calculation, error) {
	const op = "storage.mysql.GetCalculation"

	var (
		c        storage.Calculation
		clientID sql.NullString
		tabsJSON []byte
	)

	stmt := `SELECT id, name, client_id, tabs, created_at, updated_at FROM calculations WHERE id = ?`

	err := s.db.QueryRowContext(ctx, stmt, id).Scan(&c.ID, &c.Name, &clientID, &tabsJSON, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: calculation %s: %w", op, id, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if clientID.Valid {
		c.ClientID = &clientID.String
	}

	if len(tabsJSON) > 0 {
		if err := json.Unmarshal(tabsJSON, &c.Tabs); err != nil {
			return nil, fmt.Errorf("%s: failed to unmarshal tabs: %w", op, err)
		}
	}
	if c.Tabs == nil {
		c.Tabs = []calculation.Tab{}
	}

	return &c, nil
}

func (s *Storage) CreateCalculation(ctx context.Context, c *storage.Calculation) error {
	const op = "storage.mysql.CreateCalculation"

	tabsJSON, err := marshalTabs(c.Tabs)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	stmt := `INSERT INTO calculations (id, name, client_id, tabs, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`

	_, err = s.db.ExecContext(ctx, stmt, c.ID, c.Name, c.ClientID, tabsJSON, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return execErr(op, err)
	}

	return nil
}

func (s *Storage) UpdateCalculation(ctx context.Context, c *storage.Calculation) error {
	const op = "storage.mysql.UpdateCalculation"

	tabsJSON, err := marshalTabs(c.Tabs)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	stmt := `UPDATE calculations SET name = ?, client_id = ?, tabs = ?, updated_at = ? WHERE id = ?`

	res, err := s.db.ExecContext(ctx, stmt, c.Name, c.ClientID, tabsJSON, c.UpdatedAt, c.ID)
	if err != nil {
		return execErr(op, err)
	}

	return affected(op, res)
}

func (s *Storage) DeleteCalculation(ctx context.Context, id string) error {
	const op = "storage.mysql.DeleteCalculation"

	res, err := s.db.ExecContext(ctx, "DELETE FROM calculations WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return affected(op, res)
}

func marshalTabs(tabs []calculation.Tab) ([]byte, error) {
	if tabs == nil {
		tabs = []calculation.Tab{}
	}
	b, err := json.Marshal(tabs)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tabs: %w", err)
	}
	return b, nil
}
