package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"quote-calc/internal/storage"
)

func (s *Storage) GetClients(ctx context.Context) ([]storage.Client, error) {
	const op = "storage.mysql.GetClients"

	rows, err := s.db.QueryContext(ctx, "SELECT id, name, email, phone, notes FROM clients ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	clients := []storage.Client{}
	for rows.Next() {
		var c storage.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Notes); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		clients = append(clients, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return clients, nil
}

func (s *Storage) GetClient(ctx context.Context, id string) (*storage.Client, error) {
	const op = "storage.mysql.GetClient"

	c := &storage.Client{}
	err := s.db.QueryRowContext(ctx, "SELECT id, name, email, phone, notes FROM clients WHERE id = ?", id).
		Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Notes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: client %s: %w", op, id, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return c, nil
}

func (s *Storage) CreateClient(ctx context.Context, c storage.Client) error {
	const op = "storage.mysql.CreateClient"

	_, err := s.db.ExecContext(ctx, "INSERT INTO clients (id, name, email, phone, notes) VALUES (?, ?, ?, ?, ?)",
		c.ID, c.Name, c.Email, c.Phone, c.Notes)
	if err != nil {
		return execErr(op, err)
	}

	return nil
}

func (s *Storage) UpdateClient(ctx context.Context, c storage.Client) error {
	const op = "storage.mysql.UpdateClient"

	res, err := s.db.ExecContext(ctx, "UPDATE clients SET name = ?, email = ?, phone = ?, notes = ? WHERE id = ?",
		c.Name, c.Email, c.Phone, c.Notes, c.ID)
	if err != nil {
		return execErr(op, err)
	}

	return affected(op, res)
}

func (s *Storage) DeleteClient(ctx context.Context, id string) error {
	const op = "storage.mysql.DeleteClient"

	res, err := s.db.ExecContext(ctx, "DELETE FROM clients WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return affected(op, res)
}
