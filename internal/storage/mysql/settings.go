package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"quote-calc/internal/storage"
)

const settingsRow = 1

func (s *Storage) GetSettings(ctx context.Context) (*storage.Settings, error) {
	const op = "storage.mysql.GetSettings"

	st := &storage.Settings{}
	err := s.db.QueryRowContext(ctx, "SELECT sga FROM settings WHERE id = ?", settingsRow).Scan(&st.SGA)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return st, nil
}

func (s *Storage) UpdateSettings(ctx context.Context, st storage.Settings) error {
	const op = "storage.mysql.UpdateSettings"

	stmt := `INSERT INTO settings (id, sga) VALUES (?, ?) ON DUPLICATE KEY UPDATE sga = VALUES(sga)`

	if _, err := s.db.ExecContext(ctx, stmt, settingsRow, st.SGA); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
