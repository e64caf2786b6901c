package mysql

import (
	"database/sql"
	"fmt"
	"os"
	"testing"

	"quote-calc/internal/migrations"
)

// testDB points at a disposable MySQL schema, e.g.
// QUOTE_TEST_DSN="root:@tcp(localhost:3306)/quote_test?parseTime=true&clientFoundRows=true"
var testDB *sql.DB

func TestMain(m *testing.M) {
	dsn := os.Getenv("QUOTE_TEST_DSN")
	if dsn == "" {
		os.Exit(m.Run())
	}

	var err error
	testDB, err = sql.Open("mysql", dsn)
	if err != nil {
		panic(fmt.Errorf("open test db: %w", err))
	}

	if err := testDB.Ping(); err != nil {
		panic(fmt.Errorf("ping failed: %w", err))
	}

	if err := migrations.Up(testDB); err != nil {
		panic(fmt.Errorf("migrate test db: %w", err))
	}

	code := m.Run()

	testDB.Close()
	os.Exit(code)
}

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	if testDB == nil {
		t.Skip("QUOTE_TEST_DSN is not set")
	}
	return &Storage{db: testDB}
}

func cleanup(t *testing.T, tables ...string) {
	t.Helper()
	t.Cleanup(func() {
		for _, table := range tables {
			testDB.Exec("DELETE FROM " + table)
		}
	})
}
