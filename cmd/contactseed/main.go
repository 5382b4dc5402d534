// contactseed bulk-imports contacts from a CSV export. Rows are upserted by
// email so the import can be re-run safely. The state column is optional;
// rows without one are left for the next update through the API to enrich.
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"contacts/pkg/config"
	"contacts/postgres"

	_ "github.com/lib/pq"
	"gorm.io/gorm"
)

func main() {
	var (
		csvPath string
		limit   int
	)

	flag.StringVar(&csvPath, "csv", "", "Path to contacts csv export")
	flag.IntVar(&limit, "limit", 0, "Limit number of rows to import (0 = all)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if csvPath == "" {
		slog.Error("missing -csv flag")
		os.Exit(1)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("load config failed", "error", err)
		os.Exit(1)
	}

	db, err := postgres.NewConnection(postgres.Options{
		DBName:   cfg.DB.Name,
		DBUser:   cfg.DB.User,
		Password: cfg.DB.Pass,
		Host:     cfg.DB.Host,
		Port:     fmt.Sprintf("%d", cfg.DB.Port),
		SSLMode:  cfg.DB.EnableSSL,
	})
	if err != nil {
		slog.Error("cannot open postgres connection", "error", err)
		os.Exit(1)
	}

	count, err := importContacts(context.Background(), db, csvPath, limit)
	if err != nil {
		slog.Error("import failed", "error", err)
		os.Exit(1)
	}

	slog.Info("import completed", "rows", count)
}

type columnIndex struct {
	firstName int
	lastName  int
	email     int
	phone     int
	state     int
}

func importContacts(ctx context.Context, db *gorm.DB, csvPath string, limit int) (int, error) {
	file, err := os.Open(csvPath)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	cols, err := parseContactCSVHeader(reader)
	if err != nil {
		return 0, err
	}

	stmt := `
INSERT INTO contacts (first_name, last_name, email, phone, state)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT (email) DO UPDATE SET
	first_name = EXCLUDED.first_name,
	last_name = EXCLUDED.last_name,
	phone = EXCLUDED.phone,
	state = EXCLUDED.state,
	updated_at = NOW()
`

	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return 0, tx.Error
	}

	count := 0
	for limit <= 0 || count < limit {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			_ = tx.Rollback()
			return count, err
		}
		firstName, lastName, email, phone, state, ok := parseContactRecord(record, cols)
		if !ok {
			continue
		}

		if err := tx.Exec(stmt, firstName, lastName, email, phone, state).Error; err != nil {
			_ = tx.Rollback()
			return count, err
		}

		count++
	}

	if err := tx.Commit().Error; err != nil {
		return count, err
	}

	return count, nil
}

func parseContactCSVHeader(reader *csv.Reader) (columnIndex, error) {
	header, err := reader.Read()
	if err != nil {
		return columnIndex{}, err
	}

	cols := columnIndex{firstName: -1, lastName: -1, email: -1, phone: -1, state: -1}
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "first_name":
			cols.firstName = i
		case "last_name":
			cols.lastName = i
		case "email":
			cols.email = i
		case "phone":
			cols.phone = i
		case "state":
			cols.state = i
		}
	}
	if cols.firstName == -1 || cols.lastName == -1 || cols.email == -1 || cols.phone == -1 {
		return columnIndex{}, errors.New("missing required columns in csv header")
	}

	return cols, nil
}

func parseContactRecord(record []string, cols columnIndex) (string, string, string, string, string, bool) {
	field := func(idx int) (string, bool) {
		if idx < 0 || idx >= len(record) {
			return "", false
		}
		return strings.TrimSpace(record[idx]), true
	}

	firstName, ok := field(cols.firstName)
	if !ok || firstName == "" {
		return "", "", "", "", "", false
	}
	lastName, ok := field(cols.lastName)
	if !ok || lastName == "" {
		return "", "", "", "", "", false
	}
	email, ok := field(cols.email)
	if !ok || email == "" {
		return "", "", "", "", "", false
	}
	phone, ok := field(cols.phone)
	if !ok || phone == "" {
		return "", "", "", "", "", false
	}
	state, _ := field(cols.state)

	return firstName, lastName, email, phone, state, true
}
