package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/lib/pq" // Используем pq для проверки кода ошибки
	"github.com/muzeyka/artsearch.git/internal/models"
)

// PostgresStorage реализует HistoryStorage с использованием PostgreSQL
type PostgresStorage struct {
	db *sql.DB
}

// NewPostgresStorage создает новый экземпляр PostgresStorage
func NewPostgresStorage(dsn string) (*PostgresStorage, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	// Проверка соединения
	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			log.Printf("Failed to close DB connection after ping error: %v", closeErr)
		}
		return nil, fmt.Errorf("database connection check error: %w", err)
	}

	// Создание таблицы search_history, если её ещё нет
	createTableSQL := `CREATE TABLE IF NOT EXISTS search_history (` +
		`uuid VARCHAR(36) PRIMARY KEY,` +
		`query TEXT NOT NULL,` +
		`records INTEGER NOT NULL DEFAULT 0,` +
		`created_at TIMESTAMPTZ NOT NULL DEFAULT now()` +
		`)`
	_, err = db.ExecContext(ctx, createTableSQL)
	if err != nil {
		if closeErr := db.Close(); closeErr != nil {
			log.Printf("Failed to close DB connection after table creation error: %v", closeErr)
		}
		return nil, fmt.Errorf("table creation error: %w", err)
	}

	return &PostgresStorage{
		db: db,
	}, nil
}

// Save сохраняет запись истории в PostgreSQL
func (ps *PostgresStorage) Save(ctx context.Context, record models.SearchRecord) error {
	_, err := ps.db.ExecContext(ctx,
		"INSERT INTO search_history (uuid, query, records, created_at) VALUES ($1, $2, $3, $4)",
		record.UUID, record.Query, record.Records, record.CreatedAt)
	if err != nil {
		// Проверяем, является ли ошибка нарушением уникальности от lib/pq
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" { // 23505 = unique_violation
			return ErrDuplicateRecord
		}
		return fmt.Errorf("save search record error: %w", err)
	}
	return nil
}

// List возвращает последние записи истории из PostgreSQL, новые первыми
func (ps *PostgresStorage) List(ctx context.Context, limit int) ([]models.SearchRecord, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := ps.db.QueryContext(ctx,
		"SELECT uuid, query, records, created_at FROM search_history ORDER BY created_at DESC LIMIT $1",
		limit)
	if err != nil {
		return nil, fmt.Errorf("list search records error: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Printf("Failed to close rows: %v", closeErr)
		}
	}()

	var result []models.SearchRecord
	for rows.Next() {
		var record models.SearchRecord
		if err := rows.Scan(&record.UUID, &record.Query, &record.Records, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan search record error: %w", err)
		}
		result = append(result, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// Close закрывает соединение с базой данных
func (ps *PostgresStorage) Close() error {
	return ps.db.Close()
}

// CheckConnection проверяет соединение с базой данных
func (ps *PostgresStorage) CheckConnection(ctx context.Context) error {
	return ps.db.PingContext(ctx)
}
