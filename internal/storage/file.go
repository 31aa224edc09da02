package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/muzeyka/artsearch.git/internal/models"
	"go.uber.org/zap"
)

// FileStorage реализует HistoryStorage с использованием файла.
// Записи хранятся в формате JSON-строк, по одной записи на строку.
type FileStorage struct {
	filePath string
	records  []models.SearchRecord
	index    map[string]struct{}
	mutex    sync.RWMutex
	file     *os.File
	logger   *zap.Logger
}

// NewFileStorage создает новый экземпляр FileStorage
func NewFileStorage(filePath string, logger *zap.Logger) (*FileStorage, error) {
	file, err := os.OpenFile(filePath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}

	fs := &FileStorage{
		filePath: filePath,
		file:     file,
		records:  make([]models.SearchRecord, 0),
		index:    make(map[string]struct{}),
		logger:   logger,
	}

	// Загружаем существующие данные из файла
	if err := fs.loadFromFile(); err != nil {
		logger.Error("Error loading data from file", zap.Error(err))
		// Не возвращаем ошибку, так как файл может быть пустым
	}

	return fs, nil
}

// loadFromFile загружает записи истории из файла
func (fs *FileStorage) loadFromFile() error {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	if _, err := fs.file.Seek(0, 0); err != nil {
		return fmt.Errorf("error seeking to file start: %w", err)
	}

	decoder := json.NewDecoder(fs.file)
	for decoder.More() {
		var record models.SearchRecord
		if err := decoder.Decode(&record); err != nil {
			return fmt.Errorf("error decoding record: %w", err)
		}
		fs.records = append(fs.records, record)
		fs.index[record.UUID] = struct{}{}
	}

	return nil
}

// Save сохраняет запись истории в файл
func (fs *FileStorage) Save(ctx context.Context, record models.SearchRecord) error {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	if _, exists := fs.index[record.UUID]; exists {
		return ErrDuplicateRecord
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("error marshaling search record: %w", err)
	}

	if _, err := fs.file.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("error writing to file: %w", err)
	}

	fs.records = append(fs.records, record)
	fs.index[record.UUID] = struct{}{}
	return nil
}

// List возвращает последние записи истории, новые первыми
func (fs *FileStorage) List(ctx context.Context, limit int) ([]models.SearchRecord, error) {
	fs.mutex.RLock()
	defer fs.mutex.RUnlock()

	if limit <= 0 || limit > len(fs.records) {
		limit = len(fs.records)
	}

	result := make([]models.SearchRecord, 0, limit)
	for i := len(fs.records) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, fs.records[i])
	}

	return result, nil
}

// CheckConnection проверяет доступность файла хранилища
func (fs *FileStorage) CheckConnection(ctx context.Context) error {
	fs.mutex.RLock()
	defer fs.mutex.RUnlock()

	if fs.file == nil {
		return fmt.Errorf("storage file is not open")
	}

	if _, err := os.Stat(fs.filePath); err != nil {
		return fmt.Errorf("storage file check error: %w", err)
	}

	return nil
}

// Close закрывает файл хранилища
func (fs *FileStorage) Close() error {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	return fs.file.Close()
}
