package storage

import "errors"

// ErrDuplicateRecord возвращается при конфликте уникальности идентификатора записи
var ErrDuplicateRecord = errors.New("duplicate search record")
