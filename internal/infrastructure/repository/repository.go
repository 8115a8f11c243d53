package repository

import (
	"context"
	"errors"

	"university-api/internal/infrastructure/database"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned by mutations that matched no row
	ErrNotFound = errors.New("record not found")
	// ErrSectionFull is returned when the capacity guard rejects an increment
	ErrSectionFull = errors.New("section is at full capacity")
	// ErrDuplicateKey is returned when a create collides with an existing
	// natural key, mirroring the store's unique-constraint violation
	ErrDuplicateKey = errors.New("duplicate key")
)

// conn resolves the transaction handle from the context when one is active,
// so repository calls made inside TransactionManager.WithinTransaction all
// share the same transaction.
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := database.TxFromContext(ctx); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}
