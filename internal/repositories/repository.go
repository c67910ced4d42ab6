// Package repositories holds the GORM data-access layer. Repositories pull
// the request-scoped *gorm.DB out of the context when middleware put one
// there (integration tests run each request inside a transaction), falling
// back to the base handle otherwise.
package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"legalassist_backend/pkg/contextkeys"
)

// ErrRecordNotFound is returned when a lookup finds nothing.
var ErrRecordNotFound = errors.New("record not found")

func dbFromContext(ctx context.Context, base *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(contextkeys.DBContextKey).(*gorm.DB); ok && tx != nil {
		return tx.WithContext(ctx)
	}
	return base.WithContext(ctx)
}

func translateError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRecordNotFound
	}
	return err
}
