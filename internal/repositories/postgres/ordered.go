package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrOrderMismatch is returned when a reorder submission is not an exact
// permutation of the collection's current id set.
var ErrOrderMismatch = errors.New("submitted ids do not match the collection")

// reorderAll assigns display_order = index for every id, inside one
// transaction. The submitted list must contain the collection's full id set
// exactly once each; anything else is rejected before a single row is
// touched, so the 0..N-1 invariant can never be left half-applied.
func reorderAll(ctx context.Context, db *gorm.DB, model any, ids []string) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current []string
		if err := tx.Model(model).Pluck("id", &current).Error; err != nil {
			return err
		}
		if !isPermutation(current, ids) {
			return ErrOrderMismatch
		}
		for idx, id := range ids {
			if err := tx.Model(model).
				Where("id = ?", id).
				Update("display_order", idx).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func isPermutation(current, submitted []string) bool {
	if len(current) != len(submitted) {
		return false
	}
	seen := make(map[string]struct{}, len(submitted))
	for _, id := range submitted {
		if _, dup := seen[id]; dup {
			return false
		}
		seen[id] = struct{}{}
	}
	for _, id := range current {
		if _, ok := seen[id]; !ok {
			return false
		}
	}
	return true
}

// nextOrder computes the append position. Must run inside the same
// transaction as the insert so concurrent creates cannot collide.
func nextOrder(tx *gorm.DB, model any) (int, error) {
	var next int
	err := tx.Model(model).
		Select("COALESCE(MAX(display_order), -1) + 1").
		Scan(&next).Error
	return next, err
}
