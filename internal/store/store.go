package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a record id has no row behind it.
var ErrNotFound = errors.New("record not found")

// Store is the persistence surface one resource collection needs. Every
// implementation lists newest-first.
type Store[T any] interface {
	Create(ctx context.Context, rec *T) error
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (*T, error)
	Save(ctx context.Context, rec *T) error
	Delete(ctx context.Context, id string) error
}

type gormStore[T any] struct {
	db *gorm.DB
}

// NewGorm returns a Store backed by a GORM-managed table.
func NewGorm[T any](db *gorm.DB) Store[T] {
	return &gormStore[T]{db: db}
}

func (s *gormStore[T]) Create(ctx context.Context, rec *T) error {
	return s.db.WithContext(ctx).Create(rec).Error
}

func (s *gormStore[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (s *gormStore[T]) Get(ctx context.Context, id string) (*T, error) {
	var rec T
	err := s.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *gormStore[T]) Save(ctx context.Context, rec *T) error {
	return s.db.WithContext(ctx).Save(rec).Error
}

func (s *gormStore[T]) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
