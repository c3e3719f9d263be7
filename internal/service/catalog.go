package service

import (
	"EpicBackend/internal/model"
)

// Directory is the persistence contract the catalog service needs. The
// jsonfile repository satisfies it; tests substitute an in-memory store.
type Directory[T model.Record] interface {
	Load() ([]T, error)
	Upsert(rec T) error
	Delete(number string) error
	NextNumber() (string, error)
}

// Catalog exposes one category of the content directory.
type Catalog[T model.Record] interface {
	// List returns all records, or the last limit records when limit > 0.
	List(limit int) ([]T, error)
	Upsert(rec T) error
	Delete(number string) error
	NextNumber() (string, error)
}

type catalogImpl[T model.Record] struct {
	repo Directory[T]
}

func NewCatalog[T model.Record](repo Directory[T]) Catalog[T] {
	return &catalogImpl[T]{repo: repo}
}

func (s *catalogImpl[T]) List(limit int) ([]T, error) {
	items, err := s.repo.Load()
	if err != nil {
		return nil, err
	}
	if limit > 0 && limit < len(items) {
		items = items[len(items)-limit:]
	}
	return items, nil
}

func (s *catalogImpl[T]) Upsert(rec T) error {
	return s.repo.Upsert(rec)
}

func (s *catalogImpl[T]) Delete(number string) error {
	return s.repo.Delete(number)
}

func (s *catalogImpl[T]) NextNumber() (string, error) {
	return s.repo.NextNumber()
}
