package service

import (
	"sort"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"EpicBackend/internal/model"
)

// memoryDirectory mirrors the jsonfile store's contract without touching disk.
type memoryDirectory[T model.Record] struct {
	items []T
}

func (m *memoryDirectory[T]) Load() ([]T, error) {
	return append([]T(nil), m.items...), nil
}

func (m *memoryDirectory[T]) Upsert(rec T) error {
	for i, it := range m.items {
		if it.Number() == rec.Number() {
			if rec.Uploaded() == "" {
				rec.SetUploaded(it.Uploaded())
			}
			m.items[i] = rec
			return nil
		}
	}
	m.items = append(m.items, rec)
	sort.SliceStable(m.items, func(i, j int) bool {
		a, _ := strconv.Atoi(m.items[i].Number())
		b, _ := strconv.Atoi(m.items[j].Number())
		return a < b
	})
	return nil
}

func (m *memoryDirectory[T]) Delete(number string) error {
	kept := m.items[:0]
	for _, it := range m.items {
		if it.Number() != number {
			kept = append(kept, it)
		}
	}
	m.items = kept
	return nil
}

func (m *memoryDirectory[T]) NextNumber() (string, error) {
	max := 0
	for _, it := range m.items {
		if n, _ := strconv.Atoi(it.Number()); n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1), nil
}

func seededCatalog(t *testing.T, numbers ...string) Catalog[*model.Event] {
	t.Helper()
	repo := &memoryDirectory[*model.Event]{}
	for _, n := range numbers {
		require.NoError(t, repo.Upsert(&model.Event{EventNumber: n, Title: "Event " + n}))
	}
	return NewCatalog[*model.Event](repo)
}

func TestCatalog_ListAll(t *testing.T) {
	s := seededCatalog(t, "1", "2", "3", "4", "5")

	items, err := s.List(0)
	require.NoError(t, err)
	assert.Len(t, items, 5)
}

func TestCatalog_ListLimitReturnsTail(t *testing.T) {
	s := seededCatalog(t, "1", "2", "3", "4", "5")

	items, err := s.List(2)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "4", items[0].EventNumber)
	assert.Equal(t, "5", items[1].EventNumber)
}

func TestCatalog_ListLimitLargerThanList(t *testing.T) {
	s := seededCatalog(t, "1", "2")

	items, err := s.List(10)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestCatalog_UpsertThenDelete(t *testing.T) {
	s := seededCatalog(t, "1")

	require.NoError(t, s.Upsert(&model.Event{EventNumber: "2", Title: "Second"}))
	n, err := s.NextNumber()
	require.NoError(t, err)
	assert.Equal(t, "3", n)

	require.NoError(t, s.Delete("2"))
	items, err := s.List(0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "1", items[0].EventNumber)
}
