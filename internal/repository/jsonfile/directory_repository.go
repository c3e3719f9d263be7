package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"

	"EpicBackend/internal/model"
)

// Directory persists one category's record list as a single JSON document of
// the shape {listKey: [...records]}. Every mutation runs under the mutex and
// is written atomically (temp file + rename), so a crash never leaves a
// half-written index behind.
type Directory[T model.Record] struct {
	mu   sync.Mutex
	path string
	key  string
}

func NewDirectory[T model.Record](path, key string) *Directory[T] {
	return &Directory[T]{path: path, key: key}
}

// Bootstrap creates the parent folder and an empty index document when the
// index file does not exist yet. An existing file is left untouched.
func (d *Directory[T]) Bootstrap() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(d.path), 0o755); err != nil {
		return err
	}
	if _, err := os.Stat(d.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	return d.save([]T{})
}

func (d *Directory[T]) Load() ([]T, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.load()
}

// Upsert replaces the record with the same number in place, or appends when
// none exists, then re-sorts the list by numeric value of the number. A prior
// record's upload date survives only if the incoming record carries none.
func (d *Directory[T]) Upsert(rec T) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	items, err := d.load()
	if err != nil {
		return err
	}

	found := false
	for i, it := range items {
		if it.Number() == rec.Number() {
			if rec.Uploaded() == "" {
				rec.SetUploaded(it.Uploaded())
			}
			items[i] = rec
			found = true
			break
		}
	}
	if !found {
		items = append(items, rec)
	}

	sortByNumber(items)
	return d.save(items)
}

// Delete removes every record with the given number. Deleting a number that
// is not present is a no-op, not an error.
func (d *Directory[T]) Delete(number string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	items, err := d.load()
	if err != nil {
		return err
	}

	kept := make([]T, 0, len(items))
	for _, it := range items {
		if it.Number() != number {
			kept = append(kept, it)
		}
	}
	return d.save(kept)
}

// NextNumber returns one past the highest number currently in the index.
// Unlike a plain count+1 scheme this never hands out the number of a
// surviving record after deletions.
func (d *Directory[T]) NextNumber() (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	items, err := d.load()
	if err != nil {
		return "", err
	}

	max := 0
	for _, it := range items {
		if n := numberValue(it.Number()); n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1), nil
}

func (d *Directory[T]) load() ([]T, error) {
	data, err := os.ReadFile(d.path)
	if err != nil {
		return nil, fmt.Errorf("read index %s: %w", d.path, err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse index %s: %w", d.path, err)
	}

	items := []T{}
	if raw, ok := doc[d.key]; ok {
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("parse index %s: %w", d.path, err)
		}
	}
	return items, nil
}

func (d *Directory[T]) save(items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(map[string][]T{d.key: items}, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(d.path, data)
}

func sortByNumber[T model.Record](items []T) {
	sort.SliceStable(items, func(i, j int) bool {
		return numberValue(items[i].Number()) < numberValue(items[j].Number())
	})
}

func numberValue(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// writeFileAtomic writes to a sibling temp file and renames it over the
// target, so readers observe either the old or the new document.
func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
