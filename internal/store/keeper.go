package store

import (
	"context"
	"sync"
)

// Keeper holds the process-wide document. Every mutation is applied to the
// latest in-memory copy and written through before the lock is released, so
// two requests that both wait on the completion service cannot overwrite each
// other's changes.
type Keeper struct {
	mu    sync.Mutex
	store Store
	doc   *Document
}

// Open loads the document once. A corrupt document is returned as an error.
func Open(ctx context.Context, s Store) (*Keeper, error) {
	doc, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &Keeper{store: s, doc: doc}, nil
}

// Snapshot returns a copy that callers may read freely.
func (k *Keeper) Snapshot() *Document {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.doc.Clone()
}

// Update applies fn and persists the whole document. When fn fails nothing is
// saved; when the save fails the in-memory document is rolled back.
func (k *Keeper) Update(ctx context.Context, fn func(doc *Document) error) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	prev := k.doc.Clone()
	if err := fn(k.doc); err != nil {
		k.doc = prev
		return err
	}
	if err := k.store.Save(ctx, k.doc); err != nil {
		k.doc = prev
		return err
	}
	return nil
}
