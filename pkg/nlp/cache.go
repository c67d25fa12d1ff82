package nlp

import (
	"crypto/sha256"
	"sync"
)

// ModelCache amortizes the per-request training pass. It keys the trained
// model on the corpus content hash: any byte change to the corpus file
// invalidates the cache on the next request. TrainedModel is immutable, so
// handing the same pointer to concurrent readers is safe.
//
// Rebuilds are serialized under the write lock; requests arriving during a
// rebuild block until it finishes rather than training their own copy.
type ModelCache struct {
	mu    sync.RWMutex
	sum   [sha256.Size]byte
	model *TrainedModel
}

func NewModelCache() *ModelCache {
	return &ModelCache{}
}

// Get returns the model trained from raw, reusing the cached one when the
// content hash matches.
func (c *ModelCache) Get(raw []byte) (*TrainedModel, error) {
	sum := sha256.Sum256(raw)

	c.mu.RLock()
	if c.model != nil && c.sum == sum {
		model := c.model
		c.mu.RUnlock()
		return model, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another request may have rebuilt while we waited for the lock.
	if c.model != nil && c.sum == sum {
		return c.model, nil
	}

	records, err := ParseCorpus(raw)
	if err != nil {
		return nil, err
	}

	c.model = Train(records)
	c.sum = sum
	return c.model, nil
}
