package forge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/osse101/itemforge/internal/domain"
	"github.com/osse101/itemforge/internal/repository"
)

// memoryRepository is an in-memory repository.Instance. Transactions stage
// writes and apply them on commit.
type memoryRepository struct {
	mu        sync.Mutex
	items     map[int64]*domain.ItemInstance
	nextID    int64
	failWrite error
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{items: make(map[int64]*domain.ItemInstance), nextID: 1}
}

// clone copies an instance through its JSON form; the template binding is dropped.
func clone(item *domain.ItemInstance) *domain.ItemInstance {
	data, err := json.Marshal(item)
	if err != nil {
		panic(err)
	}
	var out domain.ItemInstance
	if err := json.Unmarshal(data, &out); err != nil {
		panic(err)
	}
	out.TemplateID = item.TemplateID
	return &out
}

func (r *memoryRepository) get(id int64) (*domain.ItemInstance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrItemNotFound, id)
	}
	return clone(item), nil
}

func (r *memoryRepository) GetInstance(_ context.Context, id int64) (*domain.ItemInstance, error) {
	return r.get(id)
}

func (r *memoryRepository) ListContents(_ context.Context, containerID int64) ([]*domain.ItemInstance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.ItemInstance
	for _, item := range r.items {
		if id, ok := item.Owner.ContainerID(); ok && id == containerID {
			out = append(out, clone(item))
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })
	return out, nil
}

func (r *memoryRepository) BeginTx(context.Context) (repository.InstanceTx, error) {
	return &memoryTx{repo: r, pending: make(map[int64]*domain.ItemInstance)}, nil
}

func (r *memoryRepository) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// seed stores item directly and returns its id
func (r *memoryRepository) seed(item *domain.ItemInstance) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	item.ID = r.nextID
	r.nextID++
	r.items[item.ID] = clone(item)
	return item.ID
}

type memoryTx struct {
	repo    *memoryRepository
	pending map[int64]*domain.ItemInstance // nil marks a delete
	closed  bool
}

func (t *memoryTx) GetInstanceForUpdate(_ context.Context, id int64) (*domain.ItemInstance, error) {
	if item, ok := t.pending[id]; ok {
		if item == nil {
			return nil, fmt.Errorf("%w: %d", domain.ErrItemNotFound, id)
		}
		return clone(item), nil
	}
	return t.repo.get(id)
}

func (t *memoryTx) InsertInstance(_ context.Context, item *domain.ItemInstance) (int64, error) {
	if t.repo.failWrite != nil {
		return 0, t.repo.failWrite
	}
	t.repo.mu.Lock()
	id := t.repo.nextID
	t.repo.nextID++
	t.repo.mu.Unlock()

	stored := clone(item)
	stored.ID = id
	t.pending[id] = stored
	return id, nil
}

func (t *memoryTx) UpdateInstance(ctx context.Context, item *domain.ItemInstance) error {
	if t.repo.failWrite != nil {
		return t.repo.failWrite
	}
	if _, err := t.GetInstanceForUpdate(ctx, item.ID); err != nil {
		return err
	}
	t.pending[item.ID] = clone(item)
	return nil
}

func (t *memoryTx) DeleteInstance(ctx context.Context, id int64) error {
	if _, err := t.GetInstanceForUpdate(ctx, id); err != nil {
		return err
	}
	t.pending[id] = nil
	return nil
}

func (t *memoryTx) Commit(context.Context) error {
	if t.closed {
		return errors.New(domain.ErrMsgTxClosed)
	}
	t.closed = true
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	for id, item := range t.pending {
		if item == nil {
			delete(t.repo.items, id)
			continue
		}
		t.repo.items[id] = item
	}
	return nil
}

func (t *memoryTx) Rollback(context.Context) error {
	if t.closed {
		return errors.New(domain.ErrMsgTxClosed)
	}
	t.closed = true
	return nil
}

// memoryTemplates serves templates to the template cache
type memoryTemplates struct {
	byID  map[int]*domain.ItemTemplate
	byKey map[string]*domain.ItemTemplate
}

func (m *memoryTemplates) GetTemplateByID(_ context.Context, id int) (*domain.ItemTemplate, error) {
	if t, ok := m.byID[id]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("%w: id %d", domain.ErrTemplateNotFound, id)
}

func (m *memoryTemplates) GetTemplateByKey(_ context.Context, key string) (*domain.ItemTemplate, error) {
	if t, ok := m.byKey[key]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrTemplateNotFound, key)
}
