package forge

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/osse101/itemforge/internal/concurrency"
	"github.com/osse101/itemforge/internal/domain"
	"github.com/osse101/itemforge/internal/enchanting"
	"github.com/osse101/itemforge/internal/event"
	"github.com/osse101/itemforge/internal/item"
	"github.com/osse101/itemforge/internal/socketing"
)

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

// eventRecorder collects every event published on the bus
type eventRecorder struct {
	mu     sync.Mutex
	events []event.Event
}

func (r *eventRecorder) handle(_ context.Context, evt event.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evt)
	return nil
}

func (r *eventRecorder) types() []event.Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]event.Type, len(r.events))
	for n, e := range r.events {
		out[n] = e.Type
	}
	return out
}

func (r *eventRecorder) last() event.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events[len(r.events)-1]
}

type fixture struct {
	svc       *service
	repo      *memoryRepository
	templates *memoryTemplates
	events    *eventRecorder
}

// newFixture builds a service over the shipped item content
func newFixture(t *testing.T) *fixture {
	t.Helper()

	cfg, err := item.NewLoader().Load("../../configs/items.json")
	require.NoError(t, err)

	templates := &memoryTemplates{
		byID:  make(map[int]*domain.ItemTemplate),
		byKey: make(map[string]*domain.ItemTemplate),
	}
	for n := range cfg.Templates {
		tmpl := cfg.Templates[n]
		tmpl.ID = n + 1
		templates.byID[tmpl.ID] = &tmpl
		templates.byKey[tmpl.TemplateKey] = &tmpl
	}

	bus := event.NewMemoryBus()
	recorder := &eventRecorder{}
	for _, typ := range []string{
		domain.EventTypeItemSpawned, domain.EventTypeItemSocketed, domain.EventTypeItemUnsocketed,
		domain.EventTypeItemEnchanted, domain.EventTypeItemDamaged, domain.EventTypeItemBroken,
		domain.EventTypeItemRepaired, domain.EventTypeItemTransferred, domain.EventTypeItemDisassembled,
	} {
		bus.Subscribe(event.Type(typ), recorder.handle)
	}

	repo := newMemoryRepository()
	svc := NewService(
		repo,
		item.NewTemplateCache(templates, 32, time.Minute),
		socketing.NewService(),
		enchanting.NewService(enchanting.DefaultCatalog(), fixedClock),
		concurrency.NewLockManager(),
		bus,
	).(*service)
	svc.now = fixedClock

	return &fixture{svc: svc, repo: repo, templates: templates, events: recorder}
}

// spawn creates an item through the service
func (f *fixture) spawn(t *testing.T, key string, owner domain.Owner) *domain.ItemInstance {
	t.Helper()
	spawned, err := f.svc.Spawn(context.Background(), key, owner, SpawnOptions{})
	require.NoError(t, err)
	return spawned
}

// load reads an item back from the repository with its template bound
func (f *fixture) load(t *testing.T, id int64) *domain.ItemInstance {
	t.Helper()
	stored, err := f.repo.GetInstance(context.Background(), id)
	require.NoError(t, err)
	stored.Bind(f.templates.byID[stored.TemplateID])
	return stored
}

func smith(level int) domain.Character {
	return domain.Character{CharacterID: 7, DisplayName: "Morwen", Skills: map[string]int{"smithing": level, "enchanting": level}}
}

// addTemplate registers a copy of base under a new key
func (f *fixture) addTemplate(base, key string, edit func(*domain.ItemTemplate)) {
	tmpl := *f.templates.byKey[base]
	tmpl.ID = len(f.templates.byID) + 1
	tmpl.TemplateKey = key
	edit(&tmpl)
	f.templates.byID[tmpl.ID] = &tmpl
	f.templates.byKey[key] = &tmpl
}
