package socketing

import (
	"fmt"

	"github.com/osse101/itemforge/internal/domain"
	"github.com/osse101/itemforge/internal/taxonomy"
)

// Service places gems and runes into item sockets and takes them out again.
// It works on in-memory instances; callers persist the host afterwards.
type Service interface {
	CanSocket(host, occupant *domain.ItemInstance) (domain.Outcome, error)
	Socket(host, occupant *domain.ItemInstance) (Placement, error)
	Unsocket(host *domain.ItemInstance, index int, destroy bool) (Removal, error)
	BonusTotals(host *domain.ItemInstance) domain.SocketBonuses
}

// Placement reports where an occupant went. Index is -1 when Outcome failed.
type Placement struct {
	Outcome domain.Outcome
	Index   int
}

// Removal reports what came out of a socket. OccupantID is nil when the
// occupant was destroyed or the socket was empty.
type Removal struct {
	Outcome    domain.Outcome
	OccupantID *int64
}

type service struct{}

// NewService creates a new socketing service
func NewService() Service {
	return &service{}
}

func requireTemplates(items ...*domain.ItemInstance) error {
	for _, item := range items {
		if item == nil || item.Template() == nil {
			return fmt.Errorf("socketing: %w", domain.ErrTemplateNotBound)
		}
	}
	return nil
}

// CanSocket checks that host has an empty socket of the occupant's kind.
func (s *service) CanSocket(host, occupant *domain.ItemInstance) (domain.Outcome, error) {
	if err := requireTemplates(host, occupant); err != nil {
		return domain.Outcome{}, err
	}
	if len(host.Sockets) == 0 {
		return domain.Failed(domain.MsgNoSockets), nil
	}
	if len(host.Sockets) == len(host.FilledSockets()) {
		return domain.Failed(domain.MsgNoEmptySockets), nil
	}

	kind := occupant.Template().OccupantSocketKind()
	if firstEmpty(host, kind) < 0 {
		return domain.Failed(domain.NoCompatibleSocketMessage(kind)), nil
	}
	return domain.Succeeded(domain.MsgCanSocket), nil
}

// Socket fills the lowest-index empty socket matching the occupant's kind.
func (s *service) Socket(host, occupant *domain.ItemInstance) (Placement, error) {
	outcome, err := s.CanSocket(host, occupant)
	if err != nil || !outcome.Success {
		return Placement{Outcome: outcome, Index: -1}, err
	}

	index := firstEmpty(host, occupant.Template().OccupantSocketKind())
	outcome, err = host.FillSocket(index, occupant)
	if err != nil {
		return Placement{Index: -1}, err
	}
	if !outcome.Success {
		index = -1
	}
	return Placement{Outcome: outcome, Index: index}, nil
}

// Unsocket empties the socket at index. An index outside the socket list is an error.
func (s *service) Unsocket(host *domain.ItemInstance, index int, destroy bool) (Removal, error) {
	occupantID, outcome, err := host.ClearSocket(index, destroy)
	if err != nil {
		return Removal{}, err
	}
	return Removal{Outcome: outcome, OccupantID: occupantID}, nil
}

// BonusTotals sums every filled socket's snapshot.
func (s *service) BonusTotals(host *domain.ItemInstance) domain.SocketBonuses {
	return host.SocketBonusTotals()
}

func firstEmpty(host *domain.ItemInstance, kind taxonomy.SocketType) int {
	for n, slot := range host.Sockets {
		if !slot.Filled && slot.Type == kind {
			return n
		}
	}
	return -1
}
