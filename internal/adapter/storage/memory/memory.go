package memory

import (
	"context"
	"sync"
	"time"

	"github.com/MikeRez0/storykiosk/internal/core/domain"
)

// Repository keeps orders in process memory. State survives only as long as
// the process; reads observe every completed write.
type Repository struct {
	mu     sync.Mutex
	orders map[string]*domain.Order
	now    func() time.Time
}

func NewRepository() *Repository {
	return &Repository{
		orders: make(map[string]*domain.Order),
		now:    time.Now,
	}
}

func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[order.ID]; ok {
		return nil, domain.ErrConflictingData
	}
	stored := *order
	r.orders[order.ID] = &stored

	result := stored
	return &result, nil
}

func (r *Repository) ReadOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[orderID]
	if !ok {
		return nil, domain.ErrDataNotFound
	}
	result := *o
	return &result, nil
}

func (r *Repository) TransitionOrder(ctx context.Context, orderID string, t domain.Transition) (*domain.Order, error) {
	if !t.From.CanTransition(t.To) {
		return nil, domain.ErrInvalidTransition
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[orderID]
	if !ok {
		return nil, domain.ErrDataNotFound
	}
	if o.State != t.From {
		return nil, domain.ErrStateConflict
	}

	o.State = t.To
	if t.Source != "" && t.Source != domain.SourceNone && o.Source == domain.SourceNone {
		o.Source = t.Source
	}
	if t.Failure != domain.FailureNone {
		o.Failure = t.Failure
	}
	o.UpdatedAt = r.now()

	result := *o
	return &result, nil
}

func (r *Repository) ListOrdersByState(ctx context.Context, states ...domain.OrderState) ([]*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := make([]*domain.Order, 0)
	for _, o := range r.orders {
		for _, s := range states {
			if o.State == s {
				cp := *o
				list = append(list, &cp)
				break
			}
		}
	}
	return list, nil
}

func (r *Repository) PurgeOrders(ctx context.Context, terminalBefore, pendingBefore time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for id, o := range r.orders {
		expired := (o.State.Terminal() && o.UpdatedAt.Before(terminalBefore)) ||
			(o.State == domain.OrderStateCreated && o.CreatedAt.Before(pendingBefore))
		if expired {
			delete(r.orders, id)
			n++
		}
	}
	return n, nil
}
