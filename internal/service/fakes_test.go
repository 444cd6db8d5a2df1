package service_test

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/egannguyen/seller-dashboard/internal/entity"
	"github.com/egannguyen/seller-dashboard/internal/repository"
)

var errBoom = errors.New("boom")

type fakeRepo struct {
	mu        sync.Mutex
	products  []entity.Product
	findErr   error
	topErr    error
	allErr    error
	failIDs   map[string]bool
	updates   []string
	topLimits []int
}

func (r *fakeRepo) FindByOwner(_ context.Context, ownerID string) ([]entity.Product, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	var out []entity.Product
	for _, p := range r.products {
		if p.PostedByID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeRepo) UpdateRevenue(_ context.Context, productID string, revenue float64) (entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates = append(r.updates, productID)
	if r.failIDs[productID] {
		return entity.Product{}, errBoom
	}
	for i := range r.products {
		if r.products[i].ID == productID {
			r.products[i].ProductRevenue = revenue
			p := r.products[i]
			p.InCarts = nil
			return p, nil
		}
	}
	return entity.Product{}, repository.ErrNotFound
}

func (r *fakeRepo) TopSelling(ctx context.Context, ownerID string, limit int) ([]entity.Product, error) {
	r.topLimits = append(r.topLimits, limit)
	if r.topErr != nil {
		return nil, r.topErr
	}
	out, _ := r.FindByOwner(ctx, ownerID)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Sales > out[j].Sales })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeRepo) FindAll(context.Context) ([]entity.Product, error) {
	if r.allErr != nil {
		return nil, r.allErr
	}
	return r.products, nil
}

func (r *fakeRepo) Seed(context.Context, []entity.Product, []entity.CartItem) error {
	return nil
}

type published struct {
	topic string
	key   string
	event any
}

type fakePublisher struct {
	err    error
	events []published
}

func (p *fakePublisher) PublishEvent(_ context.Context, topic string, key string, event any) error {
	p.events = append(p.events, published{topic: topic, key: key, event: event})
	return p.err
}

func (p *fakePublisher) Close() error { return nil }
