package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/chaatcart/kiosk-api/internal/domain/entity"
	"github.com/chaatcart/kiosk-api/internal/domain/enum"
	domainRepo "github.com/chaatcart/kiosk-api/internal/domain/repository"
	"github.com/chaatcart/kiosk-api/pkg/email"
	"github.com/google/uuid"
)

// fakeOrderRepo is an in-memory OrderRepository mirroring the filtering
// semantics of the postgres implementation.
type fakeOrderRepo struct {
	mu     sync.Mutex
	orders []*entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{}
}

func (r *fakeOrderRepo) Create(_ context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	if order.GivenItems == nil {
		order.GivenItems = entity.GivenMap{}
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	order.UpdatedAt = order.CreatedAt
	cp := *order
	r.orders = append(r.orders, &cp)
	return nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.ID == id {
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) Update(_ context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, o := range r.orders {
		if o.ID == order.ID {
			cp := *order
			cp.UpdatedAt = time.Now()
			r.orders[i] = &cp
			return nil
		}
	}
	return nil
}

func (r *fakeOrderRepo) List(_ context.Context, params *domainRepo.OrderFilterParams) ([]entity.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []entity.Order
	for _, o := range r.orders {
		if params.Search != "" && !strings.Contains(strings.ToLower(o.CustomerName), strings.ToLower(params.Search)) {
			continue
		}
		if params.Status != nil && o.Status != *params.Status {
			continue
		}
		if params.StartDate != nil && o.CreatedAt.Before(*params.StartDate) {
			continue
		}
		if params.EndDate != nil && o.CreatedAt.After(*params.EndDate) {
			continue
		}
		if params.HiddenBefore != nil && o.CreatedAt.Before(*params.HiddenBefore) {
			continue
		}
		matched = append(matched, *o)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	params.Pagination.Validate()
	offset := params.Pagination.Offset()
	if offset > len(matched) {
		offset = len(matched)
	}
	end := offset + params.Pagination.PerPage
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (r *fakeOrderRepo) ListAll(_ context.Context, start, end *time.Time) ([]entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []entity.Order
	for _, o := range r.orders {
		if start != nil && o.CreatedAt.Before(*start) {
			continue
		}
		if end != nil && o.CreatedAt.After(*end) {
			continue
		}
		matched = append(matched, *o)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})
	return matched, nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, id uuid.UUID, status enum.OrderStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.ID == id {
			o.Status = status
			o.UpdatedAt = time.Now()
			return 1, nil
		}
	}
	return 0, nil
}

func (r *fakeOrderRepo) UpdatePaid(_ context.Context, id uuid.UUID, paid bool) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.ID == id {
			o.Paid = paid
			o.UpdatedAt = time.Now()
			return 1, nil
		}
	}
	return 0, nil
}

func (r *fakeOrderRepo) UpdateGivenItems(_ context.Context, id uuid.UUID, given entity.GivenMap) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.ID == id {
			o.GivenItems = given
			o.UpdatedAt = time.Now()
			return 1, nil
		}
	}
	return 0, nil
}

func (r *fakeOrderRepo) UpdateItems(_ context.Context, id uuid.UUID, items entity.ItemList, total float64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.ID == id {
			o.Items = items
			o.Total = total
			o.UpdatedAt = time.Now()
			return 1, nil
		}
	}
	return 0, nil
}

// fakeCounterRepo issues sequential numbers per date under a lock
type fakeCounterRepo struct {
	mu       sync.Mutex
	counters map[string]int
}

func newFakeCounterRepo() *fakeCounterRepo {
	return &fakeCounterRepo{counters: make(map[string]int)}
}

func (r *fakeCounterRepo) Next(_ context.Context, date string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counters[date]++
	return r.counters[date], nil
}

// fakeSettingsRepo holds the single settings row in memory
type fakeSettingsRepo struct {
	mu       sync.Mutex
	settings *entity.KioskSettings
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{}
}

func (r *fakeSettingsRepo) Get(_ context.Context) (*entity.KioskSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.settings == nil {
		return nil, nil
	}
	cp := *r.settings
	return &cp, nil
}

func (r *fakeSettingsRepo) Create(_ context.Context, settings *entity.KioskSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *settings
	r.settings = &cp
	return nil
}

func (r *fakeSettingsRepo) Update(_ context.Context, settings *entity.KioskSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *settings
	r.settings = &cp
	return nil
}

// fakeMenuRepo is an in-memory MenuRepository
type fakeMenuRepo struct {
	mu    sync.Mutex
	items []*entity.MenuItem
}

func newFakeMenuRepo(items ...entity.MenuItem) *fakeMenuRepo {
	r := &fakeMenuRepo{}
	for i := range items {
		cp := items[i]
		if cp.ID == uuid.Nil {
			cp.ID = uuid.New()
		}
		r.items = append(r.items, &cp)
	}
	return r
}

func (r *fakeMenuRepo) Create(_ context.Context, item *entity.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	cp := *item
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeMenuRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items {
		if it.ID == id {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeMenuRepo) GetByName(_ context.Context, name string) (*entity.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items {
		if it.Name == name {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeMenuRepo) List(_ context.Context, availableOnly bool) ([]entity.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.MenuItem
	for _, it := range r.items {
		if availableOnly && !it.Available {
			continue
		}
		out = append(out, *it)
	}
	return out, nil
}

func (r *fakeMenuRepo) Update(_ context.Context, item *entity.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, it := range r.items {
		if it.ID == item.ID {
			cp := *item
			r.items[i] = &cp
			return nil
		}
	}
	return nil
}

func (r *fakeMenuRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, it := range r.items {
		if it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

// fakeMailer records sends on a channel so tests can wait for the detached
// email goroutines.
type fakeMailer struct {
	confirmations chan string
	readies       chan string
	fail          bool
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{
		confirmations: make(chan string, 8),
		readies:       make(chan string, 8),
	}
}

func (m *fakeMailer) SendOrderConfirmation(toEmail string, _ email.OrderEmailData) error {
	m.confirmations <- toEmail
	if m.fail {
		return context.DeadlineExceeded
	}
	return nil
}

func (m *fakeMailer) SendOrderReady(toEmail string, _ email.OrderEmailData) error {
	m.readies <- toEmail
	if m.fail {
		return context.DeadlineExceeded
	}
	return nil
}

// fakeNotifier counts change signals
type fakeNotifier struct {
	mu    sync.Mutex
	count int
}

func (n *fakeNotifier) Notify() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.count++
}

func (n *fakeNotifier) Count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.count
}
