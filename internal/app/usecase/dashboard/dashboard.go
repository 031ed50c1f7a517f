package dashboard

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"sync"

	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/entity"
	err_gateway "github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/gateway/api/errors"
	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/usecase/editor"
	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/usecase/store"
	"go.uber.org/zap"
)

var (
	ErrBusy          = errors.New("operation is already in progress")
	ErrClosed        = errors.New("dashboard is closed")
	ErrOrderNotFound = errors.New("order is not in the dashboard")
)

type Operation int

const (
	OperationMount Operation = iota
	OperationCommit
	OperationRemove
)

func (o Operation) String() string {
	switch o {
	case OperationMount:
		return "mount"
	case OperationCommit:
		return "commit"
	case OperationRemove:
		return "remove"
	}

	return "unknown"
}

type OrderGateway interface {
	FetchUserOrders(ctx context.Context, userID entity.UserID) (entity.UserOrders, error)
	UpdateOrder(ctx context.Context, orderID entity.OrderID, patch entity.OrderPatch) (entity.OrderPatch, error)
	DeleteOrder(ctx context.Context, orderID entity.OrderID) error
}

type busyKey struct {
	op Operation
	id entity.OrderID
}

type Option func(*Dashboard)

func WithStore(s *store.Store) Option {
	return func(d *Dashboard) {
		d.store = s
	}
}

func WithEditor(e *editor.Editor) Option {
	return func(d *Dashboard) {
		d.editor = e
	}
}

// Dashboard is the order dashboard of one admin user: the order list, the
// single inline edit slot and the requests that keep them in sync with the
// backend. Network calls are made without holding the lock, so completions
// are applied in arrival order.
type Dashboard struct {
	mutex sync.Mutex

	gateway OrderGateway
	userID  entity.UserID
	user    entity.UserSummary
	loaded  bool

	store  *store.Store
	editor *editor.Editor
	busy   map[busyKey]struct{}

	ctx    context.Context
	cancel context.CancelFunc
	closed bool
}

func New(gateway OrderGateway, userID entity.UserID, opts ...Option) *Dashboard {
	ctx, cancel := context.WithCancel(context.Background())

	instance := &Dashboard{
		gateway: gateway,
		userID:  userID,
		busy:    make(map[busyKey]struct{}),
		ctx:     ctx,
		cancel:  cancel,
	}
	for _, opt := range opts {
		opt(instance)
	}
	if instance.store == nil {
		instance.store = store.New()
	}
	if instance.editor == nil {
		instance.editor = editor.New()
	}

	return instance
}

// Mount fetches the user summary and orders. On failure the dashboard keeps
// loading and the error is returned to the caller.
func (d *Dashboard) Mount(ctx context.Context) error {
	key := busyKey{op: OperationMount}
	if err := d.acquire(key); err != nil {
		return err
	}

	ctx, cancel := d.bind(ctx)
	defer cancel()

	userOrders, err := d.gateway.FetchUserOrders(ctx, d.userID)

	d.mutex.Lock()
	defer d.mutex.Unlock()
	delete(d.busy, key)

	if d.closed {
		return ErrClosed
	}

	if err != nil {
		zap.L().Error("error while fetching user orders", zap.String("user_id", d.userID.String()), zap.Error(err))
		return fmt.Errorf("error while mounting dashboard of user %s: %w", d.userID, err)
	}

	d.store.Load(userOrders.Orders)
	d.user = userOrders.User
	d.loaded = true

	zap.L().Info("dashboard mounted", zap.String("user_id", d.userID.String()), zap.Int("orders", len(userOrders.Orders)))

	return nil
}

func (d *Dashboard) BeginEdit(id entity.OrderID) error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.closed {
		return ErrClosed
	}

	order, ok := d.store.Get(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrOrderNotFound, id)
	}

	d.editor.BeginEdit(order)

	return nil
}

func (d *Dashboard) UpdateField(field editor.Field, value string) error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	return d.editor.UpdateField(field, value)
}

func (d *Dashboard) Cancel() {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.editor.Cancel()
}

// Commit sends the draft to the backend. On success the backend echo is merged
// onto the committed draft, the stored order is replaced and editing stops.
// On failure the draft stays in place and nothing else changes.
func (d *Dashboard) Commit(ctx context.Context) (entity.Order, error) {
	d.mutex.Lock()
	if d.closed {
		d.mutex.Unlock()
		return entity.Order{}, ErrClosed
	}

	draft, ok := d.editor.Draft()
	if !ok {
		d.mutex.Unlock()
		return entity.Order{}, editor.ErrNotEditing
	}

	key := busyKey{op: OperationCommit, id: draft.ID}
	if _, busy := d.busy[key]; busy {
		d.mutex.Unlock()
		return entity.Order{}, fmt.Errorf("%w: %s order %s", ErrBusy, key.op, key.id)
	}
	d.busy[key] = struct{}{}

	prior, ok := d.store.Get(draft.ID)
	if !ok {
		prior = draft
	}
	d.mutex.Unlock()

	ctx, cancel := d.bind(ctx)
	defer cancel()

	patch := entity.PatchFromOrder(draft)
	echo, err := d.gateway.UpdateOrder(ctx, draft.ID, patch)

	d.mutex.Lock()
	defer d.mutex.Unlock()
	delete(d.busy, key)

	if d.closed {
		return entity.Order{}, ErrClosed
	}

	if err != nil {
		zap.L().Error("error while updating order", zap.String("order_id", draft.ID.String()), zap.Error(err))
		return entity.Order{}, fmt.Errorf("error while committing order %s: %w", draft.ID, err)
	}

	updated := echo.Apply(patch.Apply(prior))
	d.store.Replace(draft.ID, updated)
	d.editor.Reset(draft.ID)

	zap.L().Info("order updated", zap.String("order_id", draft.ID.String()), zap.Bool("partial_echo", echo.Empty()))

	return updated, nil
}

// Remove deletes the order in the backend and then locally. An order the
// backend no longer knows is treated as already removed.
func (d *Dashboard) Remove(ctx context.Context, id entity.OrderID) error {
	d.mutex.Lock()
	if d.closed {
		d.mutex.Unlock()
		return ErrClosed
	}

	if _, ok := d.store.Get(id); !ok {
		d.mutex.Unlock()
		return fmt.Errorf("%w: %s", ErrOrderNotFound, id)
	}

	key := busyKey{op: OperationRemove, id: id}
	if _, busy := d.busy[key]; busy {
		d.mutex.Unlock()
		return fmt.Errorf("%w: %s order %s", ErrBusy, key.op, key.id)
	}
	d.busy[key] = struct{}{}
	d.mutex.Unlock()

	ctx, cancel := d.bind(ctx)
	defer cancel()

	err := d.gateway.DeleteOrder(ctx, id)

	d.mutex.Lock()
	defer d.mutex.Unlock()
	delete(d.busy, key)

	if d.closed {
		return ErrClosed
	}

	if err != nil {
		if !errors.Is(err, err_gateway.ErrNotFound) {
			zap.L().Error("error while deleting order", zap.String("order_id", id.String()), zap.Error(err))
			return fmt.Errorf("error while removing order %s: %w", id, err)
		}

		zap.L().Info("order is already absent in backend", zap.String("order_id", id.String()))
	}

	d.store.Remove(id)
	d.editor.Reset(id)

	zap.L().Info("order removed", zap.String("order_id", id.String()))

	return nil
}

// Close stops the dashboard. In-flight requests are cancelled and their
// completions are dropped.
func (d *Dashboard) Close() {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.closed {
		return
	}

	d.closed = true
	d.cancel()
	d.editor.Cancel()
}

func (d *Dashboard) Orders(query string) iter.Seq[entity.Order] {
	return d.store.View(query)
}

func (d *Dashboard) Order(id entity.OrderID) (entity.Order, bool) {
	return d.store.Get(id)
}

func (d *Dashboard) Count() int {
	return d.store.Len()
}

func (d *Dashboard) UserID() entity.UserID {
	return d.userID
}

func (d *Dashboard) User() entity.UserSummary {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	return d.user
}

func (d *Dashboard) Loading() bool {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	return !d.loaded
}

func (d *Dashboard) Draft() (entity.Order, bool) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	return d.editor.Draft()
}

func (d *Dashboard) Editing() (entity.OrderID, bool) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	return d.editor.Editing()
}

func (d *Dashboard) Busy(op Operation, id entity.OrderID) bool {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	_, busy := d.busy[busyKey{op: op, id: id}]
	return busy
}

func (d *Dashboard) acquire(key busyKey) error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.closed {
		return ErrClosed
	}
	if _, busy := d.busy[key]; busy {
		return fmt.Errorf("%w: %s", ErrBusy, key.op)
	}
	d.busy[key] = struct{}{}

	return nil
}

// bind ties a request context to the dashboard lifetime.
func (d *Dashboard) bind(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(d.ctx, cancel)

	return ctx, func() {
		stop()
		cancel()
	}
}
