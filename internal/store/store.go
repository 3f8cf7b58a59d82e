package store

import (
	"context"
	"sync"

	"maison-storefront/internal/audit"
	"maison-storefront/internal/cart"
	"maison-storefront/internal/httpx"
	"maison-storefront/internal/logger"
	"maison-storefront/internal/order"
	"maison-storefront/internal/product"
	"maison-storefront/internal/storage"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// CartKey names the client-storage entry holding the persisted cart.
const CartKey = "maison-store"

const (
	bootstrapFallback     = "Failed to load store data"
	updateProductFallback = "Failed to update product"
	updateOrderFallback   = "Failed to update order status"
	auditLogFallback      = "Failed to record audit log"
	placeOrderFallback    = "Failed to place order"
)

// Store is the single source of truth for the client-visible snapshot of
// products, orders and audit logs, plus the locally-owned cart. Every
// server-backed mutation goes through a resource service and then
// re-syncs the affected collections; a mutation either fully succeeds or
// leaves the snapshot untouched with an error message recorded.
type Store struct {
	productSvc product.Service
	orderSvc   order.Service
	auditSvc   audit.Service
	state      *storage.Store

	mu            sync.Mutex
	cart          []cart.Item
	products      []product.Product
	orders        []order.Order
	auditLogs     []audit.Log
	bootstrapping bool
	bootstrapErr  string

	flight singleflight.Group
}

// New creates the domain store and restores the persisted cart.
func New(productSvc product.Service, orderSvc order.Service, auditSvc audit.Service, state *storage.Store) *Store {
	s := &Store{
		productSvc: productSvc,
		orderSvc:   orderSvc,
		auditSvc:   auditSvc,
		state:      state,
	}

	var items []cart.Item
	found, err := state.Load(CartKey, &items)
	if err != nil {
		logger.Named("store").Warn("Failed to restore cart", zap.Error(err))
	} else if found {
		s.cart = items
	}

	return s
}

type bootstrapSnapshot struct {
	products []product.Product
	orders   []order.Order
	logs     []audit.Log
}

// Bootstrap loads products, orders and audit logs concurrently. It skips
// work when all three collections are already populated and force is
// false. Concurrent callers share a single in-flight fetch set and
// observe the same outcome. On success the three collections are replaced
// together; on failure the previous snapshot is kept and the bootstrap
// error is set.
func (s *Store) Bootstrap(ctx context.Context, force bool) error {
	s.mu.Lock()
	if !force && len(s.products) > 0 && len(s.orders) > 0 && len(s.auditLogs) > 0 {
		s.mu.Unlock()
		return nil
	}
	s.bootstrapping = true
	s.mu.Unlock()

	v, err, _ := s.flight.Do("bootstrap", func() (any, error) {
		var snap bootstrapSnapshot
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			snap.products, err = s.productSvc.List(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			snap.orders, err = s.orderSvc.List(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			snap.logs, err = s.auditSvc.List(gctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return snap, nil
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.bootstrapping = false

	if err != nil {
		s.bootstrapErr = httpx.ErrorMessage(err, bootstrapFallback)
		logger.Named("store").Warn("Bootstrap failed", zap.Error(err))
		return err
	}

	snap := v.(bootstrapSnapshot)
	s.products = snap.products
	s.orders = snap.orders
	s.auditLogs = snap.logs
	s.bootstrapErr = ""

	logger.Named("store").Info("Store bootstrapped",
		zap.Int("products", len(snap.products)),
		zap.Int("orders", len(snap.orders)),
		zap.Int("audit_logs", len(snap.logs)),
	)
	return nil
}

// AddToCart merges the product into the cart. Local only: no network
// call, no audit entry.
func (s *Store) AddToCart(p product.Product, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = cart.Add(s.cart, p, quantity)
	s.persistCart()
}

// RemoveFromCart drops the matching line. Idempotent when absent.
func (s *Store) RemoveFromCart(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = cart.Remove(s.cart, productID)
	s.persistCart()
}

// UpdateCartQuantity sets a line's quantity exactly; zero or negative
// removes the line.
func (s *Store) UpdateCartQuantity(productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = cart.SetQuantity(s.cart, productID, quantity)
	s.persistCart()
}

// ClearCart empties the cart unconditionally.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
	s.persistCart()
}

// UpdateProduct sends the full updated product, then re-syncs the
// catalog and the audit trail (the server appends the audit entry).
// Returns nil with the error recorded on any failure; the local snapshot
// is never touched on the failure path.
func (s *Store) UpdateProduct(ctx context.Context, p product.Product, adminUser string) *product.Product {
	updated, err := s.productSvc.Update(ctx, p)
	if err != nil {
		s.setError(err, updateProductFallback)
		return nil
	}

	products, logs, err := s.fetchProductsAndAudit(ctx)
	if err != nil {
		s.setError(err, updateProductFallback)
		return nil
	}

	s.mu.Lock()
	s.products = products
	s.auditLogs = logs
	s.bootstrapErr = ""
	s.mu.Unlock()

	logger.Named("store").Info("Product updated",
		zap.String("product_id", updated.ID),
		zap.String("admin", adminUser),
	)
	return updated
}

// UpdateOrderStatus patches the order status, then re-syncs orders and
// the audit trail. Any valid status may follow any other.
func (s *Store) UpdateOrderStatus(ctx context.Context, orderID string, status order.Status, adminUser string) *order.Order {
	updated, err := s.orderSvc.UpdateStatus(ctx, orderID, status, adminUser)
	if err != nil {
		s.setError(err, updateOrderFallback)
		return nil
	}

	orders, logs, err := s.fetchOrdersAndAudit(ctx)
	if err != nil {
		s.setError(err, updateOrderFallback)
		return nil
	}

	s.mu.Lock()
	s.orders = orders
	s.auditLogs = logs
	s.bootstrapErr = ""
	s.mu.Unlock()

	logger.Named("store").Info("Order status updated",
		zap.String("order_id", orderID),
		zap.String("status", string(status)),
		zap.String("admin", adminUser),
	)
	return updated
}

// AddAuditLog posts a new entry and prepends the server-assigned result.
func (s *Store) AddAuditLog(ctx context.Context, entry audit.Entry) *audit.Log {
	created, err := s.auditSvc.Create(ctx, entry)
	if err != nil {
		s.setError(err, auditLogFallback)
		return nil
	}

	s.mu.Lock()
	s.auditLogs = append([]audit.Log{*created}, s.auditLogs...)
	s.bootstrapErr = ""
	s.mu.Unlock()

	return created
}

// PlaceOrder posts the cart snapshot as a new order. An empty cart is a
// no-op returning nil without any network call. On success the catalog
// and audit trail re-sync (stock may have changed server-side), the order
// is prepended de-duplicated by id, and the cart clears. On failure the
// cart is left untouched so the user can retry.
func (s *Store) PlaceOrder(ctx context.Context, customer, email, address string) *order.Order {
	s.mu.Lock()
	items := make([]cart.Item, len(s.cart))
	copy(items, s.cart)
	s.mu.Unlock()

	if len(items) == 0 {
		return nil
	}

	created, err := s.orderSvc.Create(ctx, order.CreateParams{
		Customer: customer,
		Email:    email,
		Address:  address,
		Items:    items,
	})
	if err != nil {
		s.setError(err, placeOrderFallback)
		return nil
	}

	products, logs, err := s.fetchProductsAndAudit(ctx)
	if err != nil {
		s.setError(err, placeOrderFallback)
		return nil
	}

	s.mu.Lock()
	s.products = products
	s.auditLogs = logs

	orders := make([]order.Order, 0, len(s.orders)+1)
	orders = append(orders, *created)
	for _, o := range s.orders {
		if o.ID != created.ID {
			orders = append(orders, o)
		}
	}
	s.orders = orders

	s.cart = nil
	s.persistCart()
	s.bootstrapErr = ""
	s.mu.Unlock()

	logger.Named("store").Info("Order placed",
		zap.String("order_id", created.ID),
		zap.Int64("total", created.Total),
		zap.String("customer", customer),
	)
	return created
}

// ---- accessors ----

func (s *Store) Cart() []cart.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]cart.Item, len(s.cart))
	copy(out, s.cart)
	return out
}

func (s *Store) Products() []product.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]product.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) Orders() []order.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]order.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *Store) AuditLogs() []audit.Log {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]audit.Log, len(s.auditLogs))
	copy(out, s.auditLogs)
	return out
}

func (s *Store) IsBootstrapping() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bootstrapping
}

func (s *Store) BootstrapError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bootstrapErr
}

// ---- internals ----

func (s *Store) fetchProductsAndAudit(ctx context.Context) ([]product.Product, []audit.Log, error) {
	var (
		products []product.Product
		logs     []audit.Log
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = s.productSvc.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		logs, err = s.auditSvc.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return products, logs, nil
}

func (s *Store) fetchOrdersAndAudit(ctx context.Context) ([]order.Order, []audit.Log, error) {
	var (
		orders []order.Order
		logs   []audit.Log
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = s.orderSvc.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		logs, err = s.auditSvc.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return orders, logs, nil
}

func (s *Store) setError(err error, fallback string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bootstrapErr = httpx.ErrorMessage(err, fallback)
	logger.Named("store").Warn("Store mutation failed", zap.Error(err))
}

// persistCart expects s.mu held.
func (s *Store) persistCart() {
	if err := s.state.Save(CartKey, s.cart); err != nil {
		logger.Named("store").Warn("Failed to persist cart", zap.Error(err))
	}
}
