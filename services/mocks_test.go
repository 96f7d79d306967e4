package services_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"shop-service/cache"
	"shop-service/models"

	"gorm.io/gorm"
)

// --- Mock user repository ---

type mockUserRepo struct {
	mu     sync.Mutex
	users  map[uint]*models.User
	nextID uint
}

func newMockUserRepo(users ...*models.User) *mockUserRepo {
	repo := &mockUserRepo{users: make(map[uint]*models.User), nextID: 1}
	for _, u := range users {
		repo.users[u.ID] = u
		if u.ID >= repo.nextID {
			repo.nextID = u.ID + 1
		}
	}
	return repo
}

func (m *mockUserRepo) FindByID(_ context.Context, id uint) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) FindByUsername(_ context.Context, username string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Create(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	user.ID = m.nextID
	m.nextID++
	m.users[user.ID] = user
	return nil
}

// --- Mock order repository ---

type mockOrderRepo struct {
	mu              sync.Mutex
	orders          []models.Order
	findByUserCalls int
}

func (m *mockOrderRepo) FindAll(_ context.Context) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Order(nil), m.orders...), nil
}

func (m *mockOrderRepo) FindByID(_ context.Context, id uint) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.orders {
		if m.orders[i].ID == id {
			return &m.orders[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockOrderRepo) FindByUserID(_ context.Context, userID uint) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.findByUserCalls++
	var result []models.Order
	for _, o := range m.orders {
		if o.UserID == userID {
			result = append(result, o)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockOrderRepo) Create(_ context.Context, order *models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	order.ID = uint(len(m.orders) + 1)
	m.orders = append(m.orders, *order)
	return nil
}

func (m *mockOrderRepo) deleteOrder(id uint) {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.orders[:0]
	for _, o := range m.orders {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	m.orders = kept
}

func (m *mockOrderRepo) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.findByUserCalls
}

// --- Mock product repository ---

type mockProductRepo struct {
	mu       sync.Mutex
	products map[uint]*models.Product
	nextID   uint
}

func newMockProductRepo(products ...*models.Product) *mockProductRepo {
	repo := &mockProductRepo{products: make(map[uint]*models.Product), nextID: 1}
	for _, p := range products {
		repo.products[p.ID] = p
		if p.ID >= repo.nextID {
			repo.nextID = p.ID + 1
		}
	}
	return repo
}

func (m *mockProductRepo) FindByID(_ context.Context, id uint) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.products[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProductRepo) FindActive(_ context.Context) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []models.Product
	for _, p := range m.products {
		if !p.Archived {
			result = append(result, *p)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockProductRepo) FindAllOrderedByID(_ context.Context) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []models.Product
	for _, p := range m.products {
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockProductRepo) Create(_ context.Context, product *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	product.ID = m.nextID
	m.nextID++
	m.products[product.ID] = product
	return nil
}

func (m *mockProductRepo) Update(_ context.Context, id uint, updates map[string]interface{}) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return 0, nil
	}
	if name, ok := updates["name"].(string); ok {
		p.Name = name
	}
	if description, ok := updates["description"].(string); ok {
		p.Description = description
	}
	return 1, nil
}

func (m *mockProductRepo) Archive(_ context.Context, id uint) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return 0, nil
	}
	p.Archived = true
	return 1, nil
}

func (m *mockProductRepo) AddImage(_ context.Context, image *models.ProductImage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[image.ProductID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Images = append(p.Images, *image)
	return nil
}

// --- Fake cache ---

type fakeCache struct {
	mu       sync.Mutex
	entries  map[string][]byte
	getCalls int
	setCalls int
	getErr   error
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (f *fakeCache) Get(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	if val, ok := f.entries[key]; ok {
		return val, nil
	}
	return nil, cache.ErrCacheMiss
}

func (f *fakeCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setCalls++
	f.entries[key] = append([]byte(nil), value...)
	return nil
}

func (f *fakeCache) evict(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, key)
}

func (f *fakeCache) calls() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.getCalls, f.setCalls
}
