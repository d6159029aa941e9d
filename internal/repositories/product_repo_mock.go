package repositories

import (
	"strings"
	"sync"

	"github.com/TaylenH/apiDirectory/internal/models"
)

// MockProductRepository is an in-memory implementation of
// ProductRepository, used by tests and local runs without a database.
type MockProductRepository struct {
	products map[int]models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[int]models.Product),
	}
}

// GetAll returns all products in no particular order.
func (r *MockProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		productList = append(productList, p)
	}
	return productList, nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id int) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, models.ErrProductNotFound
	}
	return &product, nil
}

// FindByName returns all products whose name contains the query,
// case-insensitively.
func (r *MockProductRepository) FindByName(name string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query := strings.ToLower(name)
	matches := make([]models.Product, 0)
	for _, p := range r.products {
		if strings.Contains(strings.ToLower(p.ProductName), query) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

// FindByPrice returns all products with the exact price.
func (r *MockProductRepository) FindByPrice(price float64) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]models.Product, 0)
	for _, p := range r.products {
		if p.Price == price {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

// FindByStock returns all products with the exact stock count.
func (r *MockProductRepository) FindByStock(stock int) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]models.Product, 0)
	for _, p := range r.products {
		if p.Stock == stock {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

// ExistsByID reports whether a product with the given ID is stored.
func (r *MockProductRepository) ExistsByID(id int) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.products[id]
	return ok, nil
}

// Create adds a new product, enforcing id uniqueness.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; ok {
		return models.ErrProductIDExists
	}
	r.products[product.ID] = *product
	return nil
}

// Update modifies an existing product.
func (r *MockProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return models.ErrProductNotFound
	}
	r.products[product.ID] = *product
	return nil
}
