package repositories

import (
	"errors"
	"fmt"
	"strings"

	"github.com/TaylenH/apiDirectory/internal/models"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves every product in the collection.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID.
// Returns models.ErrProductNotFound when no row matches.
func (r *GORMProductRepository) GetByID(id int) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product by ID %d: %w", id, err)
	}
	return &product, nil
}

// FindByName retrieves all products whose name contains the query,
// case-insensitively.
func (r *GORMProductRepository) FindByName(name string) ([]models.Product, error) {
	var products []models.Product
	pattern := "%" + strings.ToLower(name) + "%"
	if err := r.db.Where("LOWER(product_name) LIKE ?", pattern).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to find products by name: %w", err)
	}
	return products, nil
}

// FindByPrice retrieves all products with the exact price.
func (r *GORMProductRepository) FindByPrice(price float64) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Where("price = ?", price).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to find products by price: %w", err)
	}
	return products, nil
}

// FindByStock retrieves all products with the exact stock count.
func (r *GORMProductRepository) FindByStock(stock int) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Where("stock = ?", stock).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to find products by stock: %w", err)
	}
	return products, nil
}

// ExistsByID reports whether a product with the given ID is stored.
func (r *GORMProductRepository) ExistsByID(id int) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Product{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check product existence: %w", err)
	}
	return count > 0, nil
}

// Create inserts a new product. The primary key constraint is the
// source of truth for id uniqueness; a duplicate key surfaces as
// models.ErrProductIDExists. Requires TranslateError on the gorm config.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.ErrProductIDExists
		}
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update persists all fields of an existing product.
// Returns models.ErrProductNotFound when no row matched the ID.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Model(product).Select("product_name", "price", "stock").Updates(product)
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return models.ErrProductNotFound
	}
	return nil
}
