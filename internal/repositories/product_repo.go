package repositories

import (
	"github.com/TaylenH/apiDirectory/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id int) (*models.Product, error)
	FindByName(name string) ([]models.Product, error)
	FindByPrice(price float64) ([]models.Product, error)
	FindByStock(stock int) ([]models.Product, error)
	ExistsByID(id int) (bool, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
}
