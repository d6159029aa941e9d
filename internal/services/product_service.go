package services

import (
	"log"

	"github.com/TaylenH/apiDirectory/internal/models"
	"github.com/TaylenH/apiDirectory/internal/repositories"
	"github.com/TaylenH/apiDirectory/internal/validation"
	"github.com/TaylenH/apiDirectory/pkg/rabbitmq"
	"golang.org/x/sync/errgroup"
)

// ProductService performs validated CRUD and query operations against
// the product collection. Every write validates its inputs before
// touching storage and fails fast on the first violation.
type ProductService struct {
	repo     repositories.ProductRepository
	mqClient *rabbitmq.Client // optional, nil disables event publishing
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, mqClient *rabbitmq.Client) *ProductService {
	return &ProductService{
		repo:     repo,
		mqClient: mqClient,
	}
}

// validateNewID checks id format and that no product already uses it.
// The existence check is an early exit only; the storage unique
// constraint decides races between concurrent adds.
func (s *ProductService) validateNewID(id int) error {
	if err := validation.ProductID(id); err != nil {
		return err
	}
	exists, err := s.repo.ExistsByID(id)
	if err != nil {
		return err
	}
	if exists {
		return models.ErrProductIDExists
	}
	return nil
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProduct retrieves a single product by its ID.
func (s *ProductService) GetProduct(id int) (*models.Product, error) {
	if err := validation.ProductID(id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(id)
}

// GetProductsByName retrieves all products whose name contains the
// query, case-insensitively. The result is unordered and may be empty.
func (s *ProductService) GetProductsByName(name string) ([]models.Product, error) {
	if err := validation.ProductName(name); err != nil {
		return nil, err
	}
	return s.repo.FindByName(name)
}

// GetProductsByPrice retrieves all products with the exact price.
func (s *ProductService) GetProductsByPrice(price float64) ([]models.Product, error) {
	if err := validation.Price(price); err != nil {
		return nil, err
	}
	return s.repo.FindByPrice(price)
}

// GetProductsByStock retrieves all products with the exact stock count.
func (s *ProductService) GetProductsByStock(stock int) ([]models.Product, error) {
	if err := validation.Stock(stock); err != nil {
		return nil, err
	}
	return s.repo.FindByStock(stock)
}

// AddProduct validates id, name, price and stock in that order, then
// persists a new product and returns it.
func (s *ProductService) AddProduct(id int, name string, price float64, stock int) (*models.Product, error) {
	if err := s.validateNewID(id); err != nil {
		return nil, err
	}
	if err := validation.ProductName(name); err != nil {
		return nil, err
	}
	if err := validation.Price(price); err != nil {
		return nil, err
	}
	if err := validation.Stock(stock); err != nil {
		return nil, err
	}

	product := &models.Product{
		ID:          id,
		ProductName: name,
		Price:       price,
		Stock:       stock,
	}
	if err := s.repo.Create(product); err != nil {
		return nil, err
	}

	s.publishEvent(rabbitmq.EventProductCreated, product)
	return product, nil
}

// UpdateProduct applies the supplied fields of the patch to an existing
// product, leaving nil fields unchanged. Supplied fields are validated
// before the product is looked up.
func (s *ProductService) UpdateProduct(id int, patch models.ProductPatch) (*models.Product, error) {
	if err := validation.ProductID(id); err != nil {
		return nil, err
	}
	if patch.ProductName != nil {
		if err := validation.ProductName(*patch.ProductName); err != nil {
			return nil, err
		}
	}
	if patch.Price != nil {
		if err := validation.Price(*patch.Price); err != nil {
			return nil, err
		}
	}
	if patch.Stock != nil {
		if err := validation.Stock(*patch.Stock); err != nil {
			return nil, err
		}
	}

	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if patch.ProductName != nil {
		product.ProductName = *patch.ProductName
	}
	if patch.Price != nil {
		product.Price = *patch.Price
	}
	if patch.Stock != nil {
		product.Stock = *patch.Stock
	}
	if err := s.repo.Update(product); err != nil {
		return nil, err
	}

	s.publishEvent(rabbitmq.EventProductUpdated, product)
	return product, nil
}

// UpdateProductName changes only the name of an existing product.
func (s *ProductService) UpdateProductName(id int, name string) (*models.Product, error) {
	return s.UpdateProduct(id, models.ProductPatch{ProductName: &name})
}

// UpdateProductPrice changes only the price of an existing product.
func (s *ProductService) UpdateProductPrice(id int, price float64) (*models.Product, error) {
	return s.UpdateProduct(id, models.ProductPatch{Price: &price})
}

// UpdateProductStock changes only the stock of an existing product.
func (s *ProductService) UpdateProductStock(id int, stock int) (*models.Product, error) {
	return s.UpdateProduct(id, models.ProductPatch{Stock: &stock})
}

// AddProducts adds every product concurrently and waits for all of
// them. If any element fails the whole call fails with that element's
// error; elements already committed by sibling goroutines are not
// rolled back. On success the created products are returned in input
// order.
func (s *ProductService) AddProducts(products []models.Product) ([]models.Product, error) {
	results := make([]models.Product, len(products))
	var g errgroup.Group
	for i, p := range products {
		i, p := i, p
		g.Go(func() error {
			created, err := s.AddProduct(p.ID, p.ProductName, p.Price, p.Stock)
			if err != nil {
				return err
			}
			results[i] = *created
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// UpdateProducts applies every change concurrently with the same
// all-or-error, non-transactional contract as AddProducts.
func (s *ProductService) UpdateProducts(changes []models.ProductChange) ([]models.Product, error) {
	results := make([]models.Product, len(changes))
	var g errgroup.Group
	for i, c := range changes {
		i, c := i, c
		g.Go(func() error {
			updated, err := s.UpdateProduct(c.ID, c.ProductPatch)
			if err != nil {
				return err
			}
			results[i] = *updated
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// publishEvent emits a catalog event when a broker client is attached.
// Publish failures are logged, never surfaced: the write already
// succeeded and the caller gets its product back regardless.
func (s *ProductService) publishEvent(eventType string, product *models.Product) {
	if s.mqClient == nil {
		return
	}
	if err := s.mqClient.PublishProductEvent(eventType, product); err != nil {
		log.Printf("Warning: failed to publish %s event for product %d: %v", eventType, product.ID, err)
	}
}
