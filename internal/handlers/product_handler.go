package handlers

import (
	"errors"
	"log"
	"strconv"

	"github.com/TaylenH/apiDirectory/internal/models"
	"github.com/TaylenH/apiDirectory/internal/services"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
// The search route is registered before /:id so it is not captured as
// an id parameter.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/search", h.HandleSearchProducts)
	productRoutes.Get("/:id", h.HandleGetProduct)
	productRoutes.Post("/batch", h.HandleAddProducts)
	productRoutes.Post("/", h.HandleAddProduct)
	productRoutes.Patch("/batch", h.HandleUpdateProducts)
	productRoutes.Patch("/:id/name", h.HandleUpdateProductName)
	productRoutes.Patch("/:id/price", h.HandleUpdateProductPrice)
	productRoutes.Patch("/:id/stock", h.HandleUpdateProductStock)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
}

// statusForError maps catalog error kinds to HTTP statuses: validation
// failures to 400, missing products to 404, id collisions to 409 and
// everything else (storage failures) to 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrProductNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, models.ErrProductIDExists):
		return fiber.StatusConflict
	case errors.Is(err, models.ErrProductIDMissing),
		errors.Is(err, models.ErrInvalidProductID),
		errors.Is(err, models.ErrInvalidProductName),
		errors.Is(err, models.ErrInvalidPrice),
		errors.Is(err, models.ErrInvalidStock):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *ProductHandler) respondError(c *fiber.Ctx, message string, err error) error {
	log.Printf("%s: %v", message, err)
	return c.Status(statusForError(err)).JSON(fiber.Map{
		"message": message,
		"error":   err.Error(),
	})
}

func parseProductID(c *fiber.Ctx) (int, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return 0, models.ErrInvalidProductID
	}
	return id, nil
}

// HandleGetProducts retrieves all products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		return h.respondError(c, "Could not retrieve products", err)
	}
	return c.JSON(products)
}

// HandleGetProduct retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	id, err := parseProductID(c)
	if err != nil {
		return h.respondError(c, "Invalid product id", err)
	}
	product, err := h.service.GetProduct(id)
	if err != nil {
		return h.respondError(c, "Could not retrieve product", err)
	}
	return c.JSON(product)
}

// HandleSearchProducts queries products by name (case-insensitive
// substring), exact price or exact stock, depending on which query
// parameter is present.
func (h *ProductHandler) HandleSearchProducts(c *fiber.Ctx) error {
	switch {
	case c.Query("name") != "":
		products, err := h.service.GetProductsByName(c.Query("name"))
		if err != nil {
			return h.respondError(c, "Could not search products by name", err)
		}
		return c.JSON(products)
	case c.Query("price") != "":
		price, err := strconv.ParseFloat(c.Query("price"), 64)
		if err != nil {
			return h.respondError(c, "Invalid price", models.ErrInvalidPrice)
		}
		products, err := h.service.GetProductsByPrice(price)
		if err != nil {
			return h.respondError(c, "Could not search products by price", err)
		}
		return c.JSON(products)
	case c.Query("stock") != "":
		stock, err := strconv.Atoi(c.Query("stock"))
		if err != nil {
			return h.respondError(c, "Invalid stock", models.ErrInvalidStock)
		}
		products, err := h.service.GetProductsByStock(stock)
		if err != nil {
			return h.respondError(c, "Could not search products by stock", err)
		}
		return c.JSON(products)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "A name, price or stock query parameter is required",
		})
	}
}

// HandleAddProduct creates a new product.
func (h *ProductHandler) HandleAddProduct(c *fiber.Ctx) error {
	var req models.Product
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	product, err := h.service.AddProduct(req.ID, req.ProductName, req.Price, req.Stock)
	if err != nil {
		return h.respondError(c, "Could not create product", err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleAddProducts creates every product in the request body. The
// batch fails as a whole on the first error; already committed elements
// are not rolled back.
func (h *ProductHandler) HandleAddProducts(c *fiber.Ctx) error {
	var reqs []models.Product
	if err := c.BodyParser(&reqs); err != nil {
		log.Printf("Error parsing batch create request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Var(reqs, "min=1"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Batch must contain at least one product",
		})
	}

	products, err := h.service.AddProducts(reqs)
	if err != nil {
		return h.respondError(c, "Could not create products", err)
	}
	return c.Status(fiber.StatusCreated).JSON(products)
}

// HandleUpdateProduct applies a partial update. Fields absent from the
// body are left unchanged; fields present are validated even when zero.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := parseProductID(c)
	if err != nil {
		return h.respondError(c, "Invalid product id", err)
	}

	var patch models.ProductPatch
	if err := c.BodyParser(&patch); err != nil {
		log.Printf("Error parsing update product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	product, err := h.service.UpdateProduct(id, patch)
	if err != nil {
		return h.respondError(c, "Could not update product", err)
	}
	return c.JSON(product)
}

// HandleUpdateProductName changes only the product name.
func (h *ProductHandler) HandleUpdateProductName(c *fiber.Ctx) error {
	id, err := parseProductID(c)
	if err != nil {
		return h.respondError(c, "Invalid product id", err)
	}

	var body struct {
		ProductName string `json:"productName"`
	}
	if err := c.BodyParser(&body); err != nil {
		log.Printf("Error parsing update name request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	product, err := h.service.UpdateProductName(id, body.ProductName)
	if err != nil {
		return h.respondError(c, "Could not update product name", err)
	}
	return c.JSON(product)
}

// HandleUpdateProductPrice changes only the price.
func (h *ProductHandler) HandleUpdateProductPrice(c *fiber.Ctx) error {
	id, err := parseProductID(c)
	if err != nil {
		return h.respondError(c, "Invalid product id", err)
	}

	var body struct {
		Price float64 `json:"price"`
	}
	if err := c.BodyParser(&body); err != nil {
		log.Printf("Error parsing update price request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	product, err := h.service.UpdateProductPrice(id, body.Price)
	if err != nil {
		return h.respondError(c, "Could not update product price", err)
	}
	return c.JSON(product)
}

// HandleUpdateProductStock changes only the stock count.
func (h *ProductHandler) HandleUpdateProductStock(c *fiber.Ctx) error {
	id, err := parseProductID(c)
	if err != nil {
		return h.respondError(c, "Invalid product id", err)
	}

	var body struct {
		Stock int `json:"stock"`
	}
	if err := c.BodyParser(&body); err != nil {
		log.Printf("Error parsing update stock request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	product, err := h.service.UpdateProductStock(id, body.Stock)
	if err != nil {
		return h.respondError(c, "Could not update product stock", err)
	}
	return c.JSON(product)
}

// HandleUpdateProducts applies every change in the request body with
// the same batch contract as HandleAddProducts.
func (h *ProductHandler) HandleUpdateProducts(c *fiber.Ctx) error {
	var changes []models.ProductChange
	if err := c.BodyParser(&changes); err != nil {
		log.Printf("Error parsing batch update request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Var(changes, "min=1"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Batch must contain at least one change",
		})
	}

	products, err := h.service.UpdateProducts(changes)
	if err != nil {
		return h.respondError(c, "Could not update products", err)
	}
	return c.JSON(products)
}
