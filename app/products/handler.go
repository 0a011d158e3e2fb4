package products

import (
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/shoply/ecommerce-api/app/api"
	"github.com/shoply/ecommerce-api/models"
)

type ProductResponse struct {
	ID          uint    `json:"id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
}

type ProductProvider interface {
	GetAllProducts() ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	CreateProduct(product *models.Product) error
	SaveProduct(product *models.Product) error
	DeleteProduct(product *models.Product) error
}

type ProductHandler struct {
	repo ProductProvider
}

func NewProductHandler(r ProductProvider) *ProductHandler {
	return &ProductHandler{repo: r}
}

// HandleCreate persists whatever the body carries. Unlike the customer
// path there is no field validation; absent fields are stored as zero
// values.
func (h *ProductHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input struct {
		ProductName string  `json:"product_name"`
		Price       float64 `json:"price"`
	}
	if !api.Decode(w, r, &input) {
		return
	}

	product := &models.Product{
		ProductName: input.ProductName,
		Price:       decimal.NewFromFloat(input.Price),
	}
	if err := h.repo.CreateProduct(product); err != nil {
		api.Error(w, http.StatusInternalServerError, "failed to create product")
		return
	}
	api.WriteJSON(w, http.StatusCreated, ToResponse(product))
}

func (h *ProductHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	products, err := h.repo.GetAllProducts()
	if err != nil {
		api.Error(w, http.StatusInternalServerError, "failed to fetch products")
		return
	}

	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = ToResponse(&p)
	}
	api.WriteJSON(w, http.StatusOK, response)
}

func (h *ProductHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	product, ok := h.fetch(w, r)
	if !ok {
		return
	}
	api.WriteJSON(w, http.StatusOK, ToResponse(product))
}

func (h *ProductHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	product, ok := h.fetch(w, r)
	if !ok {
		return
	}

	var patch struct {
		ProductName *string  `json:"product_name"`
		Price       *float64 `json:"price"`
	}
	if !api.Decode(w, r, &patch) {
		return
	}

	if patch.ProductName != nil {
		product.ProductName = *patch.ProductName
	}
	if patch.Price != nil {
		product.Price = decimal.NewFromFloat(*patch.Price)
	}

	if err := h.repo.SaveProduct(product); err != nil {
		api.Error(w, http.StatusInternalServerError, "failed to update product")
		return
	}
	api.WriteJSON(w, http.StatusOK, ToResponse(product))
}

func (h *ProductHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	product, ok := h.fetch(w, r)
	if !ok {
		return
	}

	if err := h.repo.DeleteProduct(product); err != nil {
		api.Error(w, http.StatusInternalServerError, "failed to delete product")
		return
	}
	api.Message(w, http.StatusOK, "Product deleted successfully")
}

func (h *ProductHandler) fetch(w http.ResponseWriter, r *http.Request) (*models.Product, bool) {
	id, ok := api.PathID(r, "id")
	if !ok {
		api.Error(w, http.StatusNotFound, "Product not found")
		return nil, false
	}

	product, err := h.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			api.Error(w, http.StatusNotFound, "Product not found")
		} else {
			api.Error(w, http.StatusInternalServerError, "failed to fetch product")
		}
		return nil, false
	}
	return product, true
}

// ToResponse maps a product to its wire shape. The orders package reuses
// it when embedding products in order payloads.
func ToResponse(p *models.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		ProductName: p.ProductName,
		Price:       p.Price.InexactFloat64(),
	}
}
