package orders

import (
	"errors"
	"net/http"
	"time"

	"github.com/shoply/ecommerce-api/app/api"
	"github.com/shoply/ecommerce-api/app/products"
	"github.com/shoply/ecommerce-api/models"
)

type OrderResponse struct {
	ID         uint                       `json:"id"`
	OrderDate  time.Time                  `json:"order_date"`
	CustomerID uint                       `json:"customer_id"`
	Products   []products.ProductResponse `json:"products"`
}

type OrderProvider interface {
	CreateOrder(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	GetByCustomer(customerID uint) ([]models.Order, error)
	AddProduct(order *models.Order, product *models.Product) error
	RemoveProduct(order *models.Order, product *models.Product) error
}

// ProductFinder is the slice of the products repository the order
// endpoints need.
type ProductFinder interface {
	GetByID(id uint) (*models.Product, error)
}

type OrderHandler struct {
	repo     OrderProvider
	products ProductFinder
}

func NewOrderHandler(r OrderProvider, p ProductFinder) *OrderHandler {
	return &OrderHandler{
		repo:     r,
		products: p,
	}
}

// HandleCreate creates an order with no product associations. The
// customer_id is not checked against the customers table; with foreign
// keys enforced the database rejects unknown customers at insert.
func (h *OrderHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input struct {
		CustomerID uint `json:"customer_id"`
	}
	if !api.Decode(w, r, &input) {
		return
	}

	order := &models.Order{CustomerID: input.CustomerID}
	if err := h.repo.CreateOrder(order); err != nil {
		api.Error(w, http.StatusInternalServerError, "failed to create order")
		return
	}
	api.WriteJSON(w, http.StatusCreated, toResponse(order))
}

func (h *OrderHandler) HandleAddProduct(w http.ResponseWriter, r *http.Request) {
	order, ok := h.fetchOrder(w, r)
	if !ok {
		return
	}

	productID, ok := api.PathID(r, "product_id")
	if !ok {
		api.Error(w, http.StatusNotFound, "Product not found")
		return
	}
	product, ok := h.fetchProduct(w, productID)
	if !ok {
		return
	}

	if order.HasProduct(product.ID) {
		api.Message(w, http.StatusBadRequest, "Product already added to the order")
		return
	}

	if err := h.repo.AddProduct(order, product); err != nil {
		api.Error(w, http.StatusInternalServerError, "failed to add product to order")
		return
	}

	order.Products = append(order.Products, *product)
	api.WriteJSON(w, http.StatusOK, toResponse(order))
}

func (h *OrderHandler) HandleRemoveProduct(w http.ResponseWriter, r *http.Request) {
	order, ok := h.fetchOrder(w, r)
	if !ok {
		return
	}

	var input struct {
		ProductID uint `json:"product_id"`
	}
	if !api.Decode(w, r, &input) {
		return
	}
	product, ok := h.fetchProduct(w, input.ProductID)
	if !ok {
		return
	}

	if !order.HasProduct(product.ID) {
		api.Message(w, http.StatusNotFound, "Product not found in the order")
		return
	}

	if err := h.repo.RemoveProduct(order, product); err != nil {
		api.Error(w, http.StatusInternalServerError, "failed to remove product from order")
		return
	}

	kept := order.Products[:0]
	for _, p := range order.Products {
		if p.ID != product.ID {
			kept = append(kept, p)
		}
	}
	order.Products = kept
	api.WriteJSON(w, http.StatusOK, toResponse(order))
}

// HandleGetForCustomer lists the orders placed by a customer. An unknown
// customer yields an empty list, not a 404.
func (h *OrderHandler) HandleGetForCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, ok := api.PathID(r, "user_id")
	if !ok {
		api.WriteJSON(w, http.StatusOK, []OrderResponse{})
		return
	}

	orders, err := h.repo.GetByCustomer(customerID)
	if err != nil {
		api.Error(w, http.StatusInternalServerError, "failed to fetch orders")
		return
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = toResponse(&o)
	}
	api.WriteJSON(w, http.StatusOK, response)
}

func (h *OrderHandler) HandleGetProducts(w http.ResponseWriter, r *http.Request) {
	order, ok := h.fetchOrder(w, r)
	if !ok {
		return
	}

	response := make([]products.ProductResponse, len(order.Products))
	for i, p := range order.Products {
		response[i] = products.ToResponse(&p)
	}
	api.WriteJSON(w, http.StatusOK, response)
}

func (h *OrderHandler) fetchOrder(w http.ResponseWriter, r *http.Request) (*models.Order, bool) {
	id, ok := api.PathID(r, "order_id")
	if !ok {
		api.Error(w, http.StatusNotFound, "Order not found")
		return nil, false
	}

	order, err := h.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, models.ErrOrderNotFound) {
			api.Error(w, http.StatusNotFound, "Order not found")
		} else {
			api.Error(w, http.StatusInternalServerError, "failed to fetch order")
		}
		return nil, false
	}
	return order, true
}

func (h *OrderHandler) fetchProduct(w http.ResponseWriter, id uint) (*models.Product, bool) {
	product, err := h.products.GetByID(id)
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

func toResponse(o *models.Order) OrderResponse {
	items := make([]products.ProductResponse, len(o.Products))
	for i, p := range o.Products {
		items[i] = products.ToResponse(&p)
	}
	return OrderResponse{
		ID:         o.ID,
		OrderDate:  o.OrderDate,
		CustomerID: o.CustomerID,
		Products:   items,
	}
}
