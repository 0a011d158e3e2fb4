package router

import (
	"net/http"

	"github.com/shoply/ecommerce-api/app/api"
	"github.com/shoply/ecommerce-api/app/customers"
	"github.com/shoply/ecommerce-api/app/orders"
	"github.com/shoply/ecommerce-api/app/products"
)

// New registers every route on a fresh mux.
func New(
	customerHandler *customers.CustomerHandler,
	productHandler *products.ProductHandler,
	orderHandler *orders.OrderHandler,
) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /customers", customerHandler.HandleGetAll)
	mux.HandleFunc("POST /customers", customerHandler.HandleCreate)
	mux.HandleFunc("GET /customers/{id}", customerHandler.HandleGet)
	mux.HandleFunc("PUT /customers/{id}", customerHandler.HandleUpdate)
	mux.HandleFunc("DELETE /customers/{id}", customerHandler.HandleDelete)

	mux.HandleFunc("POST /products", productHandler.HandleCreate)
	mux.HandleFunc("GET /products", productHandler.HandleGetAll)
	mux.HandleFunc("GET /products/{id}", productHandler.HandleGet)
	mux.HandleFunc("PUT /products/{id}", productHandler.HandleUpdate)
	mux.HandleFunc("DELETE /products/{id}", productHandler.HandleDelete)

	mux.HandleFunc("POST /orders", orderHandler.HandleCreate)
	mux.HandleFunc("GET /orders/{order_id}/add_product/{product_id}", orderHandler.HandleAddProduct)
	mux.HandleFunc("DELETE /orders/{order_id}/remove_product", orderHandler.HandleRemoveProduct)

	// "GET /orders/user/{user_id}" and "GET /orders/{order_id}/products"
	// overlap (both match /orders/user/products) and neither is more
	// specific, so registering them separately panics. One pattern covers
	// both and dispatches on the segments, with the user branch taking
	// precedence for the ambiguous path.
	mux.HandleFunc("GET /orders/{first}/{second}", func(w http.ResponseWriter, r *http.Request) {
		first := r.PathValue("first")
		second := r.PathValue("second")
		switch {
		case first == "user":
			r.SetPathValue("user_id", second)
			orderHandler.HandleGetForCustomer(w, r)
		case second == "products":
			r.SetPathValue("order_id", first)
			orderHandler.HandleGetProducts(w, r)
		default:
			api.Error(w, http.StatusNotFound, "Not found")
		}
	})

	return mux
}
