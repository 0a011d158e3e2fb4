package customers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/shoply/ecommerce-api/app/api"
	"github.com/shoply/ecommerce-api/models"
)

type CustomerResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
}

type CustomerProvider interface {
	GetAllCustomers() ([]models.Customer, error)
	GetByID(id uint) (*models.Customer, error)
	CreateCustomer(customer *models.Customer) error
	SaveCustomer(customer *models.Customer) error
	DeleteCustomer(customer *models.Customer) error
}

type CustomerHandler struct {
	repo     CustomerProvider
	validate *validator.Validate
}

func NewCustomerHandler(r CustomerProvider) *CustomerHandler {
	return &CustomerHandler{
		repo:     r,
		validate: validator.New(),
	}
}

func (h *CustomerHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	customers, err := h.repo.GetAllCustomers()
	if err != nil {
		api.Error(w, http.StatusInternalServerError, "failed to fetch customers")
		return
	}

	response := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		response[i] = toResponse(&c)
	}
	api.WriteJSON(w, http.StatusOK, response)
}

func (h *CustomerHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	customer, ok := h.fetch(w, r)
	if !ok {
		return
	}
	api.WriteJSON(w, http.StatusOK, toResponse(customer))
}

func (h *CustomerHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name    string `json:"name" validate:"required,max=30"`
		Address string `json:"address" validate:"required,max=200"`
		Email   string `json:"email" validate:"required,email,max=100"`
	}
	if !api.Decode(w, r, &input) {
		return
	}

	if err := h.validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			api.ValidationError(w, validationMessages(verrs))
			return
		}
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	customer := &models.Customer{
		Name:    input.Name,
		Address: input.Address,
		Email:   input.Email,
	}
	if err := h.repo.CreateCustomer(customer); err != nil {
		api.Error(w, http.StatusInternalServerError, "failed to create customer")
		return
	}
	api.WriteJSON(w, http.StatusCreated, toResponse(customer))
}

func (h *CustomerHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	customer, ok := h.fetch(w, r)
	if !ok {
		return
	}

	// Fields absent from the body keep their stored values.
	var patch struct {
		Name    *string `json:"name"`
		Address *string `json:"address"`
		Email   *string `json:"email"`
	}
	if !api.Decode(w, r, &patch) {
		return
	}

	if patch.Name != nil {
		customer.Name = *patch.Name
	}
	if patch.Address != nil {
		customer.Address = *patch.Address
	}
	if patch.Email != nil {
		customer.Email = *patch.Email
	}

	if err := h.repo.SaveCustomer(customer); err != nil {
		api.Error(w, http.StatusInternalServerError, "failed to update customer")
		return
	}
	api.WriteJSON(w, http.StatusOK, toResponse(customer))
}

func (h *CustomerHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	customer, ok := h.fetch(w, r)
	if !ok {
		return
	}

	if err := h.repo.DeleteCustomer(customer); err != nil {
		api.Error(w, http.StatusInternalServerError, "failed to delete customer")
		return
	}
	api.Message(w, http.StatusOK, "Customer deleted successfully")
}

// fetch resolves the {id} route parameter to a customer, writing the 404
// response itself when the customer does not exist.
func (h *CustomerHandler) fetch(w http.ResponseWriter, r *http.Request) (*models.Customer, bool) {
	id, ok := api.PathID(r, "id")
	if !ok {
		api.Error(w, http.StatusNotFound, "Customer not found")
		return nil, false
	}

	customer, err := h.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, models.ErrCustomerNotFound) {
			api.Error(w, http.StatusNotFound, "Customer not found")
		} else {
			api.Error(w, http.StatusInternalServerError, "failed to fetch customer")
		}
		return nil, false
	}
	return customer, true
}

func toResponse(c *models.Customer) CustomerResponse {
	return CustomerResponse{
		ID:      c.ID,
		Name:    c.Name,
		Address: c.Address,
		Email:   c.Email,
	}
}

func validationMessages(errs validator.ValidationErrors) map[string]string {
	fields := make(map[string]string, len(errs))
	for _, fe := range errs {
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "this field is required"
		case "email":
			msg = "must be a valid email address"
		case "max":
			msg = "must be at most " + fe.Param() + " characters"
		default:
			msg = "invalid value"
		}
		fields[strings.ToLower(fe.Field())] = msg
	}
	return fields
}
