package adaptor

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"marketplace/internal/dto/request"
	"marketplace/internal/usecase"
	"marketplace/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ProductHandler struct {
	service usecase.ProductService
	log     *zap.Logger
}

func NewProductHandler(service usecase.ProductService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log.With(zap.String("handler", "product")),
	}
}

// CreateProduct handles POST /products (protected, sellers only)
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r)
	if !ok {
		return
	}

	var req request.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// the seller check comes first so buyers get 403 even with a bad body
	if caller.IsSeller {
		if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
			utils.ResponseBadRequest(w, "Validation failed", validationErrors)
			return
		}
	}

	product, err := h.service.CreateProduct(r.Context(), caller, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create product")
		return
	}

	utils.ResponseCreated(w, "success", product)
}

// GetProduct handles GET /products/single/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get product")
		return
	}

	utils.ResponseSuccess(w, "success", product)
}

// GetProducts handles GET /products?userId=&cat=&min=&max=&search=&sort=
func (h *ProductHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &request.ProductQuery{
		UserID: query.Get("userId"),
		Cat:    query.Get("cat"),
		Search: query.Get("search"),
		Sort:   query.Get("sort"),
	}

	var err error
	if req.Min, err = parsePrice(query, "min"); err != nil {
		utils.ResponseBadRequest(w, "Invalid min price", nil)
		return
	}
	if req.Max, err = parsePrice(query, "max"); err != nil {
		utils.ResponseBadRequest(w, "Invalid max price", nil)
		return
	}

	products, err := h.service.GetProducts(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get products")
		return
	}

	utils.ResponseSuccess(w, "success", products)
}

// UpdateProduct handles PUT /products/{id} (protected, owner only)
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r)
	if !ok {
		return
	}

	var req request.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	product, err := h.service.UpdateProduct(r.Context(), caller, chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update product")
		return
	}

	utils.ResponseSuccess(w, "success", product)
}

// DeleteProduct handles DELETE /products/{id} (protected, owner only)
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteProduct(r.Context(), caller, chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete product")
		return
	}

	utils.ResponseSuccess(w, "Add has been deleted!", nil)
}

func parsePrice(query url.Values, key string) (*float64, error) {
	raw := query.Get(key)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &value, nil
}
