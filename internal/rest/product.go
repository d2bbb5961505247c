package rest

import (
	"net/http"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"

	"quiverArcade/business/product"
)

type ProductHandler struct{}

func NewProductHandler() *ProductHandler {
	return &ProductHandler{}
}

// GetAllProducts returns the static product catalogue for the select screen.
func (h *ProductHandler) GetAllProducts(c echo.Context) error {
	return c.JSON(http.StatusOK, fres.Response.StatusOK(product.All()))
}

// GetProductByID returns one profile.
func (h *ProductHandler) GetProductByID(c echo.Context) error {
	profile, ok := product.ByID(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, ResponseError{Message: "product not found"})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(profile))
}
