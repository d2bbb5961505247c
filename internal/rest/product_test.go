package rest

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetAllProducts(t *testing.T) {
	handler := NewProductHandler()

	req, rec := jsonRequest(http.MethodGet, "")
	call(t, handler.GetAllProducts, req, rec, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	for _, id := range []string{"protein-bar", "medicine", "sofa"} {
		assert.Contains(t, rec.Body.String(), id)
	}
}

func TestGetProductByID(t *testing.T) {
	handler := NewProductHandler()

	req, rec := jsonRequest(http.MethodGet, "")
	call(t, handler.GetProductByID, req, rec, map[string]string{"id": "sofa"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "sofa")

	req, rec = jsonRequest(http.MethodGet, "")
	call(t, handler.GetProductByID, req, rec, map[string]string{"id": "vaporware"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
