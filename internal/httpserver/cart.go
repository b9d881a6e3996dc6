package httpserver

import (
	"net/http"

	cartsvc "orderahead/internal/service/cart"
	"github.com/gin-gonic/gin"
)

type cartItemsRequest struct {
	Items []cartsvc.ItemInput `json:"items"`
}

// getCartHandler serves both /cart (the caller's own cart) and /cart/:id
// (direct lookup by cart id).
func getCartHandler(carts cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := currentUser(c)
		if !ok {
			respondFail(c, http.StatusUnauthorized, "unauthorized")
			return
		}
		cart, err := carts.Get(c.Request.Context(), u.ID, c.Param("id"))
		if err != nil {
			respondError(c, err, "No Cart found")
			return
		}
		respondOK(c, http.StatusOK, "Cart found", cart)
	}
}

func createOrAddCartHandler(carts cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := currentUser(c)
		if !ok {
			respondFail(c, http.StatusUnauthorized, "unauthorized")
			return
		}
		// An absent or empty body is a valid create-empty-cart request.
		var req cartItemsRequest
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				respondFail(c, http.StatusBadRequest, "invalid request body")
				return
			}
		}
		cart, err := carts.CreateOrAdd(c.Request.Context(), u.ID, req.Items)
		if err != nil {
			respondError(c, err, "No Cart found")
			return
		}
		respondOK(c, http.StatusOK, "Cart found", cart)
	}
}

func updateCartHandler(carts cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := currentUser(c)
		if !ok {
			respondFail(c, http.StatusUnauthorized, "unauthorized")
			return
		}
		var req cartItemsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondFail(c, http.StatusBadRequest, "invalid request body")
			return
		}
		cart, err := carts.SetQuantities(c.Request.Context(), u.ID, req.Items)
		if err != nil {
			respondError(c, err, "Cart not found")
			return
		}
		respondOK(c, http.StatusOK, "Cart updated successfully", cart)
	}
}

func deleteCartHandler(carts cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := currentUser(c)
		if !ok {
			respondFail(c, http.StatusUnauthorized, "unauthorized")
			return
		}
		if err := carts.Delete(c.Request.Context(), u.ID); err != nil {
			respondError(c, err, "Cart not found")
			return
		}
		respondOK(c, http.StatusOK, "Cart deleted successfully", nil)
	}
}
