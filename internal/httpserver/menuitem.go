package httpserver

import (
	"errors"
	"net/http"

	"orderahead/internal/domain"
	menuitemsvc "orderahead/internal/service/menuitem"
	"github.com/gin-gonic/gin"
)

func listMenuItemsHandler(items menuItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := items.List(c.Request.Context())
		if err != nil {
			respondError(c, err, "No Menu Items found")
			return
		}
		if len(list) == 0 {
			respondFail(c, http.StatusNotFound, "No Menu Items found")
			return
		}
		respondOK(c, http.StatusOK, "Menu Items found", list)
	}
}

func listMenuItemsByRestaurantHandler(items menuItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := items.ListByRestaurant(c.Request.Context(), c.Param("restaurantId"))
		if err != nil {
			respondError(c, err, "No Menu Items found for this Restaurant")
			return
		}
		if len(list) == 0 {
			respondFail(c, http.StatusNotFound, "No Menu Items found for this Restaurant")
			return
		}
		respondOK(c, http.StatusOK, "Menu Items found", list)
	}
}

func getMenuItemHandler(items menuItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, err := items.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err, "Menu Item not found")
			return
		}
		respondOK(c, http.StatusOK, "Menu Item found", item)
	}
}

func createMenuItemHandler(items menuItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req menuitemsvc.CreateInput
		if err := c.ShouldBindJSON(&req); err != nil {
			respondFail(c, http.StatusBadRequest, "invalid request body")
			return
		}
		item, err := items.Create(c.Request.Context(), req)
		if err != nil {
			respondFail(c, http.StatusBadRequest, err.Error())
			return
		}
		respondOK(c, http.StatusCreated, "Menu Item created successfully", item)
	}
}

func updateMenuItemHandler(items menuItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req menuitemsvc.UpdateInput
		if err := c.ShouldBindJSON(&req); err != nil {
			respondFail(c, http.StatusBadRequest, "invalid request body")
			return
		}
		item, err := items.Update(c.Request.Context(), c.Param("id"), req)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				respondFail(c, http.StatusNotFound, "Menu Item not found")
				return
			}
			respondFail(c, http.StatusBadRequest, err.Error())
			return
		}
		respondOK(c, http.StatusOK, "Menu Item updated successfully", item)
	}
}

func deleteMenuItemHandler(items menuItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := items.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err, "Menu Item not found")
			return
		}
		respondOK(c, http.StatusOK, "Menu Item deleted successfully", nil)
	}
}
