package httpserver

import (
	"net/http"

	restaurantsvc "orderahead/internal/service/restaurant"
	"github.com/gin-gonic/gin"
)

func listRestaurantsHandler(restaurants restaurantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := restaurants.List(c.Request.Context())
		if err != nil {
			respondError(c, err, "No Restaurants found")
			return
		}
		if len(list) == 0 {
			respondFail(c, http.StatusNotFound, "No Restaurants found")
			return
		}
		respondOK(c, http.StatusOK, "Restaurants found", list)
	}
}

func getRestaurantHandler(restaurants restaurantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		rst, err := restaurants.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err, "Restaurant not found")
			return
		}
		respondOK(c, http.StatusOK, "Restaurant found", rst)
	}
}

func createRestaurantHandler(restaurants restaurantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req restaurantsvc.CreateInput
		if err := c.ShouldBindJSON(&req); err != nil {
			respondFail(c, http.StatusBadRequest, "invalid request body")
			return
		}
		rst, err := restaurants.Create(c.Request.Context(), req)
		if err != nil {
			respondFail(c, http.StatusBadRequest, err.Error())
			return
		}
		respondOK(c, http.StatusCreated, "Restaurant created", rst)
	}
}
