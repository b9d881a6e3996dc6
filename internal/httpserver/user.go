package httpserver

import (
	"errors"
	"net/http"

	"orderahead/internal/domain"
	usersvc "orderahead/internal/service/user"
	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

func registerHandler(users userService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req usersvc.RegisterInput
		if err := c.ShouldBindJSON(&req); err != nil {
			respondFail(c, http.StatusBadRequest, "invalid request body")
			return
		}
		u, err := users.Register(c.Request.Context(), req)
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				respondFail(c, http.StatusBadRequest, "a user with that email already exists")
				return
			}
			respondFail(c, http.StatusBadRequest, err.Error())
			return
		}
		respondOK(c, http.StatusOK, "User Registered Successfully", u)
	}
}

func loginHandler(users userService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondFail(c, http.StatusBadRequest, "invalid request body")
			return
		}
		u, token, err := users.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, usersvc.ErrInvalidCredentials) {
				respondFail(c, http.StatusBadRequest, "invalid email or password")
				return
			}
			respondFail(c, http.StatusInternalServerError, "an error occurred with login")
			return
		}
		respondOK(c, http.StatusOK, "Success", loginResponse{
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
			Token: token,
		})
	}
}

func meHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := currentUser(c)
		if !ok {
			respondFail(c, http.StatusUnauthorized, "unauthorized")
			return
		}
		respondOK(c, http.StatusOK, "User found", u)
	}
}
