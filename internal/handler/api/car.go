package api

import (
	"errors"
	"net/http"

	reqdto "rentwheels/internal/handler/dto/request"
	resdto "rentwheels/internal/handler/dto/response"
	"rentwheels/internal/handler/middleware"
	"rentwheels/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CarHandler struct {
	carUseCase usecase.CarUseCase
}

func NewCarHandler(carUseCase usecase.CarUseCase) *CarHandler {
	return &CarHandler{
		carUseCase: carUseCase,
	}
}

// @Summary List cars
// @Description List the car catalogue with optional filters
// @Tags cars
// @Produce json
// @Param location query string false "Location substring"
// @Param make query string false "Exact make (case-insensitive)"
// @Param min_price_cents query int false "Minimum daily price in cents"
// @Param max_price_cents query int false "Maximum daily price in cents"
// @Param only_available query bool false "Only listings accepting bookings"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} resdto.CarResponse
// @Failure 400 {object} map[string]string
// @Router /cars [get]
func (h *CarHandler) ListCars(c *gin.Context) {
	var query reqdto.ListCarsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	views, err := h.carUseCase.List(c.Request.Context(), query.ToFilter())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCarViews(views))
}

// @Summary Get car
// @Description Get a single car listing
// @Tags cars
// @Produce json
// @Param id path string true "Car ID"
// @Success 200 {object} resdto.CarResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cars/{id} [get]
func (h *CarHandler) GetCar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid car ID format",
		})
		return
	}

	view, err := h.carUseCase.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCarNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Car not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCarView(view))
}

// @Summary List own cars
// @Description List the current dealer's car listings
// @Tags cars
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CarResponse
// @Failure 401 {object} map[string]string
// @Router /cars/mine [get]
func (h *CarHandler) ListMyCars(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.carUseCase.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCarViews(views))
}

// @Summary Create car
// @Description Publish a new car listing (dealer or admin)
// @Tags cars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCarRequest true "Car listing"
// @Success 201 {object} resdto.CarResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /cars [post]
func (h *CarHandler) CreateCar(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	role, _ := middleware.GetUserRole(c)

	var req reqdto.CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.carUseCase.Create(c.Request.Context(), role, usecase.CreateCarParams{
		OwnerID:          userID,
		Make:             req.Make,
		Model:            req.Model,
		Year:             req.Year,
		Location:         req.Location,
		PricePerDayCents: req.PricePerDayCents,
		Description:      req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDealerOnly):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Dealer or administrator role required",
			})
		case errors.Is(err, usecase.ErrInvalidCar):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid car attributes",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCarView(view))
}

// @Summary Update car
// @Description Patch a car listing (owner or admin)
// @Tags cars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Car ID"
// @Param request body reqdto.UpdateCarRequest true "Fields to update"
// @Success 200 {object} resdto.CarResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cars/{id} [patch]
func (h *CarHandler) UpdateCar(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	role, _ := middleware.GetUserRole(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid car ID format",
		})
		return
	}

	var req reqdto.UpdateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.carUseCase.Update(c.Request.Context(), id, userID, role, usecase.UpdateCarParams{
		Location:         req.Location,
		PricePerDayCents: req.PricePerDayCents,
		Available:        req.Available,
		Description:      req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCarNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Car not found",
			})
		case errors.Is(err, usecase.ErrCarForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Only the listing owner or an administrator can update",
			})
		case errors.Is(err, usecase.ErrInvalidCar):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid car attributes",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCarView(view))
}

// @Summary Delete car
// @Description Remove a car listing (owner or admin)
// @Tags cars
// @Produce json
// @Security BearerAuth
// @Param id path string true "Car ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /cars/{id} [delete]
func (h *CarHandler) DeleteCar(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	role, _ := middleware.GetUserRole(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid car ID format",
		})
		return
	}

	if err := h.carUseCase.Delete(c.Request.Context(), id, userID, role); err != nil {
		switch {
		case errors.Is(err, usecase.ErrCarNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Car not found",
			})
		case errors.Is(err, usecase.ErrCarForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Only the listing owner or an administrator can delete",
			})
		case errors.Is(err, usecase.ErrCarHasBooking):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Car has bookings and cannot be deleted",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
