package api

import (
	"net/http"

	reqdto "car-rental-api/internal/handler/dto/request"
	resdto "car-rental-api/internal/handler/dto/response"
	"car-rental-api/internal/handler/httperr"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/usecase/commands"
	"car-rental-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errEmptyCarUpdate = errs.Validation("body", "At least one of make, model, year, price_per_hour is required")

type CarHandler struct {
	cmds commands.CarCommands
	q    queries.CarQueries
}

func NewCarHandler(cmds commands.CarCommands, q queries.CarQueries) *CarHandler {
	return &CarHandler{cmds: cmds, q: q}
}

// @Summary Create car
// @Description List a new car for the merchant's company
// @Tags cars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCarRequest true "Create car request"
// @Success 201 {object} resdto.CarResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/cars [post]
func (h *CarHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req reqdto.CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Make, model, year and price_per_hour are required", nil)
		return
	}
	view, err := h.cmds.Create(c.Request.Context(), userID, req)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	h.respond(c, http.StatusCreated, view)
}

// @Summary List my cars
// @Description List the merchant's own cars with filters and pagination
// @Tags cars
// @Produce json
// @Security BearerAuth
// @Param make query string false "Make (case-insensitive)"
// @Param model query string false "Model (case-insensitive)"
// @Param year query int false "Year"
// @Param status query string false "AVAILABLE or RENTED"
// @Param min_price query number false "Minimum price per hour"
// @Param max_price query number false "Maximum price per hour"
// @Param page query int false "Page (default 1)"
// @Param per_page query int false "Items per page (default 10, max 100)"
// @Success 200 {object} resdto.PageResponse[resdto.CarResponse]
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/cars/mine [get]
func (h *CarHandler) ListMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	page, err := h.q.ListMerchantCars(c.Request.Context(), userID, queryParams(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	h.respondPage(c, page)
}

// @Summary Update car
// @Description Partially update one of the merchant's cars
// @Tags cars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Car ID"
// @Param request body reqdto.UpdateCarRequest true "Update car request"
// @Success 200 {object} resdto.CarResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/cars/{id} [put]
func (h *CarHandler) Update(c *gin.Context) {
	carID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	if req.IsEmpty() {
		httperr.FromError(c, errEmptyCarUpdate)
		return
	}
	view, err := h.cmds.Update(c.Request.Context(), userID, carID, req)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	h.respond(c, http.StatusOK, view)
}

// @Summary Delete car
// @Description Delete one of the merchant's cars. A rented car cannot be deleted
// @Tags cars
// @Security BearerAuth
// @Param id path int true "Car ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/cars/{id} [delete]
func (h *CarHandler) Delete(c *gin.Context) {
	carID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), userID, carID); err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get car
// @Tags cars
// @Produce json
// @Param id path int true "Car ID"
// @Success 200 {object} resdto.CarResponse
// @Failure 404 {object} httperr.Response
// @Router /api/cars/{id} [get]
func (h *CarHandler) Get(c *gin.Context) {
	carID, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetCar(c.Request.Context(), carID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	h.respond(c, http.StatusOK, view)
}

// @Summary Search available cars
// @Description Public search over AVAILABLE cars
// @Tags cars
// @Produce json
// @Param make query string false "Make (case-insensitive)"
// @Param model query string false "Model (case-insensitive)"
// @Param year query int false "Year"
// @Param min_price query number false "Minimum price per hour"
// @Param max_price query number false "Maximum price per hour"
// @Param merchant_id query int false "Merchant ID"
// @Param page query int false "Page (default 1)"
// @Param per_page query int false "Items per page (default 10, max 100)"
// @Success 200 {object} resdto.PageResponse[resdto.CarResponse]
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/cars [get]
func (h *CarHandler) Search(c *gin.Context) {
	page, err := h.q.SearchAvailable(c.Request.Context(), queryParams(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	h.respondPage(c, page)
}

func (h *CarHandler) respond(c *gin.Context, status int, view *queries.CarView) {
	resp, err := resdto.FromCarView(view)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(status, resp)
}

func (h *CarHandler) respondPage(c *gin.Context, page *queries.Page[queries.CarView]) {
	resp, err := resdto.FromCarPage(page)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
