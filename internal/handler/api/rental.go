package api

import (
	"net/http"

	reqdto "car-rental-api/internal/handler/dto/request"
	resdto "car-rental-api/internal/handler/dto/response"
	"car-rental-api/internal/handler/httperr"
	"car-rental-api/internal/usecase/commands"
	"car-rental-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RentalHandler struct {
	cmds commands.RentalCommands
	q    queries.RentalQueries
}

func NewRentalHandler(cmds commands.RentalCommands, q queries.RentalQueries) *RentalHandler {
	return &RentalHandler{cmds: cmds, q: q}
}

// @Summary Rent a car
// @Description Open a rental for an available car. A user holds at most one active rental
// @Tags rentals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RentCarRequest true "Rent request"
// @Success 201 {object} resdto.RentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/rentals [post]
func (h *RentalHandler) Rent(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req reqdto.RentCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "car_id is required", fieldDetail("car_id"))
		return
	}
	view, err := h.cmds.Rent(c.Request.Context(), userID, req.CarID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.RentResponse{
		Message: "Car rented successfully",
		Rental:  resdto.FromRentalView(view),
	})
}

// @Summary Return the rented car
// @Description Close the caller's active rental and charge it by the elapsed time
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ReturnResponse
// @Failure 404 {object} httperr.Response
// @Router /api/rentals/return [post]
func (h *RentalHandler) Return(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	view, err := h.cmds.ReturnCar(c.Request.Context(), userID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	rentalResp := resdto.FromRentalView(view)
	resp := resdto.ReturnResponse{
		Message: "Car returned successfully",
		Rental:  rentalResp,
	}
	if rentalResp.TotalFee != nil {
		resp.TotalFee = *rentalResp.TotalFee
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Active rental
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.RentalResponse
// @Failure 404 {object} httperr.Response
// @Router /api/rentals/active [get]
func (h *RentalHandler) Active(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	view, err := h.q.GetActiveRental(c.Request.Context(), userID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRentalView(view))
}

// @Summary Rental history
// @Description The caller's rentals, newest first
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Param status query string false "active or completed"
// @Param car_id query int false "Car ID"
// @Param min_fee query number false "Minimum total fee"
// @Param max_fee query number false "Maximum total fee"
// @Param rental_date_start query string false "YYYY-MM-DD"
// @Param rental_date_end query string false "YYYY-MM-DD"
// @Param page query int false "Page (default 1)"
// @Param per_page query int false "Items per page (default 10, max 100)"
// @Success 200 {object} resdto.PageResponse[resdto.RentalResponse]
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/rentals [get]
func (h *RentalHandler) History(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	page, err := h.q.ListUserRentals(c.Request.Context(), userID, queryParams(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRentalPage(page))
}

// @Summary Merchant rentals
// @Description Rentals of the merchant's cars, newest first
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Param status query string false "active or completed"
// @Param car_id query int false "Car ID"
// @Param user_id query int false "User ID"
// @Param page query int false "Page (default 1)"
// @Param per_page query int false "Items per page (default 10, max 100)"
// @Success 200 {object} resdto.PageResponse[resdto.RentalResponse]
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/merchant/rentals [get]
func (h *RentalHandler) MerchantRentals(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	page, err := h.q.ListMerchantRentals(c.Request.Context(), userID, queryParams(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRentalPage(page))
}

func fieldDetail(field string) httperr.FieldDetail {
	return httperr.FieldDetail{Field: field}
}
