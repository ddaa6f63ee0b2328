package payments

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"gymtrack-backend/internal/middleware"
	"gymtrack-backend/internal/services"
	"gymtrack-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	payments *services.PaymentService
}

func NewHandler(payments *services.PaymentService) *Handler {
	return &Handler{payments: payments}
}

// Record godoc
// @Summary Record a payment and renew the membership
// @Description Resets the member's validity window from now according to the plan.
// @Tags payments
// @Accept json
// @Produce json
// @Security Bearer
// @Param input body RecordPaymentInput true "Payment details"
// @Success 201 {object} utils.Response{data=RecordPaymentResponse}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /payments [post]
func (h *Handler) Record(c *gin.Context) {
	var input RecordPaymentInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	staffName := ""
	if user, ok := middleware.CurrentUser(c); ok {
		staffName = user.Name
	}

	payment, endDate, err := h.payments.RecordPayment(input.MemberID, input.MembershipPlan, input.Amount, staffName)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMemberNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Member not found"))
		case errors.Is(err, services.ErrInvalidPlan):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid membership plan"))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to record payment"))
		}
		return
	}

	c.JSON(http.StatusCreated, utils.NewResponse(http.StatusCreated, "Payment recorded and membership activated", RecordPaymentResponse{
		PaymentID: payment.ID,
		EndDate:   endDate.Format(time.RFC3339),
	}))
}

// List godoc
// @Summary List payments
// @Description Optional member_id filter; newest first, capped at 100.
// @Tags payments
// @Produce json
// @Security Bearer
// @Param member_id query int false "Member ID"
// @Success 200 {object} utils.Response{data=[]PaymentResponse}
// @Failure 400 {object} utils.Response
// @Router /payments [get]
func (h *Handler) List(c *gin.Context) {
	var memberID uint
	if memberIDStr := c.Query("member_id"); memberIDStr != "" {
		id, err := strconv.Atoi(memberIDStr)
		if err != nil || id < 1 {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid member_id"))
			return
		}
		memberID = uint(id)
	}

	entries, err := h.payments.List(memberID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch payments"))
		return
	}

	responses := make([]PaymentResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, toPaymentResponse(entry))
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Payments retrieved successfully", responses))
}
