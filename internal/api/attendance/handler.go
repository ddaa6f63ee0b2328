package attendance

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
	attendance *services.AttendanceService
}

func NewHandler(attendance *services.AttendanceService) *Handler {
	return &Handler{attendance: attendance}
}

// CheckIn godoc
// @Summary Check a member in
// @Description Rejects expired memberships and members already checked in today.
// @Tags attendance
// @Accept json
// @Produce json
// @Security Bearer
// @Param input body CheckInInput true "Member to check in"
// @Success 201 {object} utils.Response{data=CheckInResponse}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /attendance/checkin [post]
func (h *Handler) CheckIn(c *gin.Context) {
	var input CheckInInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	staffName := ""
	if user, ok := middleware.CurrentUser(c); ok {
		staffName = user.Name
	}

	session, member, err := h.attendance.CheckIn(input.MemberID, staffName)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMemberNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Member not found"))
		case errors.Is(err, services.ErrMembershipExpired):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Member subscription has expired. Please renew."))
		case errors.Is(err, services.ErrAlreadyCheckedIn):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Member is already checked in"))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to check in"))
		}
		return
	}

	c.JSON(http.StatusCreated, utils.NewResponse(http.StatusCreated, "Check-in successful", CheckInResponse{
		AttendanceID: session.ID,
		MemberName:   member.Name,
		CheckInTime:  session.CheckInTime.Format(time.RFC3339),
	}))
}

// CheckOut godoc
// @Summary Check a member out
// @Tags attendance
// @Accept json
// @Produce json
// @Security Bearer
// @Param input body CheckOutInput true "Member to check out"
// @Success 200 {object} utils.Response{data=CheckOutResponse}
// @Failure 404 {object} utils.Response
// @Router /attendance/checkout [post]
func (h *Handler) CheckOut(c *gin.Context) {
	var input CheckOutInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	checkOutTime, err := h.attendance.CheckOut(input.MemberID)
	if err != nil {
		if errors.Is(err, services.ErrNoOpenSession) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "No active check-in found for this member"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to check out"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Check-out successful", CheckOutResponse{
		CheckOutTime: checkOutTime.Format(time.RFC3339),
	}))
}

// List godoc
// @Summary List attendance history
// @Description Optional member_id and date (YYYY-MM-DD) filters; newest first, capped at 100.
// @Tags attendance
// @Produce json
// @Security Bearer
// @Param member_id query int false "Member ID"
// @Param date query string false "Calendar date (YYYY-MM-DD)"
// @Success 200 {object} utils.Response{data=[]SessionResponse}
// @Failure 400 {object} utils.Response
// @Router /attendance [get]
func (h *Handler) List(c *gin.Context) {
	var filter services.AttendanceFilter

	if memberIDStr := c.Query("member_id"); memberIDStr != "" {
		memberID, err := strconv.Atoi(memberIDStr)
		if err != nil || memberID < 1 {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid member_id"))
			return
		}
		filter.MemberID = uint(memberID)
	}

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD"))
			return
		}
		filter.Date = &date
	}

	entries, err := h.attendance.List(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch attendance"))
		return
	}

	responses := make([]SessionResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, toSessionResponse(entry, false))
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Attendance retrieved successfully", responses))
}

// Today godoc
// @Summary List today's attendance
// @Tags attendance
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.Response{data=[]SessionResponse}
// @Router /attendance/today [get]
func (h *Handler) Today(c *gin.Context) {
	entries, err := h.attendance.ListToday()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch attendance"))
		return
	}

	responses := make([]SessionResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, toSessionResponse(entry, true))
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Today's attendance retrieved successfully", responses))
}
