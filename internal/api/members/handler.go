package members

import (
	"errors"
	"net/http"
	"strconv"

	"gymtrack-backend/internal/models"
	"gymtrack-backend/internal/services"
	"gymtrack-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	members *services.MemberService
}

func NewHandler(members *services.MemberService) *Handler {
	return &Handler{members: members}
}

func memberID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid member ID"))
		return 0, false
	}
	return uint(id), true
}

// List godoc
// @Summary List all members
// @Description Returns every member with its status recomputed from the end date.
// @Tags members
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.Response{data=[]MemberResponse}
// @Failure 401 {object} utils.Response
// @Router /members [get]
func (h *Handler) List(c *gin.Context) {
	memberList, err := h.members.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch members"))
		return
	}

	responses := make([]MemberResponse, 0, len(memberList))
	for i := range memberList {
		responses = append(responses, toMemberResponse(&memberList[i]))
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Members retrieved successfully", responses))
}

// Get godoc
// @Summary Get a single member
// @Tags members
// @Produce json
// @Security Bearer
// @Param id path int true "Member ID"
// @Success 200 {object} utils.Response{data=MemberResponse}
// @Failure 404 {object} utils.Response
// @Router /members/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := memberID(c)
	if !ok {
		return
	}

	member, err := h.members.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Member not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch member"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Member retrieved successfully", toMemberResponse(member)))
}

// Create godoc
// @Summary Create a member
// @Description Admin only.
// @Tags members
// @Accept json
// @Produce json
// @Security Bearer
// @Param input body CreateMemberInput true "Member fields"
// @Success 201 {object} utils.Response{data=CreateMemberResponse}
// @Failure 400 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Router /members [post]
func (h *Handler) Create(c *gin.Context) {
	var input CreateMemberInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	member := &models.Member{
		Name:           input.Name,
		Contact:        input.Contact,
		MembershipType: input.MembershipType,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
	}

	if err := h.members.Create(member); err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create member"))
		return
	}

	c.JSON(http.StatusCreated, utils.NewResponse(http.StatusCreated, "Member created successfully", CreateMemberResponse{
		MemberID: member.ID,
	}))
}

// Update godoc
// @Summary Update a member
// @Description Partial update; only the provided fields change. Admin only.
// @Tags members
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Member ID"
// @Param input body UpdateMemberInput true "Fields to update"
// @Success 200 {object} utils.Response{data=MemberResponse}
// @Failure 404 {object} utils.Response
// @Router /members/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := memberID(c)
	if !ok {
		return
	}

	var input UpdateMemberInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	updates := make(map[string]interface{})
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Contact != nil {
		updates["contact"] = *input.Contact
	}
	if input.MembershipType != nil {
		updates["membership_type"] = *input.MembershipType
	}
	if input.StartDate != nil {
		updates["start_date"] = *input.StartDate
	}
	if input.EndDate != nil {
		updates["end_date"] = *input.EndDate
	}

	member, err := h.members.Update(id, updates)
	if err != nil {
		if errors.Is(err, services.ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Member not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update member"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Member updated successfully", toMemberResponse(member)))
}

// Delete godoc
// @Summary Delete a member
// @Description Admin only.
// @Tags members
// @Produce json
// @Security Bearer
// @Param id path int true "Member ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /members/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := memberID(c)
	if !ok {
		return
	}

	if err := h.members.Delete(id); err != nil {
		if errors.Is(err, services.ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Member not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to delete member"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Member deleted successfully", nil))
}
