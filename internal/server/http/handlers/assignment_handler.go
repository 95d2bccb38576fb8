package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/gpsolutions/internal/domain/model"
	"github.com/polkiloo/gpsolutions/internal/server/http/dto"
)

// AssignmentHandler serves the session's assignment store and cart.
type AssignmentHandler struct {
	facade AssignmentFacade
}

// NewAssignmentHandler constructs AssignmentHandler.
func NewAssignmentHandler(facade AssignmentFacade) *AssignmentHandler {
	return &AssignmentHandler{facade: facade}
}

// List handles GET /api/assignments.
func (h *AssignmentHandler) List(c *gin.Context) {
	list, err := h.facade.Assignments(c.Request.Context(), CurrentSessionID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAssignmentDTOs(list))
}

// Save handles POST /api/assignments.
func (h *AssignmentHandler) Save(c *gin.Context) {
	var req dto.SaveAssignmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Assignments == nil {
		respondError(c, http.StatusBadRequest, "Invalid data")
		return
	}

	batch := make([]model.SingleAssignment, 0, len(req.Assignments))
	for _, a := range req.Assignments {
		batch = append(batch, fromAssignmentDTO(a))
	}

	list, err := h.facade.SaveAssignments(c.Request.Context(), CurrentSessionID(c), batch)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAssignmentDTOs(list))
}

// Delete handles DELETE /api/assignments?id=<n> and DELETE /api/assignments?clear=true.
func (h *AssignmentHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := CurrentSessionID(c)

	if c.Query("clear") == "true" {
		if err := h.facade.ClearAssignments(ctx, sessionID); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, []dto.Assignment{})
		return
	}

	raw, ok := c.GetQuery("id")
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid delete request")
		return
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid delete request")
		return
	}

	list, err := h.facade.DeleteAssignment(ctx, sessionID, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAssignmentDTOs(list))
}

// Finalize handles POST /api/assignments/finalize.
func (h *AssignmentHandler) Finalize(c *gin.Context) {
	var req dto.FinalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid data")
		return
	}

	a, err := h.facade.Finalize(c.Request.Context(), CurrentSessionID(c), model.AssignmentDraft{
		ProjectType:  req.ProjectType,
		Topic:        req.Topic,
		UrgencyType:  req.UrgencyType,
		UrgencyValue: req.UrgencyValue.String(),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toAssignmentDTO(*a))
}

// Cart handles GET /api/cart.
func (h *AssignmentHandler) Cart(c *gin.Context) {
	summary, err := h.facade.Cart(c.Request.Context(), CurrentSessionID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartResponse(summary))
}

// ClearStore handles DELETE /api/admin/assignments.
func (h *AssignmentHandler) ClearStore(c *gin.Context) {
	if err := h.facade.ClearAssignmentStore(c.Request.Context()); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
