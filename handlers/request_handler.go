package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/spikenet-labs/serverdesk/dto"
	"github.com/spikenet-labs/serverdesk/response"
	"github.com/spikenet-labs/serverdesk/services"
	"github.com/spikenet-labs/serverdesk/utils"
)

type RequestHandler struct {
	svc *services.RequestService
}

func NewRequestHandler(svc *services.RequestService) *RequestHandler {
	return &RequestHandler{svc: svc}
}

// submitBindingMessage turns a binding failure into the reason shown to the
// requester, one message per failed rule.
func submitBindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			switch fe.Field() {
			case "Email":
				if fe.Tag() == "max" {
					return "Email must be 50 characters or less."
				}
				return "Please enter a valid email address."
			case "Servername":
				if fe.Tag() == "max" {
					return "Server name must be 20 characters or less."
				}
				return "Please enter a server name."
			}
		}
	}
	return "Invalid submission."
}

// POST /request-server
func (h *RequestHandler) Submit(c *gin.Context) {
	var input dto.CreateRequestDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: submitBindingMessage(err)})
		return
	}

	req, err := h.svc.Submit(input)
	if err != nil {
		if errors.Is(err, services.ErrServernameTaken) {
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.RequestResponse{
		Message: fmt.Sprintf("Request for '%s' sent to the admin! Check your email soon.", req.Servername),
		Request: req,
	})
}

// GET /admin/requests
func (h *RequestHandler) List(c *gin.Context) {
	reqs, err := h.svc.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, reqs)
}

// GET /admin/requests/pending
func (h *RequestHandler) ListPending(c *gin.Context) {
	reqs, err := h.svc.ListPending()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, reqs)
}

// POST /admin/requests/:id/approve
func (h *RequestHandler) Approve(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid request id"})
		return
	}

	req, err := h.svc.Approve(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRequestNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, services.ErrNotPending):
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, response.RequestResponse{
		Message: fmt.Sprintf("Server creation for request #%d has started in the background.", req.ID),
		Request: req,
	})
}

// POST /admin/requests/:id/deny
func (h *RequestHandler) Deny(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid request id"})
		return
	}

	if err := h.svc.Deny(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrRequestNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: fmt.Sprintf("Request #%d denied.", id)})
}

// DELETE /admin/requests/:id
func (h *RequestHandler) Decommission(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid request id"})
		return
	}

	if err := h.svc.Decommission(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrRequestNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: fmt.Sprintf("Server for request #%d deleted.", id)})
}
