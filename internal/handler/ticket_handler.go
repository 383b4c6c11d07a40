package handler

import (
	"anoa.com/kosthub/internal/dto"
	"anoa.com/kosthub/internal/guard"
	"anoa.com/kosthub/internal/middleware"
	"anoa.com/kosthub/internal/service"
	"anoa.com/kosthub/pkg/apperror"
	"anoa.com/kosthub/pkg/response"
	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	ticketService service.TicketService
	guard         *guard.Guard
}

func NewTicketHandler(ticketService service.TicketService, g *guard.Guard) *TicketHandler {
	return &TicketHandler{ticketService: ticketService, guard: g}
}

// CreateTicket membuat ticket atas nama profile si pemanggil; hostel diambil
// dari profile, bukan dari payload.
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	p := middleware.PrincipalFrom(c)

	profile, err := h.guard.RequireStudentWithProfile(c.Request.Context(), p)
	if err != nil {
		response.Denied(c, err, p.Role.Home())
		return
	}

	var input dto.CreateTicketInput
	if !bindJSON(c, &input) {
		return
	}

	ticket, err := h.ticketService.Create(c.Request.Context(), profile, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, ticket)
}

func (h *TicketHandler) MyTickets(c *gin.Context) {
	p := middleware.PrincipalFrom(c)

	profile, err := h.guard.RequireStudentWithProfile(c.Request.Context(), p)
	if err != nil {
		response.Denied(c, err, p.Role.Home())
		return
	}

	tickets, err := h.ticketService.ListForProfile(c.Request.Context(), profile.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, tickets)
}

func (h *TicketHandler) HostelTickets(c *gin.Context) {
	p := middleware.PrincipalFrom(c)
	hostelID, ok := pathID(c, "hostel_id")
	if !ok {
		return
	}

	if err := h.guard.RequireHostelOwner(c.Request.Context(), p, hostelID); err != nil {
		response.Denied(c, err, p.Role.Home())
		return
	}

	tickets, err := h.ticketService.ListForHostel(c.Request.Context(), hostelID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, tickets)
}

func (h *TicketHandler) GetTicket(c *gin.Context) {
	p := middleware.PrincipalFrom(c)
	ticketID, ok := pathID(c, "ticket_id")
	if !ok {
		return
	}

	if !h.guard.Ownership().CanAccessTicket(c.Request.Context(), p.ID, p.Role, ticketID) {
		response.Denied(c, apperror.ErrNotOwner, p.Role.Home())
		return
	}

	ticket, err := h.ticketService.GetByID(c.Request.Context(), ticketID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, ticket)
}

func (h *TicketHandler) Reply(c *gin.Context) {
	p := middleware.PrincipalFrom(c)
	ticketID, ok := pathID(c, "ticket_id")
	if !ok {
		return
	}

	if err := guard.RequireOwner(p); err != nil {
		response.Denied(c, err, p.Role.Home())
		return
	}
	if !h.guard.Ownership().CanAccessTicket(c.Request.Context(), p.ID, p.Role, ticketID) {
		response.Denied(c, apperror.ErrNotOwner, p.Role.Home())
		return
	}

	var input dto.OwnerReplyInput
	if !bindJSON(c, &input) {
		return
	}

	ticket, err := h.ticketService.Reply(c.Request.Context(), ticketID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, ticket)
}

func (h *TicketHandler) UpdateStatus(c *gin.Context) {
	p := middleware.PrincipalFrom(c)
	ticketID, ok := pathID(c, "ticket_id")
	if !ok {
		return
	}

	if err := guard.RequireOwner(p); err != nil {
		response.Denied(c, err, p.Role.Home())
		return
	}
	if !h.guard.Ownership().CanAccessTicket(c.Request.Context(), p.ID, p.Role, ticketID) {
		response.Denied(c, apperror.ErrNotOwner, p.Role.Home())
		return
	}

	var input dto.UpdateTicketStatusInput
	if !bindJSON(c, &input) {
		return
	}

	ticket, err := h.ticketService.UpdateStatus(c.Request.Context(), ticketID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, ticket)
}

func (h *TicketHandler) AddAdminNotes(c *gin.Context) {
	ticketID, ok := pathID(c, "ticket_id")
	if !ok {
		return
	}

	var input dto.AdminNotesInput
	if !bindJSON(c, &input) {
		return
	}

	ticket, err := h.ticketService.AddAdminNotes(c.Request.Context(), ticketID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, ticket)
}

func (h *TicketHandler) ListAll(c *gin.Context) {
	tickets, err := h.ticketService.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, tickets)
}
