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

type PaymentHandler struct {
	paymentService service.PaymentService
	guard          *guard.Guard
}

func NewPaymentHandler(paymentService service.PaymentService, g *guard.Guard) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService, guard: g}
}

// GenerateDues membuat tagihan bulanan untuk seluruh penghuni hostel.
// Penghuni yang sudah punya tagihan di bulan itu dilewati, jadi aman
// dipanggil ulang.
func (h *PaymentHandler) GenerateDues(c *gin.Context) {
	p := middleware.PrincipalFrom(c)
	hostelID, ok := pathID(c, "hostel_id")
	if !ok {
		return
	}

	if err := h.guard.RequireHostelOwner(c.Request.Context(), p, hostelID); err != nil {
		response.Denied(c, err, p.Role.Home())
		return
	}

	var input dto.GenerateDuesInput
	if !bindJSON(c, &input) {
		return
	}

	payments, err := h.paymentService.GenerateDues(c.Request.Context(), hostelID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, payments)
}

func (h *PaymentHandler) MarkPaid(c *gin.Context) {
	p := middleware.PrincipalFrom(c)
	paymentID, ok := pathID(c, "payment_id")
	if !ok {
		return
	}

	if err := guard.RequireOwner(p); err != nil {
		response.Denied(c, err, p.Role.Home())
		return
	}
	if !h.guard.Ownership().CanAccessPayment(c.Request.Context(), p.ID, p.Role, paymentID) {
		response.Denied(c, apperror.ErrNotOwner, p.Role.Home())
		return
	}

	payment, err := h.paymentService.MarkPaid(c.Request.Context(), paymentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, payment)
}

func (h *PaymentHandler) MyPayments(c *gin.Context) {
	p := middleware.PrincipalFrom(c)

	profile, err := h.guard.RequireStudentWithProfile(c.Request.Context(), p)
	if err != nil {
		response.Denied(c, err, p.Role.Home())
		return
	}

	payments, err := h.paymentService.ListForProfile(c.Request.Context(), profile.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, payments)
}

func (h *PaymentHandler) HostelPayments(c *gin.Context) {
	p := middleware.PrincipalFrom(c)
	hostelID, ok := pathID(c, "hostel_id")
	if !ok {
		return
	}

	if err := h.guard.RequireHostelOwner(c.Request.Context(), p, hostelID); err != nil {
		response.Denied(c, err, p.Role.Home())
		return
	}

	payments, err := h.paymentService.ListForHostel(c.Request.Context(), hostelID, c.Query("month"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, payments)
}
