package handler

import (
	"errors"

	"anoa.com/kosthub/internal/dto"
	"anoa.com/kosthub/internal/guard"
	"anoa.com/kosthub/internal/middleware"
	"anoa.com/kosthub/internal/service"
	"anoa.com/kosthub/pkg/apperror"
	"anoa.com/kosthub/pkg/response"
	"github.com/gin-gonic/gin"
)

type StudentHandler struct {
	studentService service.StudentService
	guard          *guard.Guard
}

func NewStudentHandler(studentService service.StudentService, g *guard.Guard) *StudentHandler {
	return &StudentHandler{studentService: studentService, guard: g}
}

// JoinHostel onboards the calling student through an invite code. Route ini
// di-rate-limit (lihat wiring di main).
func (h *StudentHandler) JoinHostel(c *gin.Context) {
	p := middleware.PrincipalFrom(c)

	var input dto.JoinHostelInput
	if !bindJSON(c, &input) {
		return
	}

	profile, err := h.studentService.JoinHostel(c.Request.Context(), p.ID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, profile)
}

// MyProfile returns the caller's StudentProfile; tanpa profile, klien
// diarahkan ke onboarding.
func (h *StudentHandler) MyProfile(c *gin.Context) {
	p := middleware.PrincipalFrom(c)

	profile, err := h.guard.RequireStudentWithProfile(c.Request.Context(), p)
	if err != nil {
		if errors.Is(err, apperror.ErrNoProfile) {
			response.Denied(c, err, p.Role.Home())
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, profile)
}

func (h *StudentHandler) LeaveHostel(c *gin.Context) {
	p := middleware.PrincipalFrom(c)

	profile, err := h.guard.RequireStudentWithProfile(c.Request.Context(), p)
	if err != nil {
		response.Denied(c, err, p.Role.Home())
		return
	}

	if err := h.studentService.LeaveHostel(c.Request.Context(), profile.ID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"left": profile.HostelID})
}
