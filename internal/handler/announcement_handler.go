package handler

import (
	"anoa.com/kosthub/internal/dto"
	"anoa.com/kosthub/internal/guard"
	"anoa.com/kosthub/internal/middleware"
	"anoa.com/kosthub/internal/model"
	"anoa.com/kosthub/internal/service"
	"anoa.com/kosthub/pkg/apperror"
	"anoa.com/kosthub/pkg/response"
	"github.com/gin-gonic/gin"
)

type AnnouncementHandler struct {
	announcementService service.AnnouncementService
	guard               *guard.Guard
}

func NewAnnouncementHandler(announcementService service.AnnouncementService, g *guard.Guard) *AnnouncementHandler {
	return &AnnouncementHandler{announcementService: announcementService, guard: g}
}

func (h *AnnouncementHandler) Create(c *gin.Context) {
	p := middleware.PrincipalFrom(c)
	hostelID, ok := pathID(c, "hostel_id")
	if !ok {
		return
	}

	if err := h.guard.RequireHostelOwner(c.Request.Context(), p, hostelID); err != nil {
		response.Denied(c, err, p.Role.Home())
		return
	}

	var input dto.CreateAnnouncementInput
	if !bindJSON(c, &input) {
		return
	}

	announcement, err := h.announcementService.Create(c.Request.Context(), hostelID, p.ID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, announcement)
}

// ListForHostel bisa diakses pemilik hostel maupun penghuninya. Student
// dicek lewat profile-nya, bukan lewat klaim di request.
func (h *AnnouncementHandler) ListForHostel(c *gin.Context) {
	p := middleware.PrincipalFrom(c)
	hostelID, ok := pathID(c, "hostel_id")
	if !ok {
		return
	}

	if p.Role == model.RoleStudent {
		profile, err := h.guard.RequireStudentWithProfile(c.Request.Context(), p)
		if err != nil {
			response.Denied(c, err, p.Role.Home())
			return
		}
		if profile.HostelID != hostelID {
			response.Denied(c, apperror.ErrNotOwner, p.Role.Home())
			return
		}
	} else if err := h.guard.RequireHostelOwner(c.Request.Context(), p, hostelID); err != nil {
		response.Denied(c, err, p.Role.Home())
		return
	}

	announcements, err := h.announcementService.ListForHostel(c.Request.Context(), hostelID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, announcements)
}

func (h *AnnouncementHandler) Delete(c *gin.Context) {
	p := middleware.PrincipalFrom(c)
	hostelID, ok := pathID(c, "hostel_id")
	if !ok {
		return
	}
	announcementID, ok := pathID(c, "announcement_id")
	if !ok {
		return
	}

	if err := h.guard.RequireHostelOwner(c.Request.Context(), p, hostelID); err != nil {
		response.Denied(c, err, p.Role.Home())
		return
	}

	if err := h.announcementService.Delete(c.Request.Context(), hostelID, announcementID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"message": "pengumuman berhasil dihapus"})
}
