package handler

import (
	"anoa.com/kosthub/internal/dto"
	"anoa.com/kosthub/internal/guard"
	"anoa.com/kosthub/internal/middleware"
	"anoa.com/kosthub/internal/service"
	"anoa.com/kosthub/pkg/response"
	"github.com/gin-gonic/gin"
)

type HostelHandler struct {
	hostelService service.HostelService
	guard         *guard.Guard
}

func NewHostelHandler(hostelService service.HostelService, g *guard.Guard) *HostelHandler {
	return &HostelHandler{hostelService: hostelService, guard: g}
}

// Browse lists approved hostels, optionally filtered by a search query.
// Satu-satunya permukaan hostel tanpa auth.
func (h *HostelHandler) Browse(c *gin.Context) {
	hostels, err := h.hostelService.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, hostels)
}

func (h *HostelHandler) GetHostel(c *gin.Context) {
	hostelID, ok := pathID(c, "hostel_id")
	if !ok {
		return
	}

	hostel, err := h.hostelService.GetByID(c.Request.Context(), hostelID)
	if err != nil {
		response.Error(c, err)
		return
	}

	// listing yang belum approved hanya terlihat oleh pemilik dan admin
	if !hostel.IsApproved {
		p := middleware.PrincipalFrom(c)
		if err := h.guard.RequireHostelOwner(c.Request.Context(), p, hostelID); err != nil {
			home := ""
			if p != nil {
				home = p.Role.Home()
			}
			response.Denied(c, err, home)
			return
		}
	}

	response.OK(c, hostel)
}

func (h *HostelHandler) CreateHostel(c *gin.Context) {
	p := middleware.PrincipalFrom(c)

	var input dto.CreateHostelInput
	if !bindJSON(c, &input) {
		return
	}

	hostel, err := h.hostelService.Create(c.Request.Context(), p.ID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, hostel)
}

func (h *HostelHandler) MyHostels(c *gin.Context) {
	p := middleware.PrincipalFrom(c)

	hostels, err := h.hostelService.ListByOwner(c.Request.Context(), p.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, hostels)
}

func (h *HostelHandler) UpdateHostel(c *gin.Context) {
	p := middleware.PrincipalFrom(c)
	hostelID, ok := pathID(c, "hostel_id")
	if !ok {
		return
	}

	if err := h.guard.RequireHostelOwner(c.Request.Context(), p, hostelID); err != nil {
		response.Denied(c, err, p.Role.Home())
		return
	}

	var input dto.UpdateHostelInput
	if !bindJSON(c, &input) {
		return
	}

	hostel, err := h.hostelService.Update(c.Request.Context(), hostelID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, hostel)
}

func (h *HostelHandler) DeleteHostel(c *gin.Context) {
	p := middleware.PrincipalFrom(c)
	hostelID, ok := pathID(c, "hostel_id")
	if !ok {
		return
	}

	if err := h.guard.RequireHostelOwner(c.Request.Context(), p, hostelID); err != nil {
		response.Denied(c, err, p.Role.Home())
		return
	}

	if err := h.hostelService.Delete(c.Request.Context(), hostelID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"deleted": hostelID})
}

func (h *HostelHandler) UploadPhoto(c *gin.Context) {
	p := middleware.PrincipalFrom(c)
	hostelID, ok := pathID(c, "hostel_id")
	if !ok {
		return
	}

	if err := h.guard.RequireHostelOwner(c.Request.Context(), p, hostelID); err != nil {
		response.Denied(c, err, p.Role.Home())
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		response.ValidationError(c, "foto wajib diisi")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close()

	hostel, err := h.hostelService.UploadPhoto(c.Request.Context(), hostelID, &service.PhotoFile{
		Reader:   file,
		FileName: fileHeader.Filename,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, hostel)
}

func (h *HostelHandler) RegenerateInviteCode(c *gin.Context) {
	p := middleware.PrincipalFrom(c)
	hostelID, ok := pathID(c, "hostel_id")
	if !ok {
		return
	}

	if err := h.guard.RequireHostelOwner(c.Request.Context(), p, hostelID); err != nil {
		response.Denied(c, err, p.Role.Home())
		return
	}

	hostel, err := h.hostelService.RegenerateInviteCode(c.Request.Context(), hostelID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, hostel)
}
