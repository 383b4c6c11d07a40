package handler

import (
	"anoa.com/kosthub/internal/dto"
	"anoa.com/kosthub/internal/service"
	"anoa.com/kosthub/pkg/response"
	"github.com/gin-gonic/gin"
)

// AdminHandler tidak melakukan pengecekan role sendiri; seluruh route-nya
// berada di belakang middleware RequireAdmin.
type AdminHandler struct {
	adminService service.AdminService
}

func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminService.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, users)
}

func (h *AdminHandler) SetBlocked(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	var input dto.SetBlockedInput
	if !bindJSON(c, &input) {
		return
	}

	user, err := h.adminService.SetBlocked(c.Request.Context(), userID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, user)
}

func (h *AdminHandler) SetRole(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	var input dto.SetRoleInput
	if !bindJSON(c, &input) {
		return
	}

	user, err := h.adminService.SetRole(c.Request.Context(), userID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, user)
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	if err := h.adminService.DeleteUser(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"message": "user berhasil dihapus"})
}

func (h *AdminHandler) ApproveHostel(c *gin.Context) {
	hostelID, ok := pathID(c, "hostel_id")
	if !ok {
		return
	}

	hostel, err := h.adminService.ApproveHostel(c.Request.Context(), hostelID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, hostel)
}

func (h *AdminHandler) ListHostels(c *gin.Context) {
	hostels, err := h.adminService.ListHostels(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, hostels)
}
