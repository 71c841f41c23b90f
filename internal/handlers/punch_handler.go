// internal/handlers/punch_handler.go
package handlers

import (
	"net/http"
	"strings"

	"ponto_backend/internal/models"
	"ponto_backend/internal/service"

	"github.com/gin-gonic/gin"
)

type PunchHandler struct {
	Service *service.Service
}

func NewPunchHandler(svc *service.Service) *PunchHandler { return &PunchHandler{Service: svc} }

func statusFor(sev service.Severity) int {
	if sev == service.SeverityError {
		return http.StatusBadRequest
	}
	return http.StatusOK
}

// Clock records the authenticated caller's next clock event of the day.
func (h *PunchHandler) Clock(c *gin.Context) {
	nationalID := c.GetString("national_id")

	var emp models.Employee
	if err := h.Service.DB.First(&emp, "national_id = ?", nationalID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "employee not found"})
		return
	}

	msg, sev := h.Service.RecordPunch(emp.NationalID, emp.Name)
	c.JSON(statusFor(sev), gin.H{"status": string(sev), "message": msg})
}

type CorrectPunchReq struct {
	Time       *string `json:"time"`
	Annotation *string `json:"annotation"`
}

// Correct applies an administrative fix to a punch's recorded time and/or
// annotation.
func (h *PunchHandler) Correct(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	var req CorrectPunchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body", "detail": err.Error()})
		return
	}

	msg, sev := h.Service.CorrectPunch(id, req.Time, req.Annotation)
	c.JSON(statusFor(sev), gin.H{"status": string(sev), "message": msg})
}
