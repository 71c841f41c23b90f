// internal/handlers/admin_handler.go
package handlers

import (
	"net/http"
	"strings"

	"ponto_backend/internal/report"
	"ponto_backend/internal/service"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	Service *service.Service
}

func NewAdminHandler(svc *service.Service) *AdminHandler { return &AdminHandler{Service: svc} }

type EmployeeReq struct {
	Code        string `json:"code" binding:"required"`
	Name        string `json:"name" binding:"required"`
	CompanyName string `json:"company_name" binding:"required"`
	TaxID       string `json:"tax_id"`
	NationalID  string `json:"national_id" binding:"required"`
	TypeCode    string `json:"type_code"`
	Type        string `json:"type"`
	Site        string `json:"site"`
}

func (h *AdminHandler) AddEmployee(c *gin.Context) {
	var req EmployeeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body", "detail": err.Error()})
		return
	}

	msg, sev := h.Service.AddEmployee(service.EmployeeInput{
		Code:        strings.TrimSpace(req.Code),
		Name:        strings.TrimSpace(req.Name),
		CompanyName: strings.TrimSpace(req.CompanyName),
		TaxID:       strings.TrimSpace(req.TaxID),
		NationalID:  strings.TrimSpace(req.NationalID),
		TypeCode:    strings.TrimSpace(req.TypeCode),
		Type:        strings.TrimSpace(req.Type),
		Site:        strings.TrimSpace(req.Site),
	})
	c.JSON(statusFor(sev), gin.H{"status": string(sev), "message": msg})
}

func (h *AdminHandler) ListEmployees(c *gin.Context) {
	rows, err := h.Service.ListEmployees()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "load failed", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "data": rows})
}

func (h *AdminHandler) DeleteEmployee(c *gin.Context) {
	nationalID := strings.TrimSpace(c.Param("id"))
	if nationalID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "national id required"})
		return
	}

	msg, sev := h.Service.DeleteEmployee(nationalID)
	c.JSON(statusFor(sev), gin.H{"status": string(sev), "message": msg})
}

type ImportReq struct {
	Rows []ImportRowReq `json:"rows" binding:"required"`
}

type ImportRowReq struct {
	SourceFile  string `json:"source_file"`
	CompanyName string `json:"company_name"`
	TaxID       string `json:"tax_id"`
	TypeCode    string `json:"type_code"`
	Type        string `json:"type"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	NationalID  string `json:"national_id"`
}

// ImportEmployees bulk-imports an already-parsed roster. Duplicated ids are
// counted as ignored, bad rows as errors; neither fails the request.
func (h *AdminHandler) ImportEmployees(c *gin.Context) {
	var req ImportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body", "detail": err.Error()})
		return
	}

	rows := make([]service.ImportRow, 0, len(req.Rows))
	for _, r := range req.Rows {
		rows = append(rows, service.ImportRow(r))
	}

	added, ignored, errs := h.Service.BulkImport(rows)
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"added":   added,
		"ignored": ignored,
		"errors":  errs,
	})
}

func (h *AdminHandler) ListCompanies(c *gin.Context) {
	rows, err := h.Service.ListCompanies()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "load failed", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "data": rows})
}

func (h *AdminHandler) ListPunches(c *gin.Context) {
	rows, err := report.ListPunches(h.Service.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "load failed", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "data": rows})
}
