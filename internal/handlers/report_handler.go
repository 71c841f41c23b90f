// internal/handlers/report_handler.go
package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"ponto_backend/internal/models"
	"ponto_backend/internal/report"
	"ponto_backend/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	Service *service.Service
}

func NewReportHandler(svc *service.Service) *ReportHandler { return &ReportHandler{Service: svc} }

// Daily returns the pivoted per-day view: one row per employee-day with
// Entry/Exit columns and the worked-hours span.
func (h *ReportHandler) Daily(c *gin.Context) {
	rows, err := report.ListPunches(h.Service.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "load failed", "detail": err.Error()})
		return
	}
	rows = filterPunches(rows, c.Query("company"), c.Query("from"), c.Query("to"))
	c.JSON(http.StatusOK, gin.H{"status": "ok", "data": report.Daily(rows)})
}

// Export streams the styled attendance workbook for a company and period.
func (h *ReportHandler) Export(c *gin.Context) {
	companyName := strings.TrimSpace(c.Query("company"))
	if companyName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "company required"})
		return
	}

	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from must be YYYY-MM-DD"})
		return
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to must be YYYY-MM-DD"})
		return
	}

	rows, err := report.ListPunches(h.Service.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "load failed", "detail": err.Error()})
		return
	}
	rows = filterPunches(rows, companyName, c.Query("from"), c.Query("to"))

	taxID := ""
	var company models.Company
	if err := h.Service.DB.Where("lower(name) = lower(?)", companyName).First(&company).Error; err == nil {
		taxID = company.TaxID
	}

	f, err := report.Excel(report.Daily(rows), rows, companyName, taxID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed", "detail": err.Error()})
		return
	}

	filename := fmt.Sprintf("attendance_%s_%s.xlsx", from.Format("20060102"), to.Format("20060102"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}

// filterPunches keeps rows matching the company name (case-insensitive,
// empty matches all) and the inclusive YYYY-MM-DD date window.
func filterPunches(rows []report.PunchRow, company, from, to string) []report.PunchRow {
	company = strings.ToLower(strings.TrimSpace(company))
	out := rows[:0:0]
	for _, r := range rows {
		if company != "" && strings.ToLower(r.CompanyName) != company {
			continue
		}
		if from != "" && r.Date < from {
			continue
		}
		if to != "" && r.Date > to {
			continue
		}
		out = append(out, r)
	}
	return out
}
