// internal/routes/router.go
package routes

import (
	"ponto_backend/internal/config"
	"ponto_backend/internal/handlers"
	"ponto_backend/internal/middleware"
	"ponto_backend/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	svc := service.New(db, cfg)
	authH := handlers.NewAuthHandler(svc)
	punchH := handlers.NewPunchHandler(svc)
	adminH := handlers.NewAdminHandler(svc)
	reportH := handlers.NewReportHandler(svc)

	r.GET("/health", handlers.Health)

	api := r.Group("/api/v1")
	{
		api.POST("/auth/login", authH.Login)
		api.POST("/auth/logout", middleware.AuthRequired(db), authH.Logout)
		api.POST("/punches", middleware.AuthRequired(db), punchH.Clock)
	}

	admin := r.Group("/api/v1/admin")
	admin.Use(middleware.AuthRequired(db), middleware.RequireAdmin())
	{
		admin.POST("/employees", adminH.AddEmployee)
		admin.GET("/employees", adminH.ListEmployees)
		admin.DELETE("/employees/:id", adminH.DeleteEmployee)
		admin.POST("/employees/import", adminH.ImportEmployees)
		admin.GET("/companies", adminH.ListCompanies)
		admin.GET("/punches", adminH.ListPunches)
		admin.PATCH("/punches/:id", punchH.Correct)
		admin.GET("/reports/daily", reportH.Daily)
		admin.GET("/reports/export", reportH.Export)
	}

	return r
}
