package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cotizador-pro/internal/application/auth"
	"github.com/tu-usuario/cotizador-pro/internal/application/usecase"
	"github.com/tu-usuario/cotizador-pro/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	MaterialUC  *usecase.MaterialUseCase
	QuotationUC *usecase.QuotationUseCase
	ExportUC    *usecase.ExportUseCase
	UserUC      *usecase.UserUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Materias primas (protegido)
	materials := protected.Group("/materials")
	materialHandler := NewMaterialHandler(deps.MaterialUC)
	materials.Post("/", materialHandler.Create)
	materials.Get("/", materialHandler.List)
	materials.Get("/:id", materialHandler.GetByID)
	materials.Put("/:id", materialHandler.Update)
	materials.Delete("/:id", materialHandler.Delete)

	// Cotizaciones (protegido)
	quotations := protected.Group("/quotations")
	quotationHandler := NewQuotationHandler(deps.QuotationUC, deps.ExportUC)
	quotations.Post("/", quotationHandler.Create)
	quotations.Get("/", quotationHandler.List)
	// La ruta fija va antes que la de parámetro para que Fiber no la capture como :id.
	quotations.Get("/export", RequireRole(entity.RoleAdmin), quotationHandler.ExportXLSX)
	quotations.Get("/:id", quotationHandler.GetByID)
	quotations.Get("/:id/pdf", quotationHandler.DownloadPDF)

	// Usuarios y roles (protegido, solo administradores)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Put("/:id/role", userHandler.UpdateRole)
}
