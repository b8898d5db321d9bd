package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agrotrack/agrotrack-api/internal/application/analytics"
	"github.com/agrotrack/agrotrack-api/internal/application/auth"
	"github.com/agrotrack/agrotrack-api/internal/application/quotes"
	"github.com/agrotrack/agrotrack-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ExpenseUC   *usecase.ExpenseUseCase
	RevenueUC   *usecase.RevenueUseCase
	DebtUC      *usecase.DebtUseCase
	FieldUC     *usecase.FieldUseCase
	HarvestUC   *usecase.HarvestUseCase
	DashboardUC *analytics.DashboardUseCase
	ReportUC    *analytics.ReportUseCase
	QuotationUC *quotes.QuotationUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Raíz informativa (público)
	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "AgroTrack API", "version": "1.0"})
	})

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Cotizaciones (público: no dependen del usuario)
	quotations := api.Group("/quotations")
	quotationHandler := NewQuotationHandler(deps.QuotationUC)
	quotations.Get("/b3", quotationHandler.ListB3)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.AuthUC))

	protected.Get("/auth/me", authHandler.Me)

	// Expenses (protegido)
	expenses := protected.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
	expenses.Delete("/:id", expenseHandler.Delete)

	// Revenues (protegido)
	revenues := protected.Group("/revenues")
	revenueHandler := NewRevenueHandler(deps.RevenueUC)
	revenues.Post("/", revenueHandler.Create)
	revenues.Get("/", revenueHandler.List)
	revenues.Delete("/:id", revenueHandler.Delete)

	// Debts (protegido)
	debts := protected.Group("/debts")
	debtHandler := NewDebtHandler(deps.DebtUC)
	debts.Post("/", debtHandler.Create)
	debts.Get("/", debtHandler.List)
	debts.Patch("/:id/status", debtHandler.UpdateStatus)
	debts.Delete("/:id", debtHandler.Delete)

	// Fields (protegido)
	fields := protected.Group("/fields")
	fieldHandler := NewFieldHandler(deps.FieldUC)
	fields.Post("/", fieldHandler.Create)
	fields.Get("/", fieldHandler.List)
	fields.Delete("/:id", fieldHandler.Delete)

	// Harvests (protegido)
	harvests := protected.Group("/harvests")
	harvestHandler := NewHarvestHandler(deps.HarvestUC)
	harvests.Post("/", harvestHandler.Create)
	harvests.Get("/", harvestHandler.List)
	harvests.Delete("/:id", harvestHandler.Delete)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.ReportUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
	dashboard.Get("/report", dashboardHandler.Report)
}
