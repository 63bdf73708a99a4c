package routes

import (
	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/handlers"
	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/middleware"
	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Deps struct {
	Auth   *handlers.AuthHandler
	Issuer *utils.TokenIssuer
	DB     *gorm.DB
}

func Register(app *fiber.App, deps Deps) {
	api := app.Group("/api")

	// Auth
	api.Post("/auth/register", deps.Auth.Register)
	api.Post("/auth/login", deps.Auth.Login)
	api.Post("/auth/forgot-password", deps.Auth.ForgotPassword)
	api.Post("/auth/validate-reset-token", deps.Auth.ValidateResetToken)
	api.Post("/auth/reset-password", deps.Auth.ResetPassword)

	requireAuth := middleware.RequireAuth(deps.Issuer)
	api.Get("/auth/me", requireAuth, deps.Auth.Me)

	// Finance CRUD, all scoped to the authenticated user
	accounts := handlers.NewAccountHandler(deps.DB)
	api.Post("/accounts", requireAuth, accounts.Create)
	api.Get("/accounts", requireAuth, accounts.List)
	api.Get("/accounts/:id", requireAuth, accounts.Get)
	api.Put("/accounts/:id", requireAuth, accounts.Update)
	api.Delete("/accounts/:id", requireAuth, accounts.Delete)

	cards := handlers.NewCardHandler(deps.DB)
	api.Post("/cards", requireAuth, cards.Create)
	api.Get("/cards", requireAuth, cards.List)
	api.Get("/cards/:id", requireAuth, cards.Get)
	api.Put("/cards/:id", requireAuth, cards.Update)
	api.Delete("/cards/:id", requireAuth, cards.Delete)

	transactions := handlers.NewTransactionHandler(deps.DB)
	api.Post("/transactions", requireAuth, transactions.Create)
	api.Get("/transactions", requireAuth, transactions.List)
	api.Get("/transactions/:id", requireAuth, transactions.Get)
	api.Put("/transactions/:id", requireAuth, transactions.Update)
	api.Delete("/transactions/:id", requireAuth, transactions.Delete)

	budgets := handlers.NewBudgetHandler(deps.DB)
	api.Post("/budgets", requireAuth, budgets.Create)
	api.Get("/budgets", requireAuth, budgets.List)
	api.Put("/budgets/:id", requireAuth, budgets.Update)
	api.Delete("/budgets/:id", requireAuth, budgets.Delete)

	goals := handlers.NewGoalHandler(deps.DB)
	api.Post("/goals", requireAuth, goals.Create)
	api.Get("/goals", requireAuth, goals.List)
	api.Put("/goals/:id", requireAuth, goals.Update)
	api.Post("/goals/:id/contribute", requireAuth, goals.Contribute)
	api.Delete("/goals/:id", requireAuth, goals.Delete)
}
