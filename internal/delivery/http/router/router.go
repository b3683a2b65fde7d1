// Package router wires HTTP routes to their handlers.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"plateful/internal/delivery/http/middleware"
	"plateful/internal/delivery/http/router/handler"
)

// Params collects everything route registration needs.
type Params struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	ProfileHandler      *handler.ProfileHandler
	RecipeHandler       *handler.RecipeHandler
	MealPlanHandler     *handler.MealPlanHandler
	ShoppingListHandler *handler.ShoppingListHandler
	HealthHandler       *handler.HealthHandler

	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// Router registers the API's routes on an Echo instance.
type Router struct {
	params Params
}

// NewRouter creates a Router.
func NewRouter(params Params) *Router {
	return &Router{params: params}
}

// Register attaches every route. All /api routes except auth register and
// login require a valid token.
func (r *Router) Register(e *echo.Echo) {
	e.Use(r.params.RequestIDMiddleware.Handle)

	e.GET("/health", r.params.HealthHandler.Check)

	api := e.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", r.params.AuthHandler.Register)
	auth.POST("/login", r.params.AuthHandler.Login)

	profile := auth.Group("/profile", r.params.AuthMiddleware.Handle)
	profile.GET("", r.params.ProfileHandler.Get)
	profile.PUT("", r.params.ProfileHandler.Update)
	profile.DELETE("", r.params.ProfileHandler.Delete)

	recipes := api.Group("/recipes")
	recipes.GET("/search/:ingredients", r.params.RecipeHandler.Search)
	recipes.GET("/details/:id", r.params.RecipeHandler.Details)
	recipes.POST("", r.params.RecipeHandler.Save, r.params.AuthMiddleware.Handle)
	recipes.GET("", r.params.RecipeHandler.List, r.params.AuthMiddleware.Handle)
	recipes.DELETE("/:id", r.params.RecipeHandler.Delete, r.params.AuthMiddleware.Handle)

	mealPlans := api.Group("/meal-plans", r.params.AuthMiddleware.Handle)
	mealPlans.POST("", r.params.MealPlanHandler.Add)
	mealPlans.GET("", r.params.MealPlanHandler.List)
	mealPlans.DELETE("/:id", r.params.MealPlanHandler.Delete)

	shoppingList := api.Group("/shopping-list", r.params.AuthMiddleware.Handle)
	shoppingList.POST("", r.params.ShoppingListHandler.Replace)
	shoppingList.GET("", r.params.ShoppingListHandler.Get)
}
