package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/familyhub/dashboard/docs"

	"github.com/familyhub/dashboard/internal/api/handler"
	"github.com/familyhub/dashboard/internal/api/middleware"
	"github.com/familyhub/dashboard/internal/core/domain"
	"github.com/familyhub/dashboard/internal/core/ports"
	infrahttp "github.com/familyhub/dashboard/internal/infrastructure/http"
	"github.com/familyhub/dashboard/internal/infrastructure/http/handlers"
)

// Dependencies are the services the router mounts.
type Dependencies struct {
	Log             zerolog.Logger
	Loop            middleware.Runner
	Sessions        ports.SessionService
	Settings        ports.SettingsService
	Composer        ports.ViewComposer
	Meals           ports.MealPlanService
	Suggestions     ports.SuggestionService
	Shopping        ports.ShoppingService
	Activities      ports.ActivityService
	Transport       ports.TransportService
	Probes          map[string]handlers.Pinger
	SuggestionCount int
	// Registerer receives the HTTP metrics. Defaults to the global registry.
	Registerer prometheus.Registerer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Log))
	registerer := deps.Registerer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "family_hub",
		Registerer: registerer,
	}))

	// --- Operational routes (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	infrahttp.RegisterProbes(e, deps.Probes)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Sessions)
	viewHandler := handler.NewViewHandler(deps.Composer)
	settingsHandler := handler.NewSettingsHandler(deps.Settings, deps.Composer)
	mealHandler := handler.NewMealHandler(deps.Meals, deps.Suggestions, deps.SuggestionCount)
	shoppingHandler := handler.NewShoppingHandler(deps.Shopping)
	activityHandler := handler.NewActivityHandler(deps.Activities)
	transportHandler := handler.NewTransportHandler(deps.Transport)

	serial := middleware.Serialize(deps.Loop)
	auth := middleware.Auth(deps.Sessions)

	// --- Auth routes ---
	authGroup := e.Group("/auth", serial)
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/logout", authHandler.Logout, auth)

	// --- Household routes ---
	v1 := e.Group("/v1", serial, auth)
	v1.GET("/session", authHandler.Session)
	v1.GET("/navigation", viewHandler.Navigation)
	v1.GET("/view", viewHandler.Get)
	v1.PUT("/view", viewHandler.Set)

	settings := v1.Group("/settings", middleware.RequireView(domain.ViewSettings))
	settings.GET("", settingsHandler.Get)
	settings.PATCH("/notifications", settingsHandler.PatchNotifications, middleware.RequireAction(domain.ActionSettingsEdit))
	settings.PATCH("/family", settingsHandler.PatchFamily, middleware.RequireAction(domain.ActionSettingsEdit))
	settings.POST("/save", settingsHandler.Save, middleware.RequireAction(domain.ActionSettingsSave))

	meals := v1.Group("/meals", middleware.RequireView(domain.ViewMeals))
	meals.GET("", mealHandler.Week)
	meals.POST("/suggestions", mealHandler.Suggest, middleware.RequireAction(domain.ActionMealsSuggest))
	meals.POST("/suggestions/commit", mealHandler.Commit, middleware.RequireAction(domain.ActionMealsAssign))
	meals.GET("/:day/:slot", mealHandler.Get)
	meals.PUT("/:day/:slot", mealHandler.Assign, middleware.RequireAction(domain.ActionMealsAssign))
	meals.DELETE("/:day/:slot", mealHandler.Remove, middleware.RequireAction(domain.ActionMealsRemove))

	shopping := v1.Group("/shopping", middleware.RequireView(domain.ViewShopping))
	shopping.GET("", shoppingHandler.List)
	shopping.POST("", shoppingHandler.Add, middleware.RequireAction(domain.ActionShoppingAdd))
	shopping.POST("/generate", shoppingHandler.Generate, middleware.RequireAction(domain.ActionShoppingGenerate))
	shopping.POST("/:id/toggle", shoppingHandler.Toggle, middleware.RequireAction(domain.ActionShoppingToggle))
	shopping.DELETE("/:id", shoppingHandler.Delete, middleware.RequireAction(domain.ActionShoppingDelete))

	activities := v1.Group("/activities", middleware.RequireView(domain.ViewCalendar, domain.ViewActivities))
	activities.GET("", activityHandler.List)
	activities.POST("", activityHandler.Add, middleware.RequireAction(domain.ActionActivitiesAdd))
	activities.PUT("/:id", activityHandler.Update, middleware.RequireAction(domain.ActionActivitiesUpdate))
	activities.DELETE("/:id", activityHandler.Remove, middleware.RequireAction(domain.ActionActivitiesRemove))

	transport := v1.Group("/transport", middleware.RequireView(domain.ViewTransport))
	transport.GET("", transportHandler.Board)
	transport.POST("/routes", transportHandler.AddRoute, middleware.RequireAction(domain.ActionRouteAdd))
	transport.POST("/routes/:id/status", transportHandler.Advance, middleware.RequireAction(domain.ActionRouteAdvance))

	return e
}
