package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"qmstracker/internal/config"
	"qmstracker/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	entryHandler *handler.EntryHandler,
	userHandler *handler.UserHandler,
	analyticsHandler *handler.AnalyticsHandler,
	themeHandler *handler.ThemeHandler,
	seedHandler *handler.SeedHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/token", authHandler.IssueToken)
	api.POST("/auth/logout", authHandler.Logout)
	api.POST("/seed/entries", seedHandler.SeedEntries)

	// Secured routes (require a bearer token from /auth/token)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))

	// Entry routes
	secured.GET("/entries", entryHandler.ListEntries)
	secured.POST("/entries", entryHandler.CreateEntry)
	secured.GET("/entries/:id", entryHandler.GetEntry)
	secured.PUT("/entries/:id", entryHandler.UpdateEntry)
	secured.DELETE("/entries/:id", entryHandler.DeleteEntry)

	// User routes
	secured.GET("/users/me", userHandler.Me)
	secured.PUT("/users/me", userHandler.UpdateProfile)
	secured.GET("/users", userHandler.ListUsers)
	secured.POST("/users", userHandler.CreateUser)
	secured.DELETE("/users/:id", userHandler.DeleteUser)

	// Analytics routes
	secured.GET("/analytics/dashboard", analyticsHandler.Dashboard)
	secured.GET("/analytics/performance", analyticsHandler.Performance)

	// Theme routes
	secured.GET("/theme", themeHandler.GetTheme)
	secured.PUT("/theme", themeHandler.UpdateTheme)
	secured.DELETE("/theme", themeHandler.ResetTheme)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
