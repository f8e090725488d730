package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"contactbook/internal/auth"
	"contactbook/internal/handler"
	"contactbook/internal/ratelimit"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	limiter *ratelimit.Limiter,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	contactHandler *handler.ContactHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/users/", userHandler.Register)
	e.POST("/token", authHandler.Token)
	e.GET("/verify/:code", userHandler.VerifyEmail)

	// Secured routes (require a bearer token). Validation goes through the
	// JWT service so the handlers see typed claims directly.
	jwtMiddleware := echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.ValidateToken(token)
		},
	})
	secured := e.Group("", jwtMiddleware)

	secured.POST("/contacts/", contactHandler.Create, limiter.Middleware())
	secured.GET("/contacts/", contactHandler.List)
	secured.GET("/contacts/upcoming_birthdays/", contactHandler.UpcomingBirthdays)
	secured.GET("/contacts/:id", contactHandler.Get)
	secured.PUT("/contacts/:id", contactHandler.Update)
	secured.DELETE("/contacts/:id", contactHandler.Delete)

	secured.GET("/users/me", userHandler.Me)
	secured.POST("/users/:id/avatar", userHandler.UpdateAvatar)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
