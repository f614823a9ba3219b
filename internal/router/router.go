package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"terracore/internal/auth"
	"terracore/internal/config"
	apperrors "terracore/internal/errors"
	"terracore/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	propertyHandler *handler.PropertyHandler,
	materialHandler *handler.MaterialHandler,
	contactHandler *handler.ContactHandler,
	newsletterHandler *handler.NewsletterHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = errorHandler(cfg)

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Frontend assets, with the SPA fallback to index.html.
	e.Use(middleware.StaticWithConfig(middleware.StaticConfig{
		Root:  cfg.StaticDir,
		Index: "index.html",
		HTML5: true,
	}))

	protected := auth.Middleware(jwtService)
	admin := auth.RequireAdmin

	api := e.Group("/api")

	ag := api.Group("/auth")
	ag.POST("/register", authHandler.Register)
	ag.POST("/login", authHandler.Login)
	ag.GET("/me", authHandler.Me, protected)
	ag.POST("/change-password", authHandler.ChangePassword, protected)
	ag.GET("/users", authHandler.ListUsers, protected, admin)

	pg := api.Group("/properties")
	pg.GET("", propertyHandler.List)
	pg.GET("/search", propertyHandler.Search)
	pg.GET("/:id", propertyHandler.Get)
	pg.POST("", propertyHandler.Create, protected, admin)
	pg.PUT("/:id", propertyHandler.Update, protected, admin)
	pg.DELETE("/:id", propertyHandler.Delete, protected, admin)

	mg := api.Group("/materials")
	mg.GET("", materialHandler.List)
	mg.GET("/search", materialHandler.Search)
	mg.GET("/categories/list", materialHandler.Categories)
	mg.GET("/:id", materialHandler.Get)
	mg.POST("", materialHandler.Create, protected, admin)
	mg.PUT("/:id", materialHandler.Update, protected, admin)
	mg.DELETE("/:id", materialHandler.Delete, protected, admin)

	cg := api.Group("/contact")
	cg.POST("", contactHandler.Create)
	cg.GET("", contactHandler.List, protected, admin)
	cg.GET("/:id", contactHandler.Get, protected, admin)
	cg.PATCH("/:id", contactHandler.UpdateStatus, protected, admin)
	cg.DELETE("/:id", contactHandler.Delete, protected, admin)

	ng := api.Group("/newsletter")
	ng.POST("/subscribe", newsletterHandler.Subscribe)
	ng.POST("/unsubscribe", newsletterHandler.Unsubscribe)
	ng.GET("", newsletterHandler.List, protected, admin)
	ng.GET("/stats", newsletterHandler.Stats, protected, admin)
}

// errorHandler renders every error in the API envelope. Unexpected failures
// degrade to a generic 500; the underlying message is exposed only in
// development mode.
func errorHandler(cfg *config.Config) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		he, ok := err.(*echo.HTTPError)
		if !ok {
			he = echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
		}

		body, ok := he.Message.(apperrors.ErrorResponse)
		if !ok {
			message := "Something went wrong!"
			switch {
			case he.Code != http.StatusInternalServerError:
				if s, ok := he.Message.(string); ok {
					message = s
				}
			case cfg.IsDevelopment():
				if he.Internal != nil {
					message = he.Internal.Error()
				} else if s, ok := he.Message.(string); ok {
					message = s
				}
			}
			body = apperrors.NewErrorResponse(message)
		}

		if he.Code == http.StatusInternalServerError {
			c.Logger().Error(err)
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(he.Code)
			return
		}
		_ = c.JSON(he.Code, body)
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
