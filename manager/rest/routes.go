package rest

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	docs "github.com/registra/api/docs/manager"
	"github.com/registra/api/manager/domain"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func (h *Handler) SetupRoutes(engine *echo.Echo) {
	engine.GET("/health", h.echoHandler(h.HealthCheck))
	engine.GET("/version", h.echoHandler(h.Version))
	engine.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	docs.SwaggerInfo.BasePath = "/"
	engine.GET("/swagger/*", echoSwagger.WrapHandler)

	api := engine.Group("/api", echo.WrapMiddleware(LoggerMiddleware))
	// v1 routes
	{
		apiV1 := api.Group("/v1")
		staff := echo.WrapMiddleware(h.GetAuthMiddleware(domain.RoleAdmin, domain.RoleSuperadmin))
		superadmin := echo.WrapMiddleware(h.GetAuthMiddleware(domain.RoleSuperadmin))

		// auth routes
		apiV1.POST("/auth/login", h.echoHandler(h.Login))
		apiV1.GET("/auth/me", h.echoHandler(h.GetSelf), staff)

		// admin account routes
		apiV1.POST("/admins", h.echoHandler(h.CreateAdmin), superadmin)
		apiV1.PUT("/admins/:id", h.echoHandlerWithParams(h.UpdateAdmin), superadmin)
		apiV1.GET("/admins", h.echoHandler(h.ListAdmins), superadmin)

		// event routes
		apiV1.POST("/events", h.echoHandler(h.CreateEvent), staff)
		apiV1.GET("/events", h.echoHandler(h.ListEvents), staff)
		apiV1.GET("/events/:id", h.echoHandlerWithParams(h.GetEvent), staff)
		apiV1.PUT("/events/:id", h.echoHandlerWithParams(h.UpdateEvent), staff)
		apiV1.PUT("/events/:id/cancel", h.echoHandlerWithParams(h.CancelEvent), staff)

		// activity log routes
		apiV1.GET("/activity-logs", h.echoHandler(h.ListActivityLogs), staff)
	}
}

func (h *Handler) echoHandler(handlerFunc func(w http.ResponseWriter, r *http.Request)) echo.HandlerFunc {
	return echo.WrapHandler(http.HandlerFunc(handlerFunc))
}

// echoHandlerWithParams wraps a handler function and injects path parameters into request context
func (h *Handler) echoHandlerWithParams(handlerFunc func(w http.ResponseWriter, r *http.Request)) echo.HandlerFunc {
	return func(c echo.Context) error {
		r := c.Request()
		// Store path params in request context
		for _, name := range c.ParamNames() {
			r = r.WithContext(context.WithValue(r.Context(), pathParamKey(name), c.Param(name)))
		}
		handlerFunc(c.Response().Writer, r)
		return nil
	}
}

// pathParamKey is a type for path parameter context keys
type pathParamKey string

// GetPathParam retrieves a path parameter from request context
func (h *Handler) GetPathParam(r *http.Request, name string) string {
	if val, ok := r.Context().Value(pathParamKey(name)).(string); ok {
		return val
	}
	return ""
}
