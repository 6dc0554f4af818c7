package api

import (
	"context"
	"time"

	"github.com/chrisdamba/foodadmin/internal/analytics"
	"github.com/chrisdamba/foodadmin/internal/events"
	"github.com/chrisdamba/foodadmin/internal/export"
	"github.com/chrisdamba/foodadmin/internal/powerbi"
	"github.com/chrisdamba/foodadmin/internal/repositories"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"
)

var timeNow = time.Now

// Deps wires the handler to its collaborators. Exporter and PowerBI may be nil.
type Deps struct {
	Store         *repositories.Store
	Analytics     *analytics.Service
	Publisher     events.Publisher
	Exporter      *export.Exporter
	PowerBI       *powerbi.Client
	OrderTopic    string
	ReportTopic   string
	DefaultWindow string
	DefaultLimit  int
}

type Handler struct {
	Deps
}

func NewHandler(deps Deps) *Handler {
	if deps.Publisher == nil {
		deps.Publisher = events.LogPublisher{}
	}
	if deps.Analytics == nil {
		deps.Analytics = analytics.NewService(deps.Store, nil)
	}
	return &Handler{Deps: deps}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Health)

	api := e.Group("/api")

	order := api.Group("/order")
	order.GET("/list", h.ListOrders)
	order.GET("/:id", h.GetOrder)
	order.POST("", h.CreateOrder)
	order.PUT("/:id", h.UpdateOrder)
	order.PATCH("/:id/status", h.UpdateOrderStatus)
	order.DELETE("/:id", h.DeleteOrder)

	food := api.Group("/food")
	food.GET("/list", h.ListFood)
	food.GET("/:id", h.GetFood)
	food.POST("", h.CreateFood)
	food.PUT("/:id", h.UpdateFood)
	food.DELETE("/:id", h.DeleteFood)

	user := api.Group("/user")
	user.GET("/list", h.ListCustomers)
	user.GET("/:id", h.GetCustomer)
	user.POST("", h.CreateCustomer)
	user.PUT("/:id", h.UpdateCustomer)
	user.DELETE("/:id", h.DeleteCustomer)

	review := api.Group("/review")
	review.GET("/list", h.ListReviews)
	review.POST("/create", h.CreateReview)
	review.PUT("/:id", h.UpdateReview)
	review.DELETE("/:id", h.DeleteReview)

	api.GET("/delivery-person", h.ListDeliveryPersons)
	api.POST("/delivery-person", h.CreateDeliveryPerson)
	assignments := api.Group("/delivery/assignments")
	assignments.GET("", h.ListAssignments)
	assignments.POST("", h.CreateAssignment)
	assignments.PUT("/:id", h.UpdateAssignment)
	assignments.DELETE("/:id", h.DeleteAssignment)

	messages := api.Group("/customer-message")
	messages.GET("/list", h.ListMessages)
	messages.POST("", h.CreateMessage)
	messages.PUT("/:id", h.UpdateMessage)
	messages.DELETE("/:id", h.DeleteMessage)

	stats := api.Group("/analytics")
	stats.GET("/popularity", h.Popularity)
	stats.GET("/orders", h.OrderDashboard)
	stats.GET("/export", h.Export)

	pbi := api.Group("/powerbi")
	pbi.GET("/reports", h.PowerBIReports)
	pbi.GET("/embed-token/:reportId", h.PowerBIEmbedToken)
}

func (h *Handler) Health(c echo.Context) error {
	return ok(c, map[string]string{"status": "ok"})
}

// emit publishes an event without failing the request that triggered it.
func (h *Handler) emit(ctx context.Context, topic, eventType, key string, data interface{}) {
	if topic == "" {
		return
	}
	if err := events.Emit(ctx, h.Publisher, topic, eventType, key, data); err != nil {
		log.WithError(err).WithFields(log.Fields{"event": eventType, "key": key}).Warn("event not published")
	}
}

// NewServer builds the echo instance with middleware and routes.
func NewServer(h *Handler, requestTimeout time.Duration) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = errorHandler

	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(RequestLogger())
	if requestTimeout > 0 {
		e.Use(middleware.ContextTimeout(requestTimeout))
	}

	h.RegisterRoutes(e)
	return e
}

// RequestLogger logs each request through logrus.
func RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogMethod:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			entry := log.WithFields(log.Fields{
				"method":  v.Method,
				"uri":     v.URI,
				"status":  v.Status,
				"latency": v.Latency.String(),
			})
			if v.Error != nil {
				entry.WithError(v.Error).Warn("request")
				return nil
			}
			entry.Info("request")
			return nil
		},
	})
}
