package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"ai-news-digest/internal/models"
)

// DigestService computes (or serves from cache) one digest per request.
type DigestService interface {
	Digest(ctx context.Context, req models.DigestRequest) (*models.DigestResult, error)
}

// Handler owns the HTTP surface of the digest service.
type Handler struct {
	service DigestService
	logger  *slog.Logger
}

// NewHandler creates the HTTP handler set.
func NewHandler(service DigestService, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// NewRouter creates and configures the Echo router.
func NewRouter(service DigestService, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &requestValidator{validate: validator.New()}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request", "method", v.Method, "uri", v.URI, "status", v.Status)
			return nil
		},
	}))

	h := NewHandler(service, logger)

	e.GET("/health", h.Health)
	e.POST("/daily_news_summary", h.Daily)
	e.POST("/weekly_news_summary", h.Weekly)
	e.POST("/monthly_news_summary", h.Monthly)

	return e
}

type digestBody struct {
	// Language is shape-checked only; code validity is decided by the
	// translation upstream.
	Language string `json:"language" validate:"omitempty,printascii,max=16"`
}

type errorBody struct {
	Error string `json:"error"`
}

type healthBody struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Timestamp time.Time `json:"timestamp"`
}

// Health reports liveness.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, healthBody{
		Status:    "OK",
		Service:   "ai-news-digest",
		Timestamp: time.Now(),
	})
}

// Daily returns the digest for the current calendar day.
func (h *Handler) Daily(c echo.Context) error {
	return h.digest(c, models.WindowToday)
}

// Weekly returns the digest for the last 7 days.
func (h *Handler) Weekly(c echo.Context) error {
	return h.digest(c, models.WindowWeek)
}

// Monthly returns the digest for the last 30 days.
func (h *Handler) Monthly(c echo.Context) error {
	return h.digest(c, models.WindowMonth)
}

func (h *Handler) digest(c echo.Context, window models.Window) error {
	var body digestBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Error: "invalid request body"})
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Error: "invalid language field"})
	}

	language := body.Language
	if language == "" {
		language = "en"
	}

	result, err := h.service.Digest(c.Request().Context(), models.DigestRequest{
		Window:   window,
		Language: language,
	})
	if err != nil {
		h.logger.Error("digest computation failed", "window", window, "language", language, "error", err)
		// No upstream detail crosses the boundary.
		return c.JSON(http.StatusInternalServerError, errorBody{Error: "internal server error"})
	}

	return c.JSON(http.StatusOK, result)
}

type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}
