package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/stayhub/stay-booking/booking/internal/errs"
	"github.com/stayhub/stay-booking/booking/internal/model"
	"github.com/stayhub/stay-booking/pkg/auth"
	md "github.com/stayhub/stay-booking/pkg/middleware"
	"github.com/stayhub/stay-booking/pkg/validate"
)

type Handler struct {
	bookingSvc BookingService
	log        *zap.Logger
}

func New(bookingSvc BookingService, log *zap.Logger) *Handler {
	return &Handler{
		bookingSvc: bookingSvc,
		log:        log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
		md.AuthContext,
	)

	api.GET("/units/:unitUid/availabilities", h.ListWindows, md.AdminOnly)
	api.POST("/units/:unitUid/availabilities", h.AddWindow, md.AdminOnly)
	api.DELETE("/units/:unitUid/availabilities/:windowId", h.RemoveWindow, md.AdminOnly)

	api.POST("/bookings", h.CreateBooking)
	api.GET("/bookings", h.ListBookingsForUnit, md.AdminOnly)
	api.PATCH("/bookings/:bookingUid/status", h.SetBookingStatus, md.AdminOnly)
	api.GET("/my-bookings", h.MyBookings)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError keeps the error-to-status mapping in one place. All conflict
// kinds are 409, all range/transition misuse is 400.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrInvalidRange),
		errors.Is(err, errs.ErrZeroLengthRange),
		errors.Is(err, errs.ErrInvalidTransition):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrOverlapConflict),
		errors.Is(err, errs.ErrOutOfAvailability),
		errors.Is(err, errs.ErrDoubleBooked):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrBusy):
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

func (h *Handler) ListWindows(c echo.Context) error {
	unitUid := c.Param("unitUid")
	if unitUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty unitUid")
	}
	windows, err := h.bookingSvc.ListWindows(c.Request().Context(), unitUid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, windows)
}

func (h *Handler) AddWindow(c echo.Context) error {
	unitUid := c.Param("unitUid")
	if unitUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty unitUid")
	}
	var req model.CreateWindowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	w, err := h.bookingSvc.AddWindow(c.Request().Context(), unitUid, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, w)
}

func (h *Handler) RemoveWindow(c echo.Context) error {
	unitUid := c.Param("unitUid")
	windowID, err := strconv.ParseInt(c.Param("windowId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "windowId is invalid")
	}
	if err := h.bookingSvc.RemoveWindow(c.Request().Context(), unitUid, windowID); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) CreateBooking(c echo.Context) error {
	var req model.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	req.Requester = auth.UserName(ctx)
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	b, err := h.bookingSvc.CreateBooking(ctx, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, b)
}

func (h *Handler) SetBookingStatus(c echo.Context) error {
	bookingUid := c.Param("bookingUid")
	if bookingUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "bookingUid is empty")
	}
	var req model.SetBookingStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	b, err := h.bookingSvc.SetBookingStatus(c.Request().Context(), bookingUid, req.Status)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, b)
}

func (h *Handler) ListBookingsForUnit(c echo.Context) error {
	unitUid := c.QueryParam("unitUid")
	if unitUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "unitUid is required")
	}
	bookings, err := h.bookingSvc.ListBookingsForUnit(c.Request().Context(), unitUid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, bookings)
}

func (h *Handler) MyBookings(c echo.Context) error {
	ctx := c.Request().Context()
	bookings, err := h.bookingSvc.ListBookingsForRequester(ctx, auth.UserName(ctx))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, bookings)
}
