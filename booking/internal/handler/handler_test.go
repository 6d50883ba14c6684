package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/stayhub/stay-booking/booking/internal/errs"
	"github.com/stayhub/stay-booking/booking/internal/handler"
	service_mocks "github.com/stayhub/stay-booking/booking/internal/handler/mocks"
	"github.com/stayhub/stay-booking/booking/internal/model"
	"github.com/stayhub/stay-booking/pkg/auth"
	md "github.com/stayhub/stay-booking/pkg/middleware"
	"github.com/stayhub/stay-booking/pkg/validate"
)

const unitUid = "7e3f8f64-5a10-4f8e-9c0e-2d8f3f1a9b11"

func date(s string) model.Date {
	t, _ := time.Parse(time.DateOnly, s)
	return model.NewDate(t)
}

func TestHandler_CreateBooking(t *testing.T) {
	t.Parallel()
	type input struct {
		body     string
		userName string
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBookingService, inp input)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockBookingService, inp input) {
				r.EXPECT().
					CreateBooking(gomock.Any(), model.CreateBookingRequest{
						UnitUid:   unitUid,
						StartDate: date("2025-10-01"),
						EndDate:   date("2025-10-05"),
						Requester: inp.userName,
					}).
					Return(model.Booking{
						BookingUid: "2a54e5a1-9d6a-43c4-9f9a-8b4a3d3a7b10",
						UnitUid:    unitUid,
						Requester:  inp.userName,
						StartDate:  date("2025-10-01"),
						EndDate:    date("2025-10-05"),
						Status:     model.StatusPending,
					}, nil)
			},
			input: input{
				body:     `{"unitUid":"` + unitUid + `","startDate":"2025-10-01","endDate":"2025-10-05"}`,
				userName: "guest-1",
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"bookingUid":"2a54e5a1-9d6a-43c4-9f9a-8b4a3d3a7b10","unitUid":"` + unitUid + `","requester":"guest-1","startDate":"2025-10-01","endDate":"2025-10-05","status":"PENDING"}`,
			},
		},
		{
			name: "err. out of availability",
			mockBehavior: func(r *service_mocks.MockBookingService, inp input) {
				r.EXPECT().
					CreateBooking(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, errs.ErrOutOfAvailability)
			},
			input: input{
				body:     `{"unitUid":"` + unitUid + `","startDate":"2025-10-01","endDate":"2025-10-05"}`,
				userName: "guest-1",
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"selected dates are not available"}`,
			},
		},
		{
			name: "err. double booked",
			mockBehavior: func(r *service_mocks.MockBookingService, inp input) {
				r.EXPECT().
					CreateBooking(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, errs.ErrDoubleBooked)
			},
			input: input{
				body:     `{"unitUid":"` + unitUid + `","startDate":"2025-10-04","endDate":"2025-10-06"}`,
				userName: "guest-2",
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"conflict with an existing booking"}`,
			},
		},
		{
			name: "err. invalid range",
			mockBehavior: func(r *service_mocks.MockBookingService, inp input) {
				r.EXPECT().
					CreateBooking(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, errs.ErrInvalidRange)
			},
			input: input{
				body:     `{"unitUid":"` + unitUid + `","startDate":"2025-10-10","endDate":"2025-10-05"}`,
				userName: "guest-1",
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"start date must be before end date"}`,
			},
		},
		{
			name:         "err. no identity",
			mockBehavior: func(r *service_mocks.MockBookingService, inp input) {},
			input: input{
				body: `{"unitUid":"` + unitUid + `","startDate":"2025-10-01","endDate":"2025-10-05"}`,
			},
			response: response{
				expectedCode: http.StatusUnauthorized,
				expectedBody: `{"message":"user-name is empty"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockBookingService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/bookings", h.CreateBooking, md.AuthContext)

			r := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(tt.input.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			if tt.input.userName != "" {
				r.Header.Set(auth.XUserNameHeader, tt.input.userName)
				r.Header.Set(auth.XUserRoleHeader, auth.RoleGuest)
			}
			w := httptest.NewRecorder()

			tt.mockBehavior(svc, tt.input)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_SetBookingStatus(t *testing.T) {
	t.Parallel()
	const bookingUid = "2a54e5a1-9d6a-43c4-9f9a-8b4a3d3a7b10"
	type input struct {
		body string
		role string
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBookingService, inp input)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		response     response
	}{
		{
			name: "ok. confirmed",
			mockBehavior: func(r *service_mocks.MockBookingService, inp input) {
				r.EXPECT().
					SetBookingStatus(gomock.Any(), bookingUid, model.StatusConfirmed).
					Return(model.Booking{
						BookingUid: bookingUid,
						UnitUid:    unitUid,
						Requester:  "guest-1",
						StartDate:  date("2025-10-01"),
						EndDate:    date("2025-10-05"),
						Status:     model.StatusConfirmed,
					}, nil)
			},
			input: input{body: `{"status":"CONFIRMED"}`, role: auth.RoleAdmin},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"bookingUid":"` + bookingUid + `","unitUid":"` + unitUid + `","requester":"guest-1","startDate":"2025-10-01","endDate":"2025-10-05","status":"CONFIRMED"}`,
			},
		},
		{
			name: "err. already terminal",
			mockBehavior: func(r *service_mocks.MockBookingService, inp input) {
				r.EXPECT().
					SetBookingStatus(gomock.Any(), bookingUid, model.StatusRejected).
					Return(model.Booking{}, errs.ErrInvalidTransition)
			},
			input: input{body: `{"status":"REJECTED"}`, role: auth.RoleAdmin},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"status transition is not allowed"}`,
			},
		},
		{
			name: "err. confirm-time conflict",
			mockBehavior: func(r *service_mocks.MockBookingService, inp input) {
				r.EXPECT().
					SetBookingStatus(gomock.Any(), bookingUid, model.StatusConfirmed).
					Return(model.Booking{}, errs.ErrDoubleBooked)
			},
			input: input{body: `{"status":"CONFIRMED"}`, role: auth.RoleAdmin},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"conflict with an existing booking"}`,
			},
		},
		{
			name: "err. not found",
			mockBehavior: func(r *service_mocks.MockBookingService, inp input) {
				r.EXPECT().
					SetBookingStatus(gomock.Any(), bookingUid, model.StatusConfirmed).
					Return(model.Booking{}, errs.ErrNotFound)
			},
			input: input{body: `{"status":"CONFIRMED"}`, role: auth.RoleAdmin},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
		},
		{
			name:         "err. guest forbidden",
			mockBehavior: func(r *service_mocks.MockBookingService, inp input) {},
			input:        input{body: `{"status":"CONFIRMED"}`, role: auth.RoleGuest},
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"message":"administrator role required"}`,
			},
		},
		{
			name:         "err. unsupported target",
			mockBehavior: func(r *service_mocks.MockBookingService, inp input) {},
			input:        input{body: `{"status":"PENDING"}`, role: auth.RoleAdmin},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockBookingService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.PATCH("/bookings/:bookingUid/status", h.SetBookingStatus, md.AuthContext, md.AdminOnly)

			r := httptest.NewRequest(http.MethodPatch, "/bookings/"+bookingUid+"/status", strings.NewReader(tt.input.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			r.Header.Set(auth.XUserNameHeader, "operator")
			r.Header.Set(auth.XUserRoleHeader, tt.input.role)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc, tt.input)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_AddWindow(t *testing.T) {
	t.Parallel()
	type input struct {
		body string
		role string
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBookingService, inp input)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockBookingService, inp input) {
				r.EXPECT().
					AddWindow(gomock.Any(), unitUid, model.CreateWindowRequest{
						StartDate: date("2025-10-01"),
						EndDate:   date("2025-10-15"),
					}).
					Return(model.Window{
						ID:        1,
						UnitUid:   unitUid,
						StartDate: date("2025-10-01"),
						EndDate:   date("2025-10-15"),
					}, nil)
			},
			input: input{
				body: `{"startDate":"2025-10-01","endDate":"2025-10-15"}`,
				role: auth.RoleAdmin,
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":1,"unitUid":"` + unitUid + `","startDate":"2025-10-01","endDate":"2025-10-15"}`,
			},
		},
		{
			name: "err. overlap",
			mockBehavior: func(r *service_mocks.MockBookingService, inp input) {
				r.EXPECT().
					AddWindow(gomock.Any(), unitUid, gomock.Any()).
					Return(model.Window{}, errs.ErrOverlapConflict)
			},
			input: input{
				body: `{"startDate":"2025-10-05","endDate":"2025-10-08"}`,
				role: auth.RoleAdmin,
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"overlaps an existing availability window"}`,
			},
		},
		{
			name: "err. same day",
			mockBehavior: func(r *service_mocks.MockBookingService, inp input) {
				r.EXPECT().
					AddWindow(gomock.Any(), unitUid, gomock.Any()).
					Return(model.Window{}, errs.ErrZeroLengthRange)
			},
			input: input{
				body: `{"startDate":"2025-10-05","endDate":"2025-10-05"}`,
				role: auth.RoleAdmin,
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"same-day range is not allowed"}`,
			},
		},
		{
			name:         "err. guest forbidden",
			mockBehavior: func(r *service_mocks.MockBookingService, inp input) {},
			input: input{
				body: `{"startDate":"2025-10-01","endDate":"2025-10-15"}`,
				role: auth.RoleGuest,
			},
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"message":"administrator role required"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockBookingService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/units/:unitUid/availabilities", h.AddWindow, md.AuthContext, md.AdminOnly)

			r := httptest.NewRequest(http.MethodPost, "/units/"+unitUid+"/availabilities", strings.NewReader(tt.input.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			r.Header.Set(auth.XUserNameHeader, "operator")
			r.Header.Set(auth.XUserRoleHeader, tt.input.role)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc, tt.input)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}
