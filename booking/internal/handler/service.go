package handler

import (
	"context"

	"github.com/stayhub/stay-booking/booking/internal/model"
	"github.com/stayhub/stay-booking/booking/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go -package=mocks

type BookingService interface {
	ListWindows(ctx context.Context, unitUid string) ([]model.Window, error)
	AddWindow(ctx context.Context, unitUid string, req model.CreateWindowRequest) (model.Window, error)
	RemoveWindow(ctx context.Context, unitUid string, windowID int64) error
	CreateBooking(ctx context.Context, req model.CreateBookingRequest) (model.Booking, error)
	SetBookingStatus(ctx context.Context, bookingUid string, target model.Status) (model.Booking, error)
	ListBookingsForUnit(ctx context.Context, unitUid string) ([]model.Booking, error)
	ListBookingsForRequester(ctx context.Context, requester string) ([]model.Booking, error)
}

var _ BookingService = (*service.Service)(nil)
