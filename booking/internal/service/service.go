package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/stayhub/stay-booking/booking/internal/errs"
	"github.com/stayhub/stay-booking/booking/internal/interval"
	"github.com/stayhub/stay-booking/booking/internal/model"
	"github.com/stayhub/stay-booking/booking/internal/repository"
)

// Policy holds the admission rules that are business choices rather than
// range geometry. Both default to the permissive behavior: same-day windows
// are rejected and pending contenders do not block each other.
type Policy struct {
	AllowSameDay  bool
	PendingBlocks bool
}

type Service struct {
	log      *zap.Logger
	repo     repository.Repository
	producer sarama.SyncProducer
	policy   Policy
	topic    string
}

// NewService wires the conflict resolver and lifecycle controller. producer
// may be nil; event publishing is then disabled.
func NewService(repo repository.Repository, producer sarama.SyncProducer, policy Policy, topic string, log *zap.Logger) *Service {
	return &Service{
		log:      log,
		repo:     repo,
		producer: producer,
		policy:   policy,
		topic:    topic,
	}
}

// validRange applies the geometric check and the same-day policy on top.
func (s *Service) validRange(start, end model.Date) (interval.Interval, error) {
	rng, err := interval.New(start.Time, end.Time)
	if err != nil {
		return interval.Interval{}, err
	}
	if !s.policy.AllowSameDay && rng.ZeroLength() {
		return interval.Interval{}, errs.ErrZeroLengthRange
	}
	return rng, nil
}

func (s *Service) ListWindows(ctx context.Context, unitUid string) ([]model.Window, error) {
	if err := s.unitExists(ctx, unitUid); err != nil {
		return nil, err
	}
	return s.repo.ListWindows(ctx, unitUid)
}

func (s *Service) AddWindow(ctx context.Context, unitUid string, req model.CreateWindowRequest) (model.Window, error) {
	rng, err := s.validRange(req.StartDate, req.EndDate)
	if err != nil {
		return model.Window{}, err
	}
	return s.repo.CreateWindow(ctx, unitUid, rng)
}

func (s *Service) RemoveWindow(ctx context.Context, unitUid string, windowID int64) error {
	return s.repo.DeleteWindow(ctx, unitUid, windowID)
}

func (s *Service) CreateBooking(ctx context.Context, req model.CreateBookingRequest) (model.Booking, error) {
	rng, err := s.validRange(req.StartDate, req.EndDate)
	if err != nil {
		return model.Booking{}, err
	}
	b, err := s.repo.CreateBooking(ctx, req, rng, s.policy.PendingBlocks)
	if err != nil {
		return model.Booking{}, err
	}
	s.publish(b)
	return b, nil
}

func (s *Service) SetBookingStatus(ctx context.Context, bookingUid string, target model.Status) (model.Booking, error) {
	if target != model.StatusConfirmed && target != model.StatusRejected {
		return model.Booking{}, errs.ErrInvalidTransition
	}
	b, err := s.repo.UpdateBookingStatus(ctx, bookingUid, target)
	if err != nil {
		return model.Booking{}, err
	}
	s.publish(b)
	return b, nil
}

func (s *Service) ListBookingsForUnit(ctx context.Context, unitUid string) ([]model.Booking, error) {
	if err := s.unitExists(ctx, unitUid); err != nil {
		return nil, err
	}
	return s.repo.ListBookingsForUnit(ctx, unitUid)
}

func (s *Service) ListBookingsForRequester(ctx context.Context, requester string) ([]model.Booking, error) {
	return s.repo.ListBookingsForRequester(ctx, requester)
}

// RejectStalePending rejects pending bookings whose start date has already
// passed. Run from the cron sweep; uses the same terminal transition an
// administrator would and publishes an event per rejected booking.
func (s *Service) RejectStalePending(ctx context.Context) error {
	rejected, err := s.repo.RejectStalePending(ctx, time.Now().UTC().Truncate(24*time.Hour))
	if err != nil {
		return err
	}
	for _, b := range rejected {
		s.publish(b)
	}
	if len(rejected) > 0 {
		s.log.Info("stale pending bookings rejected", zap.Int("count", len(rejected)))
	}
	return nil
}

func (s *Service) unitExists(ctx context.Context, unitUid string) error {
	ok, err := s.repo.UnitExists(ctx, unitUid)
	if err != nil {
		return err
	}
	if !ok {
		return errs.ErrNotFound
	}
	return nil
}

// publish emits a booking event. Failures are logged only: the booking is
// already committed and the caller's result must not depend on the broker.
func (s *Service) publish(b model.Booking) {
	if s.producer == nil {
		return
	}
	value, err := json.Marshal(model.BookingEvent{
		BookingUid: b.BookingUid,
		UnitUid:    b.UnitUid,
		Requester:  b.Requester,
		Status:     b.Status,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
	})
	if err != nil {
		s.log.Warn("marshal booking event", zap.Error(err))
		return
	}
	if _, _, err := s.producer.SendMessage(&sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(b.BookingUid),
		Value: sarama.ByteEncoder(value),
	}); err != nil {
		s.log.Warn("publish booking event", zap.Error(err), zap.String("bookingUid", b.BookingUid))
	}
}
