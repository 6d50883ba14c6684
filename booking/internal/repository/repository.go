package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/stayhub/stay-booking/booking/internal/errs"
	"github.com/stayhub/stay-booking/booking/internal/interval"
	"github.com/stayhub/stay-booking/booking/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go -package=mocks

type Repository interface {
	UnitExists(ctx context.Context, unitUid string) (bool, error)
	ListWindows(ctx context.Context, unitUid string) ([]model.Window, error)
	CreateWindow(ctx context.Context, unitUid string, rng interval.Interval) (model.Window, error)
	DeleteWindow(ctx context.Context, unitUid string, windowID int64) error
	CreateBooking(ctx context.Context, req model.CreateBookingRequest, rng interval.Interval, pendingBlocks bool) (model.Booking, error)
	UpdateBookingStatus(ctx context.Context, bookingUid string, target model.Status) (model.Booking, error)
	ListBookingsForUnit(ctx context.Context, unitUid string) ([]model.Booking, error)
	ListBookingsForRequester(ctx context.Context, requester string) ([]model.Booking, error)
	RejectStalePending(ctx context.Context, before time.Time) ([]model.Booking, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	unitTableName         = `unit`
	availabilityTableName = `availability`
	bookingTableName      = `booking`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// begin opens a write transaction with a bounded lock wait, so a contended
// unit surfaces as ErrBusy instead of blocking the handler indefinitely.
func (r *repository) begin(ctx context.Context) (*sqlx.Tx, error) {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx, `set local lock_timeout = '3s'`); err != nil {
		_ = tx.Rollback()
		return nil, mapPgErr(err)
	}
	return tx, nil
}

// lockUnit resolves the unit and takes its advisory lock for the rest of the
// transaction. Every check-then-insert sequence for one unit runs under this
// lock, which closes the race between the conflict check and the write.
func lockUnit(ctx context.Context, tx *sqlx.Tx, unitUid string) (int64, error) {
	var id int64
	err := tx.QueryRowContext(ctx, `select id from unit where unit_uid = $1`, unitUid).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, errs.ErrNotFound
	}
	if err != nil {
		return 0, mapPgErr(err)
	}
	if _, err := tx.ExecContext(ctx,
		`select pg_advisory_xact_lock(hashtextextended($1::text, 0))`, unitUid); err != nil {
		return 0, mapPgErr(err)
	}
	return id, nil
}

// mapPgErr turns storage-level constraint and lock failures into the typed
// errors the callers understand. The exclusion constraints are the backstop
// for the application-level checks; hitting one is still a plain conflict
// from the caller's point of view.
func mapPgErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.LockNotAvailable:
			return errs.ErrBusy
		case pgerrcode.ExclusionViolation:
			switch pgErr.ConstraintName {
			case "availability_no_overlap":
				return errs.ErrOverlapConflict
			case "booking_confirmed_no_overlap":
				return errs.ErrDoubleBooked
			}
		}
	}
	return err
}

func (r *repository) UnitExists(ctx context.Context, unitUid string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`select exists(select 1 from unit where unit_uid = $1)`, unitUid).Scan(&exists)
	return exists, err
}

func (r *repository) ListWindows(ctx context.Context, unitUid string) ([]model.Window, error) {
	q, args, err := qb.Select("a.id", "u.unit_uid", "a.start_date", "a.end_date").
		From(availabilityTableName + " a").
		Join(unitTableName + " u on u.id = a.unit_id").
		Where(sq.Eq{"u.unit_uid": unitUid}).
		OrderBy("a.start_date asc").
		ToSql()
	if err != nil {
		return nil, err
	}
	items := make([]model.Window, 0)
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) CreateWindow(ctx context.Context, unitUid string, rng interval.Interval) (model.Window, error) {
	tx, err := r.begin(ctx)
	if err != nil {
		return model.Window{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	unitID, err := lockUnit(ctx, tx, unitUid)
	if err != nil {
		return model.Window{}, err
	}

	// inclusive overlap: max(starts) <= min(ends)
	q, args, err := qb.Select("1").
		From(availabilityTableName).
		Where(sq.Eq{"unit_id": unitID}).
		Where(sq.LtOrEq{"start_date": rng.End}).
		Where(sq.GtOrEq{"end_date": rng.Start}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Window{}, err
	}
	var one int
	switch err := tx.QueryRowContext(ctx, q, args...).Scan(&one); {
	case err == nil:
		return model.Window{}, errs.ErrOverlapConflict
	case !errors.Is(err, sql.ErrNoRows):
		return model.Window{}, mapPgErr(err)
	}

	q, args, err = qb.Insert(availabilityTableName).
		Columns("unit_id", "start_date", "end_date").
		Values(unitID, rng.Start, rng.End).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return model.Window{}, err
	}
	var id int64
	if err := tx.QueryRowContext(ctx, q, args...).Scan(&id); err != nil {
		r.log.Error("CreateWindow", zap.String("q", q), zap.Any("args", args))
		return model.Window{}, mapPgErr(err)
	}
	if err := tx.Commit(); err != nil {
		return model.Window{}, mapPgErr(err)
	}
	return model.Window{
		ID:        id,
		UnitUid:   unitUid,
		StartDate: model.NewDate(rng.Start),
		EndDate:   model.NewDate(rng.End),
	}, nil
}

func (r *repository) DeleteWindow(ctx context.Context, unitUid string, windowID int64) error {
	// removing availability does not retro-invalidate existing bookings;
	// bookings are validated at admission time only
	res, err := r.db.ExecContext(ctx, `
	delete from availability a
	using unit u
	where u.id = a.unit_id and u.unit_uid = $1 and a.id = $2`, unitUid, windowID)
	if err != nil {
		return mapPgErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) CreateBooking(ctx context.Context, req model.CreateBookingRequest, rng interval.Interval, pendingBlocks bool) (model.Booking, error) {
	tx, err := r.begin(ctx)
	if err != nil {
		return model.Booking{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	unitID, err := lockUnit(ctx, tx, req.UnitUid)
	if err != nil {
		return model.Booking{}, err
	}

	// containment: at least one window must cover the whole range
	q, args, err := qb.Select("1").
		From(availabilityTableName).
		Where(sq.Eq{"unit_id": unitID}).
		Where(sq.LtOrEq{"start_date": rng.Start}).
		Where(sq.GtOrEq{"end_date": rng.End}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Booking{}, err
	}
	var one int
	switch err := tx.QueryRowContext(ctx, q, args...).Scan(&one); {
	case errors.Is(err, sql.ErrNoRows):
		return model.Booking{}, errs.ErrOutOfAvailability
	case err != nil:
		return model.Booking{}, mapPgErr(err)
	}

	// only confirmed bookings block admission unless strict mode is on
	blocking := []model.Status{model.StatusConfirmed}
	if pendingBlocks {
		blocking = append(blocking, model.StatusPending)
	}
	q, args, err = qb.Select("1").
		From(bookingTableName).
		Where(sq.Eq{"unit_id": unitID, "status": blocking}).
		Where(sq.LtOrEq{"start_date": rng.End}).
		Where(sq.GtOrEq{"end_date": rng.Start}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Booking{}, err
	}
	switch err := tx.QueryRowContext(ctx, q, args...).Scan(&one); {
	case err == nil:
		return model.Booking{}, errs.ErrDoubleBooked
	case !errors.Is(err, sql.ErrNoRows):
		return model.Booking{}, mapPgErr(err)
	}

	bookingUid := uuid.New().String()
	q, args, err = qb.Insert(bookingTableName).
		Columns("booking_uid", "unit_id", "requester", "start_date", "end_date", "status").
		Values(bookingUid, unitID, req.Requester, rng.Start, rng.End, model.StatusPending).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return model.Booking{}, err
	}
	var id int64
	if err := tx.QueryRowContext(ctx, q, args...).Scan(&id); err != nil {
		r.log.Error("CreateBooking", zap.String("q", q), zap.Any("args", args))
		return model.Booking{}, mapPgErr(err)
	}
	if err := tx.Commit(); err != nil {
		return model.Booking{}, mapPgErr(err)
	}
	return model.Booking{
		ID:         id,
		BookingUid: bookingUid,
		UnitUid:    req.UnitUid,
		Requester:  req.Requester,
		StartDate:  model.NewDate(rng.Start),
		EndDate:    model.NewDate(rng.End),
		Status:     model.StatusPending,
	}, nil
}

func (r *repository) UpdateBookingStatus(ctx context.Context, bookingUid string, target model.Status) (model.Booking, error) {
	tx, err := r.begin(ctx)
	if err != nil {
		return model.Booking{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	var unitUid string
	err = tx.QueryRowContext(ctx, `
	select u.unit_uid from booking b
	join unit u on u.id = b.unit_id
	where b.booking_uid = $1`, bookingUid).Scan(&unitUid)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Booking{}, errs.ErrNotFound
	}
	if err != nil {
		return model.Booking{}, mapPgErr(err)
	}
	if _, err := lockUnit(ctx, tx, unitUid); err != nil {
		return model.Booking{}, err
	}

	// re-read under the unit lock: the status may have moved while we waited
	var cur model.Booking
	err = tx.QueryRowxContext(ctx, `
	select b.id, b.booking_uid, u.unit_uid, b.requester, b.start_date, b.end_date, b.status
	from booking b
	join unit u on u.id = b.unit_id
	where b.booking_uid = $1
	for update of b`, bookingUid).StructScan(&cur)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Booking{}, errs.ErrNotFound
	}
	if err != nil {
		return model.Booking{}, mapPgErr(err)
	}
	if cur.Status != model.StatusPending {
		return model.Booking{}, errs.ErrInvalidTransition
	}

	if target == model.StatusConfirmed {
		// confirm-time re-validation: another contender may have been
		// confirmed since this booking was admitted
		var one int
		q, args, err := qb.Select("1").
			From(bookingTableName + " b").
			Join(unitTableName + " u on u.id = b.unit_id").
			Where(sq.Eq{"u.unit_uid": unitUid, "b.status": model.StatusConfirmed}).
			Where(sq.NotEq{"b.id": cur.ID}).
			Where(sq.LtOrEq{"b.start_date": cur.EndDate.Time}).
			Where(sq.GtOrEq{"b.end_date": cur.StartDate.Time}).
			Limit(1).
			ToSql()
		if err != nil {
			return model.Booking{}, err
		}
		switch err := tx.QueryRowContext(ctx, q, args...).Scan(&one); {
		case err == nil:
			return model.Booking{}, errs.ErrDoubleBooked
		case !errors.Is(err, sql.ErrNoRows):
			return model.Booking{}, mapPgErr(err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`update booking set status = $1 where id = $2`, target, cur.ID); err != nil {
		return model.Booking{}, mapPgErr(err)
	}
	if err := tx.Commit(); err != nil {
		return model.Booking{}, mapPgErr(err)
	}
	cur.Status = target
	return cur, nil
}

func (r *repository) ListBookingsForUnit(ctx context.Context, unitUid string) ([]model.Booking, error) {
	q, args, err := qb.Select("b.id", "b.booking_uid", "u.unit_uid", "b.requester", "b.start_date", "b.end_date", "b.status").
		From(bookingTableName + " b").
		Join(unitTableName + " u on u.id = b.unit_id").
		Where(sq.Eq{"u.unit_uid": unitUid}).
		OrderBy("b.start_date asc", "b.id asc").
		ToSql()
	if err != nil {
		return nil, err
	}
	items := make([]model.Booking, 0)
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) ListBookingsForRequester(ctx context.Context, requester string) ([]model.Booking, error) {
	q, args, err := qb.Select("b.id", "b.booking_uid", "u.unit_uid", "b.requester", "b.start_date", "b.end_date", "b.status").
		From(bookingTableName + " b").
		Join(unitTableName + " u on u.id = b.unit_id").
		Where(sq.Eq{"b.requester": requester}).
		OrderBy("b.start_date asc", "b.id asc").
		ToSql()
	if err != nil {
		return nil, err
	}
	items := make([]model.Booking, 0)
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

// RejectStalePending moves every overdue pending booking to rejected and
// returns the affected rows, so the caller can emit one event per transition.
func (r *repository) RejectStalePending(ctx context.Context, before time.Time) ([]model.Booking, error) {
	q := `
	update booking b
	set status = 'REJECTED'
	from unit u
	where u.id = b.unit_id and b.status = 'PENDING' and b.start_date < $1
	returning b.id, b.booking_uid, u.unit_uid, b.requester, b.start_date, b.end_date, b.status`

	rows, err := r.db.QueryxContext(ctx, q, before)
	if err != nil {
		return nil, mapPgErr(err)
	}
	defer rows.Close() //nolint:errcheck

	items := make([]model.Booking, 0)
	for rows.Next() {
		var b model.Booking
		if err := rows.StructScan(&b); err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
