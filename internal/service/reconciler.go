package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/hkr-miura/moonloop-admin/internal/model"
)

// ErrAlreadyResolved is returned when an operator decision targets a
// request that has already left Pending.  Approved and Rejected are
// terminal, so the reconciler refuses to touch the request again rather
// than re-applying the write.
var ErrAlreadyResolved = errors.New("change request already resolved")

// ErrNoMatch is returned when an approval arrives without a matched
// reservation row.  The predecessor system silently skipped the
// reservation-side update in this case; here the approval is refused
// outright before any write happens.
var ErrNoMatch = errors.New("no matched reservation for change request")

// ErrPropagationPending marks the partial-failure gap of an approval:
// the request's status was set to Approved but the reservation-side
// update did not complete.  The store has no transaction primitive, so
// the status write cannot be rolled back; errors wrapping this sentinel
// tell the operator exactly which half needs manual repair.
var ErrPropagationPending = errors.New("request approved but reservation update pending")

// RequestStore is the slice of the change request store the reconciler
// needs: a fresh single-row read and the status write.
type RequestStore interface {
	Get(ctx context.Context, row int) (model.ChangeRequest, error)
	SetStatus(ctx context.Context, row int, status string) error
}

// ReservationChanger applies an approved change onto a reservation row.
type ReservationChanger interface {
	ApplyChange(ctx context.Context, row int, date, timeStr string, partySize int) error
}

// Reconciler applies operator decisions to change requests.  It does
// not re-derive the request-to-reservation match during approval: the
// caller supplies the reservation row it showed the operator, so the
// approval can never land on a different reservation than the one the
// operator confirmed.
type Reconciler struct {
	requests     RequestStore
	reservations ReservationChanger
}

// NewReconciler constructs a Reconciler.  Both stores must be non-nil.
func NewReconciler(requests RequestStore, reservations ReservationChanger) *Reconciler {
	if requests == nil || reservations == nil {
		panic("nil store passed to NewReconciler")
	}
	return &Reconciler{requests: requests, reservations: reservations}
}

// Approve marks the request Approved and propagates its requested date,
// time and party size onto the matched reservation.
//
// The requested fields are re-read from the store after the status
// write rather than taken from the caller's copy, so an edit that
// landed between the operator's page load and the click is honored.
// The two writes are not transactional: a failure after the status
// write returns an error wrapping ErrPropagationPending and leaves the
// stores inconsistent until repaired.
func (s *Reconciler) Approve(ctx context.Context, requestRow, reservationRow int) error {
	if reservationRow <= 0 {
		return ErrNoMatch
	}
	cur, err := s.requests.Get(ctx, requestRow)
	if err != nil {
		return fmt.Errorf("read change request: %w", err)
	}
	if cur.Status != model.ChangePending {
		return fmt.Errorf("%w: status is %s", ErrAlreadyResolved, cur.Status)
	}

	if err := s.requests.SetStatus(ctx, requestRow, model.ChangeApproved); err != nil {
		return fmt.Errorf("set request status: %w", err)
	}

	req, err := s.requests.Get(ctx, requestRow)
	if err != nil {
		return fmt.Errorf("%w: re-read requested fields: %v", ErrPropagationPending, err)
	}
	if err := s.reservations.ApplyChange(ctx, reservationRow, req.NewDate, req.NewTime, req.NewCount); err != nil {
		return fmt.Errorf("%w: update reservation row %d: %v", ErrPropagationPending, reservationRow, err)
	}
	return nil
}

// Reject marks the request Rejected.  The reservation is never touched.
func (s *Reconciler) Reject(ctx context.Context, requestRow int) error {
	cur, err := s.requests.Get(ctx, requestRow)
	if err != nil {
		return fmt.Errorf("read change request: %w", err)
	}
	if cur.Status != model.ChangePending {
		return fmt.Errorf("%w: status is %s", ErrAlreadyResolved, cur.Status)
	}
	if err := s.requests.SetStatus(ctx, requestRow, model.ChangeRejected); err != nil {
		return fmt.Errorf("set request status: %w", err)
	}
	return nil
}
