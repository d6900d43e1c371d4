// Package credits implements the credit reservation protocol: reserve up
// front, consume during execution, finalize or release exactly once at the
// end. Every finalize/release writes append-only billing ledger entries.
package credits

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/taskfleet/maestro/ent"
	"github.com/taskfleet/maestro/ent/creditreservation"
	"github.com/taskfleet/maestro/ent/run"
	"github.com/taskfleet/maestro/pkg/models"
)

// Sentinel errors.
var (
	// ErrReservationNotFound indicates no reservation with the given id.
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrAlreadyFinalized indicates the reservation already left the active
	// state. Finalize and release are one-shot.
	ErrAlreadyFinalized = errors.New("reservation already finalized or released")

	// ErrNoActiveReservation indicates a run has no active reservation.
	ErrNoActiveReservation = errors.New("no active reservation for run")
)

// Ledger reason codes written on finalize/release.
const (
	ReasonCompleted = "run_completed"
	ReasonFailed    = "run_failed"
	ReasonCancelled = "run_cancelled"
	ReasonTimeout   = "run_timeout"
)

// Manager owns the reservation lifecycle for runs.
type Manager struct {
	client *ent.Client
}

// NewManager creates a credit manager over the ent client.
func NewManager(client *ent.Client) *Manager {
	return &Manager{client: client}
}

// Reserve creates the run's reservation for amount credits and mirrors it on
// the run row. Called once at pending → queued; the partial unique index on
// (run_id) WHERE status='active' rejects a double reserve.
func (m *Manager) Reserve(ctx context.Context, runID, tenantID string, amount int) (*ent.CreditReservation, error) {
	if amount <= 0 {
		return nil, models.Errorf(models.CodeInvalidRequest,
			"reservation amount must be positive, got %d", amount)
	}

	tx, err := m.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.CreditReservation.Create().
		SetID(uuid.New().String()).
		SetRunID(runID).
		SetTenantID(tenantID).
		SetAmount(amount).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	err = tx.Run.UpdateOneID(runID).
		SetCreditsReserved(amount).
		AddVersion(1).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record reservation on run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit reservation: %w", err)
	}
	return res, nil
}

// Consume debits amount credits from an active reservation. Atomic: the
// conditional update only matches while consumed + amount ≤ reserved, so
// concurrent consumers can never push consumption past the reservation.
func (m *Manager) Consume(ctx context.Context, reservationID string, amount int) error {
	if amount <= 0 {
		return nil // zero-cost steps are free
	}

	tx, err := m.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.CreditReservation.Query().
		Where(creditreservation.IDEQ(reservationID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrReservationNotFound
		}
		return fmt.Errorf("failed to load reservation: %w", err)
	}
	if res.Status != creditreservation.StatusActive {
		return ErrAlreadyFinalized
	}
	if res.Consumed+amount > res.Amount {
		return models.Errorf(models.CodeInsufficientCredits,
			"consuming %d would exceed reservation (%d/%d used)",
			amount, res.Consumed, res.Amount)
	}

	if err := res.Update().AddConsumed(amount).Exec(ctx); err != nil {
		return fmt.Errorf("failed to consume credits: %w", err)
	}

	err = tx.Run.Update().
		Where(run.IDEQ(res.RunID)).
		AddCreditsConsumed(amount).
		AddVersion(1).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to record consumption on run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit consumption: %w", err)
	}
	return nil
}

// Finalize closes the reservation of a completed run: the consumed amount is
// debited to the ledger and the unused remainder refunded. One-shot — a
// second finalize (or a finalize after release) returns ErrAlreadyFinalized.
func (m *Manager) Finalize(ctx context.Context, reservationID, reason string) error {
	return m.settle(ctx, reservationID, reason, creditreservation.StatusConsumed)
}

// Release closes the reservation of a non-completed terminal run, returning
// the unused balance. Consumption that already happened stays debited.
func (m *Manager) Release(ctx context.Context, reservationID, reason string) error {
	return m.settle(ctx, reservationID, reason, creditreservation.StatusReleased)
}

// settle moves an active reservation to a terminal status and writes the
// ledger entries. Debit and refund always sum to the reserved amount.
func (m *Manager) settle(ctx context.Context, reservationID, reason string, terminal creditreservation.Status) error {
	tx, err := m.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.CreditReservation.Query().
		Where(creditreservation.IDEQ(reservationID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrReservationNotFound
		}
		return fmt.Errorf("failed to load reservation: %w", err)
	}
	if res.Status != creditreservation.StatusActive {
		return ErrAlreadyFinalized
	}

	err = res.Update().
		SetStatus(terminal).
		SetReason(reason).
		SetFinalizedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to settle reservation: %w", err)
	}

	if res.Consumed > 0 {
		err = tx.BillingEntry.Create().
			SetID(uuid.New().String()).
			SetRunID(res.RunID).
			SetReservationID(res.ID).
			SetTenantID(res.TenantID).
			SetEntryType("debit").
			SetAmount(res.Consumed).
			SetReason(reason).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to write debit entry: %w", err)
		}
	}
	if unused := res.Amount - res.Consumed; unused > 0 {
		err = tx.BillingEntry.Create().
			SetID(uuid.New().String()).
			SetRunID(res.RunID).
			SetReservationID(res.ID).
			SetTenantID(res.TenantID).
			SetEntryType("refund").
			SetAmount(unused).
			SetReason(reason).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to write refund entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit settlement: %w", err)
	}
	return nil
}

// ActiveReservation returns the run's active reservation.
func (m *Manager) ActiveReservation(ctx context.Context, runID string) (*ent.CreditReservation, error) {
	res, err := m.client.CreditReservation.Query().
		Where(
			creditreservation.RunIDEQ(runID),
			creditreservation.StatusEQ(creditreservation.StatusActive),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoActiveReservation
		}
		return nil, fmt.Errorf("failed to query active reservation: %w", err)
	}
	return res, nil
}

// SettleReasonForStatus maps a terminal run status to the ledger reason code.
func SettleReasonForStatus(status run.Status) string {
	switch status {
	case run.StatusCompleted:
		return ReasonCompleted
	case run.StatusCancelled:
		return ReasonCancelled
	case run.StatusTimeout:
		return ReasonTimeout
	default:
		return ReasonFailed
	}
}
