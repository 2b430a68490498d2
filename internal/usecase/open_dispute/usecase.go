package open_dispute

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/domain"
	bookingstore "github.com/handyhub-ie/HandyHub-BookingService/internal/infra/storage/booking"
	disputestore "github.com/handyhub-ie/HandyHub-BookingService/internal/infra/storage/dispute"
)

// Usecase открывает спор по завершённой брони.
// Окно подачи - domain.DisputeWindowDays дней с момента завершения,
// не более одного спора на бронь. Уникальный индекс по booking_id
// закрывает гонку двух одновременных заявлений
type Usecase struct {
	bookingRepo  BookingRepository
	disputeRepo  DisputeRepository
	timeProvider TimeProvider
	logger       Logger
}

func New(
	bookingRepo BookingRepository,
	disputeRepo DisputeRepository,
	timeProvider TimeProvider,
	logger Logger,
) *Usecase {
	return &Usecase{
		bookingRepo:  bookingRepo,
		disputeRepo:  disputeRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

func (u *Usecase) Handle(ctx context.Context, in In) (*Out, error) {
	if err := validateIn(in); err != nil {
		return nil, err
	}

	booking, err := u.bookingRepo.GetByID(ctx, in.BookingID)
	if err != nil {
		if errors.Is(err, bookingstore.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: bookingID=%d", ErrBookingNotFound, in.BookingID)
		}
		return nil, fmt.Errorf("%w: Handle - get booking: %v", ErrInternal, err)
	}

	if booking.CustomerID != in.CustomerID {
		return nil, fmt.Errorf("%w: bookingID=%d, customerID=%d", ErrForbidden, in.BookingID, in.CustomerID)
	}

	if booking.Status != domain.StatusCompleted || booking.CompletedAt == nil {
		return nil, fmt.Errorf("%w: current status %s", ErrBookingNotCompleted, booking.Status)
	}

	deadline := booking.CompletedAt.AddDate(0, 0, domain.DisputeWindowDays)
	if u.timeProvider.Now().After(deadline) {
		return nil, fmt.Errorf("%w: completed at %s", ErrDisputeWindowExpired,
			booking.CompletedAt.Format(domain.DateFormat))
	}

	// Ранняя проверка на дубликат, финальную гарантию даёт уникальный индекс
	if _, err := u.disputeRepo.GetByBookingID(ctx, in.BookingID); err == nil {
		return nil, fmt.Errorf("%w: bookingID=%d", ErrDisputeAlreadyExists, in.BookingID)
	} else if !errors.Is(err, disputestore.ErrDisputeNotFound) {
		return nil, fmt.Errorf("%w: Handle - check existing dispute: %v", ErrInternal, err)
	}

	evidence := in.Evidence
	if evidence == nil {
		evidence = []string{}
	}

	dispute, err := u.disputeRepo.Create(ctx, &domain.Dispute{
		BookingID:   in.BookingID,
		CustomerID:  in.CustomerID,
		ProviderID:  booking.ProviderID,
		Reason:      in.Reason,
		Description: in.Description,
		Evidence:    evidence,
		Status:      domain.DisputePendingProvider,
	})
	if err != nil {
		if errors.Is(err, disputestore.ErrDuplicateDispute) {
			return nil, fmt.Errorf("%w: bookingID=%d", ErrDisputeAlreadyExists, in.BookingID)
		}
		return nil, fmt.Errorf("%w: Handle - create dispute: %v", ErrInternal, err)
	}

	u.logger.Info("[Usecase][OpenDispute] dispute opened: id=%d, bookingID=%d, reason=%s",
		dispute.ID, dispute.BookingID, dispute.Reason)

	return &Out{Dispute: dispute}, nil
}

func validateIn(in In) error {
	if in.BookingID <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidBookingID, in.BookingID)
	}

	if in.CustomerID <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCustomerID, in.CustomerID)
	}

	if !slices.Contains(AllowedReasons, in.Reason) {
		return fmt.Errorf("%w: %q", ErrInvalidReason, in.Reason)
	}

	if strings.TrimSpace(in.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidReason)
	}

	if len(in.Description) > domain.MaxDisputeNoteLength {
		return fmt.Errorf("%w: description exceeds %d characters", ErrInvalidReason, domain.MaxDisputeNoteLength)
	}

	if len(in.Evidence) > domain.MaxEvidenceItems {
		return fmt.Errorf("%w: at most %d evidence items", ErrInvalidReason, domain.MaxEvidenceItems)
	}

	return nil
}
