package disputes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/domain"
	disputestore "github.com/handyhub-ie/HandyHub-BookingService/internal/infra/storage/dispute"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/integrations/pushgateway"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/integrations/userdirectory"
)

// pushTimeout ограничивает фоновую отправку уведомления
const pushTimeout = 10 * time.Second

// Ответы исполнителя на спор
const (
	ResponseAccepted = "accepted"
	ResponseRejected = "rejected"
)

// Решения администратора по эскалированному спору
const (
	DecisionApproved = "approved"
	DecisionRejected = "rejected"
)

// Service реализует workflow споров: ответ исполнителя,
// эскалацию администратору и финальное решение.
// Переходы статусов делаются условными UPDATE, поэтому
// конкурирующие ответы не затирают друг друга
type Service struct {
	repo       Repository
	userClient UserClient
	pushClient PushClient
	logger     Logger
}

func New(repo Repository, userClient UserClient, pushClient PushClient, logger Logger) *Service {
	return &Service{
		repo:       repo,
		userClient: userClient,
		pushClient: pushClient,
		logger:     logger,
	}
}

// ProviderRespond обрабатывает ответ исполнителя на спор.
// accepted закрывает спор возвратом средств, rejected требует пояснения
// и эскалирует спор администратору
func (s *Service) ProviderRespond(ctx context.Context, disputeID, providerID int64, response string, note *string) (*domain.Dispute, error) {
	var to domain.DisputeStatus
	switch response {
	case ResponseAccepted:
		to = domain.DisputeResolvedRefunded
	case ResponseRejected:
		if note == nil || strings.TrimSpace(*note) == "" {
			return nil, fmt.Errorf("%w: rejection must explain the decision", ErrMissingNote)
		}
		to = domain.DisputePendingAdmin
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidResponse, response)
	}

	dispute, err := s.getByID(ctx, disputeID)
	if err != nil {
		return nil, err
	}

	if dispute.ProviderID != providerID {
		return nil, fmt.Errorf("%w: disputeID=%d, providerID=%d", ErrForbidden, disputeID, providerID)
	}

	if !dispute.AwaitsProvider() {
		return nil, fmt.Errorf("%w: dispute %d is not awaiting provider response", ErrInvalidTransition, disputeID)
	}

	if err := s.repo.SetProviderResponse(ctx, disputeID, to, note); err != nil {
		if errors.Is(err, disputestore.ErrStatusConflict) {
			return nil, fmt.Errorf("%w: dispute %d is not awaiting provider response", ErrInvalidTransition, disputeID)
		}
		return nil, fmt.Errorf("%w: ProviderRespond - update dispute: %v", ErrInternal, err)
	}

	dispute.Status = to
	dispute.ProviderResponse = note

	s.logger.Info("[Service][Disputes] provider responded: disputeID=%d, response=%s, status=%s",
		disputeID, response, to)

	if to == domain.DisputeResolvedRefunded {
		s.notify(dispute.CustomerID, "Dispute resolved",
			"The handyman accepted your dispute. A refund will be issued.", dispute.ID)
	} else {
		s.notify(dispute.CustomerID, "Dispute escalated",
			"The handyman rejected your dispute. An administrator will review it.", dispute.ID)
	}

	return dispute, nil
}

// AdminResolve выносит финальное решение администратора по
// эскалированному спору. approved означает возврат средств заказчику
func (s *Service) AdminResolve(ctx context.Context, disputeID int64, decision, note string) (*domain.Dispute, error) {
	var to domain.DisputeStatus
	switch decision {
	case DecisionApproved:
		to = domain.DisputeResolvedRefunded
	case DecisionRejected:
		to = domain.DisputeResolvedRejected
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidDecision, decision)
	}

	// Пояснение обязательно только при отклонении спора,
	// одобрение допускается без комментария
	if to == domain.DisputeResolvedRejected && strings.TrimSpace(note) == "" {
		return nil, fmt.Errorf("%w: rejection must explain the decision", ErrMissingNote)
	}

	dispute, err := s.getByID(ctx, disputeID)
	if err != nil {
		return nil, err
	}

	if !dispute.AwaitsAdmin() {
		return nil, fmt.Errorf("%w: dispute %d is not awaiting admin review", ErrInvalidTransition, disputeID)
	}

	var adminNote *string
	if strings.TrimSpace(note) != "" {
		adminNote = &note
	}

	if err := s.repo.SetAdminResolution(ctx, disputeID, to, adminNote); err != nil {
		if errors.Is(err, disputestore.ErrStatusConflict) {
			return nil, fmt.Errorf("%w: dispute %d is not awaiting admin review", ErrInvalidTransition, disputeID)
		}
		return nil, fmt.Errorf("%w: AdminResolve - update dispute: %v", ErrInternal, err)
	}

	dispute.Status = to
	dispute.AdminResponse = adminNote

	s.logger.Info("[Service][Disputes] admin resolved: disputeID=%d, decision=%s, status=%s",
		disputeID, decision, to)

	customerMsg := "Your dispute was approved. A refund will be issued."
	providerMsg := "The dispute against your booking was approved in the customer's favour."
	if to == domain.DisputeResolvedRejected {
		customerMsg = "Your dispute was reviewed and rejected."
		providerMsg = "The dispute against your booking was rejected."
	}
	s.notify(dispute.CustomerID, "Dispute resolved", customerMsg, dispute.ID)
	s.notify(dispute.ProviderID, "Dispute resolved", providerMsg, dispute.ID)

	return dispute, nil
}

// GetByProvider возвращает споры исполнителя с опциональным фильтром по статусу
func (s *Service) GetByProvider(ctx context.Context, providerID int64, status *domain.DisputeStatus) ([]*domain.Dispute, error) {
	result, err := s.repo.GetByProviderID(ctx, providerID, status)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProvider - query: %v", ErrInternal, err)
	}
	return result, nil
}

// GetAdminQueue возвращает споры, ожидающие решения администратора
func (s *Service) GetAdminQueue(ctx context.Context) ([]*domain.Dispute, error) {
	result, err := s.repo.GetByStatus(ctx, domain.DisputePendingAdmin)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAdminQueue - query: %v", ErrInternal, err)
	}
	return result, nil
}

func (s *Service) getByID(ctx context.Context, disputeID int64) (*domain.Dispute, error) {
	dispute, err := s.repo.GetByID(ctx, disputeID)
	if err != nil {
		if errors.Is(err, disputestore.ErrDisputeNotFound) {
			return nil, fmt.Errorf("%w: disputeID=%d", ErrDisputeNotFound, disputeID)
		}
		return nil, fmt.Errorf("%w: getByID - query: %v", ErrInternal, err)
	}
	return dispute, nil
}

// notify отправляет пуш получателю в фоне, ошибки только логируются
func (s *Service) notify(recipientID int64, title, body string, disputeID int64) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), pushTimeout)
		defer cancel()

		user, err := s.userClient.GetUser(ctx, recipientID)
		if err != nil {
			if !errors.Is(err, userdirectory.ErrUserNotFound) {
				s.logger.Warn("[Service][Disputes] notify - get recipient failed: userID=%d, err=%v", recipientID, err)
			}
			return
		}
		if user.PushToken == nil {
			return
		}

		err = s.pushClient.Send(ctx, pushgateway.Notification{
			To:    *user.PushToken,
			Title: title,
			Body:  body,
			Data: map[string]any{
				"dispute_id": disputeID,
				"type":       "dispute_update",
			},
		})
		if err != nil {
			s.logger.Warn("[Service][Disputes] notify - send failed: userID=%d, disputeID=%d, err=%v", recipientID, disputeID, err)
		}
	}()
}
