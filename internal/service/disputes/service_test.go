package disputes

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/domain"
	disputestore "github.com/handyhub-ie/HandyHub-BookingService/internal/infra/storage/dispute"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/integrations/pushgateway"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/integrations/userdirectory"
	"github.com/handyhub-ie/HandyHub-BookingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

type fakeRepo struct {
	dispute *domain.Dispute

	providerErr error
	adminErr    error

	providerTo domain.DisputeStatus
	adminTo    domain.DisputeStatus
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Dispute, error) {
	if f.dispute == nil || f.dispute.ID != id {
		return nil, disputestore.ErrDisputeNotFound
	}
	copied := *f.dispute
	return &copied, nil
}

func (f *fakeRepo) GetByProviderID(_ context.Context, _ int64, _ *domain.DisputeStatus) ([]*domain.Dispute, error) {
	return []*domain.Dispute{f.dispute}, nil
}

func (f *fakeRepo) GetByStatus(_ context.Context, _ domain.DisputeStatus) ([]*domain.Dispute, error) {
	return []*domain.Dispute{f.dispute}, nil
}

func (f *fakeRepo) SetProviderResponse(_ context.Context, _ int64, to domain.DisputeStatus, _ *string) error {
	if f.providerErr != nil {
		return f.providerErr
	}
	f.providerTo = to
	return nil
}

func (f *fakeRepo) SetAdminResolution(_ context.Context, _ int64, to domain.DisputeStatus, _ *string) error {
	if f.adminErr != nil {
		return f.adminErr
	}
	f.adminTo = to
	return nil
}

type fakeUserClient struct{}

func (fakeUserClient) GetUser(_ context.Context, _ int64) (*userdirectory.User, error) {
	return nil, userdirectory.ErrUserNotFound
}

type fakePushClient struct{}

func (fakePushClient) Send(_ context.Context, _ pushgateway.Notification) error { return nil }

func pendingProviderDispute() *domain.Dispute {
	return &domain.Dispute{
		ID:         3,
		BookingID:  5,
		CustomerID: 1,
		ProviderID: 7,
		Reason:     "Incomplete Work",
		Status:     domain.DisputePendingProvider,
	}
}

func newTestService(repo *fakeRepo) *Service {
	return New(repo, fakeUserClient{}, fakePushClient{}, nopLogger{})
}

func TestService_ProviderAcceptRefunds(t *testing.T) {
	repo := &fakeRepo{dispute: pendingProviderDispute()}
	svc := newTestService(repo)

	dispute, err := svc.ProviderRespond(context.Background(), 3, 7, ResponseAccepted, nil)

	require.NoError(t, err)
	assert.Equal(t, domain.DisputeResolvedRefunded, dispute.Status)
	assert.Equal(t, domain.DisputeResolvedRefunded, repo.providerTo)
}

func TestService_ProviderRejectEscalates(t *testing.T) {
	repo := &fakeRepo{dispute: pendingProviderDispute()}
	svc := newTestService(repo)

	note := "Work was finished as agreed, photos attached"
	dispute, err := svc.ProviderRespond(context.Background(), 3, 7, ResponseRejected, &note)

	require.NoError(t, err)
	assert.Equal(t, domain.DisputePendingAdmin, dispute.Status)
	require.NotNil(t, dispute.ProviderResponse)
	assert.Equal(t, note, *dispute.ProviderResponse)
}

func TestService_ProviderRejectRequiresNote(t *testing.T) {
	svc := newTestService(&fakeRepo{dispute: pendingProviderDispute()})

	_, err := svc.ProviderRespond(context.Background(), 3, 7, ResponseRejected, nil)
	assert.ErrorIs(t, err, ErrMissingNote)

	_, err = svc.ProviderRespond(context.Background(), 3, 7, ResponseRejected, ptr.Ptr("   "))
	assert.ErrorIs(t, err, ErrMissingNote)
}

func TestService_ProviderRespondRejectsUnknownResponse(t *testing.T) {
	svc := newTestService(&fakeRepo{dispute: pendingProviderDispute()})

	_, err := svc.ProviderRespond(context.Background(), 3, 7, "ignored", nil)

	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestService_ProviderRespondRejectsForeignDispute(t *testing.T) {
	svc := newTestService(&fakeRepo{dispute: pendingProviderDispute()})

	_, err := svc.ProviderRespond(context.Background(), 3, 8, ResponseAccepted, nil)

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_ProviderRespondRejectsResolvedDispute(t *testing.T) {
	dispute := pendingProviderDispute()
	dispute.Status = domain.DisputeResolvedRefunded
	svc := newTestService(&fakeRepo{dispute: dispute})

	_, err := svc.ProviderRespond(context.Background(), 3, 7, ResponseAccepted, nil)

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_ProviderRespondMapsStatusConflict(t *testing.T) {
	repo := &fakeRepo{dispute: pendingProviderDispute(), providerErr: disputestore.ErrStatusConflict}
	svc := newTestService(repo)

	_, err := svc.ProviderRespond(context.Background(), 3, 7, ResponseAccepted, nil)

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_AdminResolve(t *testing.T) {
	tests := []struct {
		name       string
		decision   string
		wantStatus domain.DisputeStatus
	}{
		{"approved refunds customer", DecisionApproved, domain.DisputeResolvedRefunded},
		{"rejected closes dispute", DecisionRejected, domain.DisputeResolvedRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dispute := pendingProviderDispute()
			dispute.Status = domain.DisputePendingAdmin
			repo := &fakeRepo{dispute: dispute}
			svc := newTestService(repo)

			resolved, err := svc.AdminResolve(context.Background(), 3, tt.decision, "Reviewed the evidence")

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resolved.Status)
			assert.Equal(t, tt.wantStatus, repo.adminTo)
			require.NotNil(t, resolved.AdminResponse)
		})
	}
}

func TestService_AdminResolveRequiresNoteOnRejection(t *testing.T) {
	svc := newTestService(&fakeRepo{dispute: pendingProviderDispute()})

	_, err := svc.AdminResolve(context.Background(), 3, DecisionRejected, "  ")

	assert.ErrorIs(t, err, ErrMissingNote)
}

func TestService_AdminResolveApprovesWithoutNote(t *testing.T) {
	dispute := pendingProviderDispute()
	dispute.Status = domain.DisputePendingAdmin
	repo := &fakeRepo{dispute: dispute}
	svc := newTestService(repo)

	resolved, err := svc.AdminResolve(context.Background(), 3, DecisionApproved, "")

	require.NoError(t, err)
	assert.Equal(t, domain.DisputeResolvedRefunded, resolved.Status)
	assert.Nil(t, resolved.AdminResponse)
}

func TestService_AdminResolveRejectsUnknownDecision(t *testing.T) {
	svc := newTestService(&fakeRepo{dispute: pendingProviderDispute()})

	_, err := svc.AdminResolve(context.Background(), 3, "postponed", "note")

	assert.ErrorIs(t, err, ErrInvalidDecision)
}

func TestService_AdminResolveMapsStatusConflict(t *testing.T) {
	dispute := pendingProviderDispute()
	dispute.Status = domain.DisputePendingAdmin
	repo := &fakeRepo{dispute: dispute, adminErr: disputestore.ErrStatusConflict}
	svc := newTestService(repo)

	_, err := svc.AdminResolve(context.Background(), 3, DecisionRejected, "note")

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_NotFound(t *testing.T) {
	svc := newTestService(&fakeRepo{})

	_, err := svc.ProviderRespond(context.Background(), 404, 7, ResponseAccepted, nil)

	assert.ErrorIs(t, err, ErrDisputeNotFound)
}
