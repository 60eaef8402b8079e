package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/souqin/souqin/internal/pkg/models"
	"github.com/souqin/souqin/services/profiles/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEvent() *models.ProfileReconcileEvent {
	return &models.ProfileReconcileEvent{
		ProfileID:  uuid.New(),
		Phone:      "+966501234567",
		FullName:   "Huda Al-Otaibi",
		Role:       models.RoleAffiliate,
		NewUser:    true,
		VerifiedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestReconcile_UpsertsMirrorRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMirrorRepo(ctrl)
	uc := NewProfilesUC(mockRepo, &models.Config{})

	event := newTestEvent()

	mockRepo.EXPECT().
		UpsertMirror(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.Profile) error {
			assert.Equal(t, event.ProfileID, p.ID)
			assert.Equal(t, event.Phone, p.Phone)
			assert.Equal(t, models.RoleAffiliate, p.Role)
			assert.True(t, p.IsActive)
			assert.Equal(t, event.VerifiedAt, p.CreatedAt)
			require.NotNil(t, p.LastLoginAt)
			assert.Equal(t, event.VerifiedAt, *p.LastLoginAt)
			return nil
		})

	require.NoError(t, uc.Reconcile(context.Background(), event))
}

func TestReconcile_RetriesTransientFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMirrorRepo(ctrl)
	uc := NewProfilesUC(mockRepo, &models.Config{})

	event := newTestEvent()

	gomock.InOrder(
		mockRepo.EXPECT().UpsertMirror(gomock.Any(), gomock.Any()).
			Return(errors.New("connection reset")),
		mockRepo.EXPECT().UpsertMirror(gomock.Any(), gomock.Any()).
			Return(nil),
	)

	require.NoError(t, uc.Reconcile(context.Background(), event))
}

func TestReconcile_ReplayIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMirrorRepo(ctrl)
	uc := NewProfilesUC(mockRepo, &models.Config{})

	event := newTestEvent()

	// The same event delivered twice upserts the same row twice
	mockRepo.EXPECT().UpsertMirror(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	require.NoError(t, uc.Reconcile(context.Background(), event))
	require.NoError(t, uc.Reconcile(context.Background(), event))
}

func TestReconcile_PersistentFailureSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMirrorRepo(ctrl)
	uc := NewProfilesUC(mockRepo, &models.Config{})

	mockRepo.EXPECT().UpsertMirror(gomock.Any(), gomock.Any()).
		Return(errors.New("table missing")).
		AnyTimes()

	err := uc.Reconcile(context.Background(), newTestEvent())
	assert.Error(t, err)
}

func TestReconcile_ExistingUserKeepsZeroCreatedAt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMirrorRepo(ctrl)
	uc := NewProfilesUC(mockRepo, &models.Config{})

	event := newTestEvent()
	event.NewUser = false

	mockRepo.EXPECT().
		UpsertMirror(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.Profile) error {
			// Creation time is only stamped for first-time sign-ups; the
			// upsert leaves the existing row's created_at untouched.
			assert.True(t, p.CreatedAt.IsZero())
			return nil
		})

	require.NoError(t, uc.Reconcile(context.Background(), event))
}
