package admin

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/mfar201/flight-ticket-booking-system-sub001/internal/domain"
	"github.com/mfar201/flight-ticket-booking-system-sub001/internal/kafka"
	"github.com/mfar201/flight-ticket-booking-system-sub001/internal/repository"
)

// AdminUseCase is the staged-confirmation workflow for role escalation.
// A role change is never applied from the request that proposed it: the
// proposal is staged against the acting administrator and applied only by an
// explicit second confirm call.
type AdminUseCase interface {
	StageRoleChange(ctx context.Context, actorID int64, input StageRoleChangeInput) (string, error)
	ConfirmRoleChange(ctx context.Context, actorID int64) (*domain.User, error)
	DiscardRoleChange(ctx context.Context, actorID int64) error
}

type StagedStore interface {
	StageRoleChange(ctx context.Context, actorID int64, proposal domain.RoleChangeProposal) error
	TakeRoleChange(ctx context.Context, actorID int64) (*domain.RoleChangeProposal, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type AdminService struct {
	users              repository.UserRepository
	staged             StagedStore
	producer           Producer
	notificationsTopic string
}

type StageRoleChangeInput struct {
	TargetUserID int64
	RoleID       int64
	FullName     string
	Email        string
}

func NewAdminService(users repository.UserRepository, staged StagedStore, producer Producer, notificationsTopic string) *AdminService {
	return &AdminService{
		users:              users,
		staged:             staged,
		producer:           producer,
		notificationsTopic: notificationsTopic,
	}
}

// StageRoleChange validates the proposal and parks it in the staged store,
// replacing any earlier unconfirmed proposal by the same actor. The returned
// nonce identifies the staged record in responses and logs.
func (s *AdminService) StageRoleChange(ctx context.Context, actorID int64, input StageRoleChangeInput) (string, error) {
	if actorID <= 0 || input.TargetUserID <= 0 || input.RoleID <= 0 {
		return "", domain.ErrValidation
	}

	target, err := s.users.GetByID(ctx, input.TargetUserID)
	if err != nil {
		return "", err
	}
	if _, err := s.users.GetRole(ctx, input.RoleID); err != nil {
		return "", err
	}

	proposal := domain.RoleChangeProposal{
		Nonce:        uuid.NewString(),
		TargetUserID: target.ID,
		RoleID:       input.RoleID,
		FullName:     input.FullName,
		Email:        input.Email,
		StagedAt:     time.Now().UTC(),
	}
	if proposal.FullName == "" {
		proposal.FullName = target.FullName
	}
	if proposal.Email == "" {
		proposal.Email = target.Email
	}

	if err := s.staged.StageRoleChange(ctx, actorID, proposal); err != nil {
		return "", domain.Transient(err)
	}
	return proposal.Nonce, nil
}

// ConfirmRoleChange consumes the staged proposal and applies it. The take is
// destructive up front: whatever the outcome, the proposal is gone and a
// second confirm reports ErrNoStagedChange. A target or role deleted since
// staging makes the proposal stale rather than half-applying it.
func (s *AdminService) ConfirmRoleChange(ctx context.Context, actorID int64) (*domain.User, error) {
	proposal, err := s.staged.TakeRoleChange(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if _, err := s.users.GetRole(ctx, proposal.RoleID); err != nil {
		if errors.Is(err, domain.ErrRoleNotFound) {
			return nil, domain.ErrStaleProposal
		}
		return nil, err
	}

	updated, err := s.users.ApplyRoleChange(ctx, *proposal)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrRoleNotFound) {
			return nil, domain.ErrStaleProposal
		}
		return nil, err
	}

	if s.producer != nil && s.notificationsTopic != "" {
		event := kafka.RoleChangeEvent{
			Type:         "role_changed",
			ActorID:      actorID,
			TargetUserID: updated.ID,
			RoleID:       updated.RoleID,
			Email:        updated.Email,
		}
		if err := s.producer.Publish(ctx, s.notificationsTopic, proposal.Nonce, event); err != nil {
			log.Printf("WARNING: failed to publish role_changed event for user %d: %v", updated.ID, err)
		}
	}
	return updated, nil
}

func (s *AdminService) DiscardRoleChange(ctx context.Context, actorID int64) error {
	_, err := s.staged.TakeRoleChange(ctx, actorID)
	return err
}

var _ AdminUseCase = (*AdminService)(nil)
