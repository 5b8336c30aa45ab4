// File: internal/connection/service.go
package connection

import (
	"context"
	"errors"
	"time"

	"farway_backend/internal/common"
	"farway_backend/internal/config"
	"farway_backend/internal/notification"
	"farway_backend/internal/shared"

	"go.uber.org/zap"
)

// Service defines the business logic for connection requests.
type Service interface {
	// Send creates (or re-creates) a pending request from senderUID to the
	// receiver named in the payload.
	Send(ctx context.Context, senderUID string, req SendRequest) (*FriendRequest, error)
	// PendingFor lists the pending requests addressed to receiverUID.
	PendingFor(ctx context.Context, receiverUID string) ([]PendingRequestResponse, error)
	Accept(ctx context.Context, viewerUID, requestID string) error
	Reject(ctx context.Context, viewerUID, requestID string) error
	Cancel(ctx context.Context, viewerUID, requestID string) error
	// RemindStalePending notifies receivers about pending requests older
	// than the given age. Returns the number of reminders sent.
	RemindStalePending(ctx context.Context, olderThan time.Duration) (int, error)
	// Trips projects the viewer's outgoing requests.
	Trips(ctx context.Context, viewerUID string) ([]Trip, error)
	// Tours projects the viewer's incoming requests.
	Tours(ctx context.Context, viewerUID string) ([]Tour, error)
}

// ServiceImplementation implements the Service interface.
type ServiceImplementation struct {
	repo      Repository
	projector *Projector
	directory shared.Directory
	notifier  notification.Service
	cfg       *config.Config
	logger    *zap.Logger
}

// NewService creates a new connection service.
func NewService(
	repo Repository,
	projector *Projector,
	directory shared.Directory,
	notifier notification.Service,
	cfg *config.Config,
	logger *zap.Logger,
) *ServiceImplementation {
	return &ServiceImplementation{
		repo:      repo,
		projector: projector,
		directory: directory,
		notifier:  notifier,
		cfg:       cfg,
		logger:    logger.Named("ConnectionService"),
	}
}

var _ Service = (*ServiceImplementation)(nil)

func (s *ServiceImplementation) Send(ctx context.Context, senderUID string, req SendRequest) (*FriendRequest, error) {
	if senderUID == req.ReceiverUID {
		return nil, common.ErrBadRequest.WithDetails("You cannot send a connection request to yourself.")
	}

	receiver, err := s.directory.GetProfile(ctx, req.ReceiverUID)
	if err != nil {
		return nil, err
	}

	id := RequestID(senderUID, req.ReceiverUID)
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}
	if existing != nil && Canonicalize(existing.Status) != StatusPending && !s.cfg.ConnectionAllowReRequest {
		return nil, common.ErrConflict.WithDetails("A connection request to this user has already been resolved.")
	}

	record := &FriendRequest{
		ID:           id,
		SenderUID:    senderUID,
		ReceiverUID:  req.ReceiverUID,
		Status:       string(StatusPending),
		CreatedAt:    time.Now().UnixMilli(),
		Location:     req.Location,
		Date:         req.Date,
		Time:         req.Time,
		Price:        req.Price,
		Duration:     req.Duration,
		PartnerName:  receiver.FullName(),
		TourType:     req.TourType,
		TourName:     req.TourName,
		Participants: req.Participants,
	}

	senderName := fallbackTravelerName
	if sender, lookupErr := s.directory.GetProfile(ctx, senderUID); lookupErr == nil {
		senderName = sender.FullName()
	} else {
		s.logger.Warn("Sender profile lookup failed while sending request",
			zap.String("senderUID", senderUID), zap.Error(lookupErr))
	}
	record.GuestName = senderName

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}
	s.logger.Info("Connection request created",
		zap.String("requestID", id),
		zap.String("senderUID", senderUID),
		zap.String("receiverUID", req.ReceiverUID))

	s.notify(ctx, req.ReceiverUID, notification.TypeConnectionRequestReceived,
		senderName+" sent you a connection request.", id)

	return record, nil
}

func (s *ServiceImplementation) PendingFor(ctx context.Context, receiverUID string) ([]PendingRequestResponse, error) {
	records, err := s.repo.ListPendingFor(ctx, receiverUID)
	if err != nil {
		return nil, err
	}

	responses := make([]PendingRequestResponse, 0, len(records))
	for i := range records {
		record := &records[i]
		senderName := fallbackTravelerName
		if sender, lookupErr := s.directory.GetProfile(ctx, record.SenderUID); lookupErr == nil {
			senderName = sender.FullName()
		} else {
			s.logger.Warn("Sender profile lookup failed for pending request",
				zap.String("requestID", record.ID), zap.Error(lookupErr))
		}
		responses = append(responses, PendingRequestResponse{
			ID:           record.ID,
			SenderUID:    record.SenderUID,
			SenderName:   senderName,
			Status:       record.Status,
			CreatedAt:    record.CreatedAt,
			Location:     record.Location,
			TourType:     record.TourType,
			TourName:     record.TourName,
			Participants: record.Participants,
		})
	}
	return responses, nil
}

func (s *ServiceImplementation) Accept(ctx context.Context, viewerUID, requestID string) error {
	record, err := s.repo.FindByID(ctx, requestID)
	if err != nil {
		return err
	}
	if record.ReceiverUID != viewerUID {
		return common.ErrForbidden.WithDetails("Only the receiver can accept a connection request.")
	}
	if err := s.repo.UpdateStatus(ctx, requestID, string(StatusAccepted)); err != nil {
		return err
	}
	s.logger.Info("Connection request accepted", zap.String("requestID", requestID))
	s.notify(ctx, record.SenderUID, notification.TypeConnectionRequestAccepted,
		"Your connection request was accepted.", requestID)
	return nil
}

func (s *ServiceImplementation) Reject(ctx context.Context, viewerUID, requestID string) error {
	record, err := s.repo.FindByID(ctx, requestID)
	if err != nil {
		return err
	}
	if record.ReceiverUID != viewerUID {
		return common.ErrForbidden.WithDetails("Only the receiver can reject a connection request.")
	}
	if err := s.repo.UpdateStatus(ctx, requestID, string(StatusRejected)); err != nil {
		return err
	}
	s.logger.Info("Connection request rejected", zap.String("requestID", requestID))
	s.notify(ctx, record.SenderUID, notification.TypeConnectionRequestRejected,
		"Your connection request was declined.", requestID)
	return nil
}

func (s *ServiceImplementation) Cancel(ctx context.Context, viewerUID, requestID string) error {
	record, err := s.repo.FindByID(ctx, requestID)
	if err != nil {
		return err
	}
	if record.SenderUID != viewerUID {
		return common.ErrForbidden.WithDetails("Only the sender can cancel a connection request.")
	}
	if err := s.repo.UpdateStatus(ctx, requestID, string(StatusCanceled)); err != nil {
		return err
	}
	s.logger.Info("Connection request canceled", zap.String("requestID", requestID))
	return nil
}

func (s *ServiceImplementation) RemindStalePending(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := time.Now().Add(-olderThan).UnixMilli()
	records, err := s.repo.ListPendingCreatedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	reminded := 0
	for i := range records {
		record := &records[i]
		senderName := record.GuestName
		if senderName == "" {
			senderName = fallbackTravelerName
		}
		s.notify(ctx, record.ReceiverUID, notification.TypeConnectionRequestReminder,
			senderName+"'s connection request is still waiting for your response.", record.ID)
		reminded++
	}
	return reminded, nil
}

func (s *ServiceImplementation) Trips(ctx context.Context, viewerUID string) ([]Trip, error) {
	records, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.projector.Trips(ctx, records, viewerUID), nil
}

func (s *ServiceImplementation) Tours(ctx context.Context, viewerUID string) ([]Tour, error) {
	records, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.projector.Tours(ctx, records, viewerUID), nil
}

// notify records a notification for userUID. Failures are logged and
// swallowed so they never fail the triggering operation.
func (s *ServiceImplementation) notify(ctx context.Context, userUID string, notifType notification.Type, message, requestID string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.CreateNotification(ctx, userUID, notifType, message, &requestID); err != nil {
		s.logger.Warn("Failed to create notification",
			zap.String("userUID", userUID),
			zap.String("requestID", requestID),
			zap.Error(err))
	}
}
