package notifications

import (
	"context"
	"fmt"

	"github.com/zeevo-shop/zeevo-edge/pkg/backend"
	"github.com/zeevo-shop/zeevo-edge/pkg/logger"
)

type upstreamClient interface {
	ListNotifications(ctx context.Context, bearer string) ([]backend.Notification, error)
	MarkNotificationRead(ctx context.Context, bearer, id string) error
	MarkAllNotificationsRead(ctx context.Context, bearer string) error
}

// Service proxies notification reads and mark-read mutations upstream,
// forwarding the caller's bearer token. Failures are logged and surfaced
// typed; no retries.
type Service struct {
	client upstreamClient
	logg   *logger.Logger
}

func NewService(client upstreamClient, logg *logger.Logger) (*Service, error) {
	if client == nil {
		return nil, fmt.Errorf("upstream client required")
	}
	return &Service{client: client, logg: logg}, nil
}

// List fetches the caller's notifications.
func (s *Service) List(ctx context.Context, bearer string) ([]backend.Notification, error) {
	items, err := s.client.ListNotifications(ctx, bearer)
	if err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "notifications.list_failed", err)
		}
		return nil, err
	}
	if items == nil {
		items = []backend.Notification{}
	}
	return items, nil
}

// MarkRead marks a single notification as read.
func (s *Service) MarkRead(ctx context.Context, bearer, id string) error {
	if err := s.client.MarkNotificationRead(ctx, bearer, id); err != nil {
		if s.logg != nil {
			ctx = s.logg.WithField(ctx, "notification_id", id)
			s.logg.Error(ctx, "notifications.mark_read_failed", err)
		}
		return err
	}
	return nil
}

// MarkAllRead marks every notification for the caller as read.
func (s *Service) MarkAllRead(ctx context.Context, bearer string) error {
	if err := s.client.MarkAllNotificationsRead(ctx, bearer); err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "notifications.mark_all_read_failed", err)
		}
		return err
	}
	return nil
}
