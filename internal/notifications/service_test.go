package notifications

import (
	"context"
	"testing"

	"github.com/zeevo-shop/zeevo-edge/pkg/backend"
	pkgerrors "github.com/zeevo-shop/zeevo-edge/pkg/errors"
)

type fakeUpstream struct {
	items    []backend.Notification
	listErr  error
	markErr  error
	lastID   string
	bearer   string
	allCalls int
}

func (f *fakeUpstream) ListNotifications(ctx context.Context, bearer string) ([]backend.Notification, error) {
	f.bearer = bearer
	return f.items, f.listErr
}

func (f *fakeUpstream) MarkNotificationRead(ctx context.Context, bearer, id string) error {
	f.bearer = bearer
	f.lastID = id
	return f.markErr
}

func (f *fakeUpstream) MarkAllNotificationsRead(ctx context.Context, bearer string) error {
	f.bearer = bearer
	f.allCalls++
	return f.markErr
}

func TestListForwardsBearerAndDefaultsNil(t *testing.T) {
	upstream := &fakeUpstream{}
	svc, err := NewService(upstream, nil)
	if err != nil {
		t.Fatalf("building service: %v", err)
	}

	items, err := svc.List(context.Background(), "jwt-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if upstream.bearer != "jwt-token" {
		t.Fatalf("bearer not forwarded, got %q", upstream.bearer)
	}
	if items == nil {
		t.Fatal("nil upstream result must normalize to empty slice")
	}
}

func TestListUpstreamErrorPropagatesTyped(t *testing.T) {
	upstream := &fakeUpstream{listErr: pkgerrors.New(pkgerrors.CodeUpstream, "upstream returned status 503")}
	svc, _ := NewService(upstream, nil)

	_, err := svc.List(context.Background(), "jwt")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUpstream {
		t.Fatalf("expected UPSTREAM_ERROR, got %v", err)
	}
}

func TestMarkReadForwardsID(t *testing.T) {
	upstream := &fakeUpstream{}
	svc, _ := NewService(upstream, nil)

	if err := svc.MarkRead(context.Background(), "jwt", "n_7"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if upstream.lastID != "n_7" {
		t.Fatalf("id not forwarded, got %q", upstream.lastID)
	}
}

func TestMarkAllRead(t *testing.T) {
	upstream := &fakeUpstream{}
	svc, _ := NewService(upstream, nil)

	if err := svc.MarkAllRead(context.Background(), "jwt"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if upstream.allCalls != 1 {
		t.Fatalf("expected one upstream call, got %d", upstream.allCalls)
	}
}
