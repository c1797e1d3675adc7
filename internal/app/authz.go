package app

import (
	"context"
	"errors"
	"log"

	"github.com/suraj-17-jadhav/internship-program/internal/model"
)

var ErrForbidden = errors.New("not the owner of this resource")

// ActivityPublisher enqueues audit events for asynchronous persistence.
type ActivityPublisher interface {
	Publish(ctx context.Context, event model.ActivityEvent) error
}

// authorizeOwner is the single ownership policy: a mutation is allowed
// iff the resource's stored owner id equals the authenticated caller's id.
// Every post and comment mutation goes through this check.
func authorizeOwner(ownerID, callerID uint) error {
	if ownerID != callerID {
		return ErrForbidden
	}
	return nil
}

// publishActivity emits an audit event best-effort: a broker failure is
// logged and never fails the originating request.
func publishActivity(ctx context.Context, events ActivityPublisher, userID uint, action, resourceType string, resourceID uint) {
	if events == nil {
		return
	}
	event := model.ActivityEvent{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
	}
	if err := events.Publish(ctx, event); err != nil {
		log.Printf("publish activity event failed: %v", err)
	}
}
