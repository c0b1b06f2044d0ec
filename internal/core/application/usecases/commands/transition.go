package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mota/internal/core/domain/model/actor"
	"mota/internal/core/domain/model/kernel"
	"mota/internal/core/domain/model/order"
	"mota/internal/core/ports"

	"go.uber.org/zap"
)

// ErrTransitionNotPermitted is returned when the local gate denies a
// transition. The backend is not contacted in that case.
var ErrTransitionNotPermitted = errors.New("transition not permitted")

// TransitionResult describes a transition the backend accepted.
type TransitionResult struct {
	Order *order.Order
	From  order.Status
	To    order.Status
}

// statusChange is one row of the transition catalogue: who may trigger it
// and what it does to the order.
type statusChange struct {
	name      string
	permitted func(actor.Actor, *order.Order) bool
	apply     func(*order.Order) error
}

// transitioner runs a statusChange against the backend with
// read-validate-write semantics.
type transitioner struct {
	gateway   StatusGateway
	publisher ports.EventPublisher
	logger    *zap.Logger
	now       func() time.Time
}

func newTransitioner(gateway StatusGateway, publisher ports.EventPublisher, logger *zap.Logger) transitioner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return transitioner{
		gateway:   gateway,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

func (t transitioner) run(
	ctx context.Context,
	a actor.Actor,
	orderID kernel.ID,
	change statusChange,
) (TransitionResult, error) {
	o, err := t.gateway.Get(ctx, orderID)
	if err != nil {
		return TransitionResult{}, fmt.Errorf("fetch order %s: %w", orderID, err)
	}

	log := t.logger.With(
		zap.String("transition", change.name),
		zap.Stringer("order_id", orderID),
		zap.Stringer("actor_id", a.ID()),
		zap.Stringer("role", a.Role()),
	)

	from := o.Status()
	if !change.permitted(a, o) {
		log.Info("transition denied", zap.Stringer("status", from))
		return TransitionResult{}, fmt.Errorf(
			"%s order %s at %s as %s: %w", change.name, orderID, from, a.Role(), ErrTransitionNotPermitted,
		)
	}

	if err = change.apply(o); err != nil {
		return TransitionResult{}, err
	}
	to := o.Status()

	if err = t.gateway.UpdateStatus(ctx, orderID, from, to); err != nil {
		log.Warn("backend rejected transition", zap.Error(err))
		return TransitionResult{}, fmt.Errorf("%s order %s: %w", change.name, orderID, err)
	}

	log.Info("order status changed", zap.Stringer("from", from), zap.Stringer("to", to))
	t.publish(ctx, log, ports.StatusChangedEvent{
		OrderID:    orderID,
		From:       from,
		To:         to,
		ActorID:    a.ID(),
		ActorRole:  a.Role(),
		OccurredAt: t.now().UTC(),
	})

	return TransitionResult{Order: o, From: from, To: to}, nil
}

// publish never fails the transition: the backend already accepted it.
func (t transitioner) publish(ctx context.Context, log *zap.Logger, event ports.StatusChangedEvent) {
	if t.publisher == nil {
		return
	}
	if err := t.publisher.PublishStatusChanged(ctx, event); err != nil {
		log.Error("publish status changed event", zap.Error(err))
	}
}

func validateTarget(a actor.Actor, orderID kernel.ID) error {
	return errors.Join(a.Validate(), orderID.Validate())
}
