package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"mota/internal/core/domain/model/kernel"
	"mota/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned for Order values that did not come from RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via RestoreOrder")

// PickupAddress is the delivery address sentinel meaning in-store pickup.
const PickupAddress = "recoger"

// Snapshot is the order state as reported by the backend.
type Snapshot struct {
	ID              kernel.ID
	Status          Status
	PaymentStatus   int
	Priority        Priority
	Participants    Participants
	ClientID        kernel.ID
	DeliveryAddress string
	CreatedAt       time.Time
}

// Order is the gateway's read/transition view of a backend order.
// Orders are never created or deleted here; they are restored from the
// backend, mutated in place by one transition and written back.
type Order struct {
	id              kernel.ID
	status          Status
	paymentStatus   int
	priority        Priority
	participants    Participants
	clientID        kernel.ID
	deliveryAddress string
	createdAt       time.Time

	isConstructed bool
}

// RestoreOrder validates a backend snapshot and rebuilds the aggregate.
// All validation failures are joined so a single bad record reports everything at once.
// Priority is not validated: it is a display label only.
func RestoreOrder(s Snapshot) (*Order, error) {
	if err := errors.Join(
		s.ID.Validate(),
		s.Status.Validate(),
		validateClient(s.ClientID),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:              s.ID,
		status:          s.Status,
		paymentStatus:   s.PaymentStatus,
		priority:        s.Priority,
		participants:    s.Participants,
		clientID:        s.ClientID,
		deliveryAddress: s.DeliveryAddress,
		createdAt:       s.CreatedAt,
		isConstructed:   true,
	}, nil
}

func validateClient(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("client", err)
	}
	return nil
}

// Validate ensures the order was restored through RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.ID { return o.id }

func (o *Order) Status() Status { return o.status }

func (o *Order) PaymentStatus() int { return o.paymentStatus }

func (o *Order) Priority() Priority { return o.priority }

func (o *Order) Participants() Participants { return o.participants }

func (o *Order) ClientID() kernel.ID { return o.clientID }

func (o *Order) DeliveryAddress() string { return o.deliveryAddress }

// CreatedAt is the only timestamp the backend supplies for an order.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// IsPickup reports whether the client collects the order in store.
func (o *Order) IsPickup() bool {
	return strings.EqualFold(strings.TrimSpace(o.deliveryAddress), PickupAddress)
}

// Fulfillment returns FulfillmentPickup or FulfillmentDelivery.
func (o *Order) Fulfillment() Fulfillment {
	if o.IsPickup() {
		return FulfillmentPickup
	}
	return FulfillmentDelivery
}

// Advance moves the order one step along the forward chain. It does not
// check who is asking; callers gate it with the transition policy.
// Statuses without a successor are left unchanged.
func (o *Order) Advance() {
	o.status = o.status.Next()
}

// ReportError diverts an active order to Rechazado.
func (o *Order) ReportError() error {
	next, err := o.status.Reject()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// Pause diverts an active order to Pausa.
func (o *Order) Pause() error {
	next, err := o.status.Pause()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// Confirm records the doctor's acknowledgement of a finished order.
func (o *Order) Confirm() error {
	next, err := o.status.Confirm()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// Assign sets the assignee of a station. It is only allowed while the order
// is on the forward chain and has not yet moved past the station's stage.
func (o *Order) Assign(slot Slot, userID kernel.ID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	if _, ok := slotNames[slot]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("slot", fmt.Errorf("%d is not a station", int(slot)))
	}

	idx := o.status.chainIndex()
	if idx < 0 || idx > slot.Stage().chainIndex() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to assign %s", o.status, slot),
		)
	}

	o.participants = o.participants.With(slot, userID)
	return nil
}

// Fulfillment partitions orders into pickup and delivery views.
type Fulfillment int

const (
	FulfillmentAny Fulfillment = iota
	FulfillmentPickup
	FulfillmentDelivery
)

// ParseFulfillment accepts "", "pickup" and "delivery".
func ParseFulfillment(s string) (Fulfillment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return FulfillmentAny, nil
	case "pickup":
		return FulfillmentPickup, nil
	case "delivery":
		return FulfillmentDelivery, nil
	default:
		return FulfillmentAny, errs.NewValueIsInvalidErrorWithCause(
			"fulfillment",
			fmt.Errorf("%q is not pickup or delivery", s),
		)
	}
}

func (f Fulfillment) String() string {
	switch f {
	case FulfillmentPickup:
		return "pickup"
	case FulfillmentDelivery:
		return "delivery"
	default:
		return "any"
	}
}

// Matches reports whether o belongs to the partition.
func (f Fulfillment) Matches(o *Order) bool {
	return f == FulfillmentAny || o.Fulfillment() == f
}
