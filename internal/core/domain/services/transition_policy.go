package services

import (
	"mota/internal/core/domain/model/actor"
	"mota/internal/core/domain/model/order"
)

// advanceRule says at which status a role may advance an order and which
// station slot, if any, must be unset or held by the actor.
type advanceRule struct {
	from order.Status
	slot order.Slot
}

// advanceRules has at most one rule per role, so at most one clause can
// match for a given actor.
var advanceRules = map[actor.Role]advanceRule{
	actor.RoleDoctor:    {from: order.AwaitingConfirmation},
	actor.RoleDie:       {from: order.Die, slot: order.SlotDie},
	actor.RoleDesigner:  {from: order.Design, slot: order.SlotDesigner},
	actor.RoleMilling:   {from: order.Milling, slot: order.SlotMilling},
	actor.RoleQuality:   {from: order.QualityControl},
	actor.RolePackaging: {from: order.Packaging},
}

var reportErrorRules = map[actor.Role]order.Status{
	actor.RoleDoctor:  order.AwaitingConfirmation,
	actor.RoleQuality: order.QualityControl,
}

var confirmRules = map[actor.Role]order.Status{
	actor.RoleDoctor: order.Finished,
}

// Decision bundles every permission an actor holds on one order.
type Decision struct {
	CanAdvance     bool
	CanReportError bool
	CanPause       bool
	CanConfirm     bool
	CanAssign      bool
	// NextStatus is where Advance would move the order.
	NextStatus order.Status
}

// TransitionPolicy decides which lifecycle transitions an actor may trigger.
// Checks are optimistic: the backend remains the system of record and may
// still reject a permitted transition if the order changed meanwhile.
//
// Every predicate fails closed: an unconstructed actor or order, an unknown
// role or an unknown status is denied.
//
//	policy := services.NewTransitionPolicy()
//	if !policy.CanAdvance(currentActor, o) {
//	    return ErrTransitionNotPermitted
//	}
//	o.Advance()
type TransitionPolicy struct{}

// NewTransitionPolicy creates the policy.
func NewTransitionPolicy() TransitionPolicy {
	return TransitionPolicy{}
}

// CanAdvance applies the role's advance rule, including the unset-or-mine
// station check for dado, disenador and fresadora.
func (TransitionPolicy) CanAdvance(a actor.Actor, o *order.Order) bool {
	if !valid(a, o) {
		return false
	}
	rule, ok := advanceRules[a.Role()]
	if !ok || o.Status() != rule.from {
		return false
	}
	if rule.slot == order.NoSlot {
		return true
	}
	return o.Participants().IsUnsetOrAssignedTo(rule.slot, a.ID())
}

// CanReportError allows a doctor on Confirmar and quality control on Control de calidad.
func (TransitionPolicy) CanReportError(a actor.Actor, o *order.Order) bool {
	return valid(a, o) && matchesStatus(reportErrorRules, a.Role(), o.Status())
}

// CanPause allows administrators to pause any order still on the forward chain.
func (TransitionPolicy) CanPause(a actor.Actor, o *order.Order) bool {
	return valid(a, o) && a.Role() == actor.RoleAdministrator && o.Status().IsActive()
}

// CanConfirm allows a doctor to acknowledge a finished order.
func (TransitionPolicy) CanConfirm(a actor.Actor, o *order.Order) bool {
	return valid(a, o) && matchesStatus(confirmRules, a.Role(), o.Status())
}

// CanAssign allows administrators to set station assignees.
func (TransitionPolicy) CanAssign(a actor.Actor) bool {
	return a.Validate() == nil && a.Role() == actor.RoleAdministrator
}

// AdvanceFrom returns the status at which role works, if it advances orders at all.
func (TransitionPolicy) AdvanceFrom(role actor.Role) (order.Status, bool) {
	rule, ok := advanceRules[role]
	return rule.from, ok
}

// Decide evaluates every predicate for the pair.
func (p TransitionPolicy) Decide(a actor.Actor, o *order.Order) Decision {
	d := Decision{
		CanAdvance:     p.CanAdvance(a, o),
		CanReportError: p.CanReportError(a, o),
		CanPause:       p.CanPause(a, o),
		CanConfirm:     p.CanConfirm(a, o),
		CanAssign:      p.CanAssign(a),
	}
	if o.Validate() == nil {
		d.NextStatus = o.Status().Next()
	}
	return d
}

func valid(a actor.Actor, o *order.Order) bool {
	return a.Validate() == nil && o.Validate() == nil
}

func matchesStatus(rules map[actor.Role]order.Status, role actor.Role, status order.Status) bool {
	required, ok := rules[role]
	return ok && required == status
}
