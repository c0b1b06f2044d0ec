package order

import (
	"fmt"

	"mota/internal/pkg/errs"
)

// Status is the pipeline stage of an order, using the backend's numeric codes.
//
// Forward chain:
//
//	Confirmar(10) ──> Dado(2) ──> Diseño(3) ──> Fresadora(4) ──> Control de calidad(5) ──> Empaque(6) ──> Finalizado(7)
//
// Side states reached out of band: Pausa(1) and Rechazado(9). Confirmado(8)
// is the alternate terminal a doctor sets on a finished order.
type Status int

const (
	// Unknown is the zero value and never a valid backend code.
	Unknown Status = 0

	Paused               Status = 1
	Die                  Status = 2
	Design               Status = 3
	Milling              Status = 4
	QualityControl       Status = 5
	Packaging            Status = 6
	Finished             Status = 7
	Confirmed            Status = 8
	Rejected             Status = 9
	AwaitingConfirmation Status = 10
)

var statusLabels = map[Status]string{
	Paused:               "Pausa",
	Die:                  "Dado",
	Design:               "Diseño",
	Milling:              "Fresadora",
	QualityControl:       "Control de calidad",
	Packaging:            "Empaque",
	Finished:             "Finalizado",
	Confirmed:            "Confirmado",
	Rejected:             "Rechazado",
	AwaitingConfirmation: "Confirmar",
}

// forwardEdges is the only way an order moves along the pipeline.
var forwardEdges = map[Status]Status{
	AwaitingConfirmation: Die,
	Die:                  Design,
	Design:               Milling,
	Milling:              QualityControl,
	QualityControl:       Packaging,
	Packaging:            Finished,
}

// chain lists the forward path in order; index is used to compare progress.
var chain = []Status{AwaitingConfirmation, Die, Design, Milling, QualityControl, Packaging, Finished}

// AllStatuses returns the ten backend codes in ascending order.
func AllStatuses() []Status {
	return []Status{
		Paused, Die, Design, Milling, QualityControl,
		Packaging, Finished, Confirmed, Rejected, AwaitingConfirmation,
	}
}

// Validate rejects codes outside the closed enumeration.
func (s Status) Validate() error {
	if _, ok := statusLabels[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", int(s)))
	}
	return nil
}

// String returns the display label, or "Unknown" for codes outside the enumeration.
func (s Status) String() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return "Unknown"
}

// Code returns the backend numeric code.
func (s Status) Code() int {
	return int(s)
}

// Next returns the forward successor. Statuses without a successor,
// including unknown codes, map to themselves.
func (s Status) Next() Status {
	if next, ok := forwardEdges[s]; ok {
		return next
	}
	return s
}

// IsActive reports whether the order is still moving along the forward chain.
func (s Status) IsActive() bool {
	_, ok := forwardEdges[s]
	return ok
}

// IsTerminal reports Finalizado and Confirmado.
func (s Status) IsTerminal() bool {
	return s == Finished || s == Confirmed
}

// chainIndex returns the position on the forward chain, or -1 off-chain.
func (s Status) chainIndex() int {
	for i, st := range chain {
		if st == s {
			return i
		}
	}
	return -1
}

// Reject diverts an active order to Rechazado.
func (s Status) Reject() (Status, error) {
	if !s.IsActive() {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to reject", s),
		)
	}
	return Rejected, nil
}

// Pause diverts an active order to Pausa.
func (s Status) Pause() (Status, error) {
	if !s.IsActive() {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to pause", s),
		)
	}
	return Paused, nil
}

// Confirm moves a finished order to Confirmado.
func (s Status) Confirm() (Status, error) {
	if s != Finished {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to confirm", s),
		)
	}
	return Confirmed, nil
}
