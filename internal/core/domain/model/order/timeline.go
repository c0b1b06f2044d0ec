package order

import "time"

// Stage is a named milestone on the tracking timeline.
type Stage string

const (
	StageCreated         Stage = "confirmación"
	StageDoctorConfirmed Stage = "confirmado por doctor"
	StageClientConfirmed Stage = "confirmado por cliente"
	StageProcessStarted  Stage = "inicio de proceso"
	StageDie             Stage = "dado"
	StageDesign          Stage = "diseño"
	StageMilling         Stage = "fresadora"
	StageQualityControl  Stage = "control de calidad"
	StagePackaging       Stage = "área de empaque"
	StageDelivered       Stage = "entregado"
)

var stages = []Stage{
	StageCreated,
	StageDoctorConfirmed,
	StageClientConfirmed,
	StageProcessStarted,
	StageDie,
	StageDesign,
	StageMilling,
	StageQualityControl,
	StagePackaging,
	StageDelivered,
}

// stagePositions maps each status to the last completed milestone.
// Pausa and Rechazado only keep the creation milestone.
var stagePositions = map[Status]int{
	AwaitingConfirmation: 0,
	Paused:               0,
	Rejected:             0,
	Die:                  4,
	Design:               5,
	Milling:              6,
	QualityControl:       7,
	Packaging:            8,
	Finished:             9,
	Confirmed:            9,
}

// TimelineEntry is one milestone of the tracking display.
type TimelineEntry struct {
	Stage     Stage
	Completed bool
	// Date is the order creation date for every entry: the backend does not
	// record when each stage was reached.
	Date time.Time
}

// Stages returns the ten milestones in display order.
func Stages() []Stage {
	out := make([]Stage, len(stages))
	copy(out, stages)
	return out
}

// StagePosition returns the index of the last completed milestone for s,
// or -1 when s is not a known status.
func StagePosition(s Status) int {
	if pos, ok := stagePositions[s]; ok {
		return pos
	}
	return -1
}

// BuildTimeline marks every milestone up to and including the order's current
// position as completed.
func BuildTimeline(o *Order) []TimelineEntry {
	pos := StagePosition(o.Status())
	entries := make([]TimelineEntry, len(stages))
	for i, st := range stages {
		entries[i] = TimelineEntry{
			Stage:     st,
			Completed: i <= pos,
			Date:      o.CreatedAt(),
		}
	}
	return entries
}
