package pipeline

import "time"

// Stage is a lead's position in the sales pipeline.
type Stage string

const (
	StageNew         Stage = "new"
	StageContacted   Stage = "contacted"
	StageInterested  Stage = "interested"
	StageQualified   Stage = "qualified"
	StageNegotiation Stage = "negotiation"
	StageWon         Stage = "won"
	StageLost        Stage = "lost"
)

// Ordered is the forward chain ending in won. Lost sits outside the chain:
// it is reachable from any non-terminal stage but never part of funnel or
// board ordering.
var Ordered = []Stage{
	StageNew,
	StageContacted,
	StageInterested,
	StageQualified,
	StageNegotiation,
	StageWon,
}

// All is every accepted status value.
var All = append(append([]Stage{}, Ordered...), StageLost)

// BoardStages are the kanban columns. Lost leads have no column.
var BoardStages = Ordered

func Valid(s Stage) bool {
	for _, v := range All {
		if v == s {
			return true
		}
	}
	return false
}

// NextStage returns the single-step advancement target used by the
// quick-advance affordance. It is defined only for the five non-terminal
// forward stages. It is never a transition guard: a lead may be moved to
// any of the seven stages from any other, backward moves included.
func NextStage(s Stage) (Stage, bool) {
	for i, v := range Ordered {
		if v == s && i+1 < len(Ordered) {
			return Ordered[i+1], true
		}
	}
	return "", false
}

// AgeInDays is whole days since the lead entered the pipeline. A
// future-dated created_at (clock skew) clamps to 0 instead of going
// negative.
func AgeInDays(createdAt, now time.Time) int {
	d := int(now.Sub(createdAt).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}

// Urgent flags a lead that has sat in an early or late stage for too long.
// Presentation emphasis only; nothing enforces an SLA.
func Urgent(s Stage, ageDays int) bool {
	switch s {
	case StageNew:
		return ageDays > 3
	case StageContacted:
		return ageDays > 7
	case StageQualified, StageNegotiation:
		return ageDays > 14
	}
	return false
}
