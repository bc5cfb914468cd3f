package pipeline

import (
	"errors"
	"sync"

	"agricrm/entities"
)

var (
	ErrLeadNotFound = errors.New("lead not on board")
	ErrUnknownStage = errors.New("unknown pipeline stage")
)

// StatusWriter is the slice of the lead store the board needs to persist a
// stage change.
type StatusWriter interface {
	UpdateStatus(leadID uint, status string) error
}

// Board holds the kanban grouping of leads by stage. The grouping is owned
// state mirroring the store: Move applies the change locally first so the
// caller sees immediate feedback, then persists. On a store failure the
// local move is rolled back; the store stays the single source of truth and
// a reload rebuilds the board from scratch.
type Board struct {
	mu    sync.Mutex
	cols  map[Stage][]entities.Lead
	store StatusWriter
}

// NewBoard groups leads into the six board columns, preserving the input
// order within each column (callers sort created_at desc upstream). Lost
// leads are excluded entirely; every column exists even when empty.
func NewBoard(leads []entities.Lead, store StatusWriter) *Board {
	cols := make(map[Stage][]entities.Lead, len(BoardStages))
	for _, s := range BoardStages {
		cols[s] = []entities.Lead{}
	}
	for _, l := range leads {
		s := Stage(l.Status)
		if _, ok := cols[s]; ok {
			cols[s] = append(cols[s], l)
		}
	}
	return &Board{cols: cols, store: store}
}

// Columns returns a copy of the current grouping. Always exactly the six
// board stages, each a non-nil slice.
func (b *Board) Columns() map[Stage][]entities.Lead {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make(map[Stage][]entities.Lead, len(b.cols))
	for s, leads := range b.cols {
		out[s] = append([]entities.Lead{}, leads...)
	}
	return out
}

// Move handles a drag-initiated stage change. Moving a lead onto the stage
// it is already in is a successful no-op with no store round trip.
// Otherwise the lead is appended to the target column (not re-sorted),
// the change is persisted, and on persistence failure the lead is put back
// where it was and the error surfaced.
//
// Concurrent moves of the same lead are serialized locally by the mutex but
// the store writes are not sequenced: the last write to complete wins.
func (b *Board) Move(leadID uint, target Stage) error {
	if !Valid(target) {
		return ErrUnknownStage
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	from, idx, ok := b.locate(leadID)
	if !ok {
		return ErrLeadNotFound
	}
	if from == target {
		return nil
	}

	lead := b.cols[from][idx]
	b.cols[from] = append(b.cols[from][:idx], b.cols[from][idx+1:]...)
	if target != StageLost {
		// lost has no column; a lead marked lost simply leaves the board
		lead.Status = string(target)
		b.cols[target] = append(b.cols[target], lead)
	}

	if err := b.store.UpdateStatus(leadID, string(target)); err != nil {
		// roll back the optimistic move
		if target != StageLost {
			b.cols[target] = b.cols[target][:len(b.cols[target])-1]
		}
		lead.Status = string(from)
		b.cols[from] = append(b.cols[from], entities.Lead{})
		copy(b.cols[from][idx+1:], b.cols[from][idx:])
		b.cols[from][idx] = lead
		return err
	}
	return nil
}

func (b *Board) locate(leadID uint) (Stage, int, bool) {
	for _, s := range BoardStages {
		for i, l := range b.cols[s] {
			if l.LeadID == leadID {
				return s, i, true
			}
		}
	}
	return "", 0, false
}
