package session

// Phase is the run phase.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// EndReason records what ended a run.
type EndReason string

const (
	EndReasonNone     EndReason = "none"
	EndReasonLives    EndReason = "lives"    // Last life lost to a bad collectible
	EndReasonHazard   EndReason = "hazard"   // Touched a hazard
	EndReasonBoundary EndReason = "boundary" // Left the playfield vertically
)

// RunState holds score, lives and phase for one run.
// FinalScore is nil until the run ends.
type RunState struct {
	Phase      Phase
	Score      int
	Lives      int
	FinalScore *int
	EndReason  EndReason
}

// newRunState returns the state of a run that has not started.
func newRunState(lives int) RunState {
	return RunState{
		Phase:     PhaseIdle,
		Lives:     lives,
		EndReason: EndReasonNone,
	}
}

// RunStats aggregates what happened during a run.
type RunStats struct {
	GoodCollected       int
	BadCollected        int
	CollectiblesSpawned int
	HazardsSpawned      int
	DecorationsSpawned  int
	DifficultyTicks     int
	PeakHazardSpeed     float64
}
