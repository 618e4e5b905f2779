package deal

// StageState is the visual state of one stage in the progress view.
type StageState string

const (
	StageCompleted StageState = "completed"
	StageActive    StageState = "active"
	StagePending   StageState = "pending"
)

// StageView is one entry in the full progress render.
type StageView struct {
	StageNumber int        `json:"stage_number"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	State       StageState `json:"state"`
	KeyDate     *KeyDate   `json:"key_date,omitempty"`
}

// Progress is the render model for the full vertical tracker.
type Progress struct {
	CurrentStage int         `json:"current_stage"`
	FillRatio    float64     `json:"fill_ratio"`
	Stages       []StageView `json:"stages"`
}

// StepMarker is one numbered indicator in the compact tracker row.
type StepMarker struct {
	StageNumber int        `json:"stage_number"`
	State       StageState `json:"state"`
}

// CompactProgress is the render model for the single-stage summary variant.
type CompactProgress struct {
	CurrentStage    int          `json:"current_stage"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	ProgressPercent float64      `json:"progress_percent"`
	Steps           []StepMarker `json:"steps"`
}

func stateFor(stage, current int) StageState {
	switch {
	case stage < current:
		return StageCompleted
	case stage == current:
		return StageActive
	default:
		return StagePending
	}
}

// RenderProgress derives the full tracker view for a deal's current stage.
// Each stage is completed, active or pending relative to current, and the
// fill line covers (current-1)/7 of the track. Returns ErrInvalidStage for
// a current stage outside [1,8].
func RenderProgress(current int, dates []KeyDate) (Progress, error) {
	if _, err := Describe(current); err != nil {
		return Progress{}, err
	}

	stages := make([]StageView, 0, StageCount)
	for n := 1; n <= StageCount; n++ {
		info, err := Describe(n)
		if err != nil {
			return Progress{}, err
		}
		stages = append(stages, StageView{
			StageNumber: n,
			Title:       info.Title,
			Description: info.Description,
			State:       stateFor(n, current),
			KeyDate:     MatchKeyDate(n, dates),
		})
	}

	ratio := float64(current-1) / float64(StageCount-1)
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	return Progress{
		CurrentStage: current,
		FillRatio:    ratio,
		Stages:       stages,
	}, nil
}

// RenderCompact derives the summary view: the current stage's copy, a
// percentage for the progress bar, and one marker per stage.
func RenderCompact(current int) (CompactProgress, error) {
	info, err := Describe(current)
	if err != nil {
		return CompactProgress{}, err
	}

	steps := make([]StepMarker, 0, StageCount)
	for n := 1; n <= StageCount; n++ {
		steps = append(steps, StepMarker{StageNumber: n, State: stateFor(n, current)})
	}

	return CompactProgress{
		CurrentStage:    current,
		Title:           info.Title,
		Description:     info.Description,
		ProgressPercent: float64(current) / float64(StageCount) * 100,
		Steps:           steps,
	}, nil
}
