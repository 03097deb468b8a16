package pipeline

import (
	"errors"
	"fmt"
)

// Stage names the pipeline stage an error came from, so user-facing reports
// can say which step failed without leaking internal addresses.
type Stage string

const (
	StageCatalog     Stage = "catalog"
	StageResolution  Stage = "resolution"
	StageShortening  Stage = "shortening"
	StagePersistence Stage = "persistence"
	StageValidation  Stage = "validation"
)

// ErrNoAudio marks a resolution that found a video address but no audio track.
// A video-only deliverable is not a successful resolution.
var ErrNoAudio = errors.New("no-audio")

type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func NewStageError(stage Stage, err error) error {
	return &StageError{Stage: stage, Err: err}
}
