package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrDataFormat is returned when price input is empty, lacks the date
	// column, or carries unparseable dates or prices
	ErrDataFormat = errors.New("data format error")
	// ErrUndefinedRatio marks an instrument whose ROI or growth cannot be
	// computed because the denominator price is zero
	ErrUndefinedRatio = errors.New("undefined ratio")
	// ErrDivisionByZero marks a selected instrument with zero volatility
	ErrDivisionByZero = errors.New("division by zero")
	// ErrNoSelection is returned by the projection when no instrument
	// passed the selection thresholds
	ErrNoSelection = errors.New("no instruments selected")
	// ErrInputParse is returned for malformed user parameters
	ErrInputParse = errors.New("input parse error")
)

type Stage string

const (
	Stage_Load       Stage = "load"
	Stage_Params     Stage = "params"
	Stage_Statistics Stage = "statistics"
	Stage_Selection  Stage = "selection"
	Stage_Allocation Stage = "allocation"
	Stage_Projection Stage = "projection"
)

// StageError identifies which step of a run halted
type StageError struct {
	Stage Stage
	Err   error
}

func (e StageError) Error() string {
	return fmt.Sprintf("%s stage failed: %s", e.Stage, e.Err.Error())
}

func (e StageError) Unwrap() error {
	return e.Err
}

func NewStageError(stage Stage, err error) error {
	return StageError{
		Stage: stage,
		Err:   err,
	}
}

// Exclusion records an instrument dropped from a downstream step
// without aborting the run
type Exclusion struct {
	Symbol string `json:"symbol"`
	Reason error  `json:"-"`
}

func (e Exclusion) MarshalJSON() ([]byte, error) {
	reason := ""
	if e.Reason != nil {
		reason = e.Reason.Error()
	}
	return json.Marshal(map[string]string{
		"symbol": e.Symbol,
		"reason": reason,
	})
}
