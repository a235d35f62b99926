package server

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/magnusbojejuul-dotcom/Hypertensionsapp/advisory"
	"github.com/magnusbojejuul-dotcom/Hypertensionsapp/patient"
	"github.com/magnusbojejuul-dotcom/Hypertensionsapp/score2"
)

// ErrNotFound wraps lookups of unknown table/coefficient/report ids.
var ErrNotFound = errors.New("not found")

// EvaluationRequest is the body of POST /evaluate. The mode is an
// explicit caller choice; the id fields reference a previously
// uploaded table or coefficient file.
type EvaluationRequest struct {
	Mode           score2.Mode     `json:"mode"`
	ManualPct      *float64        `json:"manualPct,omitempty"`
	TableID        string          `json:"tableId,omitempty"`
	CoefficientsID string          `json:"coefficientsId,omitempty"`
	Patient        patient.Patient `json:"patient"`
}

// EvaluationRecord is one completed evaluation: the risk result (nil
// when the table had no data for the patient's band combination, with
// RiskNote explaining why) and the advisory report. Records are kept in
// memory only and are retrievable at /reports/:id for the session.
type EvaluationRecord struct {
	ID       uuid.UUID          `json:"id"`
	Created  time.Time          `json:"created"`
	Patient  patient.Patient    `json:"patient"`
	Risk     *score2.RiskResult `json:"risk,omitempty"`
	RiskNote string             `json:"riskNote,omitempty"`
	Advice   advisory.Report    `json:"advice"`
}

// EvaluationService holds the session state: the current table and
// coefficient set (replaced on re-upload), the example patients, and
// the evaluation records produced so far.
type EvaluationService struct {
	mu sync.Mutex

	tableID uuid.UUID
	table   *score2.Table

	coefficientsID uuid.UUID
	coefficients   score2.CoefficientSet

	examples []patient.Patient
	reports  map[uuid.UUID]*EvaluationRecord
}

// NewEvaluationService returns an empty service.
func NewEvaluationService() *EvaluationService {
	return &EvaluationService{reports: make(map[uuid.UUID]*EvaluationRecord)}
}

// SetTable replaces the session's SCORE2 matrix and returns its new id.
// The previous table (if any) is discarded, as is its id.
func (s *EvaluationService) SetTable(t *score2.Table) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tableID = uuid.New()
	s.table = t
	return s.tableID
}

// SetCoefficients replaces the session's coefficient set and returns
// its new id.
func (s *EvaluationService) SetCoefficients(cs score2.CoefficientSet) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.coefficientsID = uuid.New()
	s.coefficients = cs
	return s.coefficientsID
}

// SetExamples sets the example patients served by /examples.
func (s *EvaluationService) SetExamples(patients []patient.Patient) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.examples = patients
}

// Examples returns the example patients (possibly empty).
func (s *EvaluationService) Examples() []patient.Patient {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.examples
}

// Report returns a stored evaluation record by id.
func (s *EvaluationService) Report(id uuid.UUID) (*EvaluationRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.reports[id]
	if !ok {
		return nil, fmt.Errorf("report %s: %w", id, ErrNotFound)
	}
	return rec, nil
}

func (s *EvaluationService) tableFor(id string) (*score2.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.table == nil || id != s.tableID.String() {
		return nil, fmt.Errorf("table %s: %w", id, ErrNotFound)
	}
	return s.table, nil
}

func (s *EvaluationService) coefficientsFor(id string) (score2.CoefficientSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.coefficients == nil || id != s.coefficientsID.String() {
		return nil, fmt.Errorf("coefficients %s: %w", id, ErrNotFound)
	}
	return s.coefficients, nil
}

// Evaluate runs the requested risk mode and the advisory rules for one
// patient and stores the resulting record. The advisory report is
// produced regardless of the risk mode's outcome; a mode B lookup miss
// yields a record with no risk and a note, since "no data for this
// combination" is a displayable outcome rather than a request failure.
// All other mode errors are returned to the caller unstored.
func (s *EvaluationService) Evaluate(req *EvaluationRequest) (*EvaluationRecord, error) {
	rec := &EvaluationRecord{
		ID:      uuid.New(),
		Created: time.Now(),
		Patient: req.Patient,
		Advice:  advisory.Evaluate(&req.Patient),
	}

	switch req.Mode {
	case score2.ModeManual:
		if req.ManualPct == nil {
			return nil, errors.New("manual mode requires manualPct")
		}
		res, err := score2.EvaluateManual(*req.ManualPct, req.Patient.Age)
		if err != nil {
			return nil, err
		}
		rec.Risk = &res
	case score2.ModeTable:
		table, err := s.tableFor(req.TableID)
		if err != nil {
			return nil, err
		}
		res, err := score2.EvaluateTable(&req.Patient, table)
		var noMatch *score2.NoMatchError
		switch {
		case err == nil:
			rec.Risk = &res
		case errors.As(err, &noMatch):
			rec.RiskNote = err.Error()
		default:
			return nil, err
		}
	case score2.ModeFormula:
		coeffs, err := s.coefficientsFor(req.CoefficientsID)
		if err != nil {
			return nil, err
		}
		if _, err := score2.EvaluateFormula(&req.Patient, coeffs); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown mode %q", req.Mode)
	}

	s.mu.Lock()
	s.reports[rec.ID] = rec
	s.mu.Unlock()
	return rec, nil
}
