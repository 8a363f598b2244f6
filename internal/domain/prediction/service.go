package prediction

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/herdwell/herdwell/internal/domain/animal"
	"github.com/herdwell/herdwell/internal/domain/healthrecord"
	"github.com/herdwell/herdwell/internal/platform/appstate"
)

// Predictor is the inference service surface the workflow needs.
type Predictor interface {
	Predict(ctx context.Context, req Request) (map[string]interface{}, error)
	Health(ctx context.Context) error
	SupportedAnimals(ctx context.Context) ([]string, error)
}

// RecordStore persists health records derived from predictions.
type RecordStore interface {
	CreateRecord(ctx context.Context, rec *healthrecord.HealthRecord) error
}

// AnimalStore resolves stored animals for form seeding.
type AnimalStore interface {
	GetOwnedAnimal(ctx context.Context, userID, id uuid.UUID) (*animal.Animal, error)
}

// Notifier pushes in-app notifications. May be nil.
type Notifier interface {
	Notify(userID uuid.UUID, kind, message string) appstate.Notification
}

// State names the phase a prediction session is in.
type State string

const (
	StateIdle          State = "idle"
	StateCollecting    State = "collecting"
	StateSubmitting    State = "submitting"
	StateSucceeded     State = "succeeded"
	StateFailed        State = "failed"
	StatePersisted     State = "persisted"
	StatePersistFailed State = "persist_failed"
)

// session is one user's in-progress prediction workflow.
type session struct {
	state       State
	observation Observation
	lastRequest *Request
	rawResult   map[string]interface{}
	result      *Result
	view        *View
	lastErr     string
	savedRecord *uuid.UUID
}

// Snapshot is the externally visible session state.
type Snapshot struct {
	State         State       `json:"state"`
	Observation   Observation `json:"observation"`
	View          *View       `json:"view,omitempty"`
	Error         string      `json:"error,omitempty"`
	SavedRecordID *uuid.UUID  `json:"saved_record_id,omitempty"`
}

// Service drives the prediction workflow: collect an observation, submit
// it once at a time, interpret and present the outcome, and optionally
// persist it as a health record plus a history entry. One session per user.
type Service struct {
	client   Predictor
	records  RecordStore
	animals  AnimalStore
	history  Repository
	notifier Notifier
	logger   zerolog.Logger

	mu       sync.Mutex
	sessions map[uuid.UUID]*session
}

func NewService(client Predictor, records RecordStore, animals AnimalStore, history Repository, notifier Notifier, logger zerolog.Logger) *Service {
	return &Service{
		client:   client,
		records:  records,
		animals:  animals,
		history:  history,
		notifier: notifier,
		logger:   logger.With().Str("component", "prediction").Logger(),
		sessions: make(map[uuid.UUID]*session),
	}
}

func (s *Service) sessionFor(userID uuid.UUID) *session {
	sess, ok := s.sessions[userID]
	if !ok {
		sess = &session{state: StateIdle}
		s.sessions[userID] = sess
	}
	return sess
}

func snapshot(sess *session) Snapshot {
	return Snapshot{
		State:         sess.state,
		Observation:   sess.observation,
		View:          sess.view,
		Error:         sess.lastErr,
		SavedRecordID: sess.savedRecord,
	}
}

// Collect stores the observation on the user's session without submitting.
// When the observation names a stored animal, its identity fields are
// seeded from that record, overwriting whatever was typed in.
func (s *Service) Collect(ctx context.Context, userID uuid.UUID, obs Observation) (Snapshot, error) {
	if userID == uuid.Nil {
		return Snapshot{}, fmt.Errorf("user_id is required")
	}
	if err := s.seed(ctx, userID, &obs); err != nil {
		return Snapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.sessionFor(userID)
	if sess.state == StateSubmitting {
		return snapshot(sess), ErrSubmissionInFlight
	}
	sess.observation = obs
	sess.state = StateCollecting
	sess.lastErr = ""
	return snapshot(sess), nil
}

func (s *Service) seed(ctx context.Context, userID uuid.UUID, obs *Observation) error {
	if obs.AnimalID == nil || *obs.AnimalID == uuid.Nil {
		return nil
	}
	a, err := s.animals.GetOwnedAnimal(ctx, userID, *obs.AnimalID)
	if err != nil {
		return &ValidationError{Field: "animal_id", Reason: "animal not found"}
	}
	obs.SeedFromAnimal(a)
	return nil
}

// Submit validates the observation, builds the wire request, and runs the
// prediction. Only one submission per session may be in flight; a second
// call while one is running fails with ErrSubmissionInFlight without
// touching the running one.
func (s *Service) Submit(ctx context.Context, userID uuid.UUID, obs Observation) (Snapshot, error) {
	if userID == uuid.Nil {
		return Snapshot{}, fmt.Errorf("user_id is required")
	}
	if err := s.seed(ctx, userID, &obs); err != nil {
		return Snapshot{}, err
	}
	if err := obs.Validate(); err != nil {
		return Snapshot{}, err
	}
	req := BuildRequest(obs)

	s.mu.Lock()
	sess := s.sessionFor(userID)
	if sess.state == StateSubmitting {
		snap := snapshot(sess)
		s.mu.Unlock()
		return snap, ErrSubmissionInFlight
	}
	sess.observation = obs
	sess.lastRequest = &req
	sess.state = StateSubmitting
	sess.lastErr = ""
	s.mu.Unlock()

	return s.run(ctx, userID, sess, req)
}

// Retry resubmits the session's last-built request exactly as it was sent,
// without re-reading the observation.
func (s *Service) Retry(ctx context.Context, userID uuid.UUID) (Snapshot, error) {
	if userID == uuid.Nil {
		return Snapshot{}, fmt.Errorf("user_id is required")
	}

	s.mu.Lock()
	sess := s.sessionFor(userID)
	if sess.state == StateSubmitting {
		snap := snapshot(sess)
		s.mu.Unlock()
		return snap, ErrSubmissionInFlight
	}
	if sess.lastRequest == nil {
		snap := snapshot(sess)
		s.mu.Unlock()
		return snap, ErrNoRequest
	}
	req := *sess.lastRequest
	sess.state = StateSubmitting
	sess.lastErr = ""
	s.mu.Unlock()

	return s.run(ctx, userID, sess, req)
}

// run performs the network call outside the lock and records the outcome
// on the session that started it. If the user dismissed that session while
// the call was in flight, the outcome is dropped instead of being written
// onto the fresh session.
func (s *Service) run(ctx context.Context, userID uuid.UUID, sess *session, req Request) (Snapshot, error) {
	raw, err := s.client.Predict(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessions[userID] != sess {
		s.logger.Debug().Str("user_id", userID.String()).Msg("session dismissed mid-submission, discarding outcome")
		return snapshot(s.sessionFor(userID)), err
	}

	if err != nil {
		sess.state = StateFailed
		sess.lastErr = err.Error()
		s.logger.Warn().Err(err).Str("user_id", userID.String()).Msg("prediction failed")
		return snapshot(sess), err
	}

	result := Interpret(raw)
	view := Present(result)
	sess.rawResult = raw
	sess.result = &result
	sess.view = &view
	sess.state = StateSucceeded
	sess.savedRecord = nil
	s.logger.Info().
		Str("user_id", userID.String()).
		Str("disease", result.Disease).
		Str("severity", result.ConditionSeverity).
		Msg("prediction succeeded")
	return snapshot(sess), nil
}

// Persist writes the session's successful result as an append-only health
// record and a prediction history row. A persistence failure leaves the
// result on the session so the save can be retried.
func (s *Service) Persist(ctx context.Context, userID uuid.UUID) (Snapshot, error) {
	if userID == uuid.Nil {
		return Snapshot{}, fmt.Errorf("user_id is required")
	}

	s.mu.Lock()
	sess := s.sessionFor(userID)
	if sess.state != StateSucceeded && sess.state != StatePersistFailed {
		snap := snapshot(sess)
		s.mu.Unlock()
		return snap, ErrNoResult
	}
	result := *sess.result
	raw := sess.rawResult
	req := sess.lastRequest
	animalID := sess.observation.AnimalID
	s.mu.Unlock()

	rec := &healthrecord.HealthRecord{
		ID:         uuid.New(),
		UserID:     userID,
		AnimalID:   animalID,
		RecordType: "ai_prediction",
		Diagnosis:  result.Disease,
		Symptoms:   result.RecommendedDiseases(),
		RecordedBy: healthrecord.RecordedByAI,
	}
	if result.ConditionSeverity != "" && result.ConditionSeverity != unspecified {
		sev := result.ConditionSeverity
		rec.Severity = &sev
	}

	err := s.records.CreateRecord(ctx, rec)
	if err == nil {
		err = s.saveHistory(ctx, userID, animalID, req, raw, result)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess = s.sessionFor(userID)

	if err != nil {
		sess.state = StatePersistFailed
		sess.lastErr = err.Error()
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to save prediction")
		return snapshot(sess), &PersistError{Err: err}
	}

	sess.state = StatePersisted
	sess.lastErr = ""
	sess.savedRecord = &rec.ID
	if s.notifier != nil {
		s.notifier.Notify(userID, "prediction_saved",
			fmt.Sprintf("Prediction %q saved to health records", result.Disease))
	}
	return snapshot(sess), nil
}

func (s *Service) saveHistory(ctx context.Context, userID uuid.UUID, animalID *uuid.UUID, req *Request, raw map[string]interface{}, result Result) error {
	input, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("encode input: %w", err)
	}
	output, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return s.history.Create(ctx, &HistoryEntry{
		ID:               uuid.New(),
		UserID:           userID,
		AnimalID:         animalID,
		InputData:        input,
		PredictionResult: output,
		ConfidenceScore:  result.Confidence,
		SeverityLevel:    result.ConditionSeverity,
		Recommendations:  result.RecommendedDiseases(),
	})
}

// Dismiss clears the user's session back to idle, discarding any unsaved
// result.
func (s *Service) Dismiss(userID uuid.UUID) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := &session{state: StateIdle}
	s.sessions[userID] = sess
	return snapshot(sess)
}

// Current returns the user's session snapshot.
func (s *Service) Current(userID uuid.UUID) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.sessionFor(userID))
}

// History returns the user's saved predictions, newest first.
func (s *Service) History(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*HistoryEntry, int, error) {
	return s.history.ListByUser(ctx, userID, limit, offset)
}

// UpstreamHealth reports whether the inference service is reachable.
func (s *Service) UpstreamHealth(ctx context.Context) error {
	return s.client.Health(ctx)
}

// SupportedAnimals lists the animal types the deployed model covers.
func (s *Service) SupportedAnimals(ctx context.Context) ([]string, error) {
	return s.client.SupportedAnimals(ctx)
}
