package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/wricardo/mcp-training/fifteenpuzzle/game/engine"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
	defaultRecordLimit  = 20
	maxRecordLimit      = 200
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	records  RecordStore

	// mu serializes every engine access; callers only ever see cloned states
	mu sync.Mutex
}

// NewGameService creates a new game service instance. records may be nil, in
// which case solves are not recorded.
func NewGameService(sessions SessionManager, configs ConfigManager, records RecordStore) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
		records:  records,
	}
}

// getConfigID returns the config_id for a given config name, used for consistent API responses
func (s *gameServiceImpl) getConfigID(configName string) string {
	availableConfigs, err := s.configs.ListConfigs()
	if err == nil {
		for _, cfg := range availableConfigs {
			if cfg.Name == configName {
				return cfg.ConfigID
			}
		}
	}
	if configName == "" {
		return "default"
	}
	return configName
}

func (s *gameServiceImpl) sessionInfo(sess *Session) *SessionInfo {
	return &SessionInfo{
		ID:             sess.ID,
		ConfigName:     s.getConfigID(sess.Config.Name),
		Phase:          sess.Engine.GetPhase().String(),
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
		GameState:      sess.Engine.GetState().Clone(),
		GameConfig:     sess.Config,
	}
}

// getSession looks a session up and touches its access time
func (s *gameServiceImpl) getSession(sessionID string) (*Session, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
		}
		return nil, fmt.Errorf("failed to load session %s: %w", sessionID, err)
	}
	s.sessions.UpdateLastAccessed(sessionID)
	return sess, nil
}

// CreateSession creates a new game session
func (s *gameServiceImpl) CreateSession(ctx context.Context, configName, seed string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var config *engine.GameConfig
	var err error
	if configName != "" {
		config, err = s.configs.LoadConfig(configName)
		if err != nil {
			// Provide helpful error message with available options
			if errors.Is(err, ErrConfigNotFound) {
				availableConfigs, listErr := s.configs.ListConfigs()
				if listErr == nil && len(availableConfigs) > 0 {
					var configIDs []string
					for _, cfg := range availableConfigs {
						configIDs = append(configIDs, cfg.ConfigID)
					}
					return nil, fmt.Errorf("%w: '%s'. Available configs: %v", ErrConfigNotFound, configName, configIDs)
				}
				return nil, fmt.Errorf("%w: '%s'. Use /api/configs to list available configurations", ErrConfigNotFound, configName)
			}
			return nil, fmt.Errorf("failed to load config %s: %w", configName, err)
		}
	} else {
		config = s.configs.GetDefault()
	}

	// Let session manager generate a proper 4-character ID
	session, err := s.sessions.CreateWithSeed("", config, seed)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	info := s.sessionInfo(session)
	if configName != "" {
		info.ConfigName = configName
	}
	return info, nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}
	return s.sessionInfo(sess), nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		result = append(result, s.sessionInfo(sess))
	}

	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sessions.Delete(sessionID); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
		}
		return err
	}
	return nil
}

// Move slides the tile at target into the blank
func (s *gameServiceImpl) Move(ctx context.Context, sessionID string, target engine.Position) (*MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	outcome, err := sess.Engine.Move(target)
	if err != nil {
		return nil, err
	}
	return s.moveResult(ctx, sess, outcome), nil
}

// Slide moves the tile travelling in direction into the blank
func (s *gameServiceImpl) Slide(ctx context.Context, sessionID, direction string) (*MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	outcome, err := sess.Engine.Slide(direction)
	if err != nil {
		return nil, err
	}
	return s.moveResult(ctx, sess, outcome), nil
}

func (s *gameServiceImpl) moveResult(ctx context.Context, sess *Session, outcome engine.MoveOutcome) *MoveResult {
	state := sess.Engine.GetState()
	events := s.extractMoveEvents(outcome)
	if outcome.Solved {
		s.recordSolve(ctx, sess)
	}

	return &MoveResult{
		Success:   outcome.Moved,
		Reason:    outcome.Reason,
		Message:   state.Message,
		Outcome:   outcome,
		GameState: state.Clone(),
		Events:    events,
	}
}

// BulkMove executes targets in sequence until one is off the board or the puzzle is solved
func (s *gameServiceImpl) BulkMove(ctx context.Context, sessionID string, targets []engine.Position) (*BulkMoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	result := &BulkMoveResult{
		RequestedMoves: len(targets),
		Success:        true,
		Outcomes:       make([]engine.MoveOutcome, 0, len(targets)),
		Events:         make([]GameEvent, 0),
	}

	// Limit moves to prevent abuse
	if len(targets) > engine.MaxBulkMoves {
		result.Truncated = true
		result.Limit = engine.MaxBulkMoves
		targets = targets[:engine.MaxBulkMoves]
	}

	if phase := sess.Engine.GetPhase(); phase != engine.PhasePlaying {
		result.StopReasonCode = StopNotPlaying
		result.StoppedReason = fmt.Sprintf("session is %s", phase)
		result.StoppedOnMove = 1
		result.Success = false
		result.GameState = sess.Engine.GetState().Clone()
		result.Message = result.GameState.Message
		return result, nil
	}

	outcomes, err := sess.Engine.BulkMove(targets)
	for _, outcome := range outcomes {
		result.Attempted++
		result.Outcomes = append(result.Outcomes, outcome)
		result.Events = append(result.Events, s.extractMoveEvents(outcome)...)
		if outcome.Moved {
			result.MovesExecuted++
		} else {
			result.Success = false
		}
	}

	switch {
	case err != nil:
		result.StopReasonCode = StopInvalidMove
		result.StoppedReason = fmt.Sprintf("move %d: %v", len(outcomes)+1, err)
		result.StoppedOnMove = len(outcomes) + 1
		result.Success = false
	case len(outcomes) > 0 && outcomes[len(outcomes)-1].Solved:
		result.Solved = true
		result.StopReasonCode = StopSolved
		result.StoppedOnMove = len(outcomes)
		if len(outcomes) < len(targets) {
			result.StoppedReason = fmt.Sprintf("puzzle solved on move %d", len(outcomes))
		}
		s.recordSolve(ctx, sess)
	}

	result.GameState = sess.Engine.GetState().Clone()
	result.Message = result.GameState.Message

	return result, nil
}

// Restart shuffles a new round for a solved session
func (s *gameServiceImpl) Restart(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	state, err := sess.Engine.Restart()
	if err != nil {
		return nil, err
	}
	return state.Clone(), nil
}

// GetGameState retrieves the current game state
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}
	return sess.Engine.GetState().Clone(), nil
}

// GetMoveHistory returns paginated move history
func (s *gameServiceImpl) GetMoveHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	history := sess.Engine.GetMoveHistory()
	if opts.CurrentOnly {
		history = sess.Engine.GetState().CurrentMoves
	}
	total := len(history)

	// Apply defaults
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = defaultHistoryLimit
	}
	if opts.Limit > maxHistoryLimit {
		opts.Limit = maxHistoryLimit
	}
	if opts.Order == "" {
		opts.Order = "desc"
	}

	// Calculate pagination
	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (opts.Page - 1) * opts.Limit
	end := start + opts.Limit
	if end > total {
		end = total
	}

	moves := []engine.MoveHistoryEntry{}
	if start < total {
		if opts.Order == "desc" {
			// Reverse order (most recent first)
			for i := total - 1 - start; i >= total-end; i-- {
				moves = append(moves, history[i])
			}
		} else {
			moves = append(moves, history[start:end]...)
		}
	}

	return &HistoryResponse{
		Moves:       moves,
		TotalMoves:  total,
		Page:        opts.Page,
		PageSize:    opts.Limit,
		TotalPages:  totalPages,
		HasNext:     opts.Page < totalPages,
		HasPrevious: opts.Page > 1,
	}, nil
}

// ListConfigs returns available game configurations
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a specific game configuration
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig keeps a game configuration for the rest of the process
func (s *gameServiceImpl) SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error {
	return s.configs.SaveConfig(configName, config)
}

// ListRecords returns solve records, newest first unless the query says otherwise
func (s *gameServiceImpl) ListRecords(ctx context.Context, query RecordQuery) ([]*SolveRecord, error) {
	if s.records == nil {
		return []*SolveRecord{}, nil
	}
	if query.Limit <= 0 {
		query.Limit = defaultRecordLimit
	}
	if query.Limit > maxRecordLimit {
		query.Limit = maxRecordLimit
	}
	return s.records.ListRecords(ctx, query)
}

// recordSolve stores the round that just finished. Failures are logged, never returned.
func (s *gameServiceImpl) recordSolve(ctx context.Context, sess *Session) {
	if s.records == nil {
		return
	}
	state := sess.Engine.GetState()
	solvedAt := time.Now()
	if state.SolvedAt != nil {
		solvedAt = *state.SolvedAt
	}

	record := &SolveRecord{
		SessionID:  sess.ID,
		ConfigName: s.getConfigID(sess.Config.Name),
		Seed:       state.Seed,
		Round:      state.Round,
		Moves:      state.SuccessfulMoves(),
		Attempts:   state.CurrentMovesCount,
		Duration:   state.Elapsed(solvedAt),
		SolvedAt:   solvedAt,
	}
	if err := s.records.SaveRecord(ctx, record); err != nil {
		log.Printf("Warning: Failed to record solve for session %s: %v", sess.ID, err)
	}
}

// extractMoveEvents generates events from a move outcome
func (s *gameServiceImpl) extractMoveEvents(outcome engine.MoveOutcome) []GameEvent {
	now := time.Now()
	from := outcome.From

	if !outcome.Moved {
		return []GameEvent{{
			Type:      EventRejected,
			Message:   outcome.Message,
			Timestamp: now,
			Tile:      outcome.Tile,
			Position:  &from,
		}}
	}

	to := outcome.To
	events := []GameEvent{{
		Type:      EventMove,
		Message:   fmt.Sprintf("Tile %d moved from %s to %s", outcome.Tile+1, outcome.From, outcome.To),
		Timestamp: now,
		Tile:      outcome.Tile,
		Position:  &to,
	}}

	if outcome.Solved {
		events = append(events, GameEvent{
			Type:      EventSolved,
			Message:   outcome.Message,
			Timestamp: now,
		})
	}

	return events
}
