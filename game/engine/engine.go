package engine

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidDirection is returned by Slide for unknown directions
	ErrInvalidDirection = errors.New("invalid direction")
	// ErrNotSolved is returned by Restart while a round is still being played
	ErrNotSolved = errors.New("restart is only available once the puzzle is solved")
)

// Engine provides the main interface for game operations
type Engine interface {
	// Game state management
	GetState() *GameState
	Restart() (*GameState, error)
	GetPhase() Phase
	IsSolved() bool
	GetBlank() Position
	TileAt(p Position) (int, error)

	// Movement operations
	Move(target Position) (MoveOutcome, error)
	Slide(direction string) (MoveOutcome, error)
	BulkMove(targets []Position) ([]MoveOutcome, error)
	CanMove(target Position) bool
	GetMovableTiles() []Position

	GetConfig() *GameConfig
	GetMoveHistory() []MoveHistoryEntry
}

var _ Engine = (*GameEngine)(nil)

// GameEngine implements the Engine interface
type GameEngine struct {
	board   Board
	state   *GameState
	config  *GameConfig
	newSeed func() string
}

// NewEngine creates a new game engine and shuffles the first round with a random seed
func NewEngine(config *GameConfig) (*GameEngine, error) {
	return newEngine(config, NewSeed)
}

// NewEngineWithSeed creates an engine whose first round is shuffled from seed.
// Later rounds draw fresh random seeds.
func NewEngineWithSeed(config *GameConfig, seed string) (*GameEngine, error) {
	first := true
	return newEngine(config, func() string {
		if first {
			first = false
			return seed
		}
		return NewSeed()
	})
}

// NewEngineWithDefaults creates a new game engine with the built-in classic configuration
func NewEngineWithDefaults() *GameEngine {
	engine, err := NewEngine(DefaultConfig())
	if err != nil {
		panic(fmt.Sprintf("engine: default config rejected: %v", err))
	}
	return engine
}

func newEngine(config *GameConfig, newSeed func() string) (*GameEngine, error) {
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}

	engine := &GameEngine{
		config:  config,
		newSeed: newSeed,
		state:   InitGameStateFromConfig(config),
	}
	engine.shuffle(0)

	return engine, nil
}

// shuffle runs the Shuffling phase for round and leaves the engine Playing,
// or Solved when the config asks for zero steps
func (e *GameEngine) shuffle(round int) {
	seed := e.newSeed()

	e.state.Phase = PhaseShuffling
	e.board = ShuffledBoard(seed, round, e.config.ShuffleSteps)

	e.state.Seed = seed
	e.state.Round = round
	e.state.ShuffleSteps = e.config.ShuffleSteps
	e.state.StartedAt = time.Now()
	e.state.SolvedAt = nil
	e.state.Message = e.config.Messages.Welcome

	if e.board.IsSolved() {
		e.markSolved()
	} else {
		e.state.Phase = PhasePlaying
	}
	e.syncState()
}

func (e *GameEngine) markSolved() {
	now := time.Now()
	e.state.Phase = PhaseSolved
	e.state.SolvedAt = &now
	e.state.Message = e.config.Messages.Solved
}

func (e *GameEngine) alreadySolvedMessage() string {
	if e.config.Messages.AlreadySolved != "" {
		return e.config.Messages.AlreadySolved
	}
	return e.config.Messages.Solved
}

// ShuffledBoard replays the shuffle of one round: a walk of steps from the
// identity board driven by NewSeededRand(seed, round). A walk that lands back on
// the identity is continued, a bounded number of times, so that steps > 0
// almost never yields a solved start.
func ShuffledBoard(seed string, round, steps int) Board {
	board := NewBoard()
	rng := NewSeededRand(seed, uint64(round))
	board.Shuffle(steps, rng)
	for attempt := 1; steps > 0 && board.IsSolved() && attempt < maxShuffleAttempts; attempt++ {
		board.Shuffle(steps, rng)
	}
	return board
}

// syncState copies the board into the exported state and refreshes helper views
func (e *GameEngine) syncState() {
	e.state.Tiles = e.board.Tiles()
	e.state.Blank = e.board.Blank()
	e.state.Solved = e.state.Phase == PhaseSolved
	e.state.Displacement = Displacement(e.board)
	if e.state.Phase == PhasePlaying {
		e.state.MovableTiles = e.board.MovableTiles()
	} else {
		e.state.MovableTiles = nil
	}
}

// GetState returns the current game state
func (e *GameEngine) GetState() *GameState {
	return e.state
}

// Restart shuffles a new round. History stays cumulative; the current segment is cleared.
func (e *GameEngine) Restart() (*GameState, error) {
	if e.state.Phase != PhaseSolved {
		return e.state, ErrNotSolved
	}

	e.state.CurrentMoves = []MoveHistoryEntry{}
	e.state.CurrentMovesCount = 0
	e.shuffle(e.state.Round + 1)

	return e.state, nil
}

// GetPhase returns the lifecycle phase
func (e *GameEngine) GetPhase() Phase {
	return e.state.Phase
}

// IsSolved returns whether the puzzle is solved
func (e *GameEngine) IsSolved() bool {
	return e.board.IsSolved()
}

// GetBlank returns the blank position
func (e *GameEngine) GetBlank() Position {
	return e.board.Blank()
}

// TileAt returns the tile at p
func (e *GameEngine) TileAt(p Position) (int, error) {
	return e.board.TileAt(p)
}

// Move slides the tile at target into the blank
func (e *GameEngine) Move(target Position) (MoveOutcome, error) {
	return e.move("move", target)
}

// Slide moves the tile that travels in direction into the blank.
// "up" moves the tile below the blank upward.
func (e *GameEngine) Slide(direction string) (MoveOutcome, error) {
	target, ok := DirectionTarget(e.board.Blank(), direction)
	if !ok {
		return MoveOutcome{}, fmt.Errorf("%w: %q", ErrInvalidDirection, direction)
	}
	if !target.InBounds() {
		blank := e.board.Blank()
		outcome := MoveOutcome{Tile: BlankTile, From: blank, To: blank, Reason: ReasonEdge}
		if e.state.Phase != PhasePlaying {
			outcome.Reason = ReasonAlreadySolved
			e.state.Message = e.alreadySolvedMessage()
			outcome.Message = e.state.Message
			return outcome, nil
		}
		e.state.Message = fmt.Sprintf("No tile can slide %s", direction)
		outcome.Message = e.state.Message
		e.state.AddMoveToHistory(direction, outcome)
		return outcome, nil
	}
	return e.move(direction, target)
}

func (e *GameEngine) move(action string, target Position) (MoveOutcome, error) {
	tile, err := e.board.TileAt(target)
	if err != nil {
		return MoveOutcome{}, err
	}
	blank := e.board.Blank()
	outcome := MoveOutcome{Tile: tile, From: target, To: blank}

	if e.state.Phase != PhasePlaying {
		outcome.Reason = ReasonAlreadySolved
		e.state.Message = e.alreadySolvedMessage()
		outcome.Message = e.state.Message
		return outcome, nil
	}

	switch {
	case e.CanMove(target):
		e.board.swapBlank(target)
		outcome.Moved = true
		outcome.Reason = ReasonMoved
		if e.config.Messages.Moved != "" {
			e.state.Message = fmt.Sprintf(e.config.Messages.Moved, e.state.CurrentMovesCount+1)
		} else {
			e.state.Message = fmt.Sprintf("Moved tile %d", tile+1)
		}
	case target == blank:
		outcome.Reason = ReasonBlankCell
		e.state.Message = "That is the empty cell"
	default:
		outcome.Reason = ReasonNotAdjacent
		e.state.Message = e.config.Messages.NotAdjacent
		if e.state.Message == "" {
			e.state.Message = fmt.Sprintf("Tile at %s is not next to the empty cell", target)
		}
	}

	e.state.AddMoveToHistory(action, outcome)

	if outcome.Moved && e.board.IsSolved() {
		outcome.Solved = true
		e.markSolved()
	}
	outcome.Message = e.state.Message
	e.syncState()

	return outcome, nil
}

// CanMove reports whether Move(target) would slide a tile
func (e *GameEngine) CanMove(target Position) bool {
	return e.state.Phase == PhasePlaying && target.InBounds() && IsAdjacent(target, e.board.Blank())
}

// GetMovableTiles returns the cells that can currently move
func (e *GameEngine) GetMovableTiles() []Position {
	if e.state.Phase != PhasePlaying {
		return nil
	}
	return e.board.MovableTiles()
}

// GetConfig returns the current game configuration
func (e *GameEngine) GetConfig() *GameConfig {
	return e.config
}

// GetMoveHistory returns the complete move history
func (e *GameEngine) GetMoveHistory() []MoveHistoryEntry {
	return e.state.MoveHistory
}

// Board returns a copy of the current board
func (e *GameEngine) Board() Board {
	return e.board
}

// BulkMove executes moves in sequence and stops once the puzzle is solved.
// An out-of-range target aborts the batch with the outcomes gathered so far.
func (e *GameEngine) BulkMove(targets []Position) ([]MoveOutcome, error) {
	outcomes := make([]MoveOutcome, 0, len(targets))

	for _, target := range targets {
		if e.state.Phase != PhasePlaying {
			break
		}

		outcome, err := e.Move(target)
		if err != nil {
			return outcomes, err
		}
		outcomes = append(outcomes, outcome)
	}

	return outcomes, nil
}
