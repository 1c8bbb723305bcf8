package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/wricardo/mcp-training/fifteenpuzzle/game/engine"
)

const (
	pageTitle = "title"
	pageGame  = "game"
)

// App is the terminal shell. It drives a local engine; nothing goes over the network.
type App struct {
	app   *tview.Application
	pages *tview.Pages
	game  *engine.GameEngine

	board    *boardView
	status   *tview.TextView
	controls *tview.Flex
	restart  *tview.Button

	restartShown bool
}

// New builds the shell for config. An empty seed shuffles from a random one.
func New(config *engine.GameConfig, seed string) (*App, error) {
	var (
		game *engine.GameEngine
		err  error
	)
	if seed == "" {
		game, err = engine.NewEngine(config)
	} else {
		game, err = engine.NewEngineWithSeed(config, seed)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to start puzzle: %w", err)
	}

	a := &App{
		app:   tview.NewApplication(),
		pages: tview.NewPages(),
		game:  game,
	}
	a.build()
	return a, nil
}

func (a *App) build() {
	msgs := a.game.GetConfig().Messages

	// Title page
	title := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetText(msgs.Title + "\n\n" + msgs.Welcome)
	start := tview.NewButton(msgs.Start).SetSelectedFunc(a.start)
	titlePage := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(title, 3, 0, false).
		AddItem(nil, 1, 0, false).
		AddItem(start, 1, 0, true)

	// Game page
	a.board = newBoardView(a.game.Board, a.game.CanMove, a.move, a.slide)
	a.status = tview.NewTextView().SetDynamicColors(true)
	a.restart = tview.NewButton(msgs.Restart).SetSelectedFunc(a.restartRound)
	a.controls = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.board, boardHeight+2, 0, true).
		AddItem(a.status, 3, 0, false)

	a.pages.
		AddPage(pageTitle, center(titlePage, boardWidth+2, 5), true, true).
		AddPage(pageGame, center(a.controls, boardWidth+2, boardHeight+6), true, false)

	a.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyEscape, event.Key() == tcell.KeyRune && event.Rune() == 'q':
			a.app.Stop()
			return nil
		case event.Key() == tcell.KeyRune && event.Rune() == 'r' && a.restartShown:
			a.restartRound()
			return nil
		}
		return event
	})

	a.refresh()
}

// center places p in the middle of the screen at a fixed size
func center(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 0, true).
			AddItem(nil, 0, 1, false), width, 0, true).
		AddItem(nil, 0, 1, false)
}

// Run blocks until the user quits
func (a *App) Run() error {
	return a.app.SetRoot(a.pages, true).EnableMouse(true).Run()
}

func (a *App) start() {
	a.pages.SwitchToPage(pageGame)
	a.app.SetFocus(a.board)
}

func (a *App) move(target engine.Position) {
	if _, err := a.game.Move(target); err != nil {
		return
	}
	a.refresh()
}

func (a *App) slide(direction string) {
	if _, err := a.game.Slide(direction); err != nil {
		return
	}
	a.refresh()
}

func (a *App) restartRound() {
	if _, err := a.game.Restart(); err != nil {
		return
	}
	a.refresh()
	a.app.SetFocus(a.board)
}

// refresh rewrites the status line and shows the restart button only while solved
func (a *App) refresh() {
	state := a.game.GetState()
	msgs := a.game.GetConfig().Messages

	var sb strings.Builder
	if msgs.Moved != "" {
		fmt.Fprintf(&sb, msgs.Moved, state.SuccessfulMoves())
	} else {
		fmt.Fprintf(&sb, "Moves: %s", humanize.Comma(int64(state.SuccessfulMoves())))
	}
	fmt.Fprintf(&sb, "  (round %d, started %s)\n", state.Round+1, humanize.Time(state.StartedAt))

	if state.Solved {
		fmt.Fprintf(&sb, "[yellow::b]%s[-:-:-]", msgs.Solved)
		if state.SolvedAt != nil {
			fmt.Fprintf(&sb, " %s", state.Elapsed(time.Now()).Round(time.Second))
		}
	} else {
		sb.WriteString(tview.Escape(state.Message))
	}
	a.status.SetText(sb.String())

	switch {
	case state.Solved && !a.restartShown:
		a.controls.AddItem(a.restart, 1, 0, false)
		a.restartShown = true
	case !state.Solved && a.restartShown:
		a.controls.RemoveItem(a.restart)
		a.restartShown = false
	}
}
