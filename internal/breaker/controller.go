package breaker

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/binary-breaker/internal/core"
)

const (
	startupBlinks = 3
	cheatBlinks   = 1
	blinkPeriod   = 100 * time.Millisecond

	timeoutMessage = "TIME'S UP"
)

// Rules holds the tunable timings of the state machine.
type Rules struct {
	TickInterval     time.Duration // polling period used by Run
	FeedbackDuration time.Duration // how long a result stays on screen
	CheatHold        time.Duration // Cancel hold time that skips levels
	Cheats           bool          // enable the level-skip hold
	LiveCountdown    bool          // redraw the HUD whenever the countdown changes
}

// DefaultRules returns the timings of the reference hardware.
func DefaultRules() Rules {
	return Rules{
		TickInterval:     10 * time.Millisecond,
		FeedbackDuration: 1500 * time.Millisecond,
		CheatHold:        3000 * time.Millisecond,
		Cheats:           true,
		LiveCountdown:    false,
	}
}

// Deps are the collaborators a Controller drives.
type Deps struct {
	Input   Input
	Display Display
	Sound   Sound
	Lamps   Indicators
	Scores  HighScores
	Clock   core.Clock
	Logger  *log.Logger // optional
}

// updater is implemented by collaborators that advance on their own
// timeline (tone sequences, blink patterns) once per tick.
type updater interface {
	Update(now core.Millis)
}

// stopper is implemented by sound outputs that can cut a melody short.
type stopper interface {
	Stop()
}

// Controller is the screen state machine. It owns the GameState and runs
// one decision step per Tick on the caller's goroutine.
type Controller struct {
	state GameState
	tasks *TaskGenerator
	rules Rules

	input   Input
	display Display
	sound   Sound
	lamps   Indicators
	scores  HighScores
	clock   core.Clock
	log     *log.Logger

	cheat          cheatTracker
	shownRemaining int
	closed         bool
}

// NewController wires a controller. Every collaborator except the logger
// is required.
func NewController(d Deps, rules Rules, tasks *TaskGenerator) (*Controller, error) {
	var errs []error
	if d.Input == nil {
		errs = append(errs, errors.New("breaker: no input source"))
	}
	if d.Display == nil {
		errs = append(errs, errors.New("breaker: no display"))
	}
	if d.Sound == nil {
		errs = append(errs, errors.New("breaker: no sound output"))
	}
	if d.Lamps == nil {
		errs = append(errs, errors.New("breaker: no status lamps"))
	}
	if d.Scores == nil {
		errs = append(errs, errors.New("breaker: no high score store"))
	}
	if d.Clock == nil {
		errs = append(errs, errors.New("breaker: no clock"))
	}
	if tasks == nil {
		errs = append(errs, errors.New("breaker: no task generator"))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	logger := d.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Controller{
		state:   *NewGameState(),
		tasks:   tasks,
		rules:   rules,
		input:   d.Input,
		display: d.Display,
		sound:   d.Sound,
		lamps:   d.Lamps,
		scores:  d.Scores,
		clock:   d.Clock,
		log:     logger,
	}, nil
}

// State returns a copy of the current session record.
func (c *Controller) State() GameState {
	return c.state
}

// Start loads the high score and shows the menu.
func (c *Controller) Start() {
	score, err := c.scores.LoadHighScore()
	if err != nil {
		c.log.Warn("no usable high score, starting from 0", "error", err)
		score = 0
	}
	c.state.HighScore = score
	c.log.Info("high score loaded", "score", score)
	c.startup()
}

// Run starts the controller and ticks it every Rules.TickInterval until ctx
// is cancelled.
func (c *Controller) Run(ctx context.Context) error {
	ticker := time.NewTicker(c.rules.TickInterval)
	defer ticker.Stop()

	c.Start()
	for {
		select {
		case <-ctx.Done():
			c.Close()
			return ctx.Err()
		case <-ticker.C:
			c.Tick()
		}
	}
}

// Close records an unfinished session and silences the sound output. It
// is safe to call more than once.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.closed = true
	if s, ok := c.sound.(stopper); ok {
		s.Stop()
	}

	switch c.state.Screen {
	case ScreenGame, ScreenFeedback, ScreenInfo:
		if c.state.Score > 0 {
			c.recordSession(OutcomeAbandoned)
		}
	}
}

// Tick runs one step: cheat detection, one button poll, then the handler
// for the current screen.
func (c *Controller) Tick() {
	now := c.clock.Now()

	if c.rules.Cheats {
		c.checkCheat(now)
	}

	pressed := c.input.Poll()

	switch c.state.Screen {
	case ScreenGame:
		c.tickGame(pressed, now)
	case ScreenMenu:
		if pressed == core.ButtonConfirm {
			c.sound.Play(core.CueConfirm)
			c.startNewGame(now)
		}
	case ScreenFeedback:
		c.tickFeedback(now)
	case ScreenGameOver, ScreenWin:
		if pressed == core.ButtonConfirm {
			c.startup()
		}
	case ScreenInfo:
		if pressed == core.ButtonConfirm {
			c.sound.Play(core.CueConfirm)
			c.startLevel(now)
		}
	}

	c.advance(now)
}

func (c *Controller) advance(now core.Millis) {
	if u, ok := c.sound.(updater); ok {
		u.Update(now)
	}
	if u, ok := c.lamps.(updater); ok {
		u.Update(now)
	}
}

func (c *Controller) tickGame(pressed core.Button, now core.Millis) {
	if c.state.Level > MaxLevel {
		c.win()
		return
	}

	if c.state.TimeLeft > 0 {
		elapsed := int(core.Elapsed(c.state.TimerStart, now) / 1000)
		if elapsed > 0 && pressed != core.ButtonNone {
			c.drawHUD(now)
		}
		remaining := c.state.TimeLeft - elapsed
		if remaining <= 0 {
			c.timeout(now)
			return
		}
		if c.rules.LiveCountdown && remaining != c.shownRemaining {
			c.drawHUD(now)
		}
	}

	if pressed == core.ButtonNone {
		return
	}

	c.sound.Play(core.CuePress)
	if i, ok := pressed.BitIndex(); ok {
		c.state.PressBit(i)
	} else {
		switch pressed {
		case core.ButtonCancel:
			c.sound.Play(core.CueReset)
			c.state.ClearInput()
		case core.ButtonConfirm:
			c.resolve(now)
		}
	}

	if c.state.Screen == ScreenGame {
		c.drawHUD(now)
	}
}

func (c *Controller) resolve(now core.Millis) {
	correct := CheckAnswer(c.state.Mode, c.state.Task, c.state.Input, c.state.Sum)
	c.state.LastCorrect = correct

	if correct {
		c.state.AddScore(PointsCorrect)
		c.sound.Play(core.CueConfirm)
		c.lamps.Set(true, false)
		c.display.DrawFeedback(true, PointsCorrect, "")
	} else {
		c.state.AddScore(PointsWrong)
		c.sound.Play(core.CueError)
		c.lamps.Set(false, true)
		c.display.DrawFeedback(false, PointsWrong, "")
	}
	c.log.Info("answer", "level", c.state.Level, "correct", correct, "score", c.state.Score)
	c.enterFeedback(now)
}

func (c *Controller) timeout(now core.Millis) {
	c.sound.Play(core.CueError)
	c.lamps.Set(false, true)
	c.state.AddScore(PointsWrong)
	c.state.LastCorrect = false
	c.display.DrawFeedback(false, PointsWrong, timeoutMessage)
	c.log.Info("time is up", "level", c.state.Level, "score", c.state.Score)
	c.enterFeedback(now)
}

func (c *Controller) enterFeedback(now core.Millis) {
	c.state.Screen = ScreenFeedback
	c.state.FeedbackStart = now
}

func (c *Controller) tickFeedback(now core.Millis) {
	if core.Elapsed(c.state.FeedbackStart, now) <= core.MillisOf(c.rules.FeedbackDuration) {
		return
	}
	c.lamps.Set(false, false)

	if c.state.LastCorrect {
		c.state.Level++
		if m, ok := MilestoneAt(c.state.Level); ok {
			c.display.DrawInfo(m.Title, m.Line1, m.Line2)
			c.state.Screen = ScreenInfo
			c.log.Info("milestone", "level", c.state.Level, "title", m.Title, "unlock", m.Line2)
			return
		}
	}
	c.startLevel(now)
}

func (c *Controller) win() {
	c.state.Screen = ScreenWin
	c.sound.Play(core.CueStartup)
	newRecord := c.saveHighScore()
	c.recordSession(OutcomeWin)
	c.display.DrawWin(c.state.Score, c.state.HighScore, newRecord)
	c.log.Info("game won", "score", c.state.Score, "high_score", c.state.HighScore, "new_record", newRecord)
}

// saveHighScore adopts and persists the score if it beats the record.
// A failed write is logged; the record still counts for this session.
func (c *Controller) saveHighScore() bool {
	if c.state.Score <= c.state.HighScore {
		return false
	}
	c.state.HighScore = c.state.Score
	if err := c.scores.SaveHighScore(c.state.HighScore); err != nil {
		c.log.Error("could not save high score", "score", c.state.HighScore, "error", err)
	}
	return true
}

func (c *Controller) recordSession(outcome string) {
	r, ok := c.scores.(SessionRecorder)
	if !ok {
		return
	}
	level := core.Clamp(c.state.Level, StartLevel, MaxLevel)
	if err := r.RecordSession(c.state.Score, level, outcome); err != nil {
		c.log.Warn("could not record session", "outcome", outcome, "error", err)
	}
}

// startup returns to the menu with a fresh session, keeping the high score.
func (c *Controller) startup() {
	c.resetSession()
	c.display.DrawMenu()
	c.sound.Play(core.CueStartup)
	c.lamps.Blink(startupBlinks, blinkPeriod)
	c.log.Info("ready, waiting for player")
}

func (c *Controller) resetSession() {
	high := c.state.HighScore
	c.state.Reset()
	c.state.HighScore = high
}

func (c *Controller) startNewGame(now core.Millis) {
	c.resetSession()
	c.log.Info("new game")
	c.startLevel(now)
}

// startLevel prepares the task for the current level. Past the last level
// no task is generated; the next GAME step declares the win.
func (c *Controller) startLevel(now core.Millis) {
	c.state.Screen = ScreenGame
	c.state.Input = ZeroBits
	c.state.Sum = 0

	if c.state.Level > MaxLevel {
		c.state.Mode = ModeNone
		c.state.Task = Task{}
		c.state.TimeLeft = 0
		return
	}

	task, mode, limit := c.tasks.Generate(c.state.Level)
	c.state.Task = task
	c.state.Mode = mode
	c.state.TimeLeft = limit
	if limit > 0 {
		c.state.TimerStart = now
	}

	c.drawHUD(now)
	c.log.Debug("level prepared", "level", c.state.Level, "mode", mode, "task", task, "limit", limit)
}

func (c *Controller) drawHUD(now core.Millis) {
	h := HUD{
		Level: c.state.Level,
		Score: c.state.Score,
		Mode:  c.state.Mode,
		Task:  c.state.Task,
		Input: c.state.Input,
		Sum:   c.state.Sum,
		Timed: c.state.TimeLeft > 0,
	}
	if h.Timed {
		h.Remaining = c.state.Remaining(now)
	}
	c.shownRemaining = h.Remaining
	c.display.DrawHUD(h)
}
