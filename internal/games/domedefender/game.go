// Package domedefender implements Dome Defender, a two-player arena game.
// The defender guards the dome at the center of the arena; the contender
// tries to reach it. Touching the contender scores for the defender, touching
// the dome scores for the contender and swaps the roles. A random pickup
// around the dome grants bonuses and maluses.
package domedefender

import (
	"io"
	"math/rand"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/dome-defender/internal/config"
	"github.com/vovakirdan/dome-defender/internal/core"
	"github.com/vovakirdan/dome-defender/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "domedefender"

var (
	settingsMu   sync.RWMutex
	activeConfig = config.DefaultDomeConfig()
	activeLogger = log.New(io.Discard)
)

// SetConfig sets the configuration used by games created through the registry.
func SetConfig(cfg config.DomeConfig) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	activeConfig = cfg
}

// SetLogger sets the logger used by games created through the registry.
func SetLogger(l *log.Logger) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	activeLogger = l
}

// Game orchestrates one arena, one dome, two players, one modifier and the
// score board.
type Game struct {
	cfg     config.DomeConfig
	runtime core.RuntimeConfig
	logger  *log.Logger
	rng     *rand.Rand

	arena      Arena
	background core.Color
	dome       Dome
	players    [2]*Player
	roles      [2]Role // roles at the start of a game
	modifier   *Modifier
	score      *ScoreManager
	matches    int
	enterHeld  bool // Enter state of the previous frame
}

// New creates a game with the configuration and logger set by SetConfig and SetLogger.
func New() *Game {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return NewWithConfig(activeConfig, activeLogger)
}

// NewWithConfig creates a game with an explicit configuration and logger.
func NewWithConfig(cfg config.DomeConfig, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		cfg:    cfg,
		logger: logger.With("game", ID),
		arena:  NewArena(cfg.Arena.Width, cfg.Arena.Height),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Dome Defender"
}

func (g *Game) Width() float64  { return g.arena.Width() }
func (g *Game) Height() float64 { return g.arena.Height() }

// Reset builds the world from the configuration and starts a new game.
// An invalid configuration is replaced by the defaults.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.enterHeld = false
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	if err := g.cfg.Validate(); err != nil {
		g.logger.Warn("invalid configuration, using defaults", "error", err)
		g.cfg = config.DefaultDomeConfig()
	}
	cfg := g.cfg

	g.arena = NewArena(cfg.Arena.Width, cfg.Arena.Height)
	g.background = colorOr(cfg.Game.Background, core.ColorBlack)
	g.dome = NewDome(g.arena, cfg.Dome)

	fallbackMappings := [2]StandardMapping{MappingWASD, MappingArrows}
	fallbackColors := [2]core.Color{core.ColorSky, core.ColorOrange}
	for i, slot := range cfg.Players {
		mapping, err := ParseMapping(slot.Mapping)
		if err != nil {
			mapping = fallbackMappings[i]
		}
		g.roles[i] = ParseRole(slot.Role)
		g.players[i] = NewPlayer(g.roles[i], slot.Name, colorOr(slot.Color, fallbackColors[i]),
			NewDirectionKeyMapping(mapping), cfg.Player, g.rng)
	}

	g.modifier = NewModifier(cfg.Modifier,
		colorOr(cfg.Modifier.BonusColor, core.ColorGreen),
		colorOr(cfg.Modifier.MalusColor, core.ColorRed),
		g.arena, g.dome, g.rng)
	g.score = NewScoreManager(cfg.Score)

	g.logger.Debug("world built", "width", g.arena.Width(), "height", g.arena.Height(), "seed", runtime.Seed)
	g.newGame(true)
}

// newGame puts both players back in their initial roles and places a fresh pickup.
func (g *Game) newGame(resetCounters bool) {
	for i, p := range g.players {
		p.NewGame(g.roles[i], g.arena, resetCounters)
	}
	g.dome.SetColor(g.Defender().Color())
	g.modifier.Randomize(g.arena, g.dome)
	g.score.Setup(g.players[0], g.players[1], g.arena)
	g.matches = 0
}

// Tic advances one frame. Escape ends the game and Enter starts a new one;
// a held Enter resets only once.
func (g *Game) Tic(kb core.Keyboard, timer core.Timer) bool {
	if kb.IsKeyPressed(core.KeyEscape) {
		g.logger.Info("quit requested")
		return false
	}
	enter := kb.IsKeyPressed(core.KeyEnter)
	pressed := enter && !g.enterHeld
	g.enterHeld = enter
	if pressed {
		g.logger.Info("game reset", "reset_counters", g.cfg.Game.ResetCounters)
		g.newGame(g.cfg.Game.ResetCounters)
		return true
	}

	elapsed := max(timer.SecondsSinceLastTick(), 0)
	p0, p1 := g.players[0], g.players[1]

	p0.Tic(kb, elapsed, g.arena)
	p1.Tic(kb, elapsed, g.arena)

	if pick := g.modifier.Tic(p0, p1, g.arena, g.dome); pick.Discarded {
		g.logger.Debug("pickup discarded", "type", pick.Type, "effect", pick.Effect)
	} else if pick.Player != nil {
		g.logger.Debug("pickup taken", "player", pick.Player.Name(), "type", pick.Type, "effect", pick.Effect)
	}

	g.applyRules()
	g.score.Tic(p0, p1)
	return true
}

// applyRules ends the match when the defender catches the contender, or when
// the contender reaches the dome. The first rule is checked first.
func (g *Game) applyRules() {
	defender, contender := g.Defender(), g.Contender()

	switch {
	case defender.IsCollidingPlayer(contender):
		defender.NewMatch(true, false, g.arena)
		contender.NewMatch(false, false, g.arena)
		g.matches++
		g.logger.Info("defender scored", "player", defender.Name(), "hits", defender.HitScore())

	case contender.IsCollidingDome(g.dome):
		contender.NewMatch(true, true, g.arena)
		defender.NewMatch(false, true, g.arena)
		g.dome.SetColor(contender.Color())
		g.matches++
		g.logger.Info("contender reached the dome", "player", contender.Name(), "hits", contender.HitScore())
	}
}

// Draw paints the arena, dome, players, pickup and score board in that order.
func (g *Game) Draw(dst core.Screen) {
	g.arena.Draw(dst, g.background)
	g.dome.Draw(dst)
	for _, p := range g.players {
		p.Draw(dst)
	}
	g.modifier.Draw(dst)
	g.score.Draw(dst)
}

// Defender returns the player currently defending the dome.
func (g *Game) Defender() *Player {
	if g.players[1].Role() == RoleDefender {
		return g.players[1]
	}
	return g.players[0]
}

// Contender returns the player currently attacking the dome.
func (g *Game) Contender() *Player {
	if g.Defender() == g.players[0] {
		return g.players[1]
	}
	return g.players[0]
}

func (g *Game) Arena() Arena                { return g.arena }
func (g *Game) Dome() Dome                  { return g.dome }
func (g *Game) Players() [2]*Player         { return g.players }
func (g *Game) Modifier() *Modifier         { return g.modifier }
func (g *Game) ScoreManager() *ScoreManager { return g.score }
func (g *Game) Matches() int                { return g.matches }

// colorOr parses a color name, falling back when it is unknown.
func colorOr(name string, fallback core.Color) core.Color {
	c, err := core.ParseColor(name)
	if err != nil {
		return fallback
	}
	return c
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
