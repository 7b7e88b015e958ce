package domedefender

import (
	"github.com/vovakirdan/dome-defender/internal/config"
	"github.com/vovakirdan/dome-defender/internal/core"
)

const (
	scoreFillAlpha     = 0.75
	scoreEdgeAlpha     = 0.95
	scoreTimePrecision = 2
)

// ScoreManager shows each player's name, hit score and time as defender in a
// column near the matching top corner of the arena.
type ScoreManager struct {
	cfg     config.ScoreConfig
	columns [2]scoreColumn
}

type scoreColumn struct {
	name core.Text
	hits core.Text
	time core.Text
}

// NewScoreManager creates an empty score board. Call Setup before drawing.
func NewScoreManager(cfg config.ScoreConfig) *ScoreManager {
	return &ScoreManager{cfg: cfg}
}

// Setup lays out both columns: player 0 at the left offset, player 1 mirrored
// from the right border.
func (s *ScoreManager) Setup(p0, p1 *Player, arena Arena) {
	s.columns[0] = s.column(p0, s.cfg.HorizontalOffset)
	s.columns[1] = s.column(p1, arena.Width()-s.cfg.HorizontalOffset)
	s.Tic(p0, p1)
}

func (s *ScoreManager) column(p *Player, x float64) scoreColumn {
	fill := p.Color().Lighter(s.cfg.FillLighterRatio)
	fill.SetAlpha(scoreFillAlpha)
	edge := p.Color().Darker(s.cfg.EdgeDarkerRatio)
	edge.SetAlpha(scoreEdgeAlpha)

	line := func(y float64) core.Text {
		return core.NewTextEdged("", s.cfg.TextSize, core.NewVector2(x, y), fill, edge, s.cfg.EdgeSize, core.AlignTopCenter)
	}
	step := s.cfg.TextSize + s.cfg.VerticalOffset

	col := scoreColumn{
		name: line(s.cfg.VerticalOffset),
		hits: line(s.cfg.VerticalOffset + step),
		time: line(s.cfg.VerticalOffset + 2*step),
	}
	col.name.SetText(p.Name())
	return col
}

// Tic refreshes the hit and time texts.
func (s *ScoreManager) Tic(p0, p1 *Player) {
	for i, p := range [2]*Player{p0, p1} {
		s.columns[i].hits.SetNumber(int(p.HitScore()))
		s.columns[i].time.SetFloat(p.TimeAsDefender(), scoreTimePrecision)
	}
}

// Texts returns the name, hits and time texts of one player's column.
func (s *ScoreManager) Texts(player int) (name, hits, time core.Text) {
	c := s.columns[player]
	return c.name, c.hits, c.time
}

func (s *ScoreManager) Draw(dst core.Screen) {
	for _, c := range s.columns {
		dst.DrawText(c.name)
		dst.DrawText(c.hits)
		dst.DrawText(c.time)
	}
}
