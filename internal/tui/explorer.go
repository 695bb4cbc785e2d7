// Package tui is the interactive design explorer: adjust the core
// geometry and enrichment and watch k_eff and the flux spectrum respond.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nlebedev/sfrcalc/internal/cell"
	"github.com/nlebedev/sfrcalc/internal/config"
	"github.com/nlebedev/sfrcalc/internal/crit"
	"github.com/nlebedev/sfrcalc/internal/diffusion"
	"github.com/nlebedev/sfrcalc/internal/reactor"
	"github.com/nlebedev/sfrcalc/internal/xs"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type param struct {
	name  string
	unit  string
	val   float64
	step  float64
	min   float64
	max   float64
}

const (
	pEnrichment = iota
	pCoreDiameter
	pActiveHeight
	pElementOD
	pCladThickness
	pPitchRatio
	pFuelDensity
	paramCount
)

type model struct {
	params  [paramCount]param
	cursor  int
	library xs.Library

	targetK  float64
	band     float64
	extrap   bool

	keff    float64
	flux    xs.Vector
	evalErr error

	status string
	width  int
	height int
}

func NewExplorer(cfg *config.Config) *model {
	m := &model{
		library: xs.Fast8(),
		targetK: cfg.Target.KEff,
		band:    cfg.Target.Band,
		extrap:  cfg.UseExtrapolated,
		width:   80,
		height:  24,
	}
	m.params = [paramCount]param{
		pEnrichment:    {"enrichment", "", cfg.Fuel.Enrichment, 0.005, 0, 1},
		pCoreDiameter:  {"core diameter", "cm", cfg.Geometry.CoreDiameter, 2.0, 10, 500},
		pActiveHeight:  {"active height", "cm", cfg.Geometry.ActiveHeight, 2.0, 10, 500},
		pElementOD:     {"element OD", "cm", cfg.Geometry.ElementOD, 0.02, 0.2, 3},
		pCladThickness: {"clad thickness", "cm", cfg.Geometry.CladThickness, 0.005, 0.01, 0.2},
		pPitchRatio:    {"pitch ratio", "", cfg.Geometry.PitchRatio, 0.05, 1.05, 3},
		pFuelDensity:   {"fuel density", "g/cm3", cfg.Fuel.Density, 0.25, 5, 20},
	}
	m.evaluate()
	return m
}

func (m *model) geometry() cell.Geometry {
	geom := cell.Reference()
	geom.CoreDiameter = m.params[pCoreDiameter].val
	geom.ActiveHeight = m.params[pActiveHeight].val
	geom.ElementOD = m.params[pElementOD].val
	geom.CladThickness = m.params[pCladThickness].val
	geom.PitchRatio = m.params[pPitchRatio].val
	return geom
}

func (m *model) core() reactor.Core {
	lib := m.library
	lib.Fissile.Density = m.params[pFuelDensity].val
	lib.Fertile.Density = m.params[pFuelDensity].val
	core := reactor.New(m.geometry(), lib)
	core.Options = diffusion.Options{UseExtrapolated: m.extrap}
	return core
}

func (m *model) evaluate() {
	sol, err := m.core().Solve(m.params[pEnrichment].val)
	if err != nil {
		m.evalErr = err
		return
	}
	m.evalErr = nil
	m.keff = sol.KEff
	m.flux = sol.Flux
}

func (m *model) snapToCritical() {
	x, err := crit.FindCritical(m.core(), crit.DefaultSearch(m.targetK))
	if err != nil {
		m.status = fmt.Sprintf("target k=%.3f unreachable", m.targetK)
		return
	}
	m.params[pEnrichment].val = x
	m.status = fmt.Sprintf("enrichment set to %.4f for k=%.3f", x, m.targetK)
	m.evaluate()
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch msg.String() {
	case "q", "ctrl+c", "escape":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < paramCount-1 {
			m.cursor++
		}
	case "left", "h":
		m.adjust(-1)
	case "right", "l":
		m.adjust(+1)
	case "shift+left", "H":
		m.adjust(-5)
	case "shift+right", "L":
		m.adjust(+5)
	case "e":
		m.extrap = !m.extrap
		m.evaluate()
	case "c":
		m.snapToCritical()
	}
	return m, nil
}

func (m *model) adjust(mult float64) {
	p := &m.params[m.cursor]
	p.val += mult * p.step
	if p.val < p.min {
		p.val = p.min
	}
	if p.val > p.max {
		p.val = p.max
	}
	m.evaluate()
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("          " + cyan.Render("s f r c a l c") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n\n")

	for i, p := range m.params {
		label := fmt.Sprintf("%-16s", p.name)
		val := fmt.Sprintf("%9.4f", p.val)
		if p.unit != "" {
			val += " " + p.unit
		}
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(label) + cyan.Render(val) + "\n")
		} else {
			b.WriteString("        " + dim.Render(label) + dim.Render(val) + "\n")
		}
	}

	bucklingMode := "bare"
	if m.extrap {
		bucklingMode = "extrapolated"
	}
	b.WriteString("\n        " + dim.Render(fmt.Sprintf("%-16s", "buckling")) + dim.Render(bucklingMode) + "\n\n")

	if m.evalErr != nil {
		b.WriteString("      " + red.Render("✗ "+m.evalErr.Error()) + "\n")
	} else {
		b.WriteString(fmt.Sprintf("      %s %s\n", dim.Render("k_eff ="), m.keffStyle().Render(fmt.Sprintf("%.5f", m.keff))))
		b.WriteString(fmt.Sprintf("      %s %s\n", dim.Render("target"), dim.Render(fmt.Sprintf("%.3f ± %.3f", m.targetK, m.band))))
		b.WriteString("\n" + m.spectrumView())
	}

	if m.status != "" {
		b.WriteString("\n      " + yellow.Render(m.status) + "\n")
	}

	b.WriteString("\n" + dim.Render("      ↑↓ select  ←→ adjust  e buckling  c snap critical  q quit") + "\n")
	return b.String()
}

func (m model) keffStyle() lipgloss.Style {
	switch {
	case m.keff >= m.targetK-m.band && m.keff <= m.targetK+m.band:
		return green
	case m.keff < 1:
		return red
	default:
		return yellow
	}
}

// spectrumView renders the group fluxes as horizontal bars, fastest
// group on top.
func (m model) spectrumView() string {
	maxPhi := 0.0
	for _, phi := range m.flux {
		if phi > maxPhi {
			maxPhi = phi
		}
	}
	if maxPhi <= 0 {
		return ""
	}

	var b strings.Builder
	barWidth := 32
	for g := 0; g < xs.Groups; g++ {
		n := int(m.flux[g] / maxPhi * float64(barWidth))
		label := fmt.Sprintf("g%d %7.3f-%-7.3f MeV", g+1, m.library.Groups.UpperMeV(g), m.library.Groups.LowerMeV[g])
		b.WriteString("      " + dim.Render(label) + " " +
			cyan.Render(strings.Repeat("█", n)) +
			dimmer.Render(strings.Repeat("░", barWidth-n)) + "\n")
	}
	return b.String()
}

func Run(cfg *config.Config) error {
	p := tea.NewProgram(NewExplorer(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
