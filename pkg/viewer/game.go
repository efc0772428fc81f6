// Package viewer renders a running flock with ebiten and lets the user tune it.
package viewer

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lao-tseu-is-alive/go-boids-flock/pb"
	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/simulation"
	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/ui"
	"github.com/tochemey/goakt/v3/actor"
)

const panelWidth = 260

var (
	whiteImage      = ebiten.NewImage(3, 3)
	backgroundColor = color.RGBA{R: 10, G: 10, B: 30, A: 255}
	domainColor     = color.RGBA{R: 90, G: 90, B: 120, A: 255}
	perceptionColor = color.RGBA{R: 50, G: 100, B: 255, A: 60}
	avoidanceColor  = color.RGBA{R: 255, G: 80, B: 80, A: 90}
)

func init() {
	whiteImage.Fill(color.RGBA{R: 100, G: 200, B: 255, A: 255})
}

// Game is the ebiten.Game driving a FlockActor: one Tick per frame unless paused.
type Game struct {
	ctx        context.Context
	flockPID   *actor.PID
	snapshotCh chan *pb.Snapshot
	lastState  *pb.Snapshot
	cfg        *simulation.Config

	// UI Controls
	panel *ui.Panel

	widgetMaxSwimSpeed      *ui.Slider
	widgetMaxDelta          *ui.Slider
	widgetPerception        *ui.Slider
	widgetAvoidance         *ui.Slider
	widgetAlignWeight       *ui.Slider
	widgetCohesionWeight    *ui.Slider
	widgetSeparationWeight  *ui.Slider
	widgetStepsPerFrame     *ui.Slider
	widgetDisplayPerception *ui.Checkbox
	widgetDisplayAvoidance  *ui.Checkbox

	paused   bool
	lastSent behavior.Params

	// Timing instrumentation
	updateAvg float64 // Rolling average in ms
	drawAvg   float64 // Rolling average in ms

	vertices []ebiten.Vertex
	indices  []uint16
}

// NewGame spawns the flock actor in system and builds the control panel.
func NewGame(ctx context.Context, cfg *simulation.Config, system actor.ActorSystem) (*Game, error) {
	// Buffer to avoid blocking the actor
	snapshotCh := make(chan *pb.Snapshot, 10)
	pid, err := simulation.SpawnFlock(ctx, system, cfg, snapshotCh, nil)
	if err != nil {
		return nil, err
	}

	g := &Game{
		ctx:        ctx,
		flockPID:   pid,
		snapshotCh: snapshotCh,
		lastState:  &pb.Snapshot{}, // Avoid nil pointer
		cfg:        cfg,
		lastSent:   cfg.Boid,
	}

	p := cfg.Boid
	panel := ui.NewPanel(10, 10, panelWidth, cfg.World.Height()-20)

	panel.AddSection("Limits")
	g.widgetMaxSwimSpeed = panel.AddSlider("Max Swim Speed", 0, 40, p.MaxSwimSpeed)
	g.widgetMaxDelta = panel.AddSlider("Max Delta", 0, 20, p.MaxDelta)

	panel.AddSection("Radii")
	g.widgetPerception = panel.AddSlider("Perception", 1, 150, p.PerceptionDistance)
	g.widgetAvoidance = panel.AddSlider("Avoidance", 0, 50, p.AvoidanceDistance)

	panel.AddSection("Rule Weights")
	g.widgetAlignWeight = panel.AddSlider("Align", 0, 3, p.AlignWeight)
	g.widgetCohesionWeight = panel.AddSlider("Cohesion", 0, 3, p.CohesionWeight)
	g.widgetSeparationWeight = panel.AddSlider("Separation", 0, 3, p.SeparationWeight)

	panel.AddSection("Run")
	g.widgetStepsPerFrame = panel.AddSlider("Ticks / Frame", 1, 10, 1)
	g.widgetStepsPerFrame.Format = "%.0f"
	panel.AddButton("Pause / Resume", func() { g.paused = !g.paused })

	panel.AddSection("Visualization")
	g.widgetDisplayPerception = panel.AddCheckbox("Perception Circle", cfg.DisplayPerception)
	g.widgetDisplayAvoidance = panel.AddCheckbox("Avoidance Circle", cfg.DisplayAvoidance)

	g.panel = panel
	return g, nil
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		// exponential moving average
		g.updateAvg = g.updateAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	g.panel.Update(ui.ReadPointer())

	select {
	case snap := <-g.snapshotCh:
		g.lastState = snap
	default:
		// keep the previous state until a new one is ready
	}

	if p := g.params(); p != g.lastSent {
		// invalid combinations are logged and dropped by the actor
		if err := actor.Tell(g.ctx, g.flockPID, simulation.ParamsToTuning(p)); err != nil {
			return fmt.Errorf("sending tuning: %w", err)
		}
		g.lastSent = p
	}

	if g.paused {
		return nil
	}
	steps := uint32(math.Round(g.widgetStepsPerFrame.Value))
	if err := actor.Tell(g.ctx, g.flockPID, &pb.Tick{Steps: steps}); err != nil {
		return fmt.Errorf("sending tick: %w", err)
	}
	return nil
}

// params reads the sliders.
func (g *Game) params() behavior.Params {
	return behavior.Params{
		MaxSwimSpeed:       g.widgetMaxSwimSpeed.Value,
		MaxDelta:           g.widgetMaxDelta.Value,
		PerceptionDistance: g.widgetPerception.Value,
		AvoidanceDistance:  g.widgetAvoidance.Value,
		AlignWeight:        g.widgetAlignWeight.Value,
		CohesionWeight:     g.widgetCohesionWeight.Value,
		SeparationWeight:   g.widgetSeparationWeight.Value,
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.drawAvg = g.drawAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	screen.Fill(backgroundColor)
	w := g.cfg.World
	vector.StrokeRect(screen, 0, 0, float32(w.Width()), float32(w.Height()), 1, domainColor, true)

	boids := g.lastState.GetBoids()
	for _, b := range boids {
		x, y := g.toScreen(b.GetPosition())
		if g.widgetDisplayPerception.Value {
			vector.StrokeCircle(screen, x, y, float32(g.widgetPerception.Value), 1, perceptionColor, true)
		}
		if g.widgetDisplayAvoidance.Value {
			vector.StrokeCircle(screen, x, y, float32(g.widgetAvoidance.Value), 1, avoidanceColor, true)
		}
	}
	g.drawBoids(screen, boids)

	g.panel.Draw(screen)

	status := ""
	if g.paused {
		status = "\nPAUSED"
	}
	msg := fmt.Sprintf("FPS: %.2f\nTPS: %.2f\nTick: %d\nBoids: %d\n\nUpdate: %.2fms\nDraw:   %.2fms%s",
		ebiten.ActualFPS(),
		ebiten.ActualTPS(),
		g.lastState.GetTick(),
		len(boids),
		g.updateAvg,
		g.drawAvg,
		status)
	ebitenutil.DebugPrintAt(screen, msg, int(w.Width())-150, 10)
}

// drawBoids batches triangles into as few draw calls as uint16 indices allow.
func (g *Game) drawBoids(screen *ebiten.Image, boids []*pb.BoidState) {
	g.vertices = g.vertices[:0]
	g.indices = g.indices[:0]
	for _, b := range boids {
		if len(g.vertices)+3 > math.MaxUint16 {
			g.flush(screen)
		}
		x, y := g.toScreen(b.GetPosition())
		tri := triangle(x, y, b.GetVelocity().GetX(), b.GetVelocity().GetY())
		base := uint16(len(g.vertices))
		for _, v := range tri {
			g.vertices = append(g.vertices, ebiten.Vertex{
				DstX: v[0], DstY: v[1],
				SrcX: 1, SrcY: 1,
				ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
			})
		}
		g.indices = append(g.indices, base, base+1, base+2)
	}
	g.flush(screen)
}

func (g *Game) flush(screen *ebiten.Image) {
	if len(g.indices) > 0 {
		screen.DrawTriangles(g.vertices, g.indices, whiteImage, &ebiten.DrawTrianglesOptions{})
	}
	g.vertices = g.vertices[:0]
	g.indices = g.indices[:0]
}

// toScreen shifts world coordinates so the domain minimum lands at the origin.
func (g *Game) toScreen(p *pb.Vector2D) (float32, float32) {
	return float32(p.GetX() - g.cfg.World.MinX), float32(p.GetY() - g.cfg.World.MinY)
}

func (g *Game) Layout(int, int) (int, int) {
	return int(math.Ceil(g.cfg.World.Width())), int(math.Ceil(g.cfg.World.Height()))
}

// triangle returns the three corners of a boid glyph at (x, y) pointing along (vx, vy).
// A stationary boid points right.
func triangle(x, y float32, vx, vy float64) [3][2]float32 {
	angle := math.Atan2(vy, vx)
	corner := func(offset, length float64) [2]float32 {
		return [2]float32{
			x + float32(math.Cos(angle+offset)*length),
			y + float32(math.Sin(angle+offset)*length),
		}
	}
	return [3][2]float32{corner(0, 6), corner(2.5, 5), corner(-2.5, 5)}
}
