package main

import (
	"image"
	"log"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/saccade/common"
	"github.com/milk9111/saccade/ecs"
	"github.com/milk9111/saccade/ecs/component"
	"github.com/milk9111/saccade/ecs/entity"
	"github.com/milk9111/saccade/ecs/render"
	"github.com/milk9111/saccade/ecs/system"
	"github.com/milk9111/saccade/prefabs"
	"github.com/milk9111/saccade/sequence"
)

// diagramBounds is where the eye panel and diagram are drawn; the info
// panel takes the rest of the width.
var diagramBounds = image.Rect(16, 0, common.BaseWidth/2, common.BaseHeight)

type Game struct {
	frames int
	debug  bool

	world     *ecs.World
	scheduler *ecs.Scheduler
	renderer  *render.Renderer
	fonts     *render.Fonts

	specName    string
	specModTime time.Time
	watcher     *prefabs.Watcher

	info   *InfoPanel
	infoUI *ebitenui.UI
}

type GameOptions struct {
	SpecName string
	Debug    bool
	Watch    bool
	Seed     uint64
}

func NewGame(opts GameOptions) *Game {
	if opts.SpecName == "" {
		opts.SpecName = prefabs.DefaultSequenceFile
	}

	spec, err := prefabs.LoadSequenceSpec(opts.SpecName)
	if err != nil {
		log.Printf("failed to load spec %s, using defaults: %v", opts.SpecName, err)
		def := prefabs.DefaultSequenceSpec()
		spec = &def
	}

	world := ecs.NewWorld()
	if err := entity.NewScene(world, spec, opts.Debug); err != nil {
		log.Fatal(err)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	scheduler := ecs.NewScheduler(
		system.NewSequenceSystem(common.Tick),
		system.NewEyeSystem(common.Tick),
		system.NewHighlightSystem(common.Tick),
		system.NewCelebrationSystem(rng),
		system.NewParticleSystem(common.Tick),
		system.NewTTLSystem(),
	)

	fonts := render.NewFonts()
	g := &Game{
		debug:     opts.Debug,
		world:     world,
		scheduler: scheduler,
		renderer:  render.NewRenderer(fonts, opts.Debug),
		fonts:     fonts,
		specName:  opts.SpecName,
	}
	if mt, ok := prefabs.ModTime(opts.SpecName); ok {
		g.specModTime = mt
	}

	g.info = NewInfoPanel(fonts, spec.Graph())
	g.infoUI = g.info.UI()

	if opts.Watch {
		w, err := prefabs.NewWatcher()
		if err != nil {
			log.Printf("hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	return g
}

func (g *Game) Update() error {
	g.frames++

	g.reloadChanged()
	g.scheduler.Update(g.world)

	for _, evt := range g.world.Events().Drain() {
		switch evt.Type {
		case ecs.EventSpecReloaded:
			if graph, ok := evt.Data.(sequence.Graph); ok {
				log.Printf("spec reloaded: %d regions, %d edges (applies on next cycle)", len(graph.Regions), len(graph.Edges))
			}
		case ecs.EventPhaseChanged:
			if change, ok := evt.Data.(component.PhaseChange); ok && change.To == sequence.MoveToTargetA {
				g.info.SetGraph(g.currentSnapshot().Graph)
			}
		}
	}

	g.info.Refresh(g.currentSnapshot())
	g.infoUI.Update()

	g.world.EndTick()
	return nil
}

// reloadChanged re-reads the sequence prefab when the watcher reports a prefab or script
// change. A failed reload keeps the running config.
func (g *Game) reloadChanged() {
	if g.watcher == nil {
		return
	}
	names := g.watcher.Drain()
	if len(names) == 0 {
		return
	}

	reload := false
	for _, name := range names {
		if strings.EqualFold(filepath.Ext(name), ".tengo") {
			reload = true
			continue
		}
		if filepath.Base(name) != filepath.Base(g.specName) {
			continue
		}
		mt, ok := prefabs.ModTime(g.specName)
		if ok && !mt.After(g.specModTime) {
			continue
		}
		g.specModTime = mt
		reload = true
	}
	if !reload {
		return
	}

	spec, err := prefabs.LoadSequenceSpec(g.specName)
	if err != nil {
		log.Printf("reload %s: %v", g.specName, err)
		return
	}
	if err := entity.ApplySpec(g.world, spec); err != nil {
		log.Printf("reload %s: %v", g.specName, err)
	}
}

func (g *Game) currentSnapshot() sequence.Snapshot {
	e, ok := ecs.First(g.world, component.SequenceComponent.Kind())
	if !ok {
		return sequence.Snapshot{}
	}
	seq, ok := ecs.Get(g.world, e, component.SequenceComponent.Kind())
	if !ok {
		return sequence.Snapshot{}
	}
	return seq.Snapshot
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.info.background)
	g.renderer.Draw(g.world, screen, diagramBounds)
	g.infoUI.Draw(screen)
}

// Close releases the file watcher.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
