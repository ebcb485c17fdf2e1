// Command timeline runs the saccade scene headless on the virtual clock and
// prints every phase transition with its simulated time.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/milk9111/saccade/common"
	"github.com/milk9111/saccade/ecs"
	"github.com/milk9111/saccade/ecs/component"
	"github.com/milk9111/saccade/ecs/entity"
	"github.com/milk9111/saccade/ecs/system"
	"github.com/milk9111/saccade/prefabs"
)

func main() {
	specName := flag.String("spec", prefabs.DefaultSequenceFile, "sequence spec in prefabs/")
	duration := flag.Duration("for", 30*time.Second, "simulated time to run")
	seed := flag.Uint64("seed", 1, "particle random seed")
	debug := flag.Bool("debug", false, "log ignored events and stalls")
	flag.Parse()

	spec, err := prefabs.LoadSequenceSpec(*specName)
	if err != nil {
		log.Fatal(err)
	}

	world := ecs.NewWorld()
	if err := entity.NewScene(world, spec, *debug); err != nil {
		log.Fatal(err)
	}
	scheduler := ecs.NewScheduler(
		system.NewSequenceSystem(common.Tick),
		system.NewEyeSystem(common.Tick),
		system.NewHighlightSystem(common.Tick),
		system.NewCelebrationSystem(rand.New(rand.NewPCG(*seed, *seed))),
		system.NewParticleSystem(common.Tick),
		system.NewTTLSystem(),
	)

	ticks := common.Frames(*duration)
	for i := 0; i < ticks; i++ {
		scheduler.Update(world)
		now := time.Duration(i) * common.Tick
		for _, evt := range world.Events().Drain() {
			change, ok := evt.Data.(component.PhaseChange)
			if evt.Type != ecs.EventPhaseChanged || !ok {
				continue
			}
			fmt.Fprintf(os.Stdout, "%10s  %-18s -> %s\n", now.Round(time.Millisecond), change.From, change.To)
		}
		world.EndTick()
	}
}
