package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/milk9111/springpole/ecs/system"
	"github.com/milk9111/springpole/prefabs"
)

const appName = "springpole"

func main() {
	debug := flag.Bool("debug", false, "log landings, phase changes and events")
	levelName := flag.String("level", "course", "level name in levels/ (basename, .json optional) or a path")
	script := flag.String("script", "course", "input script in prefabs/scripts; empty holds -move")
	moveX := flag.Float64("move", 1, "constant horizontal axis when no script is used")
	frames := flag.Int("frames", 1800, "frames to simulate")
	fps := flag.Float64("fps", 60, "simulated frames per second")
	watch := flag.Bool("watch", false, "hot reload prefabs/ while running")
	records := flag.Bool("records", false, "persist best completion times")
	flag.Parse()

	if *fps <= 0 {
		log.Fatalf("invalid -fps %v", *fps)
	}

	opts := GameOptions{
		Level:   *levelName,
		Script:  *script,
		MoveX:   *moveX,
		Debug:   *debug,
		Display: &consoleWinDisplay{out: os.Stdout},
	}
	if *records {
		r, err := system.OpenWinRecords(appName)
		if err != nil {
			log.Printf("records disabled: %v", err)
		} else {
			opts.Records = r
		}
	}

	game, err := NewGame(opts)
	if err != nil {
		log.Fatal(err)
	}

	if *watch {
		w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Printf("watch disabled: %v", err)
		} else {
			defer w.Close()
			game.Watch(w)
		}
	}

	delta := 1 / *fps
	var tick <-chan time.Time
	if *watch {
		// Run in real time so edits land mid-run.
		ticker := time.NewTicker(time.Duration(delta * float64(time.Second)))
		defer ticker.Stop()
		tick = ticker.C
	}
	for i := 0; i < *frames && !game.Paused(); i++ {
		if tick != nil {
			<-tick
		}
		game.Update(delta)
	}

	fmt.Println(game.Summary())
}
