package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/milk9111/springpole/ecs/system"
)

// records prints the saved completion records of levels.
func main() {
	appName := flag.String("app", "springpole", "gdata application name")
	flag.Parse()

	names := flag.Args()
	if len(names) == 0 {
		names = []string{"course", "flat"}
	}

	r, err := system.OpenWinRecords(*appName)
	if err != nil {
		log.Fatal(err)
	}
	for _, name := range names {
		rec, ok, err := r.Load(name)
		if err != nil {
			log.Printf("%s: %v", name, err)
			continue
		}
		if !ok {
			fmt.Printf("%-12s no wins\n", name)
			continue
		}
		fmt.Printf("%-12s best=%.2fs last=%.2fs wins=%d\n", name, rec.BestTime, rec.LastTime, rec.Wins)
	}
}
