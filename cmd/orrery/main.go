// Command orrery runs the orbital state engine headless and prints the pose
// of selected bodies, mostly useful for eyeballing element data changes.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	kitlog "github.com/go-kit/kit/log"
	"github.com/solarviz/orrery"
)

func main() {
	var (
		frames = flag.Int("frames", 600, "frames to simulate")
		fps    = flag.Int("fps", 60, "frames per second")
		rate   = flag.Float64("rate", 86400, "simulated seconds per real second")
		focus  = flag.String("focus", "", "body id to focus")
		watch  = flag.String("watch", "earth", "body id to print")
	)
	flag.Parse()

	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	cat, err := orrery.NewCatalog(orrery.DefaultBodies())
	if err != nil {
		logger.Log("err", err)
		os.Exit(1)
	}
	eng, err := orrery.New(cat, orrery.WithLogger(logger), orrery.WithPlaybackRate(*rate))
	if err != nil {
		logger.Log("err", err)
		os.Exit(1)
	}
	if *focus != "" {
		if err := eng.Focus(*focus); err != nil {
			logger.Log("err", err)
			os.Exit(1)
		}
	}

	frameDt := time.Second / time.Duration(*fps)
	for f := 0; f < *frames; f++ {
		poses := eng.Tick(frameDt)
		if f%*fps != 0 {
			continue
		}
		for _, p := range poses {
			if p.ID != *watch {
				continue
			}
			fmt.Printf("%s t=%s pos=[%.3f %.3f %.3f] spin=%.1f°\n",
				p.ID, eng.Clock().SimTime().Format(time.RFC3339),
				p.Position[0], p.Position[1], p.Position[2], p.SpinAngle)
		}
	}
}
