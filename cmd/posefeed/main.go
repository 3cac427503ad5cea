// Command posefeed runs the engine at a fixed frame rate and streams the
// resulting poses to renderer clients over a websocket, with engine metrics
// on /metrics.
package main

import (
	"encoding/json"
	"flag"
	"net/http"
	"os"
	"sync"
	"time"

	kitlog "github.com/go-kit/kit/log"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/solarviz/orrery"
)

type frame struct {
	Epoch time.Time     `json:"epoch"`
	Poses []orrery.Pose `json:"poses"`
}

type feed struct {
	logger kitlog.Logger

	mu   sync.RWMutex
	last frame
}

func (f *feed) set(fr frame) {
	f.mu.Lock()
	f.last = fr
	f.mu.Unlock()
}

func (f *feed) get() frame {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.last
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 16384,
	// Renderers connect from anywhere, the feed is read-only.
	CheckOrigin: func(*http.Request) bool { return true },
}

func (f *feed) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		f.logger.Log("msg", "websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()
	ticker := time.NewTicker(time.Second / 30)
	defer ticker.Stop()
	for range ticker.C {
		if err := conn.WriteJSON(f.get()); err != nil {
			return
		}
	}
}

func (f *feed) servePoses(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(f.get())
}

func main() {
	var (
		addr = flag.String("addr", ":8080", "listen address")
		fps  = flag.Int("fps", 60, "engine frames per second")
		rate = flag.Float64("rate", 86400, "simulated seconds per real second")
	)
	flag.Parse()

	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	logger = kitlog.With(logger, "component", "posefeed")

	cat, err := orrery.NewCatalog(orrery.DefaultBodies())
	if err != nil {
		logger.Log("err", err)
		os.Exit(1)
	}
	eng, err := orrery.New(cat,
		orrery.WithLogger(logger),
		orrery.WithMetrics(orrery.NewMetrics(nil)),
		orrery.WithPlaybackRate(*rate))
	if err != nil {
		logger.Log("err", err)
		os.Exit(1)
	}

	f := &feed{logger: logger}
	frameDt := time.Second / time.Duration(*fps)
	go func() {
		ticker := time.NewTicker(frameDt)
		defer ticker.Stop()
		for range ticker.C {
			f.set(frame{Epoch: eng.Clock().SimTime(), Poses: eng.Tick(frameDt)})
		}
	}()

	http.HandleFunc("/ws", f.serveWS)
	http.HandleFunc("/poses", f.servePoses)
	http.Handle("/metrics", promhttp.Handler())
	logger.Log("msg", "listening", "addr", *addr)
	if err := http.ListenAndServe(*addr, nil); err != nil {
		logger.Log("err", err)
		os.Exit(1)
	}
}
