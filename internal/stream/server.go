package stream

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/san-kum/particles/internal/sim"
)

const indexHTML = `<!DOCTYPE html>
<html><head><title>particles</title>
<style>body{margin:0;background:#000}canvas{display:block}</style></head>
<body><canvas id="c"></canvas>
<script>
const c = document.getElementById("c"), ctx = c.getContext("2d");
const ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws");
ws.onmessage = (ev) => {
  const m = JSON.parse(ev.data);
  if (c.width !== m.width || c.height !== m.height) { c.width = m.width; c.height = m.height; }
  ctx.fillStyle = "#000"; ctx.fillRect(0, 0, c.width, c.height);
  for (const [x, y, v] of m.points) { ctx.fillStyle = "rgb(" + v + "," + v + ",255)"; ctx.fillRect(x, y, 1, 1); }
};
</script></body></html>
`

// Server steps a simulator at a fixed rate and streams every frame through a
// hub.
type Server struct {
	Addr string
	FPS  int

	sim *sim.Simulator
	hub *Hub
}

func NewServer(addr string, fps int, s *sim.Simulator, hub *Hub) *Server {
	s.AddRenderer(hub)
	return &Server{Addr: addr, FPS: fps, sim: s, hub: hub}
}

// Handler serves a minimal viewer on / and the frame stream on /ws.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.hub.ServeWS)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(indexHTML))
	})
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Print(r.RemoteAddr + " " + r.Method + " " + r.URL.String())
		mux.ServeHTTP(w, r)
	})
}

// Run serves until ctx is done or a step fails. frames <= 0 steps without
// limit; after the last frame the server keeps serving until ctx is done.
func (s *Server) Run(ctx context.Context, frames int) error {
	srv := &http.Server{Addr: s.Addr, Handler: s.Handler()}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("serving frames on %s/ws", s.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	err := s.loop(ctx, frames, errCh)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.hub.Close()
	if serr := srv.Shutdown(shutdownCtx); serr != nil && err == nil {
		err = serr
	}
	return err
}

func (s *Server) loop(ctx context.Context, frames int, errCh <-chan error) error {
	fps := s.FPS
	if fps <= 0 {
		fps = 30
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	stepped := 0
	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-errCh:
			return err
		case <-ticker.C:
			if frames > 0 && stepped >= frames {
				continue
			}
			if _, err := s.sim.Step(ctx); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
			stepped++
		}
	}
}
