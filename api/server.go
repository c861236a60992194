// Package api exposes a running session over HTTP. Clients read snapshots
// from /status or stream them over /socket, and send input back the same
// way.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/battlesnakeio/arcade/config"
	"github.com/battlesnakeio/arcade/input"
	"github.com/battlesnakeio/arcade/rules"
	"github.com/battlesnakeio/arcade/version"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 25 * time.Second
	maxMessageSize = 1 << 12
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Server is the HTTP front end for a session. It is also a renderer: the
// session hands it every snapshot.
type Server struct {
	hs             *http.Server
	sink           input.Sink
	frames         *snapshotHolder
	limiter        *rate.Limiter
	swipeThreshold float64
}

// New creates a server listening on addr that forwards input to sink.
func New(addr string, sink input.Sink) *Server {
	s := &Server{
		sink:           sink,
		frames:         newSnapshotHolder(),
		limiter:        config.NewInputLimiter(),
		swipeThreshold: config.SwipeThreshold,
	}

	router := httprouter.New()
	router.GET("/version", s.version)
	router.GET("/status", s.status)
	router.POST("/direction/:dir", s.direction)
	router.POST("/swipe", s.swipe)
	router.POST("/restart", s.restart)
	router.GET("/socket", s.socket)

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	}).Handler(router)

	s.hs = &http.Server{
		Addr:    addr,
		Handler: handler,
	}
	return s
}

// Render stores the snapshot for HTTP readers and pushes it to websocket
// subscribers.
func (s *Server) Render(snap rules.Snapshot) error {
	s.frames.publish(snap)
	return nil
}

// WaitForExit serves until the server is shut down.
func (s *Server) WaitForExit() error {
	err := s.hs.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.hs.Shutdown(ctx)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Warn("unable to write response")
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *Server) version(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, map[string]string{"version": version.Version})
}

func (s *Server) status(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	snap, ok := s.frames.get()
	if !ok {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "game not started"})
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// submit forwards a command from an HTTP request, sharing one limiter
// across all HTTP clients.
func (s *Server) submit(w http.ResponseWriter, cmd Command) {
	in, err := cmd.intent(s.swipeThreshold)
	if err == errSwipeTooShort {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if !s.limiter.Allow() {
		writeJSON(w, http.StatusTooManyRequests, map[string]string{"error": "slow down"})
		return
	}
	s.sink.Submit(in)
	w.WriteHeader(http.StatusAccepted)
}

func (s *Server) direction(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	s.submit(w, Command{Type: CommandDirection, Direction: ps.ByName("dir")})
}

func (s *Server) swipe(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	cmd := Command{}
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	cmd.Type = CommandSwipe
	s.submit(w, cmd)
}

func (s *Server) restart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.submit(w, Command{Type: CommandRestart})
}

func (s *Server) socket(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer func() {
		if err := conn.Close(); err != nil {
			log.WithError(err).Debug("unable to close websocket")
		}
	}()

	frames, unsubscribe := s.frames.subscribe()
	defer unsubscribe()

	done := make(chan struct{})
	go s.readCommands(conn, done)

	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	for {
		select {
		case snap := <-frames:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(snap); err != nil {
				log.WithError(err).Debug("websocket write failed")
				return
			}
		case <-ping.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

// readCommands reads client commands until the connection fails. Each
// connection gets its own limiter; commands over the limit are dropped.
func (s *Server) readCommands(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)

	limiter := config.NewInputLimiter()
	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		cmd := Command{}
		if err := conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.WithError(err).Warn("websocket read failed")
			}
			return
		}
		in, err := cmd.intent(s.swipeThreshold)
		if err != nil {
			if err != errSwipeTooShort {
				log.WithError(err).Debug("ignoring bad command")
			}
			continue
		}
		if !limiter.Allow() {
			log.WithField("intent", in.String()).Debug("websocket input rate limited")
			continue
		}
		s.sink.Submit(in)
	}
}
