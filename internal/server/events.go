package server

import (
	"fmt"
	"net/http"
	"time"
)

// heartbeat frames keep intermediaries from timing out idle streams
const pingInterval = 15 * time.Second

// handleEvents streams evaluation activity as server-sent events. The UI
// uses it as a lightweight status feed; no state is replayed on reconnect.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	fmt.Fprint(w, "retry: 2000\n\n")
	fmt.Fprint(w, "event: ready\ndata: {}\n\n")
	flusher.Flush()

	ctx := r.Context()
	ch := s.broker.subscribe()
	defer s.broker.unsubscribe(ch)

	s.log.Debug("events subscriber connected", "remote", r.RemoteAddr)
	defer s.log.Debug("events subscriber gone", "remote", r.RemoteAddr)

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			fmt.Fprint(w, ": ping\n\n")
			flusher.Flush()

		case ev, ok := <-ch:
			if !ok {
				return
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Name, ev.Data)
			flusher.Flush()
		}
	}
}
