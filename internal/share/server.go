// Package share exposes the current sketch over HTTP so another device on
// the LAN (a phone, a second workstation) can grab the flattened PNG. The
// server is advertised over mDNS and runs alongside the UI.
package share

import (
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/hashicorp/mdns"

	"posepad/internal/sketch"
)

const serviceType = "_posepad._tcp"

// Server serves the live sketch. Flatten is called per request, so every
// fetch sees the drawing as it is right now.
type Server struct {
	exporter *sketch.Exporter
	mdns     *mdns.Server
}

func NewServer(exporter *sketch.Exporter) *Server {
	return &Server{exporter: exporter}
}

// Routes builds the HTTP handler: a one-line index and the sketch itself.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, `<html><body><img src="/sketch.png" alt="current sketch"></body></html>`)
	})

	r.Get("/sketch.png", func(w http.ResponseWriter, req *http.Request) {
		data, err := s.exporter.Flatten()
		if err != nil {
			if errors.Is(err, sketch.ErrNoSurface) {
				http.Error(w, "no sketch yet", http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(data)
	})

	return r
}

// Start listens on the given port and advertises the service over mDNS.
// Failure to advertise is logged but not fatal; the server still works by
// address.
func (s *Server) Start(port int) error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return fmt.Errorf("share: listen: %w", err)
	}
	if srv, err := advertise(port); err != nil {
		log.Printf("[share] mdns advertise failed: %v", err)
	} else {
		s.mdns = srv
	}
	log.Printf("[share] serving sketch on %s", ln.Addr())
	go func() {
		if err := http.Serve(ln, s.Routes()); err != nil {
			log.Printf("[share] server stopped: %v", err)
		}
	}()
	return nil
}

// Stop shuts down the mDNS advertisement.
func (s *Server) Stop() {
	if s.mdns != nil {
		_ = s.mdns.Shutdown()
	}
}

func advertise(port int) (*mdns.Server, error) {
	host, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("share: hostname: %w", err)
	}
	service, err := mdns.NewMDNSService(host, serviceType, "", "", port, nil, []string{"posepad"})
	if err != nil {
		return nil, fmt.Errorf("share: mdns service: %w", err)
	}
	return mdns.NewServer(&mdns.Config{Zone: service})
}
