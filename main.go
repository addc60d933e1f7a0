package main

import (
	"flag"
	"log"

	"posepad/internal/gen"
	"posepad/internal/share"
	"posepad/internal/sketch"
	"posepad/internal/ui"
)

func main() {
	serviceAddr := flag.String("service", "", "generation service address (host:port); discovered via mDNS when empty")
	sharePort := flag.Int("share-port", 8899, "port for the LAN sketch share server, 0 to disable")
	flag.Parse()

	addr := *serviceAddr
	if addr == "" {
		found, err := gen.Discover()
		if err != nil {
			log.Printf("[main] %v (generation disabled, pass -service to enable)", err)
		} else {
			addr = found
		}
	}

	pad := sketch.NewPad()

	if *sharePort > 0 {
		srv := share.NewServer(pad.Exporter())
		if err := srv.Start(*sharePort); err != nil {
			log.Printf("[main] share server: %v", err)
		} else {
			defer srv.Stop()
		}
	}

	ui.RunApp(pad, addr)
}
