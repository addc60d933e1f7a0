package gen

import (
	"fmt"
	"log"

	"github.com/hashicorp/mdns"
)

// ServiceType is the mDNS service the local generation backend advertises.
const ServiceType = "_posepad-gen._tcp"

// Discover browses the LAN for a generation service and returns the first
// address found as "host:port". An explicit address from the command line is
// preferred over discovery; this is the fallback.
func Discover() (string, error) {
	entries := make(chan *mdns.ServiceEntry, 8)
	found := make(chan string, 1)

	go func() {
		for e := range entries {
			if e.AddrV4 == nil || e.Port == 0 {
				continue
			}
			addr := fmt.Sprintf("%s:%d", e.AddrV4.String(), e.Port)
			log.Printf("[gen] discovered service %q at %s", e.Name, addr)
			select {
			case found <- addr:
			default:
			}
		}
	}()

	err := mdns.Lookup(ServiceType, entries)
	close(entries)
	if err != nil {
		return "", fmt.Errorf("gen: mdns lookup: %w", err)
	}

	select {
	case addr := <-found:
		return addr, nil
	default:
		return "", fmt.Errorf("gen: no %s service found on the local network", ServiceType)
	}
}
