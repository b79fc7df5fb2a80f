package main

import (
	"log"
	"net"
	"time"
)

const (
	// probeAddr doesn't have to be reachable; connecting a UDP socket only
	// makes the kernel pick a route and source address.
	probeAddr    = "10.254.254.254:1"
	probeTimeout = 100 * time.Millisecond
	loopbackIP   = "127.0.0.1"
)

type dialFunc func(network, address string) (net.Conn, error)

func dialProbe(network, address string) (net.Conn, error) {
	return net.DialTimeout(network, address, probeTimeout)
}

// localIP returns the address of the interface this machine would use to
// reach the outside world, or 127.0.0.1 when that can't be determined.
// It is for display only.
func localIP() string {
	return probeIP(dialProbe)
}

func probeIP(dial dialFunc) string {
	conn, err := dial("udp4", probeAddr)
	if err != nil {
		log.Printf("DEBUG: localIP - probe failed, using %s: %v", loopbackIP, err)
		return loopbackIP
	}
	defer conn.Close()

	addr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok {
		log.Printf("DEBUG: localIP - unexpected local address %v, using %s", conn.LocalAddr(), loopbackIP)
		return loopbackIP
	}
	ip := addr.IP.To4()
	if ip == nil || ip.IsUnspecified() {
		log.Printf("DEBUG: localIP - no usable IPv4 source address (%v), using %s", addr.IP, loopbackIP)
		return loopbackIP
	}
	return ip.String()
}
