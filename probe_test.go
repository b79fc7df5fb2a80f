package main

import (
	"errors"
	"net"
	"testing"
)

type fakeConn struct {
	net.Conn
	local  net.Addr
	closed bool
}

func (c *fakeConn) LocalAddr() net.Addr { return c.local }

func (c *fakeConn) Close() error {
	c.closed = true
	return nil
}

func TestProbeIPDialError(t *testing.T) {
	dial := func(network, address string) (net.Conn, error) {
		return nil, errors.New("network is unreachable")
	}
	if got := probeIP(dial); got != "127.0.0.1" {
		t.Errorf("probeIP() = %q, want 127.0.0.1", got)
	}
}

func TestProbeIPLocalAddr(t *testing.T) {
	tests := []struct {
		name  string
		local net.Addr
		want  string
	}{
		{"ipv4", &net.UDPAddr{IP: net.ParseIP("192.168.1.23"), Port: 50123}, "192.168.1.23"},
		{"unspecified", &net.UDPAddr{IP: net.IPv4zero, Port: 50123}, "127.0.0.1"},
		{"ipv6", &net.UDPAddr{IP: net.ParseIP("fe80::1"), Port: 50123}, "127.0.0.1"},
		{"not udp", &net.TCPAddr{IP: net.ParseIP("10.0.0.5"), Port: 1}, "127.0.0.1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := &fakeConn{local: tt.local}
			var gotNetwork, gotAddress string
			dial := func(network, address string) (net.Conn, error) {
				gotNetwork, gotAddress = network, address
				return conn, nil
			}
			if got := probeIP(dial); got != tt.want {
				t.Errorf("probeIP() = %q, want %q", got, tt.want)
			}
			if gotNetwork != "udp4" || gotAddress != probeAddr {
				t.Errorf("dialed %s %s, want udp4 %s", gotNetwork, gotAddress, probeAddr)
			}
			if !conn.closed {
				t.Error("probe connection was not closed")
			}
		})
	}
}

func TestLocalIPIsIPv4(t *testing.T) {
	got := localIP()
	ip := net.ParseIP(got)
	if ip == nil || ip.To4() == nil {
		t.Fatalf("localIP() = %q, not an IPv4 address", got)
	}
	if got != localIP() {
		t.Errorf("localIP() is not stable across calls")
	}
}
