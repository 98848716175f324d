// Package pcap wraps offline capture reading for the pcap2flow converter.
package pcap

import (
	"github.com/google/gopacket"
	"github.com/google/gopacket/pcap"
)

// Reader reads packets from a pcap capture file.
type Reader struct {
	handle *pcap.Handle
}

// NewReader opens the capture file at the given path.
func NewReader(filePath string) (*Reader, error) {
	handle, err := pcap.OpenOffline(filePath)
	if err != nil {
		return nil, err
	}
	return &Reader{handle: handle}, nil
}

// Close closes the pcap handle.
func (r *Reader) Close() {
	r.handle.Close()
}

// Packets returns a channel of decoded packets from the capture. The
// channel is closed when the capture is exhausted.
func (r *Reader) Packets() <-chan gopacket.Packet {
	source := gopacket.NewPacketSource(r.handle, r.handle.LinkType())
	return source.Packets()
}
