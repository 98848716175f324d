// pcap2flow converts a pcap capture into flow log text, one version 2
// record per IPv4 TCP/UDP packet, so captures can be fed to ft-tagger.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"FlowTagger/pkg/pcap"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

const (
	defaultAccountID   = "123456789012"
	defaultInterfaceID = "eni-00000000"
)

func main() {
	// 1. Get pcap file path from command-line arguments
	if len(os.Args) < 2 {
		fmt.Println("Usage: pcap2flow <path_to_pcap_file> [output_file]")
		os.Exit(1)
	}
	pcapFilePath := os.Args[1]

	var out io.Writer = os.Stdout
	if len(os.Args) > 2 {
		file, err := os.Create(os.Args[2])
		if err != nil {
			log.Fatalf("Failed to create output file: %v", err)
		}
		defer file.Close()
		out = file
	}

	// 2. Open the capture
	reader, err := pcap.NewReader(pcapFilePath)
	if err != nil {
		log.Fatalf("Failed to open pcap file: %v", err)
	}
	defer reader.Close()
	log.Printf("Reading packets from '%s'...", pcapFilePath)

	// 3. Emit one flow log line per decodable packet
	w := bufio.NewWriter(out)
	defer w.Flush()

	written, skipped := 0, 0
	for packet := range reader.Packets() {
		line, ok := flowLogLine(packet, defaultAccountID, defaultInterfaceID)
		if !ok {
			skipped++
			continue
		}
		fmt.Fprintln(w, line)
		written++
	}

	log.Printf("Wrote %d flow log lines (%d packets skipped)", written, skipped)
}

// flowLogLine renders one packet as a version 2 flow log record. Packets
// that are not IPv4 TCP/UDP cannot fill the 5-tuple fields and are skipped.
func flowLogLine(packet gopacket.Packet, accountID, interfaceID string) (string, bool) {
	ipLayer := packet.Layer(layers.LayerTypeIPv4)
	if ipLayer == nil {
		return "", false
	}
	ip := ipLayer.(*layers.IPv4)

	var srcPort, dstPort int
	if l := packet.Layer(layers.LayerTypeTCP); l != nil {
		tcp := l.(*layers.TCP)
		srcPort, dstPort = int(tcp.SrcPort), int(tcp.DstPort)
	} else if l := packet.Layer(layers.LayerTypeUDP); l != nil {
		udp := l.(*layers.UDP)
		srcPort, dstPort = int(udp.SrcPort), int(udp.DstPort)
	} else {
		return "", false
	}

	ts := time.Now()
	if meta := packet.Metadata(); meta != nil && !meta.Timestamp.IsZero() {
		ts = meta.Timestamp
	}
	epoch := strconv.FormatInt(ts.Unix(), 10)

	fields := []string{
		"2",
		accountID,
		interfaceID,
		ip.SrcIP.String(),
		ip.DstIP.String(),
		strconv.Itoa(srcPort),
		strconv.Itoa(dstPort),
		strconv.Itoa(int(ip.Protocol)),
		"1",
		strconv.Itoa(len(packet.Data())),
		epoch,
		epoch,
		"ACCEPT",
		"OK",
	}
	return strings.Join(fields, " "), true
}
