// Package iana carries the static IANA protocol number registry used to
// render the numeric protocol field of a flow record as a name. The table
// is supplied to the parser whole; it is configuration data, not logic.
package iana

// Protocol describes one IANA protocol number assignment.
type Protocol struct {
	Number int
	Name   string
}

// Numbers maps protocol numbers to their assignments. Numbers without an
// entry are left untranslated by the parser.
var Numbers = map[int]Protocol{
	0:   {0, "hopopt"},
	1:   {1, "icmp"},
	2:   {2, "igmp"},
	4:   {4, "ipv4"},
	6:   {6, "tcp"},
	8:   {8, "egp"},
	9:   {9, "igp"},
	17:  {17, "udp"},
	27:  {27, "rdp"},
	33:  {33, "dccp"},
	41:  {41, "ipv6"},
	43:  {43, "ipv6-route"},
	44:  {44, "ipv6-frag"},
	46:  {46, "rsvp"},
	47:  {47, "gre"},
	50:  {50, "esp"},
	51:  {51, "ah"},
	58:  {58, "ipv6-icmp"},
	59:  {59, "ipv6-nonxt"},
	60:  {60, "ipv6-opts"},
	88:  {88, "eigrp"},
	89:  {89, "ospfigp"},
	94:  {94, "ipip"},
	97:  {97, "etherip"},
	103: {103, "pim"},
	112: {112, "vrrp"},
	115: {115, "l2tp"},
	132: {132, "sctp"},
	136: {136, "udplite"},
	137: {137, "mpls-in-ip"},
}

// Names returns the number to canonical name mapping consumed by the parser.
func Names() map[int]string {
	names := make(map[int]string, len(Numbers))
	for number, proto := range Numbers {
		names[number] = proto.Name
	}
	return names
}
