package dnsproxy

import (
	"net"
	"testing"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
)

func TestRewriteReplacesOnlyTargetFQDN(t *testing.T) {
	p := &Proxy{localIP: net.ParseIP("10.0.0.5")}

	other := &dns.A{
		Hdr: dns.RR_Header{Name: "example.com.", Rrtype: dns.TypeA, Class: dns.ClassINET},
		A:   net.ParseIP("93.184.216.34"),
	}
	target := &dns.A{
		Hdr: dns.RR_Header{Name: TargetFQDN, Rrtype: dns.TypeA, Class: dns.ClassINET},
		A:   net.ParseIP("1.2.3.4"),
	}

	resp := &dns.Msg{Answer: []dns.RR{other, target}}
	p.rewrite(resp)

	assert.Equal(t, net.ParseIP("93.184.216.34").To4(), other.A.To4())
	assert.Equal(t, p.localIP.To4(), target.A.To4())
}

func TestRewriteIgnoresNonARecords(t *testing.T) {
	p := &Proxy{localIP: net.ParseIP("10.0.0.5")}
	cname := &dns.CNAME{
		Hdr:    dns.RR_Header{Name: TargetFQDN, Rrtype: dns.TypeCNAME, Class: dns.ClassINET},
		Target: "elsewhere.example.",
	}
	resp := &dns.Msg{Answer: []dns.RR{cname}}
	p.rewrite(resp)
	assert.Equal(t, "elsewhere.example.", cname.Target)
}
