// Package alloc maps request ids onto VM ids and internal addresses. The
// mapping is a pure function of the id so it can be recomputed at any time
// instead of being stored.
package alloc

import (
	"errors"
	"fmt"
	"net"
)

var (
	ErrBadBase    = errors.New("base network must be a valid IPv4 address")
	ErrReservedID = errors.New("id is reserved for infrastructure")
)

// Allocator derives (vmid, ip) pairs from request ids. Ids at or below the
// floor are reserved and never allocated.
type Allocator struct {
	base  uint32
	floor uint
}

func New(baseNetwork string, floor uint) (*Allocator, error) {
	ip := net.ParseIP(baseNetwork)
	if ip == nil {
		return nil, ErrBadBase
	}
	v4 := ip.To4()
	if v4 == nil {
		return nil, ErrBadBase
	}
	base := uint32(v4[0])<<24 | uint32(v4[1])<<16 | uint32(v4[2])<<8 | uint32(v4[3])
	return &Allocator{base: base, floor: floor}, nil
}

// Allocate returns the VM id and internal IP for a request id. The VM id is
// the request id itself; the address offset is the id's distance from the
// floor, so distinct ids always get distinct addresses.
func (a *Allocator) Allocate(id uint) (vmid int, ip string, err error) {
	if id <= a.floor {
		return 0, "", ErrReservedID
	}
	addr := a.base + uint32(id-a.floor)
	ip = fmt.Sprintf("%d.%d.%d.%d", byte(addr>>24), byte(addr>>16), byte(addr>>8), byte(addr))
	return int(id), ip, nil
}
