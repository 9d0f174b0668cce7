package packet

import (
	"io"

	"github.com/sanjanarajan/openpgpjs/openpgp/enums"
)

// sliceList is the reference PacketList implementation: a plain ordered
// slice. It has no opinion about what its elements are beyond tag
// lookup, mirroring how go-crypto's packet.Reader is just a thin sequence
// over an io.Reader rather than a structured container.
type sliceList struct {
	items []any
}

// NewList builds a PacketList from an ordered slice of packets.
func NewList(items ...any) PacketList {
	return &sliceList{items: append([]any(nil), items...)}
}

func (l *sliceList) Len() int { return len(l.items) }

func (l *sliceList) At(i int) any { return l.items[i] }

func (l *sliceList) Append(p any) PacketList {
	return &sliceList{items: append(append([]any(nil), l.items...), p)}
}

func (l *sliceList) Concat(other PacketList) PacketList {
	out := append([]any(nil), l.items...)
	if other == nil {
		return &sliceList{items: out}
	}
	for i := 0; i < other.Len(); i++ {
		out = append(out, other.At(i))
	}
	return &sliceList{items: out}
}

func (l *sliceList) Slice(from, to int) PacketList {
	return &sliceList{items: append([]any(nil), l.items[from:to]...)}
}

func (l *sliceList) IndexOfTag(tags ...enums.PacketTag) []int {
	want := make(map[enums.PacketTag]bool, len(tags))
	for _, t := range tags {
		want[t] = true
	}
	var out []int
	for i, item := range l.items {
		var tag enums.PacketTag
		switch p := item.(type) {
		case KeyPacket:
			tag = p.Tag()
		case SignaturePacket:
			tag = enums.TagSignature
		default:
			continue
		}
		if want[tag] {
			out = append(out, i)
		}
	}
	return out
}

func (l *sliceList) WriteTo(w io.Writer) error {
	for _, item := range l.items {
		writer, ok := item.(interface{ Serialize(io.Writer) error })
		if !ok {
			continue
		}
		if err := writer.Serialize(w); err != nil {
			return err
		}
	}
	return nil
}
