package utils

import "strconv"

// Tickturn identifies one simulation turn; every live entity acts exactly
// once per turn.
type Tickturn struct {
	seq int
}

func MakeTickturn(seq int) Tickturn {
	return Tickturn{seq: seq}
}

func (t Tickturn) Next() Tickturn {
	return Tickturn{seq: t.seq + 1}
}

func (t Tickturn) GetSeq() int {
	return t.seq
}

func (t Tickturn) String() string {
	return "<Tickturn(" + strconv.Itoa(t.seq) + ")>"
}
