package game

import "strings"

// Events records what happened during one Step.
type Events uint8

const (
	EventPlayer1Scored Events = 1 << iota
	EventPlayer2Scored
	EventWallBounce
	EventPaddle1Hit
	EventPaddle2Hit
)

// Has reports whether all bits of e2 are set in e.
func (e Events) Has(e2 Events) bool { return e&e2 == e2 && e2 != 0 }

// Scored reports whether either player scored.
func (e Events) Scored() bool { return e&(EventPlayer1Scored|EventPlayer2Scored) != 0 }

var eventNames = [...]string{
	"p1-scored",
	"p2-scored",
	"wall",
	"paddle1",
	"paddle2",
}

func (e Events) String() string {
	if e == 0 {
		return "none"
	}
	var sb strings.Builder
	for i, name := range eventNames {
		if e&(1<<i) == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(name)
	}
	return sb.String()
}
