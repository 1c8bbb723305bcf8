package engine

import "fmt"

// Phase is the session lifecycle stage
type Phase int

const (
	PhaseShuffling Phase = iota
	PhasePlaying
	PhaseSolved
)

func (p Phase) String() string {
	switch p {
	case PhaseShuffling:
		return "shuffling"
	case PhasePlaying:
		return "playing"
	case PhaseSolved:
		return "solved"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// ParsePhase is the inverse of Phase.String
func ParsePhase(s string) (Phase, error) {
	switch s {
	case "shuffling":
		return PhaseShuffling, nil
	case "playing":
		return PhasePlaying, nil
	case "solved":
		return PhaseSolved, nil
	}
	return 0, fmt.Errorf("unknown phase %q", s)
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Phase) UnmarshalText(text []byte) error {
	parsed, err := ParsePhase(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
