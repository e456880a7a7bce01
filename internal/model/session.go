package model

import (
	"fmt"
	"time"
)

// SessionID uniquely identifies a game session
type SessionID string

// Side identifies one of the two boards in a session
type Side int

const (
	PlayerOne Side = iota
	PlayerTwo
)

// Sides lists both sides in turn order
var Sides = [2]Side{PlayerOne, PlayerTwo}

// Valid reports whether the side is one of the two players
func (s Side) Valid() bool {
	return s == PlayerOne || s == PlayerTwo
}

// Opponent returns the other side
func (s Side) Opponent() Side {
	if s == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

func (s Side) String() string {
	switch s {
	case PlayerOne:
		return "player1"
	case PlayerTwo:
		return "player2"
	default:
		return fmt.Sprintf("side(%d)", int(s))
	}
}

// MarshalText renders the side by name in JSON output
func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText accepts the names produced by MarshalText
func (s *Side) UnmarshalText(text []byte) error {
	for _, side := range Sides {
		if side.String() == string(text) {
			*s = side
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidSide, text)
}

// GameMode selects who controls player two
type GameMode string

const (
	GameModePVP GameMode = "pvp" // Two humans sharing the console
	GameModePVE GameMode = "pve" // Player two is the computer
)

// ValidGameModes returns all valid game modes
func ValidGameModes() []GameMode {
	return []GameMode{GameModePVP, GameModePVE}
}

// IsComputer reports whether the side is played by the computer in this mode
func (m GameMode) IsComputer(side Side) bool {
	return m == GameModePVE && side == PlayerTwo
}

// SessionState represents the current phase of a session
type SessionState string

const (
	SessionStateInProgress SessionState = "in_progress"
	SessionStateFinished   SessionState = "finished"
	SessionStateAbandoned  SessionState = "abandoned"
)

// Session holds both boards of one game and everything needed to play it
type Session struct {
	ID    SessionID
	Mode  GameMode
	State SessionState
	Fleet Fleet

	// Indexed by Side
	Boards    [2]*Board
	Remaining [2]int // Intact ship cells left per side

	Turn   Side  // Side whose shot comes next
	Winner *Side // nil until the session is finished

	Shots []ShotRecord

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSession creates an in-progress session over the given boards.
// Counters start at the fleet's total cell count.
func NewSession(id SessionID, mode GameMode, fleet Fleet, one, two *Board, now time.Time) *Session {
	total := fleet.TotalCells()
	return &Session{
		ID:        id,
		Mode:      mode,
		State:     SessionStateInProgress,
		Fleet:     fleet,
		Boards:    [2]*Board{one, two},
		Remaining: [2]int{total, total},
		Turn:      PlayerOne,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Board returns the board owned by the given side
func (s *Session) Board(side Side) *Board {
	if !side.Valid() {
		return nil
	}
	return s.Boards[side]
}

// IsOver returns true once the session is finished or abandoned
func (s *Session) IsOver() bool {
	return s.State != SessionStateInProgress
}

// Clone returns a deep copy of the session, boards included
func (s *Session) Clone() *Session {
	clone := *s
	for i, b := range s.Boards {
		if b != nil {
			clone.Boards[i] = b.Clone()
		}
	}
	clone.Fleet = append(Fleet(nil), s.Fleet...)
	clone.Shots = append([]ShotRecord(nil), s.Shots...)
	if s.Winner != nil {
		winner := *s.Winner
		clone.Winner = &winner
	}
	return &clone
}

// ShotRecord is one entry in a session's shot history
type ShotRecord struct {
	Shooter  Side
	Target   Position
	Outcome  FireOutcome
	FiredAt  time.Time
	TurnStep int // 1-based index of the shot within the session
}

// ShotsBy returns the number of shots the side has fired
func (s *Session) ShotsBy(side Side) int {
	count := 0
	for _, r := range s.Shots {
		if r.Shooter == side {
			count++
		}
	}
	return count
}
