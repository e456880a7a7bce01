package model

// ShotResult is the outcome of firing at one cell
type ShotResult string

const (
	ShotMiss        ShotResult = "miss"          // Water became HitWater
	ShotHit         ShotResult = "hit"           // Ship became HitShip
	ShotRepeat      ShotResult = "repeat"        // Cell was already fired upon; nothing changed
	ShotOutOfBounds ShotResult = "out_of_bounds" // Coordinates off the board; nothing changed
)

// FireOutcome is what a session reports for one shot at a side's board
type FireOutcome struct {
	Result     ShotResult `json:"result"`
	Sunk       bool       `json:"sunk"`
	SunkLength int        `json:"sunk_length,omitempty"` // Length of the ship just sunk
	Defeated   bool       `json:"defeated"`              // Target side has no intact ship cells left
	Remaining  int        `json:"remaining"`             // Target side's intact ship cells after the shot
}
