// Package lineup implements Starting XI: recall the eleven players of a
// famous lineup, slot by slot.
package lineup

import "fmt"

// PositionKey places a slot on the pitch template.
type PositionKey string

const (
	PosGK  PositionKey = "GK"
	PosRB  PositionKey = "RB"
	PosRWB PositionKey = "RWB"
	PosCB  PositionKey = "CB"
	PosRCB PositionKey = "RCB"
	PosLCB PositionKey = "LCB"
	PosLB  PositionKey = "LB"
	PosLWB PositionKey = "LWB"
	PosCDM PositionKey = "CDM"
	PosRDM PositionKey = "RDM"
	PosLDM PositionKey = "LDM"
	PosCM  PositionKey = "CM"
	PosRCM PositionKey = "RCM"
	PosLCM PositionKey = "LCM"
	PosCAM PositionKey = "CAM"
	PosRAM PositionKey = "RAM"
	PosLAM PositionKey = "LAM"
	PosRM  PositionKey = "RM"
	PosLM  PositionKey = "LM"
	PosRW  PositionKey = "RW"
	PosLW  PositionKey = "LW"
	PosSS  PositionKey = "SS"
	PosCF  PositionKey = "CF"
	PosST  PositionKey = "ST"
)

// Coordinates locate a slot on the pitch, both axes in [0,100].
type Coordinates struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Slot is one position in the lineup. Hidden slots are the ones the
// player has to recall; visible slots are given away as anchors.
type Slot struct {
	PositionKey PositionKey `json:"positionKey"`
	Coordinates Coordinates `json:"coordinates"`
	FullName    string      `json:"fullName"`
	DisplayName string      `json:"displayName"`
	Hidden      bool        `json:"isHidden"`
	Found       bool        `json:"isFound"`
}

// Content is the immutable puzzle content: exactly eleven slots.
type Content struct {
	Slots []Slot `json:"slots"`
}

const lineupSize = 11

// Validate checks the content is playable.
func (c Content) Validate() error {
	if len(c.Slots) != lineupSize {
		return fmt.Errorf("lineup has %d slots, want %d", len(c.Slots), lineupSize)
	}
	hidden := 0
	for _, s := range c.Slots {
		if s.FullName == "" {
			return fmt.Errorf("slot %s has no player name", s.PositionKey)
		}
		if s.Hidden {
			hidden++
		}
	}
	if hidden == 0 {
		return fmt.Errorf("lineup has no hidden slots")
	}
	return nil
}
