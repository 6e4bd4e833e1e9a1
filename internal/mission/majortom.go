package mission

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
)

// MajorTom is the astronaut side of the exchange: a fixed walk from leaving
// the capsule to the final transmission. Every stage hands off to the next,
// so entering at any stage ends with the same four lines.
type MajorTom struct {
	out io.Writer
}

// NewMajorTom returns a walker writing its transmissions to out.
func NewMajorTom(out io.Writer) *MajorTom {
	return &MajorTom{out: out}
}

// StepThroughDoor starts the walk: out of the capsule and into the drift.
func (m *MajorTom) StepThroughDoor() {
	log.Debug().Msg("Stepping through the door")
	starsAppearance := "different"

	if starsAppearance == "different" {
		m.FloatInTinCan()
	}
}

// FloatInTinCan is the drift far above the world.
func (m *MajorTom) FloatInTinCan() {
	log.Debug().Msg("Floating in the tin can")
	planetEarth := "blue"
	nothingICanDo := true

	if planetEarth == "blue" && nothingICanDo {
		m.DisconnectCircuit()
	}
}

// DisconnectCircuit ends the walk with the four-line transmission.
func (m *MajorTom) DisconnectCircuit() {
	log.Debug().Msg("Circuit dead, sending final transmission")
	fmt.Fprintln(m.out, "Here am I floating 'round my tin can")
	fmt.Fprintln(m.out, "Far above the Moon")
	fmt.Fprintln(m.out, "Planet Earth is blue")
	fmt.Fprintln(m.out, "And there's nothing I can do.")
}
