package bo

import (
	"fmt"

	"github.com/Fivegen-LLC/sfputil/internal/entities"
)

// Lane is one physical port of a logical port, as shown to the operator.
type Lane struct {
	Physical    int
	DisplayName string
}

type Lanes []Lane

// NewLanes numbers physical ports of logicalPort in enumeration order, starting from 1.
func NewLanes(logicalPort string, physicalPorts []int) Lanes {
	var (
		ganged = len(physicalPorts) > 1
		lanes  = make(Lanes, 0, len(physicalPorts))
	)
	for i, physicalPort := range physicalPorts {
		lanes = append(lanes, Lane{
			Physical:    physicalPort,
			DisplayName: PhysicalPortName(logicalPort, i+1, ganged),
		})
	}

	return lanes
}

// PhysicalPortName returns the display name of lane index (1-based) of logicalPort.
func PhysicalPortName(logicalPort string, index int, ganged bool) string {
	if ganged {
		return fmt.Sprintf("%s:%d (ganged)", logicalPort, index)
	}

	return logicalPort
}

// LaneEEPROM is the parsed EEPROM of a lane; Record is nil when no module is detected.
type LaneEEPROM struct {
	Lane
	Record *entities.EEPROMRecord
}

// LaneRaw is the unparsed identity image of a lane; Data is nil when no module is detected.
type LaneRaw struct {
	Lane
	Data []byte
}

// LaneState is a boolean attribute of a lane, such as presence or low-power mode.
type LaneState struct {
	Lane
	Enabled bool
}
