package components

import (
	"github.com/yohamta/donburi"
)

type CameraData struct {
	OffsetX float64 // Current horizontal scroll in world pixels
	Target  float64 // Clamped scroll that keeps the character centred
	PanFrom float64 // Offset the intro pan starts from
	Panning bool    // Intro pan still running
}

var Camera = donburi.NewComponentType[CameraData]()
