package core

import (
	"fmt"
	"time"
)

const AVG_COUNT uint8 = 30

// Metrics keeps a frame time average and a frames per second counter that is
// refreshed once every second.
type Metrics struct {
	frameAVGCounter uint8
	msTimes         [AVG_COUNT]float64
	msAvg           float64

	frames      int32
	accumulated time.Duration
	fps         float64
	fpsValid    bool
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

// Update records one frame that took frameElapsed.
func (mt *Metrics) Update(frameElapsed time.Duration) {
	// Calculate frame ms average
	frameMS := float64(frameElapsed) / float64(time.Millisecond)
	mt.msTimes[mt.frameAVGCounter] = frameMS
	if mt.frameAVGCounter == AVG_COUNT-1 {
		mt.msAvg = 0
		for i := uint8(0); i < AVG_COUNT; i++ {
			mt.msAvg += mt.msTimes[i]
		}
		mt.msAvg /= float64(AVG_COUNT)
	}
	mt.frameAVGCounter++
	mt.frameAVGCounter %= AVG_COUNT

	// Calculate frames per second once more than a second has passed.
	mt.frames++
	mt.accumulated += frameElapsed
	if mt.accumulated > time.Second {
		mt.fps = float64(mt.frames) / mt.accumulated.Seconds()
		mt.fpsValid = true
		mt.accumulated = 0
		mt.frames = 0
	}
}

// FPS returns the last measured rate; false until a full second was measured.
func (mt *Metrics) FPS() (float64, bool) {
	return mt.fps, mt.fpsValid
}

// FrameTime returns the average frame time in milliseconds.
func (mt *Metrics) FrameTime() float64 {
	return mt.msAvg
}

// FPSLabel formats the rate for the overlay and the window title.
func (mt *Metrics) FPSLabel() string {
	if !mt.fpsValid {
		return "?? fps"
	}
	return fmt.Sprintf("%.2f fps", mt.fps)
}
