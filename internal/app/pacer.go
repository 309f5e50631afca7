package app

import "time"

// pacer caps the frame rate and counts frames for periodic FPS reports.
type pacer struct {
	budget   time.Duration // Minimum frame time, 0 for uncapped
	interval time.Duration // Report period, 0 disables reports

	frameStart time.Time
	windowFrom time.Time
	frames     int
}

func newPacer(fpsLimit, reportSeconds int, now time.Time) *pacer {
	p := &pacer{
		frameStart: now,
		windowFrom: now,
	}
	if fpsLimit > 0 {
		p.budget = time.Second / time.Duration(fpsLimit)
	}
	if reportSeconds > 0 {
		p.interval = time.Duration(reportSeconds) * time.Second
	}
	return p
}

// wait returns how long to sleep so the frame started at frameStart lasts at
// least one budget, and starts the next frame.
func (p *pacer) wait(now time.Time) time.Duration {
	var d time.Duration
	if p.budget > 0 {
		if elapsed := now.Sub(p.frameStart); elapsed < p.budget {
			d = p.budget - elapsed
		}
	}
	p.frameStart = now.Add(d)
	return d
}

// frame counts a presented frame. When a report period has passed it returns
// the average frames per second and milliseconds per frame over the period.
func (p *pacer) frame(now time.Time) (fps, msPerFrame float64, report bool) {
	p.frames++
	if p.interval == 0 {
		return 0, 0, false
	}
	elapsed := now.Sub(p.windowFrom)
	if elapsed < p.interval {
		return 0, 0, false
	}

	fps = float64(p.frames) / elapsed.Seconds()
	msPerFrame = float64(elapsed.Milliseconds()) / float64(p.frames)
	p.frames = 0
	p.windowFrom = now
	return fps, msPerFrame, true
}
