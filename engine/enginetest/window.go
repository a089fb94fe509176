package enginetest

import "github.com/hubastard/quadbatch/engine/core"

// Window closes itself after Frames swaps. Events queued in Script[n] are
// emitted during the n-th PollEvents call.
type Window struct {
	Frames int
	W, H   int
	Script map[int][]core.Event

	Title     string
	Polls     int
	Swaps     int
	Destroyed bool

	closing bool
	cb      func(core.Event)
}

var _ core.Window = (*Window)(nil)

func (w *Window) PollEvents() {
	for _, ev := range w.Script[w.Polls] {
		if w.cb != nil {
			w.cb(ev)
		}
	}
	w.Polls++
}

func (w *Window) SwapBuffers()                         { w.Swaps++ }
func (w *Window) ShouldClose() bool                    { return w.closing || w.Swaps >= w.Frames }
func (w *Window) RequestClose()                        { w.closing = true }
func (w *Window) FramebufferSize() (int, int)          { return w.W, w.H }
func (w *Window) SetTitle(t string)                    { w.Title = t }
func (w *Window) SetEventCallback(cb func(core.Event)) { w.cb = cb }
func (w *Window) Destroy()                             { w.Destroyed = true }
