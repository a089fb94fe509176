package core

type Layer interface {
	OnAttach(e *Engine)
	OnDetach(e *Engine)
	OnUpdate(e *Engine, dt float64)
	OnRender(e *Engine, alpha float64)
	OnEvent(e *Engine, ev Event) bool // return true if handled; propagation stops
}

// LayerStack keeps regular layers below overlays. Updates and renders run
// bottom-up, events are dispatched top-down.
type LayerStack struct {
	list   []Layer
	insert int // first overlay index
}

// Push inserts l above the other layers but below all overlays.
func (ls *LayerStack) Push(l Layer) {
	ls.list = append(ls.list, nil)
	copy(ls.list[ls.insert+1:], ls.list[ls.insert:])
	ls.list[ls.insert] = l
	ls.insert++
}

// PushOverlay puts l on top of the stack.
func (ls *LayerStack) PushOverlay(l Layer) { ls.list = append(ls.list, l) }

// Pop removes the topmost layer (overlays first).
func (ls *LayerStack) Pop() (Layer, bool) {
	if len(ls.list) == 0 {
		return nil, false
	}
	i := len(ls.list) - 1
	l := ls.list[i]
	ls.list[i] = nil
	ls.list = ls.list[:i]
	if ls.insert > len(ls.list) {
		ls.insert = len(ls.list)
	}
	return l, true
}

func (ls *LayerStack) Len() int { return len(ls.list) }

func (ls *LayerStack) ForEach(f func(Layer)) {
	for _, l := range ls.list {
		f(l)
	}
}

func (ls *LayerStack) ForEachReverse(f func(Layer) bool) {
	for i := len(ls.list) - 1; i >= 0; i-- {
		if stop := f(ls.list[i]); stop {
			break
		}
	}
}
