package ecs

import "github.com/milk9111/spritefx/ecs/component"

// World owns entities, component stores, the system schedule, the event
// queue and the update clock.
type World struct {
	entities  entityStore
	stores    map[component.ComponentID]store
	scheduler *Scheduler
	events    EventQueue

	tick uint64
	dt   float64
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{
		stores:    make(map[component.ComponentID]store),
		scheduler: NewScheduler(),
	}
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil || s == nil {
		return
	}
	w.scheduler.Add(s)
}

// Systems returns the update order.
func (w *World) Systems() []System {
	if w == nil {
		return nil
	}
	return w.scheduler.Systems()
}

// Update advances the clock by one tick and runs every system with dt
// seconds of elapsed time. Events pushed during the previous update are
// discarded first, so a host may Drain them between updates.
func (w *World) Update(dt float64) {
	if w == nil {
		return
	}
	w.events.flush()
	w.tick++
	w.dt = dt
	w.scheduler.Update(w)
}

// Tick returns the number of updates run so far.
func (w *World) Tick() uint64 {
	if w == nil {
		return 0
	}
	return w.tick
}

// DeltaTime returns the dt of the running or last update.
func (w *World) DeltaTime() float64 {
	if w == nil {
		return 0
	}
	return w.dt
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Emit pushes an event for e.
func (w *World) Emit(e Entity, kind, name string, data any) {
	if w == nil {
		return
	}
	w.events.Push(Event{Entity: e, Kind: kind, Name: name, Data: data})
}
