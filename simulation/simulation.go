// Package simulation bundles the services a simulation run needs: the
// world with its event queue, result recording, event tracing, and the
// optional monitoring server.
package simulation

import (
	"github.com/jwallnoefer/requsim/datarecording"
	"github.com/jwallnoefer/requsim/monitoring"
	"github.com/jwallnoefer/requsim/sim"
)

// A Simulation provides the services required to define a simulation run.
type Simulation struct {
	id string

	world        *sim.World
	dataRecorder datarecording.DataRecorder
	monitor      *monitoring.Monitor
	eventTracer  *datarecording.EventTracer
	eventLogger  *sim.EventLogger
}

// ID returns the unique id of this run.
func (s *Simulation) ID() string {
	return s.id
}

// World returns the world of the simulation.
func (s *Simulation) World() *sim.World {
	return s.world
}

// EventQueue returns the event queue of the simulation's world.
func (s *Simulation) EventQueue() *sim.EventQueue {
	return s.world.EventQueue()
}

// DataRecorder returns the data recorder used in the simulation.
func (s *Simulation) DataRecorder() datarecording.DataRecorder {
	return s.dataRecorder
}

// Monitor returns the monitor used in the simulation, or nil if
// monitoring is disabled.
func (s *Simulation) Monitor() *monitoring.Monitor {
	return s.monitor
}

// Terminate flushes all recorded data and ends the simulation run.
func (s *Simulation) Terminate() {
	s.dataRecorder.Close()
}
