// Package monitoring provides a small HTTP API to inspect a running
// simulation: current time, the registry of live world objects, pending
// events, and per-event-type statistics.
package monitoring

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/jwallnoefer/requsim/sim"
)

// Monitor exposes the state of a World over HTTP.
type Monitor struct {
	world      *sim.World
	portNumber int
}

// NewMonitor creates a new Monitor.
func NewMonitor() *Monitor {
	return &Monitor{}
}

// WithPortNumber sets the port the monitor serves on. Without it, a free
// port is picked at startup.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	m.portNumber = portNumber
	return m
}

// RegisterWorld sets the world to be monitored.
func (m *Monitor) RegisterWorld(w *sim.World) {
	m.world = w
}

// StartServer starts the monitoring server in the background and returns
// the port it listens on.
func (m *Monitor) StartServer() int {
	r := mux.NewRouter()
	r.HandleFunc("/api/now", m.now)
	r.HandleFunc("/api/types", m.listObjectTypes)
	r.HandleFunc("/api/objects/{type}", m.listObjects)
	r.HandleFunc("/api/events", m.listPendingEvents)
	r.HandleFunc("/api/stats", m.eventStats)

	actualPort := ":0"
	if m.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	port := listener.Addr().(*net.TCPAddr).Port
	fmt.Fprintf(os.Stderr,
		"Monitoring simulation with http://localhost:%d\n", port)

	go func() {
		err := http.Serve(listener, r)
		dieOnErr(err)
	}()

	return port
}

func (m *Monitor) now(w http.ResponseWriter, _ *http.Request) {
	now := m.world.EventQueue().CurrentTime()
	fmt.Fprintf(w, "{\"now\":%.10f}", now)
}

func (m *Monitor) listObjectTypes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, m.world.ObjectTypes())
}

type objectInfo struct {
	Label       string  `json:"label"`
	Type        string  `json:"type"`
	LastUpdated float64 `json:"last_updated"`
	Blocked     bool    `json:"blocked"`
}

func (m *Monitor) listObjects(w http.ResponseWriter, r *http.Request) {
	typeName := mux.Vars(r)["type"]

	objects := m.world.ObjectsByType(typeName)
	infos := make([]objectInfo, 0, len(objects))
	for _, obj := range objects {
		infos = append(infos, objectInfo{
			Label:       obj.Label(),
			Type:        obj.Type(),
			LastUpdated: float64(obj.LastUpdated()),
			Blocked:     obj.IsBlocked(),
		})
	}

	writeJSON(w, infos)
}

type eventInfo struct {
	Time      float64 `json:"time"`
	Priority  int     `json:"priority"`
	EventType string  `json:"event_type"`
}

func (m *Monitor) listPendingEvents(w http.ResponseWriter, _ *http.Request) {
	pending := m.world.EventQueue().PendingEvents()
	infos := make([]eventInfo, 0, len(pending))
	for _, event := range pending {
		infos = append(infos, eventInfo{
			Time:      float64(event.Time()),
			Priority:  event.Priority(),
			EventType: event.EventType(),
		})
	}

	writeJSON(w, infos)
}

func (m *Monitor) eventStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, m.world.EventQueue().Stats())
}

func writeJSON(w http.ResponseWriter, v any) {
	bytes, err := json.Marshal(v)
	dieOnErr(err)

	w.Header().Set("Content-Type", "application/json")
	_, err = w.Write(bytes)
	dieOnErr(err)
}

func dieOnErr(err error) {
	if err != nil {
		panic(err)
	}
}
