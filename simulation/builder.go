package simulation

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/xid"
	"github.com/sirupsen/logrus"

	"github.com/jwallnoefer/requsim/datarecording"
	"github.com/jwallnoefer/requsim/monitoring"
	"github.com/jwallnoefer/requsim/sim"
)

// Environment variables read by the builder. A .env file in the working
// directory is loaded first if present.
const (
	EnvDBPath      = "REQUSIM_DB_PATH"
	EnvMonitorPort = "REQUSIM_MONITOR_PORT"
)

// Builder can be used to build a simulation.
type Builder struct {
	monitorOn      bool
	monitorPort    int
	outputFileName string
	randSeed       *int64
	traceEvents    bool
	logEvents      bool
}

// MakeBuilder creates a new builder with monitoring on and event tracing
// off.
func MakeBuilder() Builder {
	return Builder{
		monitorOn: true,
	}
}

// WithoutMonitoring sets the simulation to not use monitoring.
func (b Builder) WithoutMonitoring() Builder {
	b.monitorOn = false
	return b
}

// WithMonitorPort sets the port number for the monitoring server.
func (b Builder) WithMonitorPort(port int) Builder {
	b.monitorPort = port
	return b
}

// WithOutputFileName sets the custom output file name for the data
// recorder.
func (b Builder) WithOutputFileName(filename string) Builder {
	b.outputFileName = filename
	return b
}

// WithRandSeed seeds the world's random number generator so runs are
// reproducible.
func (b Builder) WithRandSeed(seed int64) Builder {
	s := seed
	b.randSeed = &s
	return b
}

// WithEventTracing records every event resolution into the result
// database.
func (b Builder) WithEventTracing() Builder {
	b.traceEvents = true
	return b
}

// WithEventLogging writes one log line per resolved event.
func (b Builder) WithEventLogging() Builder {
	b.logEvents = true
	return b
}

func (b Builder) parametersMustBeValid() {
	if !b.monitorOn && b.monitorPort != 0 {
		panic("monitor port cannot be set when monitoring is disabled")
	}
}

func (b Builder) applyEnvironment() Builder {
	_ = godotenv.Load()

	if b.outputFileName == "" {
		b.outputFileName = os.Getenv(EnvDBPath)
	}
	if b.monitorOn && b.monitorPort == 0 {
		if port, err := strconv.Atoi(os.Getenv(EnvMonitorPort)); err == nil {
			b.monitorPort = port
		}
	}

	return b
}

// Build builds the simulation.
func (b Builder) Build() *Simulation {
	b.parametersMustBeValid()
	b = b.applyEnvironment()

	s := &Simulation{}
	s.id = xid.New().String()

	outputPath := b.outputFileName
	if outputPath == "" {
		outputPath = "requsim_" + s.id
	}
	s.dataRecorder = datarecording.New(outputPath)

	s.world = sim.NewWorld()
	if b.randSeed != nil {
		s.world.SetRandSeed(*b.randSeed)
	}

	if b.traceEvents {
		s.eventTracer = datarecording.NewEventTracer(
			s.dataRecorder, "event_trace")
		s.world.EventQueue().AcceptHook(s.eventTracer)
	}

	if b.logEvents {
		s.eventLogger = sim.NewEventLogger(logrus.StandardLogger())
		s.world.EventQueue().AcceptHook(s.eventLogger)
	}

	if b.monitorOn {
		s.monitor = monitoring.NewMonitor()
		if b.monitorPort > 0 {
			s.monitor.WithPortNumber(b.monitorPort)
		}
		s.monitor.RegisterWorld(s.world)
		s.monitor.StartServer()
	}

	return s
}
