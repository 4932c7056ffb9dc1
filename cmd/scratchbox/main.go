// Command scratchbox runs a child command inside a scratch directory which is
// removed when the command exits.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	mbp "go.scratchdir.dev/core/mainboilerplate"
	"go.scratchdir.dev/core/metrics"
	"go.scratchdir.dev/core/scratchdir"
)

const iniFilename = "scratchbox.ini"

// Config is the top-level configuration object of scratchbox.
var Config = new(struct {
	Scratch struct {
		Name     string `long:"name" env:"NAME" description:"Explicit scratch directory name. Defaults to a generated UUID"`
		Petnames bool   `long:"petnames" env:"PETNAMES" description:"Name the scratch directory with a generated pet name instead of a UUID"`
		Keep     bool   `long:"keep" env:"KEEP" description:"Keep the scratch directory after the command exits, and print its path"`
	} `group:"Scratch" namespace:"scratch" env-namespace:"SCRATCH"`

	Log mbp.LogConfig `group:"Logging" namespace:"log" env-namespace:"LOG"`
})

type cmdRun struct{}

func (cmdRun) Execute(args []string) error {
	mbp.InitLog(Config.Log)
	prometheus.MustRegister(metrics.ScratchdirCollectors()...)

	if len(args) == 0 {
		return fmt.Errorf("a command to run is required")
	}

	var name = Config.Scratch.Name
	if name == "" && Config.Scratch.Petnames {
		name = petname.Generate(2, "-")
	}

	var dir, err = scratchdir.New(name, nil)
	mbp.Must(err, "creating scratch directory")
	log.WithField("path", dir.Path()).Debug("created scratch directory")

	var child = exec.Command(args[0], args[1:]...)
	child.Dir = dir.Path()
	child.Env = append(os.Environ(), "SCRATCHBOX_DIR="+dir.Path())
	child.Stdin, child.Stdout, child.Stderr = os.Stdin, os.Stdout, os.Stderr

	mbp.Must(child.Start(), "starting command", "command", args[0])

	// Forward raised signals to the child, which exits on its own terms.
	var signalCh = make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		for sig := range signalCh {
			if err := child.Process.Signal(sig); err != nil {
				log.WithFields(log.Fields{"sig": sig, "err": err}).
					Warn("failed to signal command")
			}
		}
	}()

	var waitErr = child.Wait()
	signal.Stop(signalCh)
	close(signalCh)

	if Config.Scratch.Keep {
		fmt.Println(dir.Path())
	} else if err = dir.Remove(); err != nil {
		log.WithFields(log.Fields{"path": dir.Path(), "err": err}).
			Error("failed to remove scratch directory")
	}

	if exitErr, ok := waitErr.(*exec.ExitError); ok {
		os.Exit(exitErr.ExitCode())
	}
	return waitErr
}

func main() {
	var parser = flags.NewParser(Config, flags.Default)

	_, _ = parser.AddCommand("run", "Run a command in a scratch directory", `
Create a scratch directory beneath the system temp root, run CMD with its
working directory set to the scratch directory and with SCRATCHBOX_DIR
exported into its environment, and remove the directory and everything
within it when CMD exits.
`, &cmdRun{})

	mbp.AddPrintConfigCmd(parser, iniFilename)
	mbp.MustParseConfig(parser, iniFilename)
}
