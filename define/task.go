package define

import (
	"context"

	"github.com/Wayner84/minecraft-schematic-studio/config"
	"github.com/sirupsen/logrus"
)

// Task is one command of the studio CLI. New receives the task's raw yaml config block, Inject hands over
// the process wide collaborators, Run does the work.
type Task interface {
	New(config []byte) Task
	Inject(env *Env) Task
	Run(ctx context.Context, args []string) error
	Close()
}

// Env carries what every task shares.
type Env struct {
	Log *logrus.Logger
	// Progress prints a human facing status line.
	Progress func(format string, a ...interface{})
	Config   *config.StudioConfig
}
