// main.go
package main

import (
	"errors"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"raymaze/config"
	"raymaze/level"
	"raymaze/maze"
	"raymaze/session"
)

// Process exit codes. 1 is what logrus.Fatal and a Go runtime panic already
// use, which covers allocation failures.
const (
	exitOK       = 0
	exitAlloc    = 1
	exitInvalid  = 2
	exitEmpty    = 3
	exitInternal = 9
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := run(os.Args[1:]); err != nil {
		logrus.WithError(err).Error("raymaze stopped")
		os.Exit(ExitCode(err))
	}
}

func run(args []string) error {
	cfg, err := config.Load(args)
	if err != nil {
		return err
	}
	logrus.SetLevel(cfg.LogLevel())

	s, err := session.New(cfg)
	if err != nil {
		return err
	}

	g := NewGame(cfg, s)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	logrus.WithField("frames", s.Frames()).Info("bye")
	return nil
}

// ExitCode maps err onto the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, config.ErrInvalid),
		errors.Is(err, maze.ErrInvalidSize),
		errors.Is(err, level.ErrGridSize):
		return exitInvalid
	case errors.Is(err, maze.ErrEmptyStack):
		return exitEmpty
	default:
		return exitInternal
	}
}
