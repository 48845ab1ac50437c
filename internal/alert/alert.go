// Package alert plays the gauge's audible cues: a startup chime once per
// session and a critical alarm whenever the polling loop raises an alert.
package alert

import (
	"fmt"
	"io"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// Player emits the two audible signals. Implementations must not block the
// caller for the duration of the sound.
type Player interface {
	Critical()
	Startup()
}

// Bell rings the terminal bell.
type Bell struct {
	W io.Writer
}

// Critical rings the bell twice.
func (b Bell) Critical() {
	b.ring("\a\a")
}

// Startup rings the bell once.
func (b Bell) Startup() {
	b.ring("\a")
}

func (b Bell) ring(seq string) {
	if b.W == nil {
		return
	}
	_, _ = io.WriteString(b.W, seq)
}

// Command plays sound files through an external program such as paplay,
// aplay or afplay.
type Command struct {
	program      string
	args         []string
	criticalFile string
	startupFile  string
	logger       *zap.Logger
	start        func(cmd *exec.Cmd) error
}

// NewCommand resolves commandLine (program plus optional arguments) on PATH.
// The sound file is appended as the last argument when a cue plays.
func NewCommand(commandLine, criticalFile, startupFile string, logger *zap.Logger) (*Command, error) {
	fields := strings.Fields(commandLine)
	if len(fields) == 0 {
		return nil, fmt.Errorf("sound player command is empty")
	}
	path, err := exec.LookPath(fields[0])
	if err != nil {
		return nil, fmt.Errorf("find sound player: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Command{
		program:      path,
		args:         fields[1:],
		criticalFile: criticalFile,
		startupFile:  startupFile,
		logger:       logger,
		start:        startAndReap,
	}, nil
}

// Critical plays the critical sound file.
func (c *Command) Critical() {
	c.play(c.criticalFile)
}

// Startup plays the startup sound file.
func (c *Command) Startup() {
	c.play(c.startupFile)
}

func (c *Command) play(file string) {
	if strings.TrimSpace(file) == "" {
		return
	}
	args := append(append([]string{}, c.args...), file)
	cmd := exec.Command(c.program, args...)
	if err := c.start(cmd); err != nil {
		c.logger.Warn("play sound failed", zap.String("file", file), zap.Error(err))
	}
}

func startAndReap(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// Multi fans each signal out to several players.
type Multi []Player

// Critical plays the critical signal on every player.
func (m Multi) Critical() {
	for _, p := range m {
		p.Critical()
	}
}

// Startup plays the startup signal on every player.
func (m Multi) Startup() {
	for _, p := range m {
		p.Startup()
	}
}

// Silent discards every signal.
type Silent struct{}

func (Silent) Critical() {}
func (Silent) Startup() {}
