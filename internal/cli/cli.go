// Package cli implements the crabd command tree. Each command opens the
// project, runs an interactive flow against the model and saves once.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dori/crabd/internal/app"
	"github.com/dori/crabd/internal/config"
	"github.com/dori/crabd/internal/logging"
	"github.com/dori/crabd/internal/prompt"
	"github.com/dori/crabd/internal/render"
	"github.com/dori/crabd/internal/ui/theme"
	"github.com/dori/crabd/internal/vcs"
)

// Version is the crabd release, set at build time.
var Version = "0.1.0"

// Git is the repository information crabd reads.
type Git interface {
	LocalEmail(ctx context.Context) (string, bool, error)
	LocalName(ctx context.Context) (string, bool, error)
	Authors(ctx context.Context) ([]vcs.Author, error)
}

// CLI runs crabd commands. The zero value is not usable; see New.
type CLI struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// WorkDir defaults to the process working directory.
	WorkDir string
	// Prompter defaults to the terminal prompts drawn on Stderr.
	Prompter prompt.Prompter
	// Git opens repository information for a project root.
	Git func(dir string) Git
	// Now and Location default to time.Now and time.Local.
	Now      func() time.Time
	Location *time.Location
	// AppOptions are passed to app.New.
	AppOptions []app.Option
}

// New returns a CLI on the given streams.
func New(stdin io.Reader, stdout, stderr io.Writer) *CLI {
	return &CLI{
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
		Git:    func(dir string) Git { return vcs.New(dir) },
	}
}

// Run runs one crabd command line (without the program name).
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	return New(stdin, stdout, stderr).Run(ctx, args)
}

// session is what a command runs with.
type session struct {
	*app.App
	out    *render.Renderer
	prompt prompt.Prompter
	git    Git
	now    func() time.Time
	stderr io.Writer
}

// Run parses the global flags, resolves the command and runs it.
func (c *CLI) Run(ctx context.Context, args []string) error {
	var flags config.Flags
	fs := flag.NewFlagSet("crabd", flag.ContinueOnError)
	fs.SetOutput(c.Stderr)
	flags.Register(fs)
	fs.Usage = func() { c.usage(c.Stderr, fs) }
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	args = fs.Args()
	if len(args) == 0 {
		c.usage(c.Stdout, fs)
		return nil
	}

	switch args[0] {
	case "help", "-h", "--help":
		c.usage(c.Stdout, fs)
		return nil
	case "version":
		_, err := fmt.Fprintf(c.Stdout, "crabd v%s\n", Version)
		return err
	}

	cmd, rest, err := resolve(commands(), args)
	if err != nil {
		return err
	}
	if cmd.subs != nil {
		// a group without a subcommand prints its help
		c.groupUsage(c.Stdout, cmd)
		return fmt.Errorf("%s: missing subcommand", cmd.name)
	}

	s, err := c.open(ctx, flags)
	if err != nil {
		return err
	}
	defer func() {
		if err := s.Close(); err != nil {
			s.Logger.Error("closing project", "err", err)
		}
	}()

	s.Logger.Debug("running command", "command", strings.Join(args[:len(args)-len(rest)], " "))
	err = cmd.run(ctx, s, rest)
	if errors.Is(err, errNothingToDo) || errors.Is(err, flag.ErrHelp) {
		return nil
	}
	return err
}

func (c *CLI) open(ctx context.Context, flags config.Flags) (*session, error) {
	workDir := c.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		workDir = wd
	}

	cfg, err := config.Load(workDir, flags)
	if err != nil {
		return nil, err
	}

	logger := logging.New(c.Stderr, logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Prefix: "crabd",
	})
	for _, f := range cfg.Files {
		logger.Debug("config file applied", "path", f)
	}

	now := c.Now
	if now == nil {
		now = time.Now
	}
	opts := c.AppOptions
	if c.Now != nil {
		opts = append([]app.Option{app.WithClock(func() time.Time { return now().UTC() })}, opts...)
	}

	a, err := app.New(ctx, cfg, logger, opts...)
	if err != nil {
		return nil, err
	}

	th, ok := theme.ByName(cfg.UI.Theme)
	if !ok {
		th, _ = theme.ByName(theme.Default)
	}
	out := render.New(c.Stdout, render.Options{
		Theme:    th,
		Width:    cfg.UI.Width,
		Color:    cfg.UI.Color,
		Now:      now,
		Location: c.Location,
	})

	p := c.Prompter
	if p == nil {
		styles := theme.NewStyles(th, theme.NewRenderer(c.Stderr, cfg.UI.Color))
		p = prompt.NewTerminal(c.Stdin, c.Stderr, styles, cfg.UI.Width)
	}

	git := c.Git
	if git == nil {
		git = func(dir string) Git { return vcs.New(dir) }
	}

	return &session{
		App:    a,
		out:    out,
		prompt: p,
		git:    git(a.Root),
		now:    now,
		stderr: c.Stderr,
	}, nil
}

// localNow is the session clock in the display location.
func (s *session) localNow() time.Time {
	return s.now().In(s.out.Location())
}
