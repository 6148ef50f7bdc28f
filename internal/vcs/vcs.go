// Package vcs reads identities from the surrounding git repository.
package vcs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"slices"
	"strings"
)

// ErrGitUnavailable is returned when the git binary cannot be found.
var ErrGitUnavailable = errors.New("git executable not found")

// Author is a commit author as recorded in git history.
type Author struct {
	Name  string
	Email string
}

// Git runs git commands in Dir.
type Git struct {
	Dir    string
	Binary string
}

// New returns a Git bound to dir using the git binary on PATH.
func New(dir string) *Git {
	return &Git{Dir: dir, Binary: "git"}
}

func (g *Git) run(ctx context.Context, args ...string) (string, error) {
	bin, err := exec.LookPath(g.Binary)
	if err != nil {
		return "", ErrGitUnavailable
	}
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = g.Dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return "", fmt.Errorf("git %s: %w", args[0], err)
		}
		return "", fmt.Errorf("git %s: %w: %s", args[0], err, msg)
	}
	return string(out), nil
}

// LocalEmail returns user.email from the repository config, falling back to
// the global config. The boolean is false when neither is set.
func (g *Git) LocalEmail(ctx context.Context) (string, bool, error) {
	for _, scope := range []string{"--local", "--global"} {
		out, err := g.run(ctx, "config", scope, "user.email")
		if errors.Is(err, ErrGitUnavailable) {
			return "", false, err
		}
		if err != nil {
			// git config exits non-zero when the key is unset
			continue
		}
		if email := strings.TrimSpace(out); email != "" {
			return email, true, nil
		}
	}
	return "", false, nil
}

// LocalName returns user.name the same way LocalEmail does.
func (g *Git) LocalName(ctx context.Context) (string, bool, error) {
	out, err := g.run(ctx, "config", "user.name")
	if errors.Is(err, ErrGitUnavailable) {
		return "", false, err
	}
	if err != nil {
		return "", false, nil
	}
	name := strings.TrimSpace(out)
	return name, name != "", nil
}

// Authors lists the distinct commit authors of the repository.
func (g *Git) Authors(ctx context.Context) ([]Author, error) {
	out, err := g.run(ctx, "log", "--format=%an%x09%aE")
	if err != nil {
		return nil, err
	}
	return ParseAuthors(out), nil
}

// ParseAuthors parses "name<TAB>email" lines. Authors are deduplicated by
// email, case-insensitively, keeping the first name seen, and sorted by
// name.
func ParseAuthors(out string) []Author {
	seen := make(map[string]bool)
	var authors []Author
	for line := range strings.Lines(out) {
		name, email, ok := strings.Cut(strings.TrimRight(line, "\r\n"), "\t")
		if !ok {
			continue
		}
		name, email = strings.TrimSpace(name), strings.TrimSpace(email)
		key := strings.ToLower(email)
		if email == "" || seen[key] {
			continue
		}
		seen[key] = true
		authors = append(authors, Author{Name: name, Email: email})
	}
	slices.SortStableFunc(authors, func(a, b Author) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
	return authors
}

// Without drops authors whose email is in emails, case-insensitively.
func Without(authors []Author, emails []string) []Author {
	skip := make(map[string]bool, len(emails))
	for _, e := range emails {
		skip[strings.ToLower(e)] = true
	}
	return slices.DeleteFunc(slices.Clone(authors), func(a Author) bool {
		return skip[strings.ToLower(a.Email)]
	})
}
