// Package notify sends desktop notifications through notify-send.
package notify

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"time"
)

// Urgency levels for notifications
type Urgency int

const (
	UrgencyLow Urgency = iota
	UrgencyNormal
	UrgencyCritical
)

// Notification represents a desktop notification
type Notification struct {
	Title   string
	Body    string
	Urgency Urgency
	Timeout time.Duration
	Icon    string // Optional icon name
}

// Runner executes notify-send with the given arguments.
type Runner func(ctx context.Context, args []string) error

func execRunner(ctx context.Context, args []string) error {
	return exec.CommandContext(ctx, "notify-send", args...).Run()
}

// Notifier handles sending desktop notifications
type Notifier struct {
	enabled  bool
	run      Runner
	custom   bool
	lookPath func(file string) (string, error)
}

// NewNotifier creates a new notifier
func NewNotifier(enabled bool) *Notifier {
	return &Notifier{
		enabled:  enabled,
		run:      execRunner,
		lookPath: exec.LookPath,
	}
}

// WithRunner replaces the command runner, for tests.
func (n *Notifier) WithRunner(run Runner) *Notifier {
	n.run = run
	n.custom = true
	return n
}

// IsEnabled returns whether notifications are enabled
func (n *Notifier) IsEnabled() bool {
	return n.enabled
}

// Available reports whether reminders can be delivered: notify-send is on
// PATH, or a custom runner is installed.
func (n *Notifier) Available() bool {
	if n.custom {
		return true
	}
	_, err := n.lookPath("notify-send")
	return err == nil
}

// Args builds the notify-send argument list for a notification.
func Args(notification Notification) []string {
	var args []string

	switch notification.Urgency {
	case UrgencyLow:
		args = append(args, "-u", "low")
	case UrgencyCritical:
		args = append(args, "-u", "critical")
	default:
		args = append(args, "-u", "normal")
	}

	// Timeout in milliseconds
	if notification.Timeout > 0 {
		args = append(args, "-t", strconv.Itoa(int(notification.Timeout.Milliseconds())))
	}
	if notification.Icon != "" {
		args = append(args, "-i", notification.Icon)
	}
	args = append(args, "-a", "crabd")

	args = append(args, notification.Title)
	if notification.Body != "" {
		args = append(args, notification.Body)
	}
	return args
}

// Send sends a desktop notification. It is a no-op when disabled.
func (n *Notifier) Send(ctx context.Context, notification Notification) error {
	if !n.enabled {
		return nil
	}
	if err := n.run(ctx, Args(notification)); err != nil {
		return fmt.Errorf("notify-send: %w", err)
	}
	return nil
}

// SendDueReminder sends a reminder for a task due in dueIn. A non-positive
// dueIn means the task is overdue.
func (n *Notifier) SendDueReminder(ctx context.Context, taskTitle string, dueIn time.Duration) error {
	var body string
	switch {
	case dueIn <= 0:
		body = "Task is now overdue!"
	case dueIn < time.Hour:
		body = "Task due in less than an hour"
	default:
		body = fmt.Sprintf("Task due in %s", dueIn.Round(time.Hour))
	}

	urgency := UrgencyNormal
	if dueIn <= 0 {
		urgency = UrgencyCritical
	}

	return n.Send(ctx, Notification{
		Title:   taskTitle,
		Body:    body,
		Urgency: urgency,
		Timeout: 15 * time.Second,
		Icon:    "emblem-important-symbolic",
	})
}
