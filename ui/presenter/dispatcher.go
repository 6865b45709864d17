package presenter

import (
	"log/slog"
	"runtime/debug"
)

// Command identifies a user action raised by the view.
type Command int

const (
	CommandOpen Command = iota + 1
	CommandPreview
	CommandSave
	CommandExit
)

func (c Command) String() string {
	switch c {
	case CommandOpen:
		return "open"
	case CommandPreview:
		return "preview"
	case CommandSave:
		return "save"
	case CommandExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Dispatcher routes commands from widgets to their handlers.
// Handlers run synchronously on the caller's (Tk) thread.
type Dispatcher struct {
	handlers map[Command]func()
	logger   *slog.Logger
}

func NewDispatcher(logger *slog.Logger) *Dispatcher {
	return &Dispatcher{handlers: make(map[Command]func()), logger: logger}
}

// Handle registers fn for c, replacing any earlier handler.
func (d *Dispatcher) Handle(c Command, fn func()) {
	if d == nil || fn == nil {
		return
	}
	d.handlers[c] = fn
}

// Dispatch runs the handler for c and reports whether one was registered.
// A panicking handler is logged and does not take down the event loop.
func (d *Dispatcher) Dispatch(c Command) (handled bool) {
	if d == nil {
		return false
	}
	fn, ok := d.handlers[c]
	if !ok {
		if d.logger != nil {
			d.logger.Warn("unhandled command", "command", c.String())
		}
		return false
	}
	if d.logger != nil {
		d.logger.Debug("dispatch", "command", c.String())
	}
	handled = true
	defer func() {
		if r := recover(); r != nil && d.logger != nil {
			d.logger.Error("command panic", "command", c.String(), "error", r, "stack", string(debug.Stack()))
		}
	}()
	fn()
	return handled
}

// Func returns a callback suitable for widget Command options.
func (d *Dispatcher) Func(c Command) func() {
	return func() { d.Dispatch(c) }
}
