package presenter

import "testing"

func TestDispatcher_RoutesCommands(t *testing.T) {
	d := NewDispatcher(discardLogger)
	var got []Command
	for _, c := range []Command{CommandOpen, CommandPreview, CommandSave} {
		d.Handle(c, func() { got = append(got, c) })
	}
	d.Func(CommandPreview)()
	d.Dispatch(CommandOpen)
	d.Dispatch(CommandSave)
	if len(got) != 3 || got[0] != CommandPreview || got[1] != CommandOpen || got[2] != CommandSave {
		t.Fatalf("unexpected dispatch order %v", got)
	}
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	d := NewDispatcher(discardLogger)
	if d.Dispatch(CommandExit) {
		t.Fatal("unregistered command reported as handled")
	}
	if Command(99).String() != "unknown" {
		t.Fatalf("unexpected name %q", Command(99).String())
	}
}

func TestDispatcher_RecoversFromPanic(t *testing.T) {
	d := NewDispatcher(discardLogger)
	d.Handle(CommandSave, func() { panic("boom") })
	if !d.Dispatch(CommandSave) {
		t.Fatal("panicking handler should still count as handled")
	}
}

func TestDispatcher_NilSafe(t *testing.T) {
	var d *Dispatcher
	d.Handle(CommandOpen, func() {})
	if d.Dispatch(CommandOpen) {
		t.Fatal("nil dispatcher handled a command")
	}
}
