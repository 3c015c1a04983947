package helpers

import (
	"context"
	"path/filepath"
	"sync"

	"git.home.luguber.info/inful/errmatrix/internal/runner"
)

// Response is a canned process outcome.
type Response struct {
	Stdout   string
	Stderr   string
	ExitCode int
	// Err simulates a process that could not be started.
	Err error
	// Hook runs before the response is returned, e.g. to create build outputs.
	Hook func(cmd runner.Command)
}

// FakeRunner returns canned responses instead of spawning processes.
//
// Responses are looked up by the full command line first, then by
// "<base name> <first arg>", then by the executable's base name alone. An
// unmatched command gets Default.
type FakeRunner struct {
	mu        sync.Mutex
	responses map[string]Response
	calls     []runner.Command

	Default Response
}

// NewFakeRunner creates an empty fake.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{responses: make(map[string]Response)}
}

// On registers resp for key and returns the fake for chaining.
func (f *FakeRunner) On(key string, resp Response) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[key] = resp
	return f
}

func (f *FakeRunner) Run(_ context.Context, cmd runner.Command) (runner.Result, error) {
	f.mu.Lock()
	f.calls = append(f.calls, cmd)
	resp := f.lookup(cmd)
	f.mu.Unlock()

	if resp.Hook != nil {
		resp.Hook(cmd)
	}
	if resp.Err != nil {
		return runner.Result{}, resp.Err
	}
	return runner.Result{
		Stdout:   []byte(resp.Stdout),
		Stderr:   []byte(resp.Stderr),
		ExitCode: resp.ExitCode,
	}, nil
}

// Calls returns the commands seen so far, in order.
func (f *FakeRunner) Calls() []runner.Command {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]runner.Command, len(f.calls))
	copy(out, f.calls)
	return out
}

// CallLines renders Calls as "<base name> <args...>" strings.
func (f *FakeRunner) CallLines() []string {
	calls := f.Calls()
	out := make([]string, 0, len(calls))
	for _, c := range calls {
		out = append(out, runner.Command{Path: filepath.Base(c.Path), Args: c.Args}.String())
	}
	return out
}

func (f *FakeRunner) lookup(cmd runner.Command) Response {
	if r, ok := f.responses[cmd.String()]; ok {
		return r
	}
	base := filepath.Base(cmd.Path)
	if len(cmd.Args) > 0 {
		if r, ok := f.responses[base+" "+cmd.Args[0]]; ok {
			return r
		}
	}
	if r, ok := f.responses[base]; ok {
		return r
	}
	return f.Default
}
