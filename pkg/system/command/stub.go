package command

import (
	"context"
	"strings"
	"sync"
)

var _ Runner = &StubRunner{}

// StubRunner answers commands from a script keyed by the joined
// argument list and records every invocation. Unscripted commands
// succeed with empty output.
type StubRunner struct {
	mu      sync.Mutex
	Results map[string]StubResult
	calls   [][]string
}

type StubResult struct {
	Result
	Err error
}

func NewStubRunner() *StubRunner {
	return &StubRunner{Results: map[string]StubResult{}}
}

// On scripts the answer for the command whose arguments are args.
func (s *StubRunner) On(args []string, res StubResult) *StubRunner {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Results[strings.Join(args, " ")] = res
	return s
}

func (s *StubRunner) Run(ctx context.Context, name string, args ...string) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, append([]string{name}, args...))
	res := s.Results[strings.Join(args, " ")]
	return res.Result, res.Err
}

// Calls returns a copy of every invocation so far, command name first.
func (s *StubRunner) Calls() [][]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([][]string, len(s.calls))
	copy(out, s.calls)
	return out
}
