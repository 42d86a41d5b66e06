package command

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/juju/errors"
	"github.com/sirupsen/logrus"
)

// Result holds everything a finished subprocess left behind.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner spawns a command and waits for it to finish. There is no
// timeout beyond what ctx imposes.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (Result, error)
}

// ExitError is returned when a command ran but exited non-zero.
type ExitError struct {
	Name   string
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("%s exited with status %d", e.Name, e.Code)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

var _ Runner = &ExecRunner{}

type ExecRunner struct {
	Log logrus.FieldLogger
}

func NewExecRunner(log logrus.FieldLogger) *ExecRunner {
	return &ExecRunner{Log: log}
}

func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (Result, error) {
	if r.Log != nil {
		r.Log.Debugf("Running command: %s %s", name, redact(args))
	}

	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err == nil {
		return res, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, &ExitError{Name: name, Code: res.ExitCode, Stderr: res.Stderr}
	}
	res.ExitCode = -1
	return res, errors.Annotatef(err, "running %s", name)
}

// redact hides the value following a "password" argument so
// credentials never reach the debug log.
func redact(args []string) string {
	out := make([]string, len(args))
	copy(out, args)
	for i := 0; i < len(out)-1; i++ {
		if out[i] == "password" {
			out[i+1] = "********"
			i++
		}
	}
	return strings.Join(out, " ")
}
