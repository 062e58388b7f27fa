// Shared helpers for harbor CLI commands.
package main

import (
	"github.com/mesh-intelligence/harbor/internal/manifest"
	"github.com/mesh-intelligence/harbor/internal/notify"
	"github.com/spf13/cobra"
)

// exitError carries an exit code out of a command. A nil err exits quietly.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return "exit status"
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error { return &exitError{code: exitUserError, err: err} }

func sysError(err error) error { return &exitError{code: exitSysError, err: err} }

// execute runs m, printing each step, the final fleet and a summary. It
// returns a user error when any step did not end as the manifest declared.
func execute(cmd *cobra.Command, m *manifest.Manifest) error {
	runner, err := manifest.NewRunner(m,
		manifest.WithNotifier(notify.NewLogger(log)),
		manifest.WithTemperatures(cfg.TemperatureTable()),
		manifest.WithLogger(log.Named("runner")),
	)
	if err != nil {
		return userError(err)
	}

	out := newPrinter(cmd)
	if m.Name != "" {
		out.Heading(m.Name)
	}
	var results []manifest.Result
	for {
		res, ok := runner.Next()
		if !ok {
			break
		}
		out.Step(res)
		results = append(results, res)
	}

	out.Rule()
	out.Heading("Fleet")
	out.Fleet(runner.Fleet())
	ashore := 0
	for _, c := range runner.Containers() {
		if c.Carrier() == nil {
			if ashore == 0 {
				out.Heading("Ashore")
			}
			ashore++
			out.Container(c)
		}
	}
	out.Rule()

	sum := manifest.Tally(results)
	out.Summary(sum)
	if sum.Unexpected > 0 {
		return &exitError{code: exitUserError}
	}
	return nil
}
