// Package report renders fleets, containers and manifest results for the
// terminal.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/mesh-intelligence/harbor/internal/manifest"
	"github.com/mesh-intelligence/harbor/pkg/types"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Printer writes human-readable reports. Numbers are formatted for American
// English; colour can be switched off for pipes and tests.
type Printer struct {
	w  io.Writer
	au aurora.Aurora
	p  *message.Printer
}

// New returns a Printer writing to w.
func New(w io.Writer, color bool) *Printer {
	return &Printer{
		w:  w,
		au: aurora.NewAurora(color),
		p:  message.NewPrinter(language.AmericanEnglish),
	}
}

// Heading prints a bold section title.
func (r *Printer) Heading(title string) {
	fmt.Fprintln(r.w, r.au.Bold(title).String())
}

// Step prints one manifest result and any hazards it raised.
func (r *Printer) Step(res manifest.Result) {
	fmt.Fprintf(r.w, "%3d  %-16s %-44s %s\n",
		res.Index, res.Step.Op, r.describe(res.Step), r.status(res))
	for _, h := range res.Hazards {
		fmt.Fprintln(r.w, "     "+r.au.Magenta(r.hazard(h)).String())
	}
}

func (r *Printer) describe(st manifest.Step) string {
	switch st.Op {
	case manifest.OpLoad:
		return r.p.Sprintf("%s <- %v kg %s", st.Container, st.Mass, st.Contents)
	case manifest.OpAdd:
		return fmt.Sprintf("%s -> %s", st.Container, st.Ship)
	case manifest.OpRemove:
		return fmt.Sprintf("%s <- %s", st.Container, st.Ship)
	case manifest.OpTransfer:
		return fmt.Sprintf("%s %s -> %s", st.Container, st.Ship, st.To)
	case manifest.OpReplace:
		return fmt.Sprintf("%s => %s on %s", st.Container, st.With, st.Ship)
	case manifest.OpSetTemperature:
		if st.Temperature != nil {
			return r.p.Sprintf("%s at %v °C", st.Container, *st.Temperature)
		}
	}
	return st.Container
}

func (r *Printer) status(res manifest.Result) string {
	switch {
	case !res.Expected():
		msg := fmt.Sprintf("UNEXPECTED %s, want %s", res.Got, res.Step.Want())
		if res.Err != nil {
			msg += ": " + res.Err.Error()
		}
		return r.au.Red(msg).Bold().String()
	case res.Got == manifest.ExpectOK:
		return r.au.Green(res.Outcome.String()).String()
	case res.Err != nil:
		return r.au.Brown("refused: " + res.Err.Error()).String()
	}
	return r.au.Brown(res.Outcome.String()).String()
}

func (r *Printer) hazard(h types.Hazard) string {
	return r.p.Sprintf("! hazard %s (%s): %s, %v kg %s", h.Serial, h.Kind, h.Reason, h.Mass, h.Contents)
}

// Container prints a container line.
func (r *Printer) Container(c *types.Container) {
	carrier := "ashore"
	if s := c.Carrier(); s != nil {
		carrier = "aboard " + s.Name
	}
	fmt.Fprintf(r.w, "  %s  %s\n", c.String(), r.au.Cyan(carrier).String())
}

// Ship prints a ship with its load and the containers aboard.
func (r *Printer) Ship(s *types.Ship) {
	fmt.Fprintln(r.w, r.p.Sprintf("%s  %d/%d containers, %v/%v kg, max speed %v kn",
		r.au.Bold(s.Name).String(), s.Len(), s.MaxContainers, s.TotalWeight(), s.MaxWeight, s.MaxSpeed))
	for _, c := range s.Containers() {
		r.Container(c)
	}
}

// Fleet prints every ship in launch order and the fleet's total weight.
func (r *Printer) Fleet(f *types.Fleet) {
	for _, s := range f.Ships() {
		r.Ship(s)
	}
	fmt.Fprintln(r.w, r.p.Sprintf("fleet weight: %v kg", f.TotalWeight()))
}

// Temperatures prints the refrigerated cargo table sorted by name.
func (r *Printer) Temperatures(t types.TemperatureTable) {
	fmt.Fprintln(r.w, r.au.BgGreen(fmt.Sprintf("%-16s %s", "Cargo", "Minimum (°C)")).Bold().String())
	for _, name := range t.Names() {
		required, _ := t.Required(name)
		fmt.Fprintln(r.w, r.p.Sprintf("%-16s %v", name, required))
	}
}

// Summary prints step totals, in red when any step was unexpected.
func (r *Printer) Summary(s manifest.Summary) {
	line := r.p.Sprintf("%d steps: %d applied, %d refused, %d hazards, %d unexpected",
		s.Steps, s.Applied, s.Refused, s.Hazards, s.Unexpected)
	if s.Unexpected > 0 {
		fmt.Fprintln(r.w, r.au.Red(line).Bold().String())
		return
	}
	fmt.Fprintln(r.w, r.au.Green(line).Bold().String())
}

// Rule prints a separator the width of the step table.
func (r *Printer) Rule() {
	fmt.Fprintln(r.w, strings.Repeat("-", 80))
}
