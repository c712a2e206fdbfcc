package display

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"

	"github.com/fatih/color"
)

// Printer writes colored status messages to a writer.
type Printer struct {
	w      io.Writer
	red    *color.Color
	yellow *color.Color
	blue   *color.Color
	green  *color.Color
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{
		w:      w,
		red:    color.New(color.FgRed),
		yellow: color.New(color.FgYellow),
		blue:   color.New(color.FgBlue),
		green:  color.New(color.FgGreen),
	}
}

// Error prints an error message in red.
func (p *Printer) Error(format string, a ...interface{}) {
	p.red.Fprintf(p.w, format+"\n", a...)
}

// Warning prints a warning message in yellow.
func (p *Printer) Warning(format string, a ...interface{}) {
	p.yellow.Fprintf(p.w, format+"\n", a...)
}

// Info prints an informational message in blue.
func (p *Printer) Info(format string, a ...interface{}) {
	p.blue.Fprintf(p.w, format+"\n", a...)
}

// Success prints a success message in green.
func (p *Printer) Success(format string, a ...interface{}) {
	p.green.Fprintf(p.w, format+"\n", a...)
}

// Output prints general output.
func (p *Printer) Output(output string) {
	fmt.Fprintln(p.w, output)
}

// ClearScreen clears the terminal screen.
func ClearScreen() {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.Command("cmd", "/c", "cls")
	} else {
		cmd = exec.Command("clear")
	}
	cmd.Stdout = os.Stdout
	cmd.Run()
}
