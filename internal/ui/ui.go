// Package ui renders user-facing output: plain text, tables, and the
// classified status notifications every user-triggered operation emits.
package ui

import (
	"fmt"
	"io"
)

// UI writes user-facing output to a single writer, optionally colored.
type UI struct {
	writer   io.Writer
	useColor bool
}

// NewUI creates a new UI instance.
func NewUI(w io.Writer, useColor bool) *UI {
	return &UI{writer: w, useColor: useColor}
}

func (u *UI) colorize(message string, color Color) string {
	if !u.useColor || color == ColorDefault {
		return message
	}
	return fmt.Sprintf("%s%s%s", color, message, ColorDefault)
}

// Print writes message as-is.
func (u *UI) Print(message string) {
	fmt.Fprint(u.writer, message)
}

// Printf writes a formatted message.
func (u *UI) Printf(format string, args ...interface{}) {
	fmt.Fprintf(u.writer, format, args...)
}

// Println writes message followed by a newline.
func (u *UI) Println(message string) {
	fmt.Fprintln(u.writer, message)
}

// PrintColored writes message in the given color.
func (u *UI) PrintColored(message string, color Color) {
	fmt.Fprint(u.writer, u.colorize(message, color))
}

// PrintlnColored writes message in the given color, with a newline.
func (u *UI) PrintlnColored(message string, color Color) {
	fmt.Fprintln(u.writer, u.colorize(message, color))
}

// Success emits a success notification.
func (u *UI) Success(message string) {
	u.PrintlnColored(message, ColorLightGreen)
}

// Error emits an error notification.
func (u *UI) Error(message string) {
	u.Println(u.colorize("!", ColorRed) + " " + u.colorize(message, ColorLightOrange))
}

// Warning emits a warning notification.
func (u *UI) Warning(message string) {
	u.PrintlnColored(message, ColorYellow)
}

// Info emits an informational notification.
func (u *UI) Info(message string) {
	u.PrintlnColored(message, ColorLightBlue)
}
