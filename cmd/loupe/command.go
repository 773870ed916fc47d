package main

import (
	"fmt"
	"strconv"
	"strings"
)

// commandState distinguishes the modes of the command box on the status
// row.
type commandState int

const (
	cmdIdle commandState = iota
	cmdComposing
	cmdError
)

// commandAction is what the viewer should do after a command executes.
type commandAction int

const (
	actionNone commandAction = iota
	actionQuit
	actionGoto
)

// commandLine is the ":" command box: idle until ':' opens it, composing
// while the user types, in error after a rejected command until the next
// keypress.
type commandLine struct {
	state commandState
	text  string // the command while composing, the message while in error
}

// begin opens the command box with the leading ':'.
func (c *commandLine) begin() {
	c.state = cmdComposing
	c.text = ":"
}

// insert appends one typed character while composing.
func (c *commandLine) insert(r rune) {
	if c.state == cmdComposing {
		c.text += string(r)
	}
}

// backspace removes the last typed character. Deleting the leading ':'
// closes the box.
func (c *commandLine) backspace() {
	if c.state != cmdComposing {
		return
	}
	runes := []rune(c.text)
	c.text = string(runes[:len(runes)-1])
	if c.text == "" {
		c.state = cmdIdle
	}
}

// cancel closes the box without executing.
func (c *commandLine) cancel() {
	c.state = cmdIdle
	c.text = ""
}

// clearError dismisses an error message. Any keypress does this.
func (c *commandLine) clearError() {
	if c.state == cmdError {
		c.state = cmdIdle
		c.text = ""
	}
}

// execute runs the composed command and returns to idle, or moves to the
// error state if the command is not recognized. The second return value is
// the target line (1-based) for actionGoto.
func (c *commandLine) execute() (commandAction, int) {
	cmd := c.text
	c.state = cmdIdle
	c.text = ""

	if cmd == ":q" {
		return actionQuit, 0
	}
	if n, err := strconv.Atoi(strings.TrimPrefix(cmd, ":")); err == nil && n > 0 {
		return actionGoto, n
	}

	c.state = cmdError
	c.text = fmt.Sprintf("Invalid command: '%s'", cmd)
	return actionNone, 0
}
