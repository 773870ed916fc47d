package main

import "testing"

func compose(c *commandLine, s string) {
	c.begin()
	for _, r := range s {
		c.insert(r)
	}
}

func TestCommandQuit(t *testing.T) {
	var c commandLine
	compose(&c, "q")

	action, _ := c.execute()
	if action != actionQuit {
		t.Errorf("Expected actionQuit, got %v", action)
	}
	if c.state != cmdIdle {
		t.Errorf("Expected idle state after execute, got %v", c.state)
	}
}

func TestCommandGoto(t *testing.T) {
	var c commandLine
	compose(&c, "120")

	action, target := c.execute()
	if action != actionGoto {
		t.Errorf("Expected actionGoto, got %v", action)
	}
	if target != 120 {
		t.Errorf("Expected target 120, got %d", target)
	}
	if c.state != cmdIdle {
		t.Errorf("Expected idle state after execute, got %v", c.state)
	}
}

func TestCommandInvalid(t *testing.T) {
	var c commandLine

	for _, cmd := range []string{"quit", "", "-3", "0", "q "} {
		compose(&c, cmd)
		action, _ := c.execute()
		if action != actionNone {
			t.Errorf("%q: expected actionNone, got %v", cmd, action)
		}
		if c.state != cmdError {
			t.Errorf("%q: expected error state, got %v", cmd, c.state)
		}
		if c.text == "" {
			t.Errorf("%q: expected an error message", cmd)
		}
		c.clearError()
	}
}

func TestCommandErrorClearedByKeypress(t *testing.T) {
	var c commandLine
	compose(&c, "bogus")
	c.execute()

	if c.state != cmdError {
		t.Fatalf("Expected error state, got %v", c.state)
	}
	c.clearError()
	if c.state != cmdIdle || c.text != "" {
		t.Errorf("Expected idle state with empty text, got %v %q", c.state, c.text)
	}
}

func TestCommandCancel(t *testing.T) {
	var c commandLine
	compose(&c, "12")

	c.cancel()
	if c.state != cmdIdle || c.text != "" {
		t.Errorf("Expected idle state with empty text, got %v %q", c.state, c.text)
	}
}

func TestCommandBackspace(t *testing.T) {
	var c commandLine
	compose(&c, "ab")

	c.backspace()
	if c.text != ":a" {
		t.Errorf("Expected %q, got %q", ":a", c.text)
	}

	// Deleting through the leading ':' closes the box.
	c.backspace()
	c.backspace()
	if c.state != cmdIdle {
		t.Errorf("Expected idle state after deleting the colon, got %v", c.state)
	}
}

func TestCommandInsertIgnoredWhenIdle(t *testing.T) {
	var c commandLine
	c.insert('x')
	if c.state != cmdIdle || c.text != "" {
		t.Errorf("Insert while idle should do nothing, got %v %q", c.state, c.text)
	}
}
