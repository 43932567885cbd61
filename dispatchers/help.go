package dispatchers

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	infoHeader      = "Available commands: \n"
	infoIndent      = "|  "
	infoColumnWidth = 35
)

// Info writes c and all its descendants as an indented tree, one line per
// node, in name order.
func (c *Command[T]) Info(w io.Writer, depth int) error {
	label := fmt.Sprintf("%s|-- %s ", strings.Repeat(infoIndent, depth), c.Name)
	if _, err := fmt.Fprintf(w, "%s %s\n", padDots(label, infoColumnWidth), c.Help); err != nil {
		return err
	}

	for _, sub := range c.Subcommands() {
		if err := sub.Info(w, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// Usage writes the command's invocation line followed by one line per
// bound parameter.
func (c *Command[T]) Usage(w io.Writer) error {
	var out bytes.Buffer

	out.WriteString(c.Name)
	for _, p := range c.params {
		out.WriteString(" ")
		out.WriteString(p.Placeholder())
	}
	if len(c.subcommands) > 0 {
		out.WriteString(" [command]")
	}
	out.WriteString("\n")

	if c.Help != "" {
		out.WriteString("    ")
		out.WriteString(c.Help)
		out.WriteString("\n")
	}

	if len(c.params) > 0 {
		out.WriteString("\nARGUMENTS\n")
		for _, p := range c.params {
			fmt.Fprintf(&out, "   %-16s %s\n", p.Placeholder(), p.Help)
		}
	}

	if subs := c.Subcommands(); len(subs) > 0 {
		out.WriteString("\nCOMMANDS\n")
		for _, sub := range subs {
			fmt.Fprintf(&out, "   %-16s %s\n", sub.Name, sub.Help)
		}
	}

	_, err := w.Write(out.Bytes())
	return err
}

// WriteTo renders every top-level command under a fixed header.
func (c *CLI[T]) WriteTo(w io.Writer) (int64, error) {
	var out bytes.Buffer

	out.WriteString(infoHeader + "\n")
	for _, cmd := range c.Commands() {
		if err := cmd.Info(&out, 0); err != nil {
			return 0, err
		}
	}

	n, err := w.Write(out.Bytes())
	return int64(n), err
}

func (c *CLI[T]) String() string {
	var b strings.Builder
	_, _ = c.WriteTo(&b)
	return b.String()
}

// padDots right-pads s with '.' up to the given display width.
func padDots(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(".", width-w)
}
