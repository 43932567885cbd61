package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/footprint-tools/clik/internal/ui/style"
)

// Loop prints the prompt, reads a line from in and executes it until in is
// exhausted, ctx is done or the executor reports Done. Command errors are
// printed to errOut and do not stop the loop.
func Loop(ctx context.Context, exec Executor, in io.Reader, out, errOut io.Writer) error {
	scanner := bufio.NewScanner(in)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		_, _ = fmt.Fprint(out, style.Prompt(exec.Prompt()))
		if !scanner.Scan() {
			_, _ = fmt.Fprintln(out)
			return scanner.Err()
		}

		if err := exec.Exec(ctx, scanner.Text()); err != nil {
			_, _ = fmt.Fprintln(errOut, style.Error(Describe(err)))
		}

		if exec.Done() {
			return nil
		}
	}
}
