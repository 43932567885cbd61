package dispatchers_test

import (
	"context"
	"fmt"

	"github.com/footprint-tools/clik/args"
	"github.com/footprint-tools/clik/dispatchers"
)

type notebook struct {
	notes map[string]string
}

func Example() {
	cli := dispatchers.New(notebook{notes: map[string]string{}})

	note := dispatchers.NewCommand("note", "Manage notes", func(n *notebook, rest []string) error {
		fmt.Println("notes:", len(n.notes))
		return nil
	})
	note.AddSubcommand(dispatchers.NewBoundCommand("add", "Add a note",
		args.Params(
			args.Param("title", args.String),
			args.Param("body", args.String),
		),
		func(n *notebook, v args.Values) error {
			n.notes[v.String("title")] = v.String("body")
			return nil
		}))
	cli.AddCommand(note)

	_ = cli.Handle(`note add todo "buy milk"`)
	_ = cli.Handle("note")
	_ = cli.Handle("unknown is ignored")

	err := cli.Handle("note add only-title")
	fmt.Println(err)

	// Output:
	// notes: 1
	// argument 'body' at position #1 of type 'string' not found
}

func ExampleCLI_HandleAsync() {
	cli := dispatchers.New(0)
	cli.AddCommand(dispatchers.NewAsyncCommand("tick", "Count asynchronously", func(n *int, rest []string) dispatchers.Task {
		return func(ctx context.Context) error {
			*n += len(rest) + 1
			return nil
		}
	}))

	fmt.Println(cli.Handle("tick"))

	task := cli.HandleAsync("tick a b")
	fmt.Println(*cli.State())
	_ = task(context.Background())
	fmt.Println(*cli.State())

	// Output:
	// tick: tried to use async callback with sync handler
	// 0
	// 3
}
