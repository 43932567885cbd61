package cli

import "github.com/footprint-tools/clik/args"

var (
	KeyArg = args.Params(
		args.Param("key", args.String, "Entry or configuration key"),
	)

	KeyValueArgs = args.Params(
		args.Param("key", args.String, "Entry or configuration key"),
		args.Param("value", args.String, "Value to assign"),
	)

	AmountArg = args.Params(
		args.Param("n", args.Int, "Amount"),
	)

	DurationArg = args.Params(
		args.Param("duration", args.Duration, "How long to wait, e.g. 500ms or 2s"),
	)
)
