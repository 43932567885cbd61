// Package dispatchers routes raw input lines to a tree of named commands.
//
// A [CLI] owns an application state value and a set of top-level
// [Command] nodes. [CLI.Handle] splits a line into tokens with [Split],
// picks the top-level command named by the first token, and lets
// [Command.Dispatch] walk down the subcommand tree for as long as the next
// token names a child. The deepest match runs its callback with the
// remaining tokens.
//
// Callbacks are either synchronous ([SyncFunc]) or asynchronous
// ([AsyncFunc]). An asynchronous callback returns a [Task] that the caller
// drives; it can only be reached through [CLI.HandleAsync] or
// [Command.DispatchAsync]. Reaching one through the synchronous path
// yields [ErrAsyncCallback].
//
// [NewBoundCommand] and [Bind] convert residual tokens into typed values
// with the args package before the command body runs.
//
// Unknown top-level commands are silently ignored by Handle. Hosts that
// want to report them can call [CLI.Resolve] and [CLI.Suggest].
package dispatchers
