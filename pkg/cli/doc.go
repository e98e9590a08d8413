/*
Package cli provides command-line interface utilities for the plancheck
command.

The cli package includes output formatters, a screening progress reporter,
and a signal-handling helper used by the subcommands.

Output Formatting:

Check and lint results can be rendered as text or JSON:

	formatter := cli.NewFormatter(cli.FormatJSON)
	if err := formatter.FormatTo(os.Stdout, results); err != nil {
		return err
	}

Progress Reporting:

When the check command screens a directory of plans, it reports progress:

	progress := cli.NewProgressReporter(os.Stderr)
	progress.Start(int64(len(plans)))
	for i, plan := range plans {
		screen(plan)
		progress.Update(int64(i + 1))
	}
	progress.Finish()

Signal Handling:

The run command derives its lifetime from the signal context:

	ctx, stop := cli.SetupSignalHandler()
	defer stop()
	// ctx is cancelled on SIGINT/SIGTERM
*/
package cli
