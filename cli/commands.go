package cli

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines global flags available to all commands.
type Globals struct {
	Telemetry bool `help:"Show timing telemetry for operations."`
}

type Commands struct {
	Globals

	Fmt  FmtCmd  `cmd:"" help:"Format a parsed module tree back to source text."`
	Tree TreeCmd `cmd:"" help:"Dump the decoded module tree for debugging."`
	Tags TagsCmd `cmd:"" help:"Show the export order derived from @doc tags."`
}
