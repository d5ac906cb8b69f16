package lexidiff

// Version is the released module version, surfaced by the CLI.
const Version = "0.1.0"
