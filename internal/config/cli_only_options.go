package config

// CliOnlyOptions are options that can only be given on the command line; they are never read from a config file.
type CliOnlyOptions struct {
	ConfigPath string
	Verbosity  int
}
