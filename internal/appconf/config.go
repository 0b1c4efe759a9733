package appconf

// Config holds all the configuration settings for the application: the
// network port to listen on, the operating environment, the API keys the
// server accepts, and where the snapshot data lives. Values are read from
// command-line flags at startup, with environment-variable overrides.
type Config struct {
	Port     int
	Env      Environment
	ApiKeys  []string
	DataDir  string
	DBPath   string
	Strategy string
	Verbose  bool
}
