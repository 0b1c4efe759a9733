package demand

import "demandcast.sgpreschools.org/internal/appconf"

type Config struct {
	DataDir string // Directory holding the snapshot manifest and files
	DBPath  string // SQLite path for the snapshot store, ":memory:" by default
	Env     appconf.Environment
	Verbose bool
}
