package wasmbridge

const (
	// DefaultModuleName is the import module guests use for the bridge.
	DefaultModuleName = "env"
	// DefaultFuncName matches the C symbol exported by package bridge.
	DefaultFuncName = "task_callback_bridge"
)

// Config names the host function guests import.
type Config struct {
	ModuleName string
	FuncName   string
}

// DefaultConfig returns the env.task_callback_bridge configuration.
func DefaultConfig() Config {
	return Config{
		ModuleName: DefaultModuleName,
		FuncName:   DefaultFuncName,
	}
}

// Option modifies a Config.
type Option func(*Config)

// WithModuleName sets the host module name.
func WithModuleName(name string) Option {
	return func(c *Config) {
		c.ModuleName = name
	}
}

// WithFuncName sets the exported function name.
func WithFuncName(name string) Option {
	return func(c *Config) {
		c.FuncName = name
	}
}
