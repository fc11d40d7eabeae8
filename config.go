package signal

import (
	"os"
	"time"

	"github.com/spf13/viper"
)

// SystemRateConfig is one entry of the scheduler roster's Hz table (§2.1,
// §4.8), as loaded from configuration rather than hardcoded.
type SystemRateConfig struct {
	Name    string
	Hz      float64
	Enabled bool
}

// EngineConfig is the engine's full runtime configuration (§2.1).
// MaxEntities is deliberately absent: the entity arena size is a
// compile-time constant (§9 open question 3) and is never exposed
// through configuration.
type EngineConfig struct {
	SystemRates      []SystemRateConfig
	FrameBudget      time.Duration
	PerSystemBudget  time.Duration
	AutoLevelStrength float32
	DefaultEnvironment Environment
	Debug            bool
	LogPrefix        string
}

// DefaultEngineConfig returns the scheduler roster and budgets described
// in §4.8: Input/Control/Thrusters/Physics/TransformRefresh run at the
// 60 Hz simulation rate, Collision at 20 Hz, Camera at 60 Hz and LOD at
// 30 Hz, AI and
// Performance/Memory bookkeeping at a slower background rate.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		SystemRates: []SystemRateConfig{
			{Name: "Input", Hz: 60, Enabled: true},
			{Name: "Control", Hz: 60, Enabled: true},
			{Name: "Thrusters", Hz: 60, Enabled: true},
			{Name: "Physics", Hz: 60, Enabled: true},
			{Name: "Collision", Hz: 20, Enabled: true},
			{Name: "TransformRefresh", Hz: 60, Enabled: true},
			{Name: "Camera", Hz: 60, Enabled: true},
			{Name: "LOD", Hz: 30, Enabled: true},
			{Name: "AI", Hz: 5, Enabled: true},
			{Name: "Performance", Hz: 1, Enabled: true},
			{Name: "Memory", Hz: 2, Enabled: true},
		},
		FrameBudget:        20 * time.Millisecond,
		PerSystemBudget:    8 * time.Millisecond,
		AutoLevelStrength:  AutoLevelStrength,
		DefaultEnvironment: EnvironmentSpace,
		Debug:              false,
		LogPrefix:          "signal",
	}
}

// LoadConfig reads configuration from path (if non-empty) and from any
// SIGNAL_-prefixed environment variables, overlaying both onto
// DefaultEngineConfig's values (§2.1). A missing config file is not an
// error: defaults and environment overrides still apply.
func LoadConfig(path string) (EngineConfig, error) {
	cfg := DefaultEngineConfig()

	v := viper.New()
	v.SetEnvPrefix("SIGNAL")
	v.AutomaticEnv()
	v.SetDefault("frame_budget_ms", cfg.FrameBudget.Milliseconds())
	v.SetDefault("per_system_budget_ms", cfg.PerSystemBudget.Milliseconds())
	v.SetDefault("auto_level_strength", cfg.AutoLevelStrength)
	v.SetDefault("debug", cfg.Debug)
	v.SetDefault("log_prefix", cfg.LogPrefix)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound && !os.IsNotExist(err) {
				return cfg, err
			}
		}
	}

	cfg.FrameBudget = time.Duration(v.GetInt64("frame_budget_ms")) * time.Millisecond
	cfg.PerSystemBudget = time.Duration(v.GetInt64("per_system_budget_ms")) * time.Millisecond
	cfg.AutoLevelStrength = float32(v.GetFloat64("auto_level_strength"))
	cfg.Debug = v.GetBool("debug")
	cfg.LogPrefix = v.GetString("log_prefix")

	if v.IsSet("environment") && v.GetString("environment") == "atmosphere" {
		cfg.DefaultEnvironment = EnvironmentAtmosphere
	}

	return cfg, nil
}
