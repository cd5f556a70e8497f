package main

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// tracingKeys are the trace keys of the packages pdict drives.
var tracingKeys = []string{"persistent.dict", "pdict.session"}

// initConfig initializes configuration from environment variables and directs
// tracing to the Go standard logger
func initConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))

	viper.SetEnvPrefix("pdict")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// setupConfig binds the command's flags and applies the trace level.
func setupConfig(cmd *cobra.Command, _ []string) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	level, err := traceLevel(viper.GetString("trace"))
	if err != nil {
		return err
	}
	for _, key := range tracingKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
	return nil
}

func traceLevel(name string) (tracing.TraceLevel, error) {
	switch strings.ToLower(name) {
	case "error", "":
		return tracing.LevelError, nil
	case "info":
		return tracing.LevelInfo, nil
	case "debug":
		return tracing.LevelDebug, nil
	}
	return tracing.LevelError, fmt.Errorf("invalid trace level %q", name)
}
