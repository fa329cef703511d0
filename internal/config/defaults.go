package config

import "github.com/spf13/viper"

func initDefaults() {
	viper.SetDefault("log.level", "info")
	viper.SetDefault("perf.enabled", false)
	viper.SetDefault("seed.enabled", true)
	viper.SetDefault("prompt", "Action> ")
}
