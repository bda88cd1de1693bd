// Package config loads service configuration from a YAML file, an optional
// .env file and environment variables using Viper.
//
//	type Settings struct {
//	    config.BaseConfig `yaml:",inline" mapstructure:",squash"`
//	    Webservice webservice.Config `yaml:"webservice" mapstructure:"webservice"`
//	}
//
//	var s Settings
//	err := config.LoadConfig("todo-sync", &s)
//
// Environment variables carrying the prefix (APP_ by default) override file
// values, with underscores mapping onto nested keys:
// APP_WEBSERVICE_TIMEOUT=5s sets webservice.timeout.
package config
