package main

import (
	"log"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ember-web/ember"
	"github.com/ember-web/ember/config"
	"github.com/ember-web/ember/router/basic"
)

// Configuration sources, in order of precedence: CLI flags, EMBER_*
// environment variables, an optional config file, built-in defaults.
func loadConfig() (config.Config, error) {
	pflag.String("addr", "", "address to bind, host:port")
	pflag.Int("workers", 0, "number of connection workers")
	pflag.String("directory", "", "base directory for the /files/ routes")
	pflag.String("config", "", "path to a config file")
	pflag.Parse()

	v := viper.New()
	v.SetDefault("net.addr", "")
	v.SetDefault("pool.workers", 0)
	v.SetDefault("fs.directory", "")

	if err := v.BindPFlag("net.addr", pflag.Lookup("addr")); err != nil {
		return config.Config{}, err
	}
	if err := v.BindPFlag("pool.workers", pflag.Lookup("workers")); err != nil {
		return config.Config{}, err
	}
	if err := v.BindPFlag("fs.directory", pflag.Lookup("directory")); err != nil {
		return config.Config{}, err
	}

	v.SetEnvPrefix("EMBER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path, _ := pflag.CommandLine.GetString("config"); len(path) > 0 {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return config.Config{}, err
		}
	}

	var cfg config.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return config.Config{}, err
	}

	return config.Fill(cfg), nil
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("ember: config: %s", err)
	}

	app := ember.New().Tune(cfg)

	if err := app.Serve(basic.New(cfg.FS.Directory)); err != nil {
		log.Fatal(err)
	}
}
