package main

import (
	"flag"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// config holds the settings of a run. Values come from an optional YAML file
// and are overridden by flags given on the command line.
type config struct {
	DecodeCharacterReferences bool   `yaml:"decode_character_references"`
	IgnoreTruncatedTags       bool   `yaml:"ignore_truncated_tags"`
	Charset                   string `yaml:"charset"`
	Format                    string `yaml:"format"`
	LogLevel                  string `yaml:"log_level"`
}

func defaultConfig() config {
	return config{
		DecodeCharacterReferences: true,
		Format:                    "text",
		LogLevel:                  "info",
	}
}

func (c *config) load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "opening config file")
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		return errors.Wrapf(err, "parsing config file %s", path)
	}
	return nil
}

func (c *config) validate() error {
	switch c.Format {
	case "text", "json", "html":
	default:
		return errors.Errorf("unknown output format %q", c.Format)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log_level")
	}
	return nil
}

// parseConfig builds the configuration from the command line arguments and
// returns the arguments left after the flags.
func parseConfig(args []string) (*config, []string, error) {
	cfg := defaultConfig()
	fs := flag.NewFlagSet("htmltok", flag.ContinueOnError)
	path := fs.String("config", "", "path to a YAML configuration file")
	decode := fs.Bool("decode", cfg.DecodeCharacterReferences, "decode character references in text")
	ignore := fs.Bool("ignore-truncated", cfg.IgnoreTruncatedTags, "drop a tag cut off by the end of the input")
	cs := fs.String("charset", cfg.Charset, "input encoding; sniffed from the content when empty")
	format := fs.String("format", cfg.Format, "output format: text, json or html")
	level := fs.String("log-level", cfg.LogLevel, "logrus level")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	if *path != "" {
		if err := cfg.load(*path); err != nil {
			return nil, nil, err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "decode":
			cfg.DecodeCharacterReferences = *decode
		case "ignore-truncated":
			cfg.IgnoreTruncatedTags = *ignore
		case "charset":
			cfg.Charset = *cs
		case "format":
			cfg.Format = *format
		case "log-level":
			cfg.LogLevel = *level
		}
	})
	if err := cfg.validate(); err != nil {
		return nil, nil, err
	}
	return &cfg, fs.Args(), nil
}

func newLogger(cfg *config) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	// validate has already checked the level.
	level, _ := logrus.ParseLevel(cfg.LogLevel)
	log.SetLevel(level)
	return log
}
