package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/helsenorge/structor-export-sub000/pkg/issue"
	"github.com/helsenorge/structor-export-sub000/pkg/logger"
	"github.com/helsenorge/structor-export-sub000/pkg/validator"
)

// OutputFormat specifies the output format.
type OutputFormat string

// Output format constants.
const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
)

// Config holds CLI configuration, merged from flags, STRUCTOR_* environment
// variables and an optional config file, in that order of precedence.
type Config struct {
	Output           OutputFormat
	Strict           bool
	Lang             string
	Languages        []string
	URLPrefix        string
	CheckExpressions bool
	LogLevel         string
	LogFormat        string
	Workers          int
}

const envPrefix = "STRUCTOR"

func loadConfig(cmd *cobra.Command) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("output", string(OutputText))
	v.SetDefault("log-level", "info")
	v.SetDefault("log-format", "console")
	v.SetDefault("url-prefix", validator.DefaultQuestionnaireURLPrefix)

	bind := func(fs *pflag.FlagSet) error {
		var bindErr error
		fs.VisitAll(func(f *pflag.Flag) {
			if f.Name == "config" || bindErr != nil {
				return
			}
			bindErr = v.BindPFlag(f.Name, f)
		})
		return bindErr
	}
	if err := bind(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}
	if err := bind(cmd.InheritedFlags()); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := &Config{
		Output:           OutputFormat(strings.ToLower(v.GetString("output"))),
		Strict:           v.GetBool("strict"),
		Lang:             v.GetString("lang"),
		Languages:        v.GetStringSlice("languages"),
		URLPrefix:        v.GetString("url-prefix"),
		CheckExpressions: v.GetBool("check-expressions"),
		LogLevel:         v.GetString("log-level"),
		LogFormat:        v.GetString("log-format"),
		Workers:          v.GetInt("workers"),
	}
	if cfg.Output != OutputJSON {
		cfg.Output = OutputText
	}
	return cfg, nil
}

func (c *Config) logger() *logger.Logger {
	level, ok := logger.ParseLevel(c.LogLevel)
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown log level %q, using info\n", c.LogLevel)
	}
	if strings.EqualFold(c.LogFormat, "json") {
		return logger.New(os.Stderr, level)
	}
	return logger.NewConsole(os.Stderr, level)
}

func (c *Config) translator() (issue.Translator, error) {
	if c.Lang == "" {
		return issue.DefaultTranslator, nil
	}
	tag, err := language.Parse(c.Lang)
	if err != nil {
		return nil, fmt.Errorf("invalid --lang %q: %w", c.Lang, err)
	}
	return issue.NewCatalogTranslator(tag), nil
}

func (c *Config) validatorOptions() ([]validator.Option, error) {
	tr, err := c.translator()
	if err != nil {
		return nil, err
	}
	opts := []validator.Option{
		validator.WithTranslator(tr),
		validator.WithLogger(c.logger()),
		validator.WithQuestionnaireURLPrefix(c.URLPrefix),
		validator.WithExpressionCheck(c.CheckExpressions),
	}
	if len(c.Languages) > 0 {
		opts = append(opts, validator.WithSupportedLanguages(c.Languages...))
	}
	return opts, nil
}
