// Copyright 2024-2026 Aiku AI

// Command discord2tg converts Discord-flavored markdown to Telegram
// MarkdownV2 on the command line. It reads the message text from its
// arguments or from stdin and prints text ready for a Bot API sendMessage
// call with parse_mode=MarkdownV2.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aiku/discord2tg/pkg/discordfmt"
)

var (
	configFile  string
	contextFile string
	debug       bool
)

var rootCmd = &cobra.Command{
	Use:   "discord2tg [text]",
	Short: "Convert Discord markdown to Telegram MarkdownV2",
	Long: `Convert Discord markdown to Telegram MarkdownV2.

The text is read from the arguments, or from stdin when no arguments are
given. Mentions (<@id>, <@&id>, <#id>) resolve against an optional YAML
context file with users/roles/channels id-to-name maps; without it they
fall back to synthetic names like User123456789.

Examples:
  discord2tg '**hello** world'
  echo '<@123> check #general' | discord2tg --context names.yaml
  discord2tg --config formatter.yaml --debug '*ready* :fire:'`,
	Args: cobra.ArbitraryArgs,
	RunE: runConvert,
}

func init() {
	rootCmd.Flags().StringVar(&configFile, "config", "", "formatter config YAML file")
	rootCmd.Flags().StringVar(&contextFile, "context", "", "mention resolution YAML file")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable conversion trace logging")
}

func runConvert(cmd *cobra.Command, args []string) error {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.InfoLevel).
		With().Timestamp().Logger()
	if debug {
		log = log.Level(zerolog.DebugLevel)
	}

	var cfg discordfmt.Config
	if configFile != "" {
		if err := loadYAML(configFile, &cfg); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}
	cfg.Debug = cfg.Debug || debug

	var rctx *discordfmt.ResolutionContext
	if contextFile != "" {
		rctx = &discordfmt.ResolutionContext{}
		if err := loadYAML(contextFile, rctx); err != nil {
			return fmt.Errorf("failed to load resolution context: %w", err)
		}
	}

	source, err := readSource(args)
	if err != nil {
		return err
	}

	formatter := discordfmt.New(cfg, log)
	fmt.Println(formatter.Convert(source, rctx))
	return nil
}

func readSource(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

func loadYAML(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, out)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
