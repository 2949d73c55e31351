package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/foliohq/folio"
	"github.com/foliohq/folio/config"
	"github.com/foliohq/folio/extract"
)

var (
	processMode     string
	processMarkdown bool
	processOutput   string
)

var processCmd = &cobra.Command{
	Use:   "process <file.pdf>",
	Short: "Extract one document and print the result",
	Args:  cobra.ExactArgs(1),
	RunE:  runProcess,
}

func init() {
	processCmd.Flags().StringVarP(&processMode, "mode", "m", "", "extraction mode (none, full, graphics_only)")
	processCmd.Flags().BoolVar(&processMarkdown, "markdown", false, "print markdown instead of the result JSON")
	processCmd.Flags().StringVarP(&processOutput, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := setupLogger(cfg)

	if processMode == "" {
		processMode = cfg.Extraction.DefaultMode
	}
	mode, err := extract.ParseMode(processMode)
	if err != nil {
		return err
	}

	extractor := folio.Open(args[0]).
		Mode(mode).
		MaxFileSize(cfg.Limits.MaxFileSize).
		MaxPages(cfg.Limits.MaxPages).
		Logger(logger)

	var out []byte
	if processMarkdown {
		md, err := extractor.Markdown()
		if err != nil {
			return err
		}
		out = []byte(md)
	} else {
		res, err := extractor.Result()
		if err != nil {
			return err
		}
		out, err = json.MarshalIndent(res, "", "  ")
		if err != nil {
			return err
		}
	}

	if processOutput != "" {
		return os.WriteFile(processOutput, out, 0o644)
	}
	fmt.Println(string(out))
	return nil
}
