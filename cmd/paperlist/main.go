// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paperlist CLI.
package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paperlist/internal/pubmed"
	"github.com/pdiddy/paperlist/internal/report"
	"github.com/pdiddy/paperlist/internal/secrets"
	"github.com/pdiddy/paperlist/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	defaultTimeout   = 60 * time.Second
	defaultUserAgent = "paperlist/0.1"
	defaultOutput    = "output.csv"
)

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns fallback if set, otherwise the loaded secret for key.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd runs the whole fetch pipeline: esearch, sequential esummary
// fetches, affiliation classification, CSV output.
var rootCmd = &cobra.Command{
	Use:   "paperlist <query>",
	Short: "Fetch PubMed papers and flag non-academic author affiliations",
	Long: `paperlist queries the PubMed E-utilities API for papers matching a search
term, fetches summary metadata for each result, flags authors whose
affiliation looks non-academic, and writes the rows to a CSV file.`,
	Args: cobra.ExactArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
	RunE: runFetch,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./paperlist.yaml or ~/.config/paperlist/config.yaml)")
	rootCmd.Flags().StringP("file", "f", defaultOutput, "output CSV path")
	rootCmd.Flags().BoolP("debug", "d", false, "enable diagnostic prints, including raw esummary responses")
	rootCmd.Flags().String("save-run", "", "also save the query and records to a YAML run file")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("paperlist")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "paperlist"))
		}
	}

	viper.SetEnvPrefix("PAPERLIST")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// pubmedConfig assembles the client config from defaults, the config file,
// and the loaded secrets.
func pubmedConfig() types.PubMedConfig {
	cfg := types.PubMedConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   defaultTimeout,
			UserAgent: defaultUserAgent,
		},
		MaxResults: 10,
	}
	if v := viper.GetDuration("pubmed.timeout"); v > 0 {
		cfg.Timeout = v
	}
	if v := viper.GetString("pubmed.user_agent"); v != "" {
		cfg.UserAgent = v
	}
	if v := viper.GetInt("pubmed.max_results"); v > 0 {
		cfg.MaxResults = v
	}
	cfg.APIKey = secretDefault(secrets.PubMedAPIKey, viper.GetString("pubmed.api_key"))
	return cfg
}

func runFetch(cmd *cobra.Command, args []string) error {
	query := args[0]
	outPath, _ := cmd.Flags().GetString("file")
	debug, _ := cmd.Flags().GetBool("debug")
	runPath, _ := cmd.Flags().GetString("save-run")

	var diag io.Writer = io.Discard
	if debug {
		diag = cmd.ErrOrStderr()
	}

	cfg := pubmedConfig()
	client := &pubmed.Client{
		HTTP:  &http.Client{Timeout: cfg.Timeout},
		Debug: diag,
	}

	fmt.Fprintf(diag, "fetching papers for query: %s\n", query)

	records, err := report.Run(cmd.Context(), client, query, cfg, diag)
	if err != nil {
		return err
	}

	reportCfg := types.ReportConfig{
		OutputPath:  outPath,
		RunFilePath: runPath,
	}
	if err := report.Write(reportCfg, query, cfg, records); err != nil {
		return err
	}
	fmt.Fprintf(diag, "results saved to %s\n", outPath)

	// Post-write verification: re-read the file and show its rows.
	if debug {
		if err := report.DisplayCSV(outPath, diag); err != nil {
			return err
		}
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
