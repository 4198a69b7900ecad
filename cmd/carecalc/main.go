package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/carefund/carecalc/internal/calculation"
	"github.com/carefund/carecalc/internal/config"
	"github.com/carefund/carecalc/internal/directory"
	"github.com/carefund/carecalc/internal/output"
	"github.com/carefund/carecalc/internal/server"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "carecalc %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

var rootCmd = &cobra.Command{
	Use:   "carecalc",
	Short: "UK care funding eligibility calculator",
	Long:  "Assesses NHS Continuing Healthcare probability, local authority means-tested support and deferred payment eligibility, and projects the resulting savings",
}

var assessCmd = &cobra.Command{
	Use:   "assess [request-file]",
	Short: "Run a funding eligibility assessment",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		registry, err := buildRegistry(cmd)
		if err != nil {
			log.Fatal(err)
		}

		parser := config.NewInputParser()
		req, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		now := time.Now().UTC()
		thresholds, err := registry.ThresholdsFor(now)
		if err != nil {
			log.Fatal(err)
		}

		engine := calculation.NewEngine(registry.Catalog())
		result, err := engine.Assess(req, thresholds, now)
		if err != nil {
			log.Fatal(err)
		}

		format, _ := cmd.Flags().GetString("format")
		formatter := output.GetFormatterByName(format)
		if formatter == nil {
			log.Fatalf("unsupported format %q (supported: %v)", format, output.FormatNames())
		}
		data, err := formatter.Format(result)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(string(data))
	},
}

var thresholdsCmd = &cobra.Command{
	Use:   "thresholds",
	Short: "Show the threshold records in effect",
	Run: func(cmd *cobra.Command, args []string) {
		registry, err := buildRegistry(cmd)
		if err != nil {
			log.Fatal(err)
		}
		for _, t := range registry.AllThresholds() {
			fmt.Printf("%s (%s to %s)\n", t.Year,
				t.EffectiveFrom.Format("2006-01-02"), t.EffectiveTo.Format("2006-01-02"))
			fmt.Printf("  capital limits:    %s - %s\n",
				output.FormatCurrency(t.LowerCapitalLimit), output.FormatCurrency(t.UpperCapitalLimit))
			fmt.Printf("  PEA:               %s/week\n", output.FormatCurrency(t.PersonalExpensesAllowance))
			fmt.Printf("  MIG single/couple: %s / %s per week\n",
				output.FormatCurrency(t.MinimumIncomeGuarantee.Single), output.FormatCurrency(t.MinimumIncomeGuarantee.Couple))
			fmt.Printf("  tariff:            %s per %s\n",
				output.FormatCurrency(t.TariffRate), output.FormatCurrency(t.TariffBand))
		}
	},
}

var disregardsCmd = &cobra.Command{
	Use:   "disregards",
	Short: "List the disregard catalog",
	Run: func(cmd *cobra.Command, args []string) {
		registry, err := buildRegistry(cmd)
		if err != nil {
			log.Fatal(err)
		}
		for _, r := range registry.Catalog().AllRules() {
			flags := string(r.Treatment)
			if r.Discretionary {
				flags += ", discretionary"
			}
			if r.DurationWeeks > 0 {
				flags += fmt.Sprintf(", %d weeks", r.DurationWeeks)
			}
			fmt.Printf("%-8s %-34s %s\n", r.Kind, r.Category, flags)
		}
	},
}

var authorityCmd = &cobra.Command{
	Use:   "authority [postcode]",
	Short: "Look up the local authority contact for a postcode",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir, err := buildDirectory(cmd)
		if err != nil {
			log.Fatal(err)
		}
		authority, err := dir.Lookup(args[0])
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s\n  phone:   %s\n  email:   %s\n  website: %s\n",
			authority.Name, authority.Phone, authority.Email, authority.Website)
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the assessment HTTP service",
	Run: func(cmd *cobra.Command, args []string) {
		configFile, _ := cmd.Flags().GetString("config")
		cfg, err := server.LoadConfig(configFile)
		if err != nil {
			log.Fatal(err)
		}

		logger, err := server.NewLogger(cfg.Environment)
		if err != nil {
			log.Fatal(err)
		}
		defer func() { _ = logger.Sync() }()

		registry := config.DefaultRegistry()
		if cfg.Data.ThresholdsPath != "" && cfg.Data.DisregardsPath != "" {
			registry, err = config.LoadRegistry(cfg.Data.ThresholdsPath, cfg.Data.DisregardsPath)
			if err != nil {
				log.Fatal(err)
			}
		}
		dir := directory.Default()
		if cfg.Data.AuthoritiesPath != "" {
			dir, err = directory.Load(cfg.Data.AuthoritiesPath)
			if err != nil {
				log.Fatal(err)
			}
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := server.New(cfg, logger, registry, dir).Run(ctx); err != nil {
			log.Fatal(err)
		}
	},
}

// buildRegistry resolves the registry from --thresholds/--disregards flags.
func buildRegistry(cmd *cobra.Command) (*config.Registry, error) {
	thresholdsFile, _ := cmd.Flags().GetString("thresholds")
	disregardsFile, _ := cmd.Flags().GetString("disregards")

	thresholds := config.DefaultThresholds()
	if thresholdsFile != "" {
		loaded, err := config.LoadThresholds(thresholdsFile)
		if err != nil {
			return nil, err
		}
		thresholds = loaded
	}

	catalog := config.DefaultCatalog()
	if disregardsFile != "" {
		loaded, err := config.LoadDisregardCatalog(disregardsFile)
		if err != nil {
			return nil, err
		}
		catalog = loaded
	}
	return config.NewRegistry(thresholds, catalog)
}

func buildDirectory(cmd *cobra.Command) (*directory.Directory, error) {
	authoritiesFile, _ := cmd.Flags().GetString("authorities")
	if authoritiesFile == "" {
		return directory.Default(), nil
	}
	return directory.Load(authoritiesFile)
}

func main() {
	for _, cmd := range []*cobra.Command{assessCmd, thresholdsCmd, disregardsCmd} {
		cmd.Flags().String("thresholds", "", "Path to a thresholds.yaml (defaults to built-in records)")
		cmd.Flags().String("disregards", "", "Path to a disregards.yaml (defaults to built-in catalog)")
	}
	assessCmd.Flags().String("format", "console", "Output format: console, verbose, json, csv")
	authorityCmd.Flags().String("authorities", "", "Path to an authorities.yaml (defaults to built-in table)")
	serveCmd.Flags().String("config", "", "Path to a service config YAML (environment variables otherwise)")

	rootCmd.AddCommand(assessCmd, thresholdsCmd, disregardsCmd, authorityCmd, serveCmd, versionCmd())
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
