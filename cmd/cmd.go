// Package cmd defines the command-line interface for dealflow.
package cmd

import (
	"github.com/dealflowhq/dealflow/internal/contract"
	"github.com/dealflowhq/dealflow/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatusCmd)
	cacheCmd.AddCommand(cacheMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("table", contract.DefaultTableName, "DynamoDB table holding repository analyses")
	rootCmd.PersistentFlags().String("region", "", "AWS region of the analysis table")
	rootCmd.PersistentFlags().String("endpoint", "", "Endpoint override for DynamoDB-compatible stores (e.g., local stack)")
	rootCmd.PersistentFlags().String("access-key", "", "AWS access key ID (prefer DEALFLOW_ACCESS_KEY env var)")
	rootCmd.PersistentFlags().String("secret-key", "", "AWS secret access key (prefer DEALFLOW_SECRET_KEY env var)")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of repositories to display")
	rootCmd.PersistentFlags().Float64("min-score", 0, "Only include repositories scoring at least this value")
	rootCmd.PersistentFlags().String("ttl", "", "Cache freshness window (e.g., 5m, 1h); defaults to 5m")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Bool("detail", false, "Print per-repository analysis scores and analysis date")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored verdict labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("cache-backend", string(schema.SQLiteBackend), "Cache backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("cache-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of cacheMigrateCmd to Viper
	cacheMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(cacheMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding cache migrate flags", err)
	}
}
