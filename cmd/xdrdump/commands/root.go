// Package commands implements the xdrdump CLI.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information injected at build time.
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"

	// Flags.
	schemaFlag  string
	hexFlag     bool
	lenientFlag bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "xdrdump [file]",
	Short: "Decode and inspect XDR (RFC 4506) byte streams",
	Long: `xdrdump decodes an XDR-encoded byte stream against a field schema and
prints each field with its byte offset, type, and value.

The schema is a comma-separated list of field types:

  uint int hyper uhyper float double bool string opaque
  fopaque:N   fixed-length opaque of exactly N bytes
  array:T     counted array with elements of type T
  list:T      self-terminating linked list with elements of type T

Input is read from the file argument, or from stdin when no file is given.
By default the whole buffer must be consumed; --lenient skips that check.

Examples:
  # Dump a portmap GETPORT reply
  xdrdump --schema uint reply.bin

  # Dump a mount record from a hex string on stdin
  echo '00000001 000186a3' | xdrdump --hex --schema uint,uint

  # A DUMP reply: linked list of 4-field mappings
  xdrdump --schema list:fopaque:16 dump.bin`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runDump,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("xdrdump %s (commit: %s, built: %s)\n", Version, Commit, Date)
	},
}

func init() {
	rootCmd.Flags().StringVar(&schemaFlag, "schema", "", "comma-separated field types to decode (required)")
	rootCmd.Flags().BoolVar(&hexFlag, "hex", false, "treat input as hex text instead of raw bytes")
	rootCmd.Flags().BoolVar(&lenientFlag, "lenient", false, "allow unconsumed trailing bytes")
	_ = rootCmd.MarkFlagRequired("schema")

	rootCmd.AddCommand(versionCmd)
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
