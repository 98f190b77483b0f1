// Command xudoku solves diagonal ("X") Sudoku puzzles, one-off
// from the command line or as an HTTP service.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ancientHacker/xudoku.go/puzzle"
	"github.com/ancientHacker/xudoku.go/service"
	"github.com/ancientHacker/xudoku.go/storage"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "xudoku",
	Short:         "Solve diagonal (X) Sudoku puzzles",
	SilenceUsage:  true,
	SilenceErrors: false,
}

/*

solve

*/

var (
	useTwins  bool
	showTrace bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [grid]",
	Short: "Solve one puzzle given as 81 characters of '1'-'9' and '.'",
	Long: "Solve one puzzle.  The grid is the 81-character reading-order\n" +
		"form, '.' for unknown cells; it can be passed as the argument\n" +
		"or piped on standard input.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		grid, err := readGrid(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}

		solveFn := puzzle.Solve
		if useTwins {
			solveFn = puzzle.SolveWithTwins
		}
		solved, trace, err := solveFn(grid)
		if errors.Is(err, puzzle.ErrUnsolvable) {
			return fmt.Errorf("no solution")
		}
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), solved.String())
		fmt.Fprintln(cmd.OutOrStdout(), solved.Signature())
		if showTrace {
			fmt.Fprintf(cmd.OutOrStdout(), "%d assignments recorded\n", trace.Len())
		}
		return nil
	},
}

// readGrid takes the grid from the argument if there is one,
// otherwise from standard input, stripping whitespace either way
// so multi-line grids paste cleanly.
func readGrid(in io.Reader, args []string) (string, error) {
	var raw string
	if len(args) == 1 {
		raw = args[0]
	} else {
		bytes, err := io.ReadAll(in)
		if err != nil {
			return "", fmt.Errorf("couldn't read grid from stdin: %w", err)
		}
		raw = string(bytes)
	}
	return strings.Join(strings.Fields(raw), ""), nil
}

/*

serve

*/

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the solver as an HTTP service",
	Long: "Run the solver as an HTTP service backed by a Redis solve\n" +
		"cache and Postgres persistence.  Flags fall back to the ADDR,\n" +
		"REDIS_URL, and DATABASE_URL environment variables.",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

		// hand the resolved URLs to the storage layer
		if v := viper.GetString("redis-url"); v != "" {
			os.Setenv("REDIS_URL", v)
		}
		if v := viper.GetString("database-url"); v != "" {
			os.Setenv("DATABASE_URL", v)
		}

		store, err := storage.Connect(cmd.Context())
		if err != nil {
			return err
		}
		defer store.Close()
		logger.Info().
			Str("cache", store.CacheURL()).
			Str("database", store.DatabaseURL()).
			Msg("storage connected")

		addr := viper.GetString("addr")
		logger.Info().Str("addr", addr).Msg("listening")
		return service.New(store, logger).Router().Run(addr)
	},
}

func init() {
	solveCmd.Flags().BoolVar(&useTwins, "twins", false,
		"splice the naked-twins strategy into propagation")
	solveCmd.Flags().BoolVar(&showTrace, "trace", false,
		"report the length of the assignment trace")

	serveCmd.Flags().String("addr", ":8080", "listen address")
	serveCmd.Flags().String("redis-url", "", "Redis URL for the solve cache")
	serveCmd.Flags().String("database-url", "", "Postgres URL for persistence")
	viper.BindPFlag("addr", serveCmd.Flags().Lookup("addr"))
	viper.BindPFlag("redis-url", serveCmd.Flags().Lookup("redis-url"))
	viper.BindPFlag("database-url", serveCmd.Flags().Lookup("database-url"))
	viper.BindEnv("addr", "ADDR")
	viper.BindEnv("redis-url", "REDIS_URL")
	viper.BindEnv("database-url", "DATABASE_URL")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(serveCmd)
}
