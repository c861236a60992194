package commands

import (
	"fmt"
	"os"

	"github.com/battlesnakeio/arcade/config"
	"github.com/battlesnakeio/arcade/scores"
	"github.com/battlesnakeio/arcade/version"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "snake",
	Short:   "snake is a terminal snake game with an optional http front end",
	Version: version.Version,
	PersistentPreRunE: func(c *cobra.Command, args []string) error {
		return setupLogging()
	},
	Run: func(c *cobra.Command, args []string) {
		playCmd.Run(c, args)
	},
}

var (
	logLevel    = "info"
	logJSON     = false
	gridSize    = config.GridSize
	tickRate    = config.TickInterval
	backend     = "file"
	backendArgs = ""
	scoreKey    = scores.DefaultKey
)

func setupLogging() error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	if logJSON {
		log.SetFormatter(&log.JSONFormatter{})
	}
	return nil
}

// Execute runs the root command
func Execute() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&logLevel, "log-level", logLevel, "log level, one of: [debug, info, warn, error]")
	pf.BoolVar(&logJSON, "log-json", logJSON, "log as json")
	pf.IntVarP(&gridSize, "size", "s", gridSize, "side length of the square board")
	pf.DurationVarP(&tickRate, "tick", "t", tickRate, "time between snake moves")
	pf.StringVarP(&backend, "backend", "b", backend, "high score backend, as one of: [inmem, file, redis, sql]")
	pf.StringVarP(&backendArgs, "backend-args", "a", backendArgs, "options to pass to the backend being used")
	pf.StringVar(&scoreKey, "score-key", scoreKey, "key the high score is stored under")
	rootCmd.Flags().AddFlagSet(playCmd.Flags())

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(highScoreCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
