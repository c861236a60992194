package commands

import (
	"context"
	"io/ioutil"
	"os"
	"strings"

	"github.com/battlesnakeio/arcade/session"
	"github.com/battlesnakeio/arcade/terminal"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	theme     = terminal.DefaultTheme
	themeFile = terminal.DefaultThemeFile()
	logFile   = ""
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "play snake in the terminal",
	Run: func(c *cobra.Command, args []string) {
		if err := play(c); err != nil {
			log.WithError(err).Fatal("game exited with error")
		}
	},
}

func init() {
	playCmd.Flags().StringVar(&theme, "theme", theme,
		"colour theme, one of: ["+strings.Join(terminal.ThemeNames(), ", ")+"], remembered for the next game")
	playCmd.Flags().StringVar(&themeFile, "theme-file", themeFile, "where the chosen theme is remembered")
	playCmd.Flags().StringVar(&logFile, "log-file", logFile, "write logs to this file, the screen belongs to the game")
}

func play(c *cobra.Command) error {
	if !c.Flags().Changed("theme") {
		theme = terminal.LoadTheme(themeFile)
	}
	if _, ok := terminal.ThemeByName(theme); !ok {
		return errors.Errorf("unknown theme %q", theme)
	}
	if err := terminal.SaveTheme(themeFile, theme); err != nil {
		log.WithError(err).Warn("unable to remember theme")
	}

	// termbox owns stdout while the game runs.
	if logFile == "" {
		log.SetOutput(ioutil.Discard)
	} else {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return errors.Wrap(err, "unable to open log file")
		}
		defer f.Close()
		log.SetOutput(f)
	}

	store, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s, err := session.New(ctx, session.Config{
		Size:     gridSize,
		Interval: tickRate,
		Store:    store,
		ScoreKey: scoreKey,
	})
	if err != nil {
		return err
	}

	if err := termbox.Init(); err != nil {
		return errors.Wrap(err, "unable to initialise terminal")
	}
	defer termbox.Close()
	s.AddRenderer(terminal.NewRenderer(theme))

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	err = terminal.PollKeys(ctx, s)
	cancel()
	<-done
	return err
}
