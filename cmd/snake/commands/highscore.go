package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var highScoreCmd = &cobra.Command{
	Use:   "highscore",
	Short: "print the stored high score",
	RunE: func(c *cobra.Command, args []string) error {
		store, closeStore, err := openStore()
		if err != nil {
			return err
		}
		defer closeStore()

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		score, err := store.HighScore(ctx, scoreKey)
		if err != nil {
			return err
		}
		fmt.Println(score)
		return nil
	},
}
