package config

import (
	"os"
	"strconv"
	"time"

	"github.com/battlesnakeio/arcade/input"
	"golang.org/x/time/rate"
)

// Configuration variables. These aren't user facing but useful for tuning
// the game and the servers around it.
var (
	GridSize       = getEnvInt("GRID_SIZE", 20)
	TickInterval   = time.Duration(getEnvInt("TICK_INTERVAL_MS", 100)) * time.Millisecond
	SwipeThreshold = float64(getEnvInt("SWIPE_THRESHOLD", input.DefaultSwipeThreshold))
	InputRate      = rate.Limit(getEnvInt("INPUT_RPS", 20))
	InputBurst     = getEnvInt("INPUT_BURST", 5)
	MaxOpenConns   = getEnvInt("MAX_OPEN_CONNS", 5)
	MaxIdleConns   = getEnvInt("MAX_IDLE_CONNS", 2)
)

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}

// NewInputLimiter returns a limiter for a single remote input source.
func NewInputLimiter() *rate.Limiter {
	return rate.NewLimiter(InputRate, InputBurst)
}
