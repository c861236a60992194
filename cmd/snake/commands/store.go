package commands

import (
	"io"

	"github.com/battlesnakeio/arcade/scores"
	"github.com/battlesnakeio/arcade/scores/filestore"
	"github.com/battlesnakeio/arcade/scores/redisstore"
	"github.com/battlesnakeio/arcade/scores/sqlstore"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// openStore builds the configured high score backend. The returned close
// func is always safe to call.
func openStore() (scores.Store, func(), error) {
	var store scores.Store
	var err error
	switch backend {
	case "inmem":
		store = scores.InMemStore()
	case "file":
		store = filestore.NewFileStore(backendArgs)
	case "redis":
		store, err = redisstore.NewStore(backendArgs)
	case "sql":
		store, err = sqlstore.NewSQLStore(backendArgs)
	default:
		err = errors.Errorf("invalid backend %q", backend)
	}
	if err != nil {
		return nil, func() {}, errors.Wrapf(err, "unable to start up %s backend", backend)
	}

	closeStore := func() {
		if c, ok := store.(io.Closer); ok {
			if err := c.Close(); err != nil {
				log.WithError(err).Error("unable to close store")
			}
		}
	}
	log.WithField("backend", backend).Debug("high score store ready")
	return scores.InstrumentStore(store), closeStore, nil
}
