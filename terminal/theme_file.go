package terminal

import (
	"io/ioutil"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// DefaultThemeFile is where the last chosen theme is remembered between
// launches.
func DefaultThemeFile() string {
	home := "."
	if usr, err := user.Current(); err == nil {
		home = usr.HomeDir
	}
	return filepath.Join(home, ".battlesnake", "theme")
}

// LoadTheme returns the theme saved at path, or DefaultTheme when nothing
// usable is saved there.
func LoadTheme(path string) string {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return DefaultTheme
	}
	name := strings.TrimSpace(string(data))
	if _, ok := ThemeByName(name); !ok {
		return DefaultTheme
	}
	return name
}

// SaveTheme remembers name for the next launch.
func SaveTheme(path, name string) error {
	if _, ok := ThemeByName(name); !ok {
		return errors.Errorf("unknown theme %q", name)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "unable to create theme directory")
	}
	return errors.Wrap(ioutil.WriteFile(path, []byte(name+"\n"), 0644), "unable to save theme")
}
