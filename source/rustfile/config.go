package rustfile

import (
	"fmt"
	"path/filepath"
)

// Config locates the migration target. Path comes from the embedded
// migration spec and is never read from the environment; Dir re-roots a
// relative Path and stays empty in the shipped binary, so the path
// resolves against the process working directory.
type Config struct {
	Path string
	Dir  string
}

func (c Config) validate() error {
	if c.Path == "" {
		return fmt.Errorf("rustfile: target path required")
	}
	return nil
}

// resolved is the filesystem path to open.
func (c Config) resolved() string {
	if c.Dir != "" && !filepath.IsAbs(c.Path) {
		return filepath.Join(c.Dir, c.Path)
	}
	return c.Path
}
