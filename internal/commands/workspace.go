package commands

import (
	"fmt"
	"path/filepath"

	"github.com/finsight-dev/finsight/internal/category"
	"github.com/finsight-dev/finsight/internal/config"
)

// openWorkspace loads the configuration and category store rooted at dir.
// The store load never fails; a missing or damaged category document means
// built-in defaults.
func openWorkspace(dir string) (*config.Config, *category.Store, error) {
	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		return nil, nil, fmt.Errorf("%s is not a finsight workspace (run 'finsight init'): %w", dir, err)
	}

	store := category.Load(filepath.Join(dir, cfg.Files.Categories))
	return cfg, store, nil
}
