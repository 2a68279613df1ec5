package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/agiangrant/infinitescroll/infinitescroll"
	"github.com/agiangrant/infinitescroll/internal/demo"
)

var force bool

// configFile mirrors the layout LoadConfig reads in each package.
type configFile struct {
	InfiniteScroll infinitescroll.Config `toml:"infinite_scroll"`
	Demo           demo.Config           `toml:"demo"`
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeDefaultConfig(cfgFile, force)
	},
}

func init() {
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

func writeDefaultConfig(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to stat %s: %w", path, err)
		}
	}

	data, err := toml.Marshal(configFile{
		InfiniteScroll: infinitescroll.DefaultConfig(),
		Demo:           demo.DefaultConfig(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	fmt.Printf("Wrote %s\n", path)
	return nil
}
