package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agiangrant/infinitescroll/infinitescroll"
	"github.com/agiangrant/infinitescroll/internal/demo"
)

var (
	cfgFile   string
	verbosity int
	logFile   string

	direction string
	pageSize  int
	latencyMS int
	maxRows   int
)

var rootCmd = &cobra.Command{
	Use:   "scrolldemo",
	Short: "Terminal demo of an infinitely scrolling list",
	Long: `scrolldemo renders a list in the terminal and pages in more rows from a
slow fake feed whenever you scroll near the end. A spinner row holds the
space at the end of the list while a page is loading.`,
	SilenceUsage: true,
	RunE:         runDemo,
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.SilenceErrors = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "scrolldemo.toml", "config file path")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "log verbosity (repeat for more)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file")

	rootCmd.Flags().StringVar(&direction, "direction", "vertical", "scroll direction (vertical or horizontal)")
	rootCmd.Flags().IntVar(&pageSize, "page-size", 0, "rows fetched per load")
	rootCmd.Flags().IntVar(&latencyMS, "latency", 0, "simulated fetch latency in milliseconds")
	rootCmd.Flags().IntVar(&maxRows, "max-rows", 0, "rows available before the feed runs dry (0 means never)")
}

// loadConfigs reads both tables from the config file and lets explicitly set
// flags win.
func loadConfigs(cmd *cobra.Command) (infinitescroll.Config, demo.Config, error) {
	scrollCfg, err := infinitescroll.LoadConfig(cfgFile)
	if err != nil {
		return scrollCfg, demo.Config{}, err
	}
	demoCfg, err := demo.LoadConfig(cfgFile)
	if err != nil {
		return scrollCfg, demoCfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("direction") {
		d, err := infinitescroll.ParseDirection(direction)
		if err != nil {
			return scrollCfg, demoCfg, err
		}
		scrollCfg.Direction = d
	}
	if flags.Changed("page-size") {
		if pageSize <= 0 {
			return scrollCfg, demoCfg, fmt.Errorf("--page-size must be positive, got %d", pageSize)
		}
		demoCfg.PageSize = pageSize
	}
	if flags.Changed("latency") {
		demoCfg.LatencyMS = max(latencyMS, 0)
	}
	if flags.Changed("max-rows") {
		demoCfg.MaxRows = max(maxRows, 0)
	}
	return scrollCfg, demoCfg, nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	scrollCfg, demoCfg, err := loadConfigs(cmd)
	if err != nil {
		return err
	}
	if scrollCfg.Direction != infinitescroll.Vertical {
		return fmt.Errorf("the terminal demo only scrolls vertically, got %s", scrollCfg.Direction)
	}

	logger, flush, err := newLogger(logFile, verbosity)
	if err != nil {
		return err
	}
	defer flush()

	logger.V(1).Info("starting demo", "config", cfgFile, "pageSize", demoCfg.PageSize, "latencyMS", demoCfg.LatencyMS)
	return demo.Run(demo.Options{
		Demo:   demoCfg,
		Scroll: scrollCfg.Options(),
		Logger: logger,
	})
}
