package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/totegamma/council-reports/internal/config"
)

var renderCmd = &cobra.Command{
	Use:       "render <home|directory|offerings|explorer|dashboard> [id]",
	Short:     "Print a page view model as JSON",
	Args:      cobra.RangeArgs(1, 2),
	ValidArgs: []string{"home", "directory", "offerings", "explorer", "dashboard"},
	RunE:      runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	conf, err := config.Load(flags.config)
	if err != nil {
		return err
	}
	if flags.dir != "" {
		conf.Source.Dir = flags.dir
	}

	page := newPageUsecase(conf)
	ctx := cmd.Context()

	var view any
	switch args[0] {
	case "home":
		view = page.Home(ctx)
	case "directory":
		view = page.Directory(ctx)
	case "offerings":
		view = page.Offerings(ctx)
	case "explorer":
		view = page.Explorer(ctx)
	case "dashboard":
		if len(args) < 2 {
			return fmt.Errorf("dashboard needs a council id")
		}
		view, err = page.Dashboard(ctx, args[1])
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown page %q", args[0])
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(view)
}
