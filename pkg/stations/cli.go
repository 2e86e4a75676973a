package stations

import (
	"os"

	"github.com/railscout/railscout/pkg/eurostar"
	"github.com/railscout/railscout/pkg/render"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "stations",
		Usage: "Stations usable as search endpoints",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List known stations and their provider IDs",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "remote",
						Usage: "Fetch the listing from the provider instead of the built-in registry",
					},
					&cli.StringFlag{
						Name:    "api-key",
						Usage:   "Provider API key (needed with --remote)",
						EnvVars: []string{"RAILSCOUT_API_KEY"},
					},
				},
				Action: func(c *cli.Context) error {
					if c.Bool("remote") {
						client := eurostar.NewClient(c.String("api-key"))

						listing, err := client.FetchStations(c.Context)
						if err != nil {
							return err
						}

						return render.StationList(os.Stdout, listing)
					}

					registry, err := NewRegistry()
					if err != nil {
						return err
					}

					listing := map[string]int{}
					for _, name := range registry.Names() {
						listing[name] = registry.ID(name)
					}

					return render.StationList(os.Stdout, listing)
				},
			},
		},
	}
}
