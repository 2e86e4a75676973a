// Package search wires the command line onto the journey matching engine.
package search

import (
	"errors"
	"fmt"
	"os"

	"github.com/kr/pretty"
	"github.com/railscout/railscout/pkg/eurostar"
	"github.com/railscout/railscout/pkg/journey"
	"github.com/railscout/railscout/pkg/render"
	"github.com/railscout/railscout/pkg/stations"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Find round-trip journeys matching your criteria",
		ArgsUsage: "[from] [to]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "since",
				Usage: "Earliest outbound date (YYYY-MM-DD), defaults to today",
			},
			&cli.StringFlag{
				Name:  "until",
				Usage: "Latest outbound date (YYYY-MM-DD), defaults to two weeks from today",
			},
			&cli.IntFlag{
				Name:     "days",
				Usage:    "Trip length in days (e.g. Friday to Sunday is 3)",
				Required: true,
			},
			&cli.StringSliceFlag{
				Name:  "weekday",
				Usage: "Only start journeys on this weekday, can be repeated",
			},
			&cli.StringFlag{
				Name:  "out-departure-after",
				Usage: "Only outbound trains departing at or after this time (HH:MM)",
			},
			&cli.StringFlag{
				Name:  "out-departure-before",
				Usage: "Only outbound trains departing at or before this time (HH:MM)",
			},
			&cli.StringFlag{
				Name:  "in-departure-after",
				Usage: "Only inbound trains departing at or after this time (HH:MM)",
			},
			&cli.StringFlag{
				Name:  "in-departure-before",
				Usage: "Only inbound trains departing at or before this time (HH:MM)",
			},
			&cli.Float64Flag{
				Name:  "max-price",
				Usage: "Maximum combined price of the two legs",
			},
			&cli.IntFlag{
				Name:  "adults",
				Usage: "Number of adult passengers",
				Value: 1,
			},
			&cli.StringFlag{
				Name:  "sort-by",
				Usage: "Order results by price or date",
				Value: string(journey.SortByPrice),
			},
			&cli.StringFlag{
				Name:     "api-key",
				Usage:    "Provider API key",
				EnvVars:  []string{"RAILSCOUT_API_KEY"},
				Required: true,
			},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	registry, err := stations.NewRegistry()
	if err != nil {
		return err
	}

	criteria, err := criteriaFromContext(c, registry)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	log.Debug().Msgf("Parsed criteria: %# v", pretty.Formatter(criteria))

	client := eurostar.NewClient(c.String("api-key"))

	pairs, err := journey.Find(c.Context, criteria, client)
	if errors.Is(err, journey.ErrInvalidCriteria) {
		return cli.Exit(err.Error(), 2)
	} else if err != nil {
		return err
	}

	if len(pairs) == 0 {
		fmt.Println("There was no journey matching the supplied criteria :(")
		return nil
	}

	log.Info().Int("count", len(pairs)).Msg("Found journeys matching criteria")

	return render.JourneyTable(os.Stdout, pairs)
}
