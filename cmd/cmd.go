// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

// setupCommand initializes configuration and, for the sqlite session store, the database schema.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Create config file and run database migrations",
		Flags: []cli.Flag{
			configFlag(),
			&cli.BoolFlag{
				Name:  "rollback",
				Usage: "Roll back the most recent migration instead",
			},
		},
		Action: r.Setup,
	}
}

// authCommand runs the local OAuth2 flow and saves tokens for terminal commands.
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "auth",
		Usage:  "Authenticate with Spotify using OAuth2",
		Flags:  []cli.Flag{configFlag()},
		Action: r.Auth,
	}
}

// serveCommand starts the dashboard HTTP server.
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "Start the dashboard web service",
		Flags:  []cli.Flag{configFlag()},
		Action: r.Serve,
	}
}

// vibeCommand prints the genre-derived vibe profile.
func vibeCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "vibe",
		Usage: "Compute the vibe profile from your top artists' genres",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringSliceFlag{
				Name:    "genres",
				Aliases: []string{"g"},
				Usage:   "Compute from the given genre tags instead of fetching top artists",
			},
			&cli.StringFlag{
				Name:  "range",
				Usage: "Time range: short_term, medium_term, long_term",
				Value: "medium_term",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output as JSON",
			},
		},
		Action: r.Vibe,
	}
}

// topCommand lists top tracks or artists.
func topCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "top",
		Usage: "List your top tracks and artists",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:  "range",
				Usage: "Time range: short_term, medium_term, long_term",
				Value: "medium_term",
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Number of entries per list",
				Value: 5,
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output as JSON",
			},
			&cli.StringFlag{
				Name:  "export",
				Usage: "Write the snapshot to a file (.csv, .md, or .json)",
			},
		},
		Action: r.Top,
	}
}

// nowCommand opens the live now-playing terminal view.
func nowCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "now",
		Usage:  "Live now-playing view",
		Flags:  []cli.Flag{configFlag()},
		Action: r.Now,
	}
}
