package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	pg "cattery-breeding/internal/adapters/storage/postgres"
	"cattery-breeding/internal/domain/kittens"
	"cattery-breeding/internal/domain/litters"
	"cattery-breeding/internal/platform/config"
	"cattery-breeding/internal/platform/dates"
	"cattery-breeding/internal/weightchart"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var configPath string

// openDB lee la config y abre Postgres. La CLI no tiene modo in-memory.
func openDB(ctx context.Context) (*sql.DB, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if cfg.Database.DSN == "" {
		return nil, errors.New("database.dsn is empty (set CATTERY_DATABASE_DSN)")
	}
	db, err := pg.Open(ctx, cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return db, nil
}

var rootCmd = &cobra.Command{
	Use:          "litterctl",
	Short:        "Cattery litter maintenance tool",
	SilenceUsage: true,
}

// migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		if err := pg.MigrateUp(db); err != nil {
			return fmt.Errorf("migrating: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
		return nil
	},
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show current schema version",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		v, dirty, err := pg.MigrationVersion(db)
		if err != nil {
			return fmt.Errorf("reading version: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "version=%d dirty=%t\n", v, dirty)
		return nil
	},
}

// chart command
var chartOpts struct {
	litterID  string
	birthDate string
	names     []string
	title     string
	out       string
}

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Render the printable kitten weight chart",
	Long: "Renders the 28-day weight chart as PDF. Either --litter loads birth date and\n" +
		"roster from the database, or --birth-date and --names are given directly.",
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			birth time.Time
			names = chartOpts.names
			title = chartOpts.title
		)

		if id := strings.TrimSpace(chartOpts.litterID); id != "" {
			l, roster, err := loadLitter(cmd.Context(), id)
			if err != nil {
				return err
			}
			if l.BirthDate == nil {
				return fmt.Errorf("litter %s: %w", id, kittens.ErrNoBirthDate)
			}
			birth = *l.BirthDate
			names = nil
			for _, k := range roster {
				names = append(names, k.Name)
			}
			if title == "" {
				title = l.Name
			}
		} else {
			d, err := dates.Parse(chartOpts.birthDate)
			if err != nil {
				return fmt.Errorf("--birth-date must be YYYY-MM-DD: %w", err)
			}
			birth = d
		}

		doc, err := weightchart.RenderPDF(weightchart.Build(birth, names), title)
		if err != nil {
			return fmt.Errorf("rendering pdf: %w", err)
		}

		out := chartOpts.out
		if out == "" {
			out = "weight-chart-" + dates.Format(birth) + ".pdf"
		}
		if err := os.WriteFile(out, doc, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", out, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
		return nil
	},
}

func loadLitter(ctx context.Context, id string) (litters.Litter, []kittens.Kitten, error) {
	db, err := openDB(ctx)
	if err != nil {
		return litters.Litter{}, nil, err
	}
	defer db.Close()

	l, err := pg.NewLittersRepo(db).GetByID(ctx, id)
	if err != nil {
		return litters.Litter{}, nil, fmt.Errorf("loading litter: %w", err)
	}
	roster, err := pg.NewKittensRepo(db).ListByLitter(ctx, l.ID)
	if err != nil {
		return litters.Litter{}, nil, fmt.Errorf("loading kittens: %w", err)
	}
	return l, roster, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default configs/config.yaml)")

	migrateCmd.AddCommand(migrateUpCmd, migrateVersionCmd)

	chartCmd.Flags().StringVar(&chartOpts.litterID, "litter", "", "litter id to load from the database")
	chartCmd.Flags().StringVar(&chartOpts.birthDate, "birth-date", "", "birth date (YYYY-MM-DD) when --litter is not used")
	chartCmd.Flags().StringSliceVar(&chartOpts.names, "names", nil, "kitten names, comma separated")
	chartCmd.Flags().StringVar(&chartOpts.title, "title", "", "title printed in the header")
	chartCmd.Flags().StringVarP(&chartOpts.out, "out", "o", "", "output file")
	chartCmd.MarkFlagsOneRequired("litter", "birth-date")
	chartCmd.MarkFlagsMutuallyExclusive("litter", "birth-date")

	rootCmd.AddCommand(migrateCmd, chartCmd)
}
