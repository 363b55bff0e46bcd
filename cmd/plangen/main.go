package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dermaplan/engine/internal/catalog"
	"github.com/dermaplan/engine/internal/config"
	"github.com/dermaplan/engine/internal/domain"
	"github.com/dermaplan/engine/internal/engine"
	"github.com/dermaplan/engine/internal/ingredients"
	"github.com/dermaplan/engine/internal/profile"
	"github.com/dermaplan/engine/internal/protocol"
)

var (
	profilePath string
	catalogPath string
	configPath  string
	outPath     string
)

var rootCmd = &cobra.Command{
	Use:           "plangen",
	Short:         "Generate 28-day skincare plans from local fixtures",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a plan from a profile and catalog fixture",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd.Context())
	},
}

var protocolsCmd = &cobra.Command{
	Use:   "protocols",
	Short: "List the built-in dermatology protocols",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := protocol.NewRegistry()
		if err != nil {
			return err
		}
		for _, cond := range registry.Conditions() {
			proto := registry.Get(cond)
			strict := ""
			if proto.Strict {
				strict = " (strict)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", cond, strict)
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&profilePath, "profile", "profile.yaml", "normalized profile fixture (YAML)")
	generateCmd.Flags().StringVar(&catalogPath, "catalog", "catalog.yaml", "catalog products fixture (YAML)")
	generateCmd.Flags().StringVar(&configPath, "config", "", "optional config file")
	generateCmd.Flags().StringVar(&outPath, "out", "", "write the plan JSON here instead of stdout")
	rootCmd.AddCommand(generateCmd, protocolsCmd)
}

func runGenerate(ctx context.Context) error {
	var cfg *config.Config
	if configPath != "" {
		loaded, err := config.LoadFromEnv(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	var userProfile domain.ProfileClassification
	if err := readYAML(profilePath, &userProfile); err != nil {
		return fmt.Errorf("read profile fixture: %w", err)
	}

	var products []domain.CatalogProduct
	if cfg == nil || cfg.Planner.CatalogSource != "postgres" {
		if err := readYAML(catalogPath, &products); err != nil {
			return fmt.Errorf("read catalog fixture: %w", err)
		}
	}

	store := profile.NewMemory()
	store.Put(userProfile)

	cat, closeCat, err := buildCatalog(cfg, products)
	if err != nil {
		return err
	}
	defer closeCat()

	registry, err := protocol.NewRegistry()
	if err != nil {
		return err
	}
	matrix, err := ingredients.NewMatrix()
	if err != nil {
		return err
	}

	gen := engine.NewGenerator(store, cat, registry, matrix)
	result, err := gen.Generate(ctx, userProfile.UserID)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	if outPath == "" {
		fmt.Println(string(data))
		return nil
	}
	return os.WriteFile(outPath, append(data, '\n'), 0o644)
}

// buildCatalog constructs the catalog backend the config selects: the YAML
// fixture by default, Postgres when catalog_source is "postgres", wrapped in
// the Redis read-through cache when the cache is enabled. The returned func
// releases whatever connections the backend holds.
func buildCatalog(cfg *config.Config, products []domain.CatalogProduct) (catalog.Query, func(), error) {
	closeCat := func() {}
	var base catalog.Query

	if cfg != nil && cfg.Planner.CatalogSource == "postgres" {
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			return nil, nil, fmt.Errorf("open catalog database: %w", err)
		}
		base = catalog.NewPostgres(db)
		closeCat = func() { _ = db.Close() }
	} else {
		mem, err := catalog.NewMemory(products)
		if err != nil {
			return nil, nil, fmt.Errorf("load catalog: %w", err)
		}
		base = mem
	}

	if cfg != nil && cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		base = catalog.NewCached(base, rdb, cfg.Redis.CacheTTL())
	}
	return base, closeCat, nil
}

func readYAML(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, v)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
