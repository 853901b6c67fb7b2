package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/meghashyamc/ecssnav/api"
	"github.com/meghashyamc/ecssnav/config"
	"github.com/meghashyamc/ecssnav/models"
	"github.com/meghashyamc/ecssnav/page"
	"github.com/spf13/cobra"
)

var (
	version    = "dev"
	commit     = "none"
	buildDate  = "unknown"
	jsonOutput bool
)

// @title        ECSS Navigator API
// @version      1.0
// @description  Search front end for ECSS standards with a built-in fallback corpus.
// @BasePath     /
func main() {
	godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "ecssnav",
		Short: "ECSS standards navigator",
		Long: `ecssnav serves a search page and search API for ECSS standards,
forwarding queries to a remote search backend and answering from a
built-in corpus when the backend is unavailable.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version info",
		Run: func(cmd *cobra.Command, args []string) {
			if jsonOutput {
				printJSON(map[string]string{
					"version": version,
					"commit":  commit,
					"date":    buildDate,
				})
			} else {
				fmt.Printf("ecssnav %s (%s, %s)\n", version, commit, buildDate)
			}
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the search API and page",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	})

	searchCmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search a running navigator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load("")
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			apiURL, _ := cmd.Flags().GetString("api-url")
			if apiURL == "" {
				apiURL = cfg.GetAPIBaseURL()
			}
			branch, _ := cmd.Flags().GetString("branch")
			discipline, _ := cmd.Flags().GetString("discipline")
			revision, _ := cmd.Flags().GetString("revision")

			p := page.New(page.NewHTTPClient(apiURL, nil), nil)
			p.SetQuery(args[0])
			p.SetFilters(models.Filters{Branch: branch, Discipline: discipline, Revision: revision})
			if !p.Submit(cmd.Context()) {
				return fmt.Errorf("query must not be blank")
			}

			state := p.State()
			if jsonOutput {
				printJSON(models.Response{Results: state.Results, Total: len(state.Results), Query: state.Query, Error: state.Error})
			} else if err := page.Render(os.Stdout, state); err != nil {
				return err
			}

			if state.Error != "" {
				return fmt.Errorf("%s", state.Error)
			}
			return nil
		},
	}
	searchCmd.Flags().String("branch", "", "Exact branch, e.g. E")
	searchCmd.Flags().String("discipline", "", "Exact discipline, e.g. ST")
	searchCmd.Flags().String("revision", "", "Exact revision, e.g. 1")
	searchCmd.Flags().String("api-url", "", "Navigator base URL (defaults to API_BASE_URL)")
	rootCmd.AddCommand(searchCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func serve(ctx context.Context) error {
	cfg, err := config.Load("")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	return api.Run(ctx, cfg)
}

func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(v)
}
