package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pageza/digital-parsley/backend/internal/logger"
	"github.com/pageza/digital-parsley/backend/internal/scraper"
)

// newRootCommand builds the scrape CLI. The page is either fetched from the
// URL argument or, with --file, read from disk ("-" for stdin).
func newRootCommand() *cobra.Command {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("SCRAPE_TIMEOUT", scraper.DefaultTimeout)
	v.SetDefault("LOG_LEVEL", "warn")

	cmd := &cobra.Command{
		Use:          "scrape [url]",
		Short:        "Extract a recipe draft from a web page and print it as JSON",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.Setup(v.GetString("LOG_LEVEL"), false)

			file, _ := cmd.Flags().GetString("file")
			pretty, _ := cmd.Flags().GetBool("pretty")

			var draft scraper.RecipeDraft
			switch {
			case file != "":
				body, err := readPage(cmd, file)
				if err != nil {
					return err
				}
				draft = scraper.ExtractHTML(body)
			case len(args) == 1:
				s := scraper.New(scraper.NewCollyFetcher(v.GetDuration("SCRAPE_TIMEOUT")))
				var err error
				draft, err = s.Scrape(cmd.Context(), args[0])
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("a url argument or --file is required")
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			if pretty {
				enc.SetIndent("", "  ")
			}
			return enc.Encode(draft)
		},
	}

	cmd.Flags().Duration("timeout", scraper.DefaultTimeout, "Page fetch timeout")
	cmd.Flags().String("file", "", "Read the page from a file instead of fetching it")
	cmd.Flags().Bool("pretty", false, "Indent the JSON output")
	_ = v.BindPFlag("SCRAPE_TIMEOUT", cmd.Flags().Lookup("timeout"))
	return cmd
}

func readPage(cmd *cobra.Command, file string) ([]byte, error) {
	if file == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(file)
}
