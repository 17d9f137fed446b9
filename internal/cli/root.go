// Package cli wires the checkout commands for the terminal.
package cli

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/whiteboardproductions/site/go/internal/catalog"
	"github.com/whiteboardproductions/site/go/internal/config"
	"github.com/whiteboardproductions/site/go/internal/content"
	"github.com/whiteboardproductions/site/go/internal/currency"
	"github.com/whiteboardproductions/site/go/internal/logger"
	"github.com/whiteboardproductions/site/go/internal/models"
)

type rootFlags struct {
	contentFile  string
	geoURL       string
	geoTimeout   time.Duration
	deliveryBase string
	currency     string
	logLevel     string
}

func Execute() error {
	return NewRoot().Execute()
}

func NewRoot() *cobra.Command {
	cfg := config.GetConfig()
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "checkout",
		Short:         "WhiteBoard order wizard in the terminal",
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.InitConsole(flags.logLevel, cmd.ErrOrStderr())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.contentFile, "content-file", "", "site content file (JSON or YAML) with an orderForm override")
	pf.StringVar(&flags.geoURL, "geo-url", cfg.GeoLookupURL, "geo lookup endpoint returning {\"currency\": ...}")
	pf.DurationVar(&flags.geoTimeout, "geo-timeout", cfg.GeoLookupTimeout, "geo lookup timeout")
	pf.StringVar(&flags.deliveryBase, "delivery-base", cfg.DeliveryBaseURL, "messaging link the order is sent to")
	pf.StringVar(&flags.currency, "currency", "", "force INR or USD instead of detecting it")
	pf.StringVar(&flags.logLevel, "log-level", "warn", "log level")

	root.AddCommand(
		RunCmd(flags),
		QuoteCmd(flags),
	)
	return root
}

func (f *rootFlags) catalog(ctx context.Context) *catalog.Catalog {
	if f.contentFile == "" {
		return catalog.Default()
	}
	return content.LoadCatalog(ctx, content.NewFileSource(f.contentFile))
}

func (f *rootFlags) resolver() *currency.Resolver {
	if f.geoURL == "" {
		return currency.NewResolver(nil)
	}
	return currency.NewResolver(currency.NewGeoClient(f.geoURL, f.geoTimeout))
}

func (f *rootFlags) forcedCurrency() (models.Currency, bool) {
	if f.currency == "" {
		return "", false
	}
	return models.ParseCurrency(f.currency)
}

// localHints derives the heuristic inputs from the terminal's environment,
// e.g. LANG=en_IN.UTF-8 and TZ=Asia/Kolkata.
func localHints() currency.Hints {
	lang := os.Getenv("LC_ALL")
	if lang == "" {
		lang = os.Getenv("LANG")
	}
	lang, _, _ = strings.Cut(lang, ".")
	lang = strings.ReplaceAll(lang, "_", "-")

	return currency.Hints{Language: lang, TimeZone: os.Getenv("TZ")}
}
