// Command azprices queries the Azure Retail Prices API and renders
// the results to stdout.
//
//	azprices --limit armRegionName=ukwest --limit priceType=Consumption \
//	         --select skuName --select retailPrice --format csv
//	azprices sku Standard_D2s_v5
package main

import (
	"fmt"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/azprices/go-azprices/output"
	"github.com/azprices/go-azprices/retail"
)

const docsURL = "https://learn.microsoft.com/en-us/rest/api/cost-management/retail-prices/azure-retail-prices"

var logLevels = map[string]zerolog.Level{
	"debug":    zerolog.DebugLevel,
	"info":     zerolog.InfoLevel,
	"warning":  zerolog.WarnLevel,
	"error":    zerolog.ErrorLevel,
	"critical": zerolog.FatalLevel,
	"none":     zerolog.Disabled,
}

func newLogger(c *cli.Context) (zerolog.Logger, error) {
	level, found := logLevels[c.String("log-level")]
	if !found {
		return zerolog.Nop(), fmt.Errorf("unknown log level %q", c.String("log-level"))
	}

	writer := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		NoColor:    true,
		PartsOrder: []string{zerolog.MessageFieldName},
	}
	if c.Bool("prefix") {
		writer.PartsOrder = []string{zerolog.LevelFieldName, zerolog.MessageFieldName}
		writer.FormatLevel = func(l interface{}) string {
			return fmt.Sprintf("[ %-8s ]", strings.ToUpper(fmt.Sprint(l)))
		}
	}

	return zerolog.New(writer).Level(level), nil
}

func parseLimits(limits []string) (*retail.FilterSpec, error) {
	var filter retail.FilterSpec
	for _, limit := range limits {
		property, value, found := strings.Cut(limit, "=")
		if !found || property == "" {
			return nil, fmt.Errorf("invalid limit %q, want property=value", limit)
		}
		filter.Add(property, value)
	}
	return &filter, nil
}

func runQuery(c *cli.Context) error {
	logger, err := newLogger(c)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	formatter, found := output.Lookup(c.String("format"))
	if !found {
		return cli.Exit(fmt.Sprintf("unknown format %q (available: %s)", c.String("format"), strings.Join(output.Names(), ", ")), 1)
	}

	filter, err := parseLimits(c.StringSlice("limit"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	client := retail.NewClient(logger)
	items, err := client.GetPrices(c.Context, c.String("currency"), filter)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	summary, err := retail.PriceStats(items)
	if err == nil {
		logger.Debug().
			Int("count", summary.Count).
			Float64("min", summary.Min).
			Float64("mean", summary.Mean).
			Float64("median", summary.Median).
			Float64("max", summary.Max).
			Msg("retail price distribution")
	}

	err = formatter.Write(os.Stdout, items, c.StringSlice("select"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	return nil
}

func summaryLine(item retail.Record, currencyCode string) string {
	get := func(column string) string {
		value, found := item.Get(column)
		if !found {
			return ""
		}
		return value.String()
	}
	return fmt.Sprintf("%s | %s | %s | %s %s per %s",
		get("skuId"), get("armRegionName"), get("meterName"),
		get("retailPrice"), currencyCode, get("unitOfMeasure"))
}

func runSKULookup(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("at least one armSkuName argument is required", 1)
	}

	logger, err := newLogger(c)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	client := retail.NewClient(logger)
	currencyCode := c.String("currency")

	var matches []retail.Record
	for _, armSkuName := range c.Args().Slice() {
		items, err := client.LookupSKU(c.Context, currencyCode, armSkuName)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		for _, item := range items {
			fmt.Println(summaryLine(item, currencyCode))
		}
		matches = append(matches, items...)
	}

	summary, err := retail.PriceStats(matches)
	if err == nil {
		fmt.Printf("%d prices, min %g / mean %g / median %g / max %g %s\n",
			summary.Count, summary.Min, summary.Mean, summary.Median, summary.Max, currencyCode)
	}
	return nil
}

func main() {
	app := &cli.App{
		Name:  "azprices",
		Usage: "Azure Retail Prices API tool",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
				Usage:   "logging output level (debug, info, warning, error, critical, none)",
			},
			&cli.BoolFlag{
				Name:  "prefix",
				Usage: "prefix log messages with their level",
			},
			&cli.StringFlag{
				Name:    "currency",
				Aliases: []string{"c"},
				Value:   "GBP",
				Usage:   "currency code to query prices in (see " + docsURL + ")",
				EnvVars: []string{"AZPRICES_CURRENCY"},
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "table",
				Usage:   "output format (one of: " + strings.Join(output.Names(), ", ") + ")",
				EnvVars: []string{"AZPRICES_FORMAT"},
			},
			&cli.StringSliceFlag{
				Name:  "select",
				Usage: "property to output, repeatable (see " + docsURL + ")",
			},
			&cli.StringSliceFlag{
				Name:  "limit",
				Usage: "limit search by property=value, repeatable; repeated values for one property are OR'd, properties are AND'd",
			},
		},
		Action: runQuery,
		Commands: []*cli.Command{
			{
				Name:      "sku",
				Usage:     "look up SKUs by armSkuName and print a summary line per match",
				ArgsUsage: "armSkuName...",
				Action:    runSKULookup,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
