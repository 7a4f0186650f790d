package app

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/crawldesk/crawldesk/internal/breadcrumb"
	"github.com/crawldesk/crawldesk/internal/config"
	"github.com/crawldesk/crawldesk/internal/daemon"
	"github.com/crawldesk/crawldesk/internal/web/navigation"
)

// ErrInvalidParamArg is returned for a trail parameter not in key=value form.
var ErrInvalidParamArg = errors.New("parameter must be key=value")

func init() { //nolint: gochecknoinits
	trailCmd.Flags().StringVar(&trailLang, "lang", "", "Language of the labels, the default language if empty")

	routesCmd.AddCommand(checkCmd, trailCmd)
	rootCmd.AddCommand(routesCmd)
}

var (
	trailLang string

	routesCmd = &cobra.Command{
		Use:   "routes",
		Short: "List the breadcrumb route table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			nav, err := loadNavigation()
			if err != nil {
				return err
			}

			return listRoutes(cmd.OutOrStdout(), nav.Table())
		},
	}

	checkCmd = &cobra.Command{
		Use:   "check",
		Short: "Validate the breadcrumb route table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			nav, err := loadNavigation()
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d routes OK\n", nav.Table().Len())

			return errors.Wrap(err, "write")
		},
	}

	trailCmd = &cobra.Command{
		Use:   "trail <path> [key=value ...]",
		Short: "Print the breadcrumb trail and render plan of a path as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseParams(args[1:])
			if err != nil {
				return err
			}

			nav, err := loadNavigation()
			if err != nil {
				return err
			}

			return printTrail(cmd.OutOrStdout(), nav, trailLang, args[0], params)
		},
	}
)

func loadNavigation() (*navigation.Builder, error) {
	c, err := config.ReadConfig(configPath)
	if err != nil {
		return nil, err
	}

	return daemon.NewNavigation(&c)
}

func listRoutes(w io.Writer, table *breadcrumb.Table) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	_, _ = fmt.Fprintln(tw, "PATTERN\tLABEL\tSTRUCTURAL\tLANGUAGES")

	for _, r := range table.Routes() {
		langs := make([]string, 0, len(r.Labels))
		for l := range r.Labels {
			langs = append(langs, l)
		}

		slices.Sort(langs)

		_, _ = fmt.Fprintf(tw, "%s\t%s\t%t\t%s\n", r.Pattern, r.Label, r.Structural, strings.Join(langs, ","))
	}

	return errors.Wrap(tw.Flush(), "write")
}

type trailOutput struct {
	Path      string            `json:"path"`
	Lang      string            `json:"lang"`
	Items     []breadcrumb.Item `json:"items"`
	Wide      []breadcrumb.Node `json:"wide"`
	Narrow    []breadcrumb.Node `json:"narrow"`
	Collapsed bool              `json:"collapsed"`
}

func printTrail(w io.Writer, nav *navigation.Builder, lang, path string, params map[string]string) error {
	if lang == "" {
		lang = nav.Languages().Default()
	} else if supported, ok := nav.Languages().Supported(lang); ok {
		lang = supported
	} else {
		return errors.Errorf("unsupported language %q", lang)
	}

	plan := nav.Plan(lang, path, params)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	return errors.Wrap(enc.Encode(trailOutput{
		Path:      path,
		Lang:      lang,
		Items:     plan.Items,
		Wide:      plan.Wide,
		Narrow:    plan.Narrow,
		Collapsed: plan.Collapsed(),
	}), "encode trail")
}

func parseParams(args []string) (map[string]string, error) {
	params := make(map[string]string, len(args))

	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok || k == "" {
			return nil, errors.Wrap(ErrInvalidParamArg, arg)
		}

		params[k] = v
	}

	return params, nil
}
