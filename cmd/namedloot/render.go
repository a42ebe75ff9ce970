// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 NamedLoot Contributors

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/namedloot/namedloot/internal/labeler"
	"github.com/namedloot/namedloot/pkg/label"
	"github.com/namedloot/namedloot/pkg/rule"
)

const tracerName = "github.com/namedloot/namedloot/cmd/namedloot"

// Output formats for render.
const (
	outputANSI  = "ansi"
	outputPlain = "plain"
	outputJSON  = "json"
)

type renderOptions struct {
	name    string
	count   int
	color   string
	rarity  string
	when    string
	format  string
	output  string
	profile string
	metrics bool
}

// renderedLabel is the JSON shape of a render result.
type renderedLabel struct {
	Labeled bool        `json:"labeled"`
	Source  string      `json:"source"`
	Group   *int        `json:"group,omitempty"`
	Text    string      `json:"text"`
	Runs    []label.Run `json:"runs"`
}

// NewRenderCmd creates the render subcommand.
func NewRenderCmd() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the label for one item",
		Long: `Render the label the current settings produce for one item.

An extra rule can be tried without editing the settings file:
  namedloot render --name "Iron Ore" --count 12 \
    --when 'name contains "ore" && count > 10' --format '&a{name} &7x{count}'

The ad-hoc rule is evaluated before the rules from the settings file.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.name, "name", "", "item display name")
	f.IntVar(&opts.count, "count", 1, "stack size")
	f.StringVar(&opts.color, "color", "", "item's own name color (#RRGGBB, &x or a color name)")
	f.StringVar(&opts.rarity, "rarity", "", "item rarity (common, uncommon, rare, epic)")
	f.StringVar(&opts.when, "when", "", "ad-hoc rule condition expression")
	f.StringVar(&opts.format, "format", "", "template for the ad-hoc rule")
	f.StringVarP(&opts.output, "output", "o", outputANSI, "output format (ansi, plain, json)")
	f.StringVar(&opts.profile, "profile", "auto", "terminal color profile for ansi output (auto, truecolor, 256, 16, none)")
	f.BoolVar(&opts.metrics, "metrics", false, "print this render's selection counts after the label")

	return cmd
}

func (o *renderOptions) item() (label.Item, error) {
	c, ok := label.ParseColor(o.color)
	if !ok {
		return label.Item{}, oops.Code("RENDER_INVALID_ITEM").With("color", o.color).Errorf("invalid color %q", o.color)
	}
	r, ok := label.ParseRarity(o.rarity)
	if !ok {
		return label.Item{}, oops.Code("RENDER_INVALID_ITEM").With("rarity", o.rarity).Errorf("unknown rarity %q", o.rarity)
	}
	return label.Item{
		Name:   o.name,
		Count:  o.count,
		Style:  label.Style{Color: c},
		Rarity: r,
	}, nil
}

// adHocRules puts the --when rule ahead of the configured rules.
func (o *renderOptions) adHocRules(configured rule.Set) (rule.Set, error) {
	if o.when == "" {
		return configured, nil
	}
	if o.format == "" {
		return rule.Set{}, oops.Code("RENDER_FORMAT_REQUIRED").
			Hint("pass --format with --when").
			Errorf("ad-hoc rule has no template")
	}
	g, err := rule.GroupFromWhen(o.when, o.format)
	if err != nil {
		return rule.Set{}, err
	}
	g.Leader = -1
	return rule.NewSet(append([]rule.Group{g}, configured.Groups()...)...), nil
}

func runRender(cmd *cobra.Command, opts *renderOptions) error {
	ctx, span := otel.Tracer(tracerName).Start(cmd.Context(), "render",
		trace.WithAttributes(
			attribute.String("item.name", opts.name),
			attribute.Int("item.count", opts.count),
		))
	defer span.End()

	switch opts.output {
	case outputANSI, outputPlain, outputJSON:
	default:
		return oops.Code("RENDER_INVALID_OUTPUT").With("output", opts.output).Errorf("unknown output format %q", opts.output)
	}

	out := cmd.OutOrStdout()
	profile, err := colorProfile(opts.profile, out)
	if err != nil {
		return err
	}

	s, err := loadSession(cmd)
	if err != nil {
		return err
	}

	item, err := opts.item()
	if err != nil {
		return err
	}

	settings := s.settings
	if settings.Rules, err = opts.adHocRules(settings.Rules); err != nil {
		return err
	}

	var (
		reg        *prometheus.Registry
		labelerOpt []labeler.Option
	)
	if opts.metrics {
		selections := labeler.NewSelectionsCounter()
		reg = prometheus.NewRegistry()
		reg.MustRegister(selections)
		labelerOpt = append(labelerOpt, labeler.WithSelections(selections))
	}

	res, ok := labeler.New(settings, labelerOpt...).Label(item)
	span.SetAttributes(attribute.String("label.source", res.Source.String()))
	s.logger.DebugContext(ctx, "label selected",
		"item", item.Name,
		"count", item.Count,
		"source", res.Source.String(),
	)

	if err := writeLabel(out, opts.output, profile, res, ok); err != nil {
		return err
	}
	if reg != nil {
		return writeMetrics(out, reg)
	}
	return nil
}

// colorProfile resolves the --profile flag. auto honors NO_COLOR and asks
// the terminal when writing to one; other writers get 24-bit color.
func colorProfile(name string, w io.Writer) (termenv.Profile, error) {
	switch name {
	case "truecolor":
		return termenv.TrueColor, nil
	case "256":
		return termenv.ANSI256, nil
	case "16":
		return termenv.ANSI, nil
	case "none":
		return termenv.Ascii, nil
	case "auto", "":
		if os.Getenv("NO_COLOR") != "" {
			return termenv.Ascii, nil
		}
		if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
			return termenv.NewOutput(f).EnvColorProfile(), nil
		}
		return termenv.TrueColor, nil
	default:
		return termenv.Ascii, oops.Code("RENDER_INVALID_PROFILE").With("profile", name).Errorf("unknown color profile %q", name)
	}
}

func writeLabel(w io.Writer, format string, profile termenv.Profile, res labeler.Result, ok bool) error {
	switch format {
	case outputJSON:
		doc := renderedLabel{
			Labeled: ok,
			Source:  res.Source.String(),
			Text:    res.Label.Text(),
			Runs:    res.Label.Runs(),
		}
		if res.Source == labeler.SourceRule {
			group := res.Match.Group
			doc.Group = &group
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return oops.Code("RENDER_WRITE_FAILED").Wrapf(err, "encode label")
		}
		return nil
	case outputPlain:
		if !ok {
			return nil
		}
		_, err := fmt.Fprintln(w, res.Label.Text())
		return err
	default:
		if !ok {
			return nil
		}
		_, err := fmt.Fprintln(w, res.Label.Render(profile))
		return err
	}
}

// writeMetrics prints every counter and gauge sample in reg, one per line.
// Histograms and summaries are skipped.
func writeMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return oops.Code("RENDER_METRICS_FAILED").Wrapf(err, "gather metrics")
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var value float64
			switch {
			case m.GetCounter() != nil:
				value = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				value = m.GetGauge().GetValue()
			default:
				continue
			}

			pairs := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				pairs = append(pairs, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
			}
			if _, err := fmt.Fprintf(w, "%s{%s} %g\n", mf.GetName(), strings.Join(pairs, ","), value); err != nil {
				return err
			}
		}
	}
	return nil
}
