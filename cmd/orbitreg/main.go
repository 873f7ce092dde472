package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Astrea-Labs/orbitreg/pkg/assessment"
	"github.com/Astrea-Labs/orbitreg/pkg/catalog"
	"github.com/Astrea-Labs/orbitreg/pkg/config"
	"github.com/Astrea-Labs/orbitreg/pkg/crossref"
	"github.com/Astrea-Labs/orbitreg/pkg/match"
	"github.com/Astrea-Labs/orbitreg/pkg/modules"
	"github.com/Astrea-Labs/orbitreg/pkg/profile"
	"github.com/Astrea-Labs/orbitreg/pkg/scoring"
	"github.com/Astrea-Labs/orbitreg/pkg/store"
)

// Dispatcher
func main() {
	os.Exit(Run(os.Args, os.Stdout, os.Stderr))
}

// Run is the entrypoint for testing.
func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 2 {
		printUsage(stderr)
		return 2
	}

	switch args[1] {
	case "assess":
		return runAssessCmd(args[2:], stdout, stderr)
	case "lint":
		return runLintCmd(args[2:], stdout, stderr)
	case "catalog":
		return runCatalogCmd(args[2:], stdout, stderr)
	case "history":
		return runHistoryCmd(args[2:], stdout, stderr)
	case "help", "--help", "-h":
		printUsage(stdout)
		return 0
	default:
		_, _ = fmt.Fprintf(stderr, "Unknown command: %s\n", args[1])
		printUsage(stderr)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "orbitreg - space regulatory applicability and compliance engine")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  orbitreg assess -profile <profile.yaml> [-framework EU_SPACE_ACT] [-assessments <state.json>] [-db <path>]")
	fmt.Fprintln(w, "  orbitreg lint [-framework <id>]")
	fmt.Fprintln(w, "  orbitreg catalog [-framework <id>]")
	fmt.Fprintln(w, "  orbitreg history -db <path> [-limit 20]")
	fmt.Fprintln(w, "")
}

func allFrameworks() []catalog.Framework {
	return []catalog.Framework{
		catalog.FrameworkEU,
		catalog.FrameworkInternational,
		catalog.FrameworkUK,
		catalog.FrameworkUS,
		catalog.FrameworkNIS2,
	}
}

func runAssessCmd(args []string, stdout, stderr io.Writer) int {
	cfg := config.Load()
	fs := flag.NewFlagSet("assess", flag.ContinueOnError)
	fs.SetOutput(stderr)
	profilePath := fs.String("profile", "", "path to the operator profile YAML")
	framework := fs.String("framework", cfg.DefaultFramework, "framework identifier, or 'all'")
	assessmentsPath := fs.String("assessments", "", "optional path to a requirement assessment state JSON")
	dbPath := fs.String("db", "", "optional SQLite database to persist the result in")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *profilePath == "" {
		_, _ = fmt.Fprintln(stderr, "assess: -profile is required")
		return 2
	}

	raw, err := os.ReadFile(*profilePath)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "assess: read profile: %v\n", err)
		return 1
	}
	var rawProfile profile.OperatorProfile
	if err := yaml.Unmarshal(raw, &rawProfile); err != nil {
		_, _ = fmt.Fprintf(stderr, "assess: decode profile: %v\n", err)
		return 1
	}
	p, err := profile.Validate(rawProfile)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "assess: invalid profile: %v\n", err)
		return 1
	}

	var assessments []scoring.RequirementAssessment
	if *assessmentsPath != "" {
		data, err := os.ReadFile(*assessmentsPath)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "assess: read assessments: %v\n", err)
			return 1
		}
		if err := json.Unmarshal(data, &assessments); err != nil {
			_, _ = fmt.Fprintf(stderr, "assess: decode assessments: %v\n", err)
			return 1
		}
	}

	ctx := context.Background()
	engine, err := assessment.NewEngine()
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "assess: %v\n", err)
		return 1
	}

	var results []*assessment.Result
	if strings.EqualFold(*framework, "all") {
		byFramework := engine.PerformMultiFramework(ctx, allFrameworks(), p, assessments)
		for _, fw := range allFrameworks() {
			if res, ok := byFramework[fw]; ok {
				results = append(results, res)
			}
		}
	} else {
		res, err := engine.PerformAssessment(ctx, catalog.Framework(*framework), p, assessments)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "assess: %v\n", err)
			return 1
		}
		results = append(results, res)
	}

	if *dbPath != "" {
		st, err := store.Open(*dbPath)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "assess: open store: %v\n", err)
			return 1
		}
		defer func() { _ = st.Close() }()
		for _, res := range results {
			if err := st.Save(ctx, res, assessments); err != nil {
				_, _ = fmt.Fprintf(stderr, "assess: persist result: %v\n", err)
				return 1
			}
		}
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if len(results) == 1 {
		if err := enc.Encode(results[0]); err != nil {
			_, _ = fmt.Fprintf(stderr, "assess: encode result: %v\n", err)
			return 1
		}
		return 0
	}
	if err := enc.Encode(results); err != nil {
		_, _ = fmt.Fprintf(stderr, "assess: encode results: %v\n", err)
		return 1
	}
	return 0
}

func runLintCmd(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("lint", flag.ContinueOnError)
	fs.SetOutput(stderr)
	framework := fs.String("framework", "all", "framework identifier, or 'all'")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	frameworks := allFrameworks()
	if !strings.EqualFold(*framework, "all") {
		frameworks = []catalog.Framework{catalog.Framework(*framework)}
	}

	evaluator, err := match.NewEvaluator()
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "lint: init expression evaluator: %v\n", err)
		return 1
	}

	total := 0
	for _, fw := range frameworks {
		cat, err := catalog.Load(fw)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "lint: %v\n", err)
			return 1
		}

		var warnings []catalog.Warning
		warnings = append(warnings, cat.Lint()...)
		warnings = append(warnings, crossref.Lint(cat)...)
		warnings = append(warnings, evaluator.LintExpressions(cat)...)
		if fw == catalog.FrameworkEU {
			warnings = append(warnings, modules.LintDefinitions(modules.EUModules())...)
		}

		for _, w := range warnings {
			_, _ = fmt.Fprintf(stdout, "%s: %s\n", fw, w)
		}
		total += len(warnings)
	}

	if total > 0 {
		_, _ = fmt.Fprintf(stdout, "%d warning(s)\n", total)
		return 1
	}
	_, _ = fmt.Fprintln(stdout, "all catalogs clean")
	return 0
}

func runCatalogCmd(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("catalog", flag.ContinueOnError)
	fs.SetOutput(stderr)
	framework := fs.String("framework", "all", "framework identifier, or 'all'")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	frameworks := allFrameworks()
	if !strings.EqualFold(*framework, "all") {
		frameworks = []catalog.Framework{catalog.Framework(*framework)}
	}

	for _, fw := range frameworks {
		cat, err := catalog.Load(fw)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "catalog: %v\n", err)
			return 1
		}
		snap, err := cat.Snapshot()
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "catalog: snapshot %s: %v\n", fw, err)
			return 1
		}
		_, _ = fmt.Fprintf(stdout, "%-18s v%-8s %3d requirements  %s\n",
			fw, cat.Version, len(cat.Requirements), snap.Hash)
	}
	return 0
}

func runHistoryCmd(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	fs.SetOutput(stderr)
	dbPath := fs.String("db", config.Load().DatabasePath, "SQLite database path")
	limit := fs.Int("limit", 20, "maximum rows")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	st, err := store.Open(*dbPath)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "history: open store: %v\n", err)
		return 1
	}
	defer func() { _ = st.Close() }()

	rows, err := st.List(context.Background(), *limit)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "history: %v\n", err)
		return 1
	}
	for _, r := range rows {
		_, _ = fmt.Fprintf(stdout, "%s  %-18s  %s  risk=%-8s  overall=%.0f\n",
			r.GeneratedAt.Format("2006-01-02T15:04:05Z"), r.Framework, r.ID, r.RiskLevel, r.OverallScore)
	}
	return 0
}
