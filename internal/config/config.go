package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aurceive/d2-crafting-cost/internal/domain"
	"github.com/aurceive/d2-crafting-cost/internal/logging"

	"github.com/joho/godotenv"
)

const (
	DefaultConfigName = "crafting_config.yaml"

	EnvConfig   = "CRAFTING_COST_CONFIG"
	EnvLogLevel = "CRAFTING_COST_LOG_LEVEL"

	FormatTable = "table"
	FormatJSON  = "json"
)

type Config struct {
	Levels domain.Configuration

	Format string
	Steps  bool

	XLSX    bool
	OutPath string
	OutDir  string

	SourcesPath string

	// Resource limits the source suggestions to one resource when set.
	Resource *domain.Resource
	// Amount replaces the range total for Resource when set.
	Amount *int

	LogLevel string

	// ConfigPath is the file that was actually read, empty if none.
	ConfigPath string
}

type flagValues struct {
	configPath stringOpt
	from       intOpt
	to         intOpt
	format     stringOpt
	steps      boolOpt
	xlsx       boolOpt
	out        stringOpt
	outDir     stringOpt
	sources    stringOpt
	resource   stringOpt
	amount     intOpt
	logLevel   stringOpt
}

func newFlagSet(fv *flagValues) *flag.FlagSet {
	fs := flag.NewFlagSet("crafting_cost", flag.ContinueOnError)
	fs.SetOutput(io.Discard) // errors are returned, usage is printed by PrintUsage

	fs.Var(&fv.configPath, "config", "path to config file, .yaml or .toml (default: "+DefaultConfigName+" in the app root)")
	fs.Var(&fv.from, "from", "start level (default 1)")
	fs.Var(&fv.to, "to", "end level (default 20)")
	fs.Var(&fv.format, "format", "output format: table or json (default table)")
	fs.Var(&fv.steps, "steps", "include the per-level breakdown")
	fs.Var(&fv.xlsx, "xlsx", "also export an xlsx workbook")
	fs.Var(&fv.out, "out", "xlsx output path (implies -xlsx)")
	fs.Var(&fv.outDir, "out-dir", "xlsx output directory (default: output/crafting_cost)")
	fs.Var(&fv.sources, "sources", "extra sources yaml appended to the builtin table")
	fs.Var(&fv.resource, "resource", "only suggest sources for this resource (e.g. glimmer, \"enh core\")")
	fs.Var(&fv.amount, "amount", "with -resource: amount to gather instead of the range total")
	fs.Var(&fv.logLevel, "log-level", "log level: debug, info, warn, error (default info)")
	return fs
}

// PrintUsage writes flag help to w.
func PrintUsage(w io.Writer) {
	var fv flagValues
	fs := newFlagSet(&fv)
	fs.SetOutput(w)
	fmt.Fprintln(w, "Usage of crafting_cost:")
	fs.PrintDefaults()
}

// Load builds the run configuration. Later sources win:
// defaults, environment (optionally from appRoot/.env), config file, explicit flags.
func Load(appRoot string, args []string) (Config, error) {
	var fv flagValues
	fs := newFlagSet(&fv)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	if err := loadDotEnv(filepath.Join(appRoot, ".env")); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Levels:   domain.DefaultConfiguration(),
		Format:   FormatTable,
		OutDir:   filepath.Join("output", "crafting_cost"),
		LogLevel: strings.TrimSpace(os.Getenv(EnvLogLevel)),
	}

	path := strings.TrimSpace(fv.configPath.v)
	required := fv.configPath.set
	if !required {
		if env := strings.TrimSpace(os.Getenv(EnvConfig)); env != "" {
			path = env
			required = true
		}
	}
	if path == "" {
		path = DefaultConfigName
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(appRoot, path)
	}

	fc, found, err := loadFileConfig(path, required)
	if err != nil {
		return Config{}, err
	}
	if found {
		cfg.ConfigPath = path
		applyFile(&cfg, fc)
	}
	applyFlags(&cfg, &fv)

	if err := finish(&cfg, &fv); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func applyFile(cfg *Config, fc FileConfig) {
	if fc.StartLevel != nil {
		cfg.Levels.StartLevel = *fc.StartLevel
	}
	if fc.EndLevel != nil {
		cfg.Levels.EndLevel = *fc.EndLevel
	}
	if s := strings.TrimSpace(fc.Format); s != "" {
		cfg.Format = s
	}
	if fc.Steps != nil {
		cfg.Steps = *fc.Steps
	}
	if fc.XLSX != nil {
		cfg.XLSX = *fc.XLSX
	}
	cfg.OutPath = strings.TrimSpace(fc.OutPath)
	if s := strings.TrimSpace(fc.OutDir); s != "" {
		cfg.OutDir = s
	}
	cfg.SourcesPath = strings.TrimSpace(fc.SourcesPath)
	if s := strings.TrimSpace(fc.LogLevel); s != "" {
		cfg.LogLevel = s
	}
}

func applyFlags(cfg *Config, fv *flagValues) {
	if fv.from.set {
		cfg.Levels.StartLevel = fv.from.v
	}
	if fv.to.set {
		cfg.Levels.EndLevel = fv.to.v
	}
	if fv.format.set {
		cfg.Format = strings.TrimSpace(fv.format.v)
	}
	if fv.steps.set {
		cfg.Steps = fv.steps.v
	}
	if fv.xlsx.set {
		cfg.XLSX = fv.xlsx.v
	}
	if fv.out.set {
		cfg.OutPath = strings.TrimSpace(fv.out.v)
	}
	if fv.outDir.set {
		cfg.OutDir = strings.TrimSpace(fv.outDir.v)
	}
	if fv.sources.set {
		cfg.SourcesPath = strings.TrimSpace(fv.sources.v)
	}
	if fv.logLevel.set {
		cfg.LogLevel = strings.TrimSpace(fv.logLevel.v)
	}
}

func finish(cfg *Config, fv *flagValues) error {
	cfg.Format = strings.ToLower(cfg.Format)
	if cfg.Format != FormatTable && cfg.Format != FormatJSON {
		return fmt.Errorf("unsupported format %q (supported: %s, %s)", cfg.Format, FormatTable, FormatJSON)
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return err
	}
	if cfg.OutPath != "" {
		cfg.XLSX = true
	}

	if fv.resource.set {
		r, err := domain.ParseResource(fv.resource.v)
		if err != nil {
			return fmt.Errorf("-resource: %w", err)
		}
		cfg.Resource = &r
	}
	if fv.amount.set {
		if cfg.Resource == nil {
			return errors.New("-amount requires -resource")
		}
		if fv.amount.v < 0 {
			return fmt.Errorf("-amount must be >= 0, got %d", fv.amount.v)
		}
		amount := fv.amount.v
		cfg.Amount = &amount
	}
	return nil
}
