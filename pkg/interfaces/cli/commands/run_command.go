package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/hydroplan/streamdep/pkg/application/dto"
	"github.com/hydroplan/streamdep/pkg/application/services/depletion"
	"github.com/hydroplan/streamdep/pkg/domain/entities"
	"github.com/hydroplan/streamdep/pkg/infrastructure/events"
	csvrepo "github.com/hydroplan/streamdep/pkg/infrastructure/repositories/csv"
	"github.com/hydroplan/streamdep/pkg/infrastructure/repositories/memory"
	"github.com/hydroplan/streamdep/pkg/interfaces/cli/output"
)

// inputStream is the event stream carrying input-loading events; runs get
// their own UUID streams.
const inputStream = "inputs"

// Config holds configuration for the run command
type Config struct {
	ScenarioFile string
	UsageFile    string
	URFFile      string
	OutputDir    string
	Format       string
	Verbose      bool
	Help         bool
}

// Scenario is the YAML description of one depletion run: the model to use,
// its parameters, and where the input tables live. Relative file paths are
// resolved against the scenario file's directory.
type Scenario struct {
	Model        string  `yaml:"model"`
	UsageFile    string  `yaml:"usage_file"`
	URFFile      string  `yaml:"urf_file"`
	DaysPerMonth float64 `yaml:"days_per_month"`
	TotalMonths  int     `yaml:"total_months"`
	Workers      int     `yaml:"workers"`

	Aquifer struct {
		DistanceToStreamFt      float64 `yaml:"distance_to_stream_ft"`
		SpecificYield           float64 `yaml:"specific_yield"`
		TransmissivityFt2PerDay float64 `yaml:"transmissivity_ft2_per_day"`
		DistanceToBoundaryFt    float64 `yaml:"distance_to_boundary_ft"`
	} `yaml:"aquifer"`

	SDFDays float64 `yaml:"sdf_days"`
}

// RunCommand loads a scenario, runs the configured depletion model, and
// renders the result
type RunCommand struct {
	config Config
	logger *zap.Logger
}

// NewRunCommand creates a new run command with the given configuration
func NewRunCommand(config Config) *RunCommand {
	logger := zap.NewNop()
	if config.Verbose {
		if l, err := zap.NewDevelopment(); err == nil {
			logger = l
		}
	}
	return &RunCommand{config: config, logger: logger}
}

// Execute runs the command
func (c *RunCommand) Execute(ctx context.Context) error {
	defer c.logger.Sync()

	if c.config.Help {
		c.showHelp()
		return nil
	}
	if c.config.ScenarioFile == "" {
		c.showHelp()
		return fmt.Errorf("a scenario file is required")
	}

	scenario, err := c.loadScenario()
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}
	c.logger.Info("scenario loaded",
		zap.String("model", scenario.Model),
		zap.Float64("days_per_month", scenario.DaysPerMonth),
		zap.Int("total_months", scenario.TotalMonths))

	store := events.NewInMemoryEventStore()

	usage, err := c.loadUsage(scenario)
	if err != nil {
		return err
	}
	_ = store.AppendEvent(inputStream, events.NewUsageLoadedEvent(inputStream, usage))
	c.logger.Info("usage loaded",
		zap.Int("months", len(usage)),
		zap.Float64("total_acre_feet", usage.TotalAcreFeet()))

	service := depletion.NewEventDrivenServiceWithConfig(
		depletion.EngineConfig{Workers: scenario.Workers}, store)

	result, lagged, err := c.runModel(ctx, service, store, scenario, usage)
	if err != nil {
		return fmt.Errorf("depletion run failed: %w", err)
	}
	c.logger.Info("run complete",
		zap.String("run_id", result.RunID),
		zap.Int("months_reported", len(result.Series)),
		zap.Duration("elapsed", result.Elapsed))

	return output.Generate(result, output.Config{
		Format:    c.config.Format,
		OutputDir: c.config.OutputDir,
		Reaches:   lagged,
	})
}

func (c *RunCommand) runModel(
	ctx context.Context,
	service *depletion.EventDrivenService,
	store events.EventStore,
	scenario *Scenario,
	usage entities.UsageSeries,
) (*dto.DepletionResult, entities.LaggedResult, error) {
	switch scenario.Model {
	case depletion.ModelInfinite:
		result, err := service.RunInfinite(ctx, usage, entities.GloverParameters{
			DistanceToStream: scenario.Aquifer.DistanceToStreamFt,
			SpecificYield:    scenario.Aquifer.SpecificYield,
			Transmissivity:   scenario.Aquifer.TransmissivityFt2PerDay,
		}, scenario.DaysPerMonth, scenario.TotalMonths)
		return result, nil, err

	case depletion.ModelAlluvial:
		result, err := service.RunAlluvial(ctx, usage, entities.AlluvialParameters{
			GloverParameters: entities.GloverParameters{
				DistanceToStream: scenario.Aquifer.DistanceToStreamFt,
				SpecificYield:    scenario.Aquifer.SpecificYield,
				Transmissivity:   scenario.Aquifer.TransmissivityFt2PerDay,
			},
			DistanceToBoundary: scenario.Aquifer.DistanceToBoundaryFt,
		}, scenario.DaysPerMonth, scenario.TotalMonths)
		return result, nil, err

	case depletion.ModelSDF:
		result, err := service.RunSDF(ctx, usage,
			entities.SDFParameters{SDF: scenario.SDFDays},
			scenario.DaysPerMonth, scenario.TotalMonths)
		return result, nil, err

	case depletion.ModelURF:
		values, err := c.loadURF(scenario)
		if err != nil {
			return nil, nil, err
		}
		_ = store.AppendEvent(inputStream, events.NewURFLoadedEvent(inputStream, values))
		return service.RunURF(ctx, usage, values)

	default:
		return nil, nil, fmt.Errorf("unknown model: %q (expected infinite, alluvial, sdf, or urf)", scenario.Model)
	}
}

func (c *RunCommand) loadScenario() (*Scenario, error) {
	data, err := os.ReadFile(c.config.ScenarioFile)
	if err != nil {
		return nil, err
	}

	scenario := &Scenario{
		DaysPerMonth: 30.42,
		TotalMonths:  120,
		Workers:      1,
	}
	if err := yaml.Unmarshal(data, scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario YAML: %w", err)
	}
	return scenario, nil
}

func (c *RunCommand) loadUsage(scenario *Scenario) (entities.UsageSeries, error) {
	usageFile := c.config.UsageFile
	if usageFile == "" {
		usageFile = c.resolve(scenario.UsageFile)
	}
	if usageFile == "" {
		return nil, fmt.Errorf("no usage file given by flag or scenario")
	}

	series, err := csvrepo.NewLoader().LoadUsage(usageFile)
	if err != nil {
		return nil, fmt.Errorf("error loading usage: %w", err)
	}

	repo := memory.NewUsageRepository()
	if err := repo.LoadUsage(series); err != nil {
		return nil, err
	}
	return repo.GetUsage()
}

func (c *RunCommand) loadURF(scenario *Scenario) ([]entities.URFValue, error) {
	urfFile := c.config.URFFile
	if urfFile == "" {
		urfFile = c.resolve(scenario.URFFile)
	}
	if urfFile == "" {
		return nil, fmt.Errorf("the urf model needs a urf file given by flag or scenario")
	}

	values, err := csvrepo.NewLoader().LoadURF(urfFile)
	if err != nil {
		return nil, fmt.Errorf("error loading URF table: %w", err)
	}

	repo := memory.NewURFRepository(len(values))
	if err := repo.LoadValues(values); err != nil {
		return nil, err
	}
	return repo.GetValues()
}

// resolve makes scenario-relative paths absolute against the scenario file.
func (c *RunCommand) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(filepath.Dir(c.config.ScenarioFile), path)
}

func (c *RunCommand) showHelp() {
	fmt.Println("streamdep - stream depletion calculator")
	fmt.Println()
	fmt.Println("Estimates monthly stream depletion induced by groundwater pumping,")
	fmt.Println("using the Glover analytical solutions, the SDF approximation, or a")
	fmt.Println("tabulated unit response function.")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  streamdep -scenario scenario.yaml [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -scenario string   Path to scenario YAML file (required)")
	fmt.Println("  -usage string      Override the scenario's usage CSV path")
	fmt.Println("  -urf string        Override the scenario's URF CSV path")
	fmt.Println("  -output string     Output directory for json/csv results")
	fmt.Println("  -format string     Output format: text, json, csv (default text)")
	fmt.Println("  -verbose           Enable diagnostic logging")
	fmt.Println("  -help              Show this help message")
	fmt.Println()
	fmt.Println("Scenario example:")
	fmt.Println("  model: infinite")
	fmt.Println("  usage_file: usage.csv")
	fmt.Println("  days_per_month: 30.42")
	fmt.Println("  total_months: 120")
	fmt.Println("  aquifer:")
	fmt.Println("    distance_to_stream_ft: 4000")
	fmt.Println("    specific_yield: 0.2")
	fmt.Println("    transmissivity_ft2_per_day: 35000")
}
