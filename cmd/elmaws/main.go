package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/elmaws/elmaws"
	"github.com/elmaws/elmaws/metadata"
)

const version = "0.3.0"

type CLI struct {
	Version VersionCmd `cmd:"" help:"Print version information."`
	Gen     GenCmd     `cmd:"" help:"Generate Elm modules from service definitions."`
	Check   CheckCmd   `cmd:"" help:"Validate service definitions without generating files."`
	Schema  SchemaCmd  `cmd:"" help:"Print the JSON Schema for definition files."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run(logger *zap.Logger) error {
	fmt.Println(version)
	return nil
}

type GenCmd struct {
	Config string `help:"Path to the configuration file." default:"elmaws.yaml" short:"c"`
	Out    string `help:"Output directory override." short:"o"`
}

func (c *GenCmd) Run(logger *zap.Logger) error {
	cfg, err := elmaws.LoadConfig(c.Config)
	if err != nil {
		return err
	}
	if c.Out != "" {
		cfg.OutDir = c.Out
	}

	result, err := elmaws.FromFiles(cfg.Definitions...).
		WithModulePrefix(cfg.ModulePrefix).
		WithProvider(cfg.Provider).
		ToDir(cfg.OutDir)
	if err != nil {
		return err
	}

	for _, mod := range result.Modules {
		logger.Info("wrote module",
			zap.String("module", mod.Name),
			zap.String("path", mod.Path))
	}
	logger.Info("generation complete",
		zap.Int("modules", len(result.Modules)),
		zap.String("out", cfg.OutDir))
	return nil
}

type CheckCmd struct {
	Files []string `arg:"" help:"Definition files to validate."`
}

func (c *CheckCmd) Run(logger *zap.Logger) error {
	for _, path := range c.Files {
		def, err := metadata.Load(path)
		if err != nil {
			return err
		}
		shapes, err := def.ShapeList()
		if err != nil {
			return err
		}
		logger.Info("definition ok",
			zap.String("file", path),
			zap.String("service", def.Metadata.EndpointPrefix),
			zap.Int("shapes", len(shapes)))
	}
	return nil
}

type SchemaCmd struct{}

func (c *SchemaCmd) Run(logger *zap.Logger) error {
	data, err := json.MarshalIndent(metadata.DefinitionSchema(), "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("elmaws"),
		kong.Description("Elm client module generator for AWS-style APIs."),
		kong.UsageOnError(),
	)

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "elmaws: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := ctx.Run(logger); err != nil {
		logger.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}
