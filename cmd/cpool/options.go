package main

import (
	"fmt"

	"github.com/dhamidi/cpool/config"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("cpool")

type globalOptions struct {
	verbose    int
	configPath string
	logFile    string
	jobs       int

	cfg *config.Config
}

// setup loads the configuration, applies flag overrides and configures logging.
func (o *globalOptions) setup(cmd *cobra.Command, args []string) error {
	var err error
	if o.configPath != "" {
		o.cfg, err = config.Load(o.configPath)
	} else {
		o.cfg, err = config.Find(".")
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if o.verbose > 0 {
		o.cfg.Verbosity = o.verbose
	}
	if o.logFile != "" {
		o.cfg.LogFile = o.logFile
	}
	if o.jobs > 0 {
		o.cfg.Jobs = o.jobs
	}

	var logPath *string
	if o.cfg.LogFile != "" {
		logPath = &o.cfg.LogFile
	}
	commonlog.Configure(o.cfg.Verbosity, logPath)

	if o.cfg.Path != "" {
		log.Debugf("loaded configuration from %s", o.cfg.Path)
	}
	return nil
}
