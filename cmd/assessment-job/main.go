package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/ksense-health/assessment/pkg/assessment"
	"github.com/ksense-health/assessment/pkg/common/config"
	"github.com/ksense-health/assessment/pkg/common/logger"
	"github.com/ksense-health/assessment/pkg/registry"
)

func main() {
	cfg := config.Load()
	log := logger.Init(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	rules, err := assessment.LoadRuleset(cfg.RiskRulesFile)
	if err != nil {
		log.WithError(err).Fatal("failed to load risk ruleset")
	}

	client := registry.NewClient(cfg.BaseURL, cfg.APIKey, cfg.RequestTimeout, log)
	service := assessment.NewService(client, client, rules, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	outcome, err := service.Run(ctx)
	if err != nil {
		log.WithError(err).Fatal("assessment run failed")
	}

	// Echo the server's result document to the operator.
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, outcome, "", "  "); err != nil {
		fmt.Println(string(outcome))
		return
	}
	fmt.Println(pretty.String())
}
