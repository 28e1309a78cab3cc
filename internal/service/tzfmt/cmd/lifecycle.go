package main

import (
	"context"
	"errors"
	"fmt"

	"payroll/internal/pkg/config"
	"payroll/internal/service/tzfmt"

	"go.uber.org/fx"
)

// startApp starts an fx application with proper context handling
func startApp(app *fx.App, serviceName string) error {
	ctx, cancel := context.WithTimeout(context.Background(), fx.DefaultTimeout)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("failed to start %s: %w", serviceName, err)
	}

	return nil
}

// stopApp stops an fx application with proper context handling
func stopApp(app *fx.App, serviceName string) error {
	ctx, cancel := context.WithTimeout(context.Background(), fx.DefaultTimeout)
	defer cancel()

	if err := app.Stop(ctx); err != nil {
		return fmt.Errorf("failed to stop %s: %w", serviceName, err)
	}

	return nil
}

// withRunner builds the application, hands the runner to fn and shuts down
func withRunner(configPath string, fn func(runner *tzfmt.Runner) error) (err error) {
	var runner *tzfmt.Runner

	app := fx.New(
		config.WithPath(configPath),
		config.Module,
		tzfmt.App,
		fx.NopLogger,
		fx.Populate(&runner),
	)
	if err := app.Err(); err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	if err := startApp(app, "tzfmt"); err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, stopApp(app, "tzfmt"))
	}()

	return fn(runner)
}
