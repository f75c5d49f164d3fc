// Copyright (c) 2025 HireSynapse
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"errors"
	"os"

	"agentceo/cli/internal/auth"
	"agentceo/cli/internal/backend"
	"agentceo/cli/internal/config"
	"agentceo/cli/internal/console"
	apperrors "agentceo/cli/internal/errors"
	"agentceo/cli/internal/httperrors"
	"agentceo/cli/internal/keychain"
	"agentceo/cli/internal/logging"

	"github.com/pterm/pterm"
)

// errReported marks an error that was already shown to the user.
var errReported = errors.New("reported")

// app wires the session, the API client and the console for one invocation.
type app struct {
	cfg     config.Config
	log     *pterm.Logger
	baseURL string
	session *auth.Service
	console *console.Console
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flagAPIURL != "" {
		cfg.APIURL = flagAPIURL
	}

	level := cfg.LogLevel
	if flagVerbose {
		level = "debug"
	}
	log := logging.NewLogger(os.Stderr, level)

	baseURL, err := cfg.Manifest().BaseURL()
	if err != nil {
		return nil, err
	}

	km, err := keychain.NewManager()
	if err != nil {
		return nil, err
	}

	api := backend.New(baseURL, cfg.Endpoints, km,
		backend.WithTimeout(cfg.Timeout()),
		backend.WithLogger(log),
	)
	log.Debug("client ready", log.Args("api", baseURL, "timeout", cfg.Timeout().String()))

	return &app{
		cfg:     cfg,
		log:     log,
		baseURL: baseURL,
		session: auth.NewService(km, api, log),
		console: console.New(api),
	}, nil
}

// requireSession prints the sign-in hint when no token is stored.
func (a *app) requireSession() error {
	_, err := a.session.RequireToken()
	if err == nil {
		return nil
	}
	if apperrors.Is(err, apperrors.NotAuthenticated) {
		pterm.Warning.Println(err.Error())
		pterm.Println("   Run 'agentceo login' to get started.")
		return errReported
	}
	return err
}

var actionContext = map[console.Action]string{
	console.ActionLoad:    "loading ideas",
	console.ActionPropose: "proposing an idea",
	console.ActionApprove: "approving an idea",
	console.ActionExecute: "executing an idea",
}

// report shows err as a "<Action> failed: <message>" alert.
func (a *app) report(err error) error {
	var ae *console.ActionError
	if errors.As(err, &ae) {
		return a.reportAs(ae.Label(), actionContext[ae.Action], ae.Err)
	}
	return a.reportAs("", "talking to the agent service", err)
}

// reportAs prints "<label>: <message>", preceded by troubleshooting hints when
// the service could not be reached.
func (a *app) reportAs(label, doing string, err error) error {
	if apperrors.Is(err, apperrors.NetworkFailed) {
		httperrors.ShowNetworkError(err, doing, a.baseURL)
	}
	pterm.Error.Println(logging.PresentError(label, err))
	return errReported
}
