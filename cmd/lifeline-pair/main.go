package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"lifeline/config"
	"lifeline/internal/domain/entity"
	"lifeline/internal/errors"
	logs "lifeline/internal/infra/log"
	"lifeline/internal/infra/qrcode"
	"lifeline/internal/pairing"
	"lifeline/internal/usecase"
	"lifeline/internal/util"

	"github.com/google/uuid"
)

// Supported subcommands:
// - pair:      Create a family and wait for a watcher to approve its code
// - heartbeat: Record one activity signal for an existing family
// - cancel:    Delete an unclaimed connection code

const (
	countdownEvery = 15 * time.Second
	cancelTimeout  = 5 * time.Second
)

func main() {
	cfg, err := config.New()
	if err != nil {
		cfg = config.Default()
	}

	pairCmd := flag.NewFlagSet("pair", flag.ExitOnError)
	heartbeatCmd := flag.NewFlagSet("heartbeat", flag.ExitOnError)
	cancelCmd := flag.NewFlagSet("cancel", flag.ExitOnError)

	// pair parameters
	pairName := pairCmd.String("name", "", "Name of the person being monitored")
	pairThreshold := pairCmd.Int("threshold", 0, "Inactivity hours before alerting (0 uses the server default)")
	pairTimezone := pairCmd.String("timezone", "", "IANA timezone for the sleep window")
	pairTokens := pairCmd.String("tokens", "", "Comma separated fallback push tokens")
	pairTimeout := pairCmd.Duration("timeout", cfg.Pairing.HandshakeTimeout, "Longest wait for approval; the code's expiry can end it sooner")
	pairPoll := pairCmd.Duration("poll", cfg.Pairing.PollInterval, "Approval polling interval")
	pairRetries := pairCmd.Int("retries", 0, "New codes to issue after a rejection or timeout")
	pairQR := pairCmd.Bool("qr", true, "Print the connection code as a QR code")

	// heartbeat parameters
	heartbeatFamily := heartbeatCmd.String("family", "", "Family ID")

	// cancel parameters
	cancelCode := cancelCmd.String("code", "", "Connection code to delete")
	cancelFamily := cancelCmd.String("family", "", "Family ID the code was issued to")

	// shared parameters
	baseURLs := make([]*string, 0, 3)
	for _, cmd := range []*flag.FlagSet{pairCmd, heartbeatCmd, cancelCmd} {
		baseURLs = append(baseURLs, cmd.String("base-url", cfg.Client.BaseURL, "Lifeline API base URL"))
	}

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	flags := pairFlags{
		cfg: cfg,
		Pair: pairCmdFlags{
			cmd:       pairCmd,
			baseURL:   baseURLs[0],
			name:      pairName,
			threshold: pairThreshold,
			timezone:  pairTimezone,
			tokens:    pairTokens,
			timeout:   pairTimeout,
			poll:      pairPoll,
			retries:   pairRetries,
			qr:        pairQR,
		},
		Heartbeat: heartbeatFlags{
			cmd:     heartbeatCmd,
			baseURL: baseURLs[1],
			family:  heartbeatFamily,
		},
		Cancel: cancelFlags{
			cmd:     cancelCmd,
			baseURL: baseURLs[2],
			code:    cancelCode,
			family:  cancelFamily,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type pairFlags struct {
	cfg       *config.Config
	Pair      pairCmdFlags
	Heartbeat heartbeatFlags
	Cancel    cancelFlags
}

type pairCmdFlags struct {
	cmd       *flag.FlagSet
	baseURL   *string
	name      *string
	threshold *int
	timezone  *string
	tokens    *string
	timeout   *time.Duration
	poll      *time.Duration
	retries   *int
	qr        *bool
}

type heartbeatFlags struct {
	cmd     *flag.FlagSet
	baseURL *string
	family  *string
}

type cancelFlags struct {
	cmd     *flag.FlagSet
	baseURL *string
	code    *string
	family  *string
}

func runSubcommand(ctx context.Context, flags *pairFlags) error {
	switch os.Args[1] {
	case "pair":
		return handlePair(ctx, flags)
	case "heartbeat":
		return handleHeartbeat(ctx, flags)
	case "cancel":
		return handleCancel(ctx, flags)
	case "help", "-h", "--help":
		printUsage()

		return nil
	default:
		printUsage()

		return errors.Errorf("unknown subcommand: %s", os.Args[1])
	}
}

func newSession(cfg *config.Config, baseURL string) (*pairing.Session, error) {
	logger, err := logs.NewWithWriter(os.Stderr, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "create logger")
	}

	backend, err := pairing.NewHTTPBackend(baseURL, cfg.Client.Timeout)
	if err != nil {
		return nil, err
	}

	return pairing.NewSession(backend, logger), nil
}

func handlePair(ctx context.Context, flags *pairFlags) error {
	f := flags.Pair
	if err := f.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse flags")
	}

	name := strings.TrimSpace(*f.name)
	if name == "" {
		return errors.New("-name is required")
	}

	session, err := newSession(flags.cfg, *f.baseURL)
	if err != nil {
		return err
	}

	in := &usecase.SetupInput{
		SubjectName:     name,
		Settings:        setupSettings(*f.threshold, *f.timezone),
		RecipientTokens: splitTokens(*f.tokens),
	}

	handshake := session.NewHandshake(pairing.Options{Timeout: *f.timeout, PollInterval: *f.poll})

	for attempt := 0; ; attempt++ {
		result, err := runAttempt(ctx, handshake, in, f, flags.cfg)
		if err != nil {
			return err
		}

		switch result.State {
		case pairing.StateApproved:
			fmt.Printf("Approved. Family ID: %s\n", result.FamilyID)

			recorded, err := session.EnsureBaseline(ctx, result.FamilyID)
			if err != nil {
				return err
			}
			if recorded {
				fmt.Println("Activity baseline recorded.")
			}

			return nil
		case pairing.StateCancelled:
			return errors.New("pairing cancelled")
		}

		fmt.Printf("Pairing %s.\n", result.State)
		if !result.State.Retryable() || attempt >= *f.retries || ctx.Err() != nil {
			return errors.Errorf("pairing ended %s", result.State)
		}
		fmt.Println("Issuing a new code...")
	}
}

func runAttempt(
	ctx context.Context,
	handshake *pairing.Handshake,
	in *usecase.SetupInput,
	f pairCmdFlags,
	cfg *config.Config,
) (pairing.Result, error) {
	setup, err := handshake.Start(ctx, in)
	if err != nil {
		return pairing.Result{}, err
	}

	fmt.Printf("Connection code: %s (family %s)\n", setup.Code, setup.Family.ID)
	if *f.qr {
		art, err := qrcode.RenderTerminal(setup.Code, cfg.QRCode.BaseURL, cfg.QRCode.ErrorCorrectionLevel)
		if err != nil {
			return pairing.Result{}, err
		}
		fmt.Print(art)
	}

	countdownCtx, stopCountdown := context.WithCancel(ctx)
	defer stopCountdown()
	go countdown(countdownCtx, handshake.Deadline())

	result, err := handshake.Wait(ctx)
	if err == nil {
		return result, nil
	}
	if ctx.Err() == nil {
		return pairing.Result{}, err
	}

	// Interrupted: withdraw the code before exiting.
	cancelCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cancelTimeout)
	defer cancel()
	if err := handshake.Cancel(cancelCtx); err != nil {
		return pairing.Result{}, errors.Wrap(err, "cancel pairing")
	}

	return pairing.Result{State: pairing.StateCancelled, FamilyID: setup.Family.ID, Code: setup.Code}, nil
}

func countdown(ctx context.Context, deadline time.Time) {
	ticker := time.NewTicker(countdownEvery)
	defer ticker.Stop()

	fmt.Printf("Waiting for approval (%s left)...\n", util.FormatDuration(util.Remaining(deadline, time.Now())))
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			left := util.Remaining(deadline, now)
			if left == 0 {
				return
			}
			fmt.Printf("  %s left\n", util.FormatDuration(left))
		}
	}
}

func setupSettings(threshold int, timezone string) *entity.MonitorSettings {
	if threshold <= 0 && timezone == "" {
		return nil
	}
	if threshold <= 0 {
		threshold = config.DefaultAlertThresholdHours
	}

	return &entity.MonitorSettings{
		MonitoringEnabled:   true,
		AlertThresholdHours: threshold,
		Timezone:            timezone,
	}
}

func splitTokens(raw string) []string {
	var tokens []string
	for _, token := range strings.Split(raw, ",") {
		if token = strings.TrimSpace(token); token != "" {
			tokens = append(tokens, token)
		}
	}

	return tokens
}

func handleHeartbeat(ctx context.Context, flags *pairFlags) error {
	f := flags.Heartbeat
	if err := f.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse flags")
	}

	familyID, err := uuid.Parse(*f.family)
	if err != nil {
		return errors.Wrap(err, "-family must be a family ID")
	}

	session, err := newSession(flags.cfg, *f.baseURL)
	if err != nil {
		return err
	}

	if _, err := session.EnsureBaseline(ctx, familyID); err != nil {
		return err
	}
	fmt.Println("Activity recorded.")

	return nil
}

func handleCancel(ctx context.Context, flags *pairFlags) error {
	f := flags.Cancel
	if err := f.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse flags")
	}

	if *f.code == "" {
		return errors.New("-code is required")
	}

	familyID, err := uuid.Parse(*f.family)
	if err != nil {
		return errors.Wrap(err, "-family must be a family ID")
	}

	backend, err := pairing.NewHTTPBackend(*f.baseURL, flags.cfg.Client.Timeout)
	if err != nil {
		return err
	}

	if err := backend.CancelPairing(ctx, *f.code, familyID); err != nil {
		return err
	}
	fmt.Printf("Code %s cancelled.\n", *f.code)

	return nil
}

func printUsage() {
	fmt.Println(`Lifeline pairing tool

Usage:
  lifeline-pair <command> [options]

Commands:
  pair       Create a family and wait for a watcher to approve its code
  heartbeat  Record one activity signal for an existing family
  cancel     Delete an unclaimed connection code

Examples:
  # Pair and allow one retry after a rejection or timeout
  lifeline-pair pair -name "Grandma" -threshold 12 -timezone Europe/Berlin -retries 1

  # Record activity
  lifeline-pair heartbeat -family 3f2b...

  # Withdraw a code
  lifeline-pair cancel -code 0427 -family 3f2b...

Use "lifeline-pair <command> -h" for more information about a command.`)
}
