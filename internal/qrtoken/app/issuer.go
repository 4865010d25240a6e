package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aussiebroadwan/qrtoken/internal/qrtoken/service"
	"github.com/aussiebroadwan/qrtoken/pkg/qrtokensdk"
	"github.com/aussiebroadwan/qrtoken/pkg/qrx"
	"github.com/aussiebroadwan/qrtoken/pkg/slogx"
)

// Issuer runs the generate, encode, package and transmit pipeline once.
type Issuer struct {
	cfg    IssuerConfig
	logger *slog.Logger

	issueService *service.IssueService
	transmitter  *service.Transmitter
}

// NewIssuer wires an Issuer that prints its report to out. Logs go to
// stderr so the report stays readable.
func NewIssuer(cfg IssuerConfig, out io.Writer) *Issuer {
	logger := slogx.New(slogx.Config{
		Service: "qrtoken-issuer",
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Output:  os.Stderr,
	})

	return newIssuer(cfg, out, logger)
}

func newIssuer(cfg IssuerConfig, out io.Writer, logger *slog.Logger) *Issuer {
	return &Issuer{
		cfg:    cfg,
		logger: logger,
		issueService: &service.IssueService{
			Length:     cfg.TokenLength,
			Encoder:    qrx.NewEncoder(),
			EmployeeID: cfg.EmployeeID,
			TTL:        cfg.TokenTTL,
		},
		transmitter: &service.Transmitter{
			Client: qrtokensdk.NewSDKClient(cfg.TargetURL),
			Out:    out,
			Logger: logger,
		},
	}
}

// Run issues one token and delivers it. Generation and encoding failures
// are returned. A delivery failure is only returned in strict mode.
func (i *Issuer) Run(ctx context.Context) error {
	rec, err := i.issueService.Issue()
	if err != nil {
		return fmt.Errorf("issue qr token: %w", err)
	}

	err = i.transmitter.Transmit(ctx, rec)

	var terr *qrtokensdk.TransportError
	if errors.As(err, &terr) && !i.cfg.Strict {
		return nil
	}
	return err
}
