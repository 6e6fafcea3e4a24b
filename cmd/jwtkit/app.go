package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/dmitrymomot/jwtkit/pkg/config"
	"github.com/dmitrymomot/jwtkit/pkg/environment"
	"github.com/dmitrymomot/jwtkit/pkg/jwt"
	"github.com/dmitrymomot/jwtkit/pkg/logger"
)

// Build information, set via ldflags.
var Version = "dev"

var (
	errVerificationFailed = errors.New("token verification failed")
	errPayloadTooLarge    = errors.New("payload too large")
)

const (
	loggerKey = "logger"
	envKey    = "env"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:     "jwtkit",
		Usage:    "Issue, verify and inspect HS256 tokens",
		Version:  Version,
		Metadata: map[string]any{},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "secret",
				Usage:   "HMAC signing secret",
				EnvVars: []string{"JWT_SECRET"},
			},
			&cli.StringFlag{
				Name:    "env",
				Usage:   "Deployment environment: development, staging, production",
				EnvVars: []string{"APP_ENV"},
				Value:   string(environment.Development),
			},
			&cli.StringSliceFlag{
				Name:  "env-file",
				Usage: "Load variables from a .env file before anything else (repeatable)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: debug, info, warn, error",
				Value: "warn",
			},
		},
		Commands: []*cli.Command{
			generateCommand(),
			verifyCommand(),
			inspectCommand(),
		},
		Before: func(c *cli.Context) error {
			if files := c.StringSlice("env-file"); len(files) > 0 {
				if err := config.LoadEnv(files...); err != nil {
					return err
				}
			}
			env, err := resolveEnvironment(c)
			if err != nil {
				return err
			}
			c.App.Metadata[envKey] = env
			c.App.Metadata[loggerKey] = logger.New(
				logger.WithEnvironment(environment.Parse(env), "jwtkit"),
				logger.WithFormat(logger.FormatText),
				logger.WithLevelName(c.String("log-level")),
				logger.WithOutput(c.App.ErrWriter),
			)
			return nil
		},
	}
}

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:      "generate",
		Aliases:   []string{"gen"},
		Usage:     "Issue a token for a JSON object payload",
		ArgsUsage: " ",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "payload",
				Aliases: []string{"p"},
				Usage:   "JSON object with the claims; read from stdin when omitted",
			},
			&cli.BoolFlag{
				Name:  "with-id",
				Usage: "Add a random jti claim",
			},
		},
		Action: func(c *cli.Context) error {
			svc, err := newService(c)
			if err != nil {
				return err
			}

			raw := c.String("payload")
			if raw == "" {
				data, err := io.ReadAll(io.LimitReader(c.App.Reader, jwt.MaxTokenLength+1))
				if err != nil {
					return fmt.Errorf("read payload: %w", err)
				}
				if len(data) > jwt.MaxTokenLength {
					return fmt.Errorf("%w: more than %d bytes on stdin", errPayloadTooLarge, jwt.MaxTokenLength)
				}
				raw = string(data)
			}

			var claims map[string]any
			if err := json.Unmarshal([]byte(raw), &claims); err != nil || claims == nil {
				return fmt.Errorf("payload must be a JSON object: %w", errors.Join(jwt.ErrSerialization, err))
			}
			if c.Bool("with-id") {
				claims["jti"] = uuid.NewString()
			}

			token, err := jwt.Generate(svc, claims)
			if err != nil {
				return err
			}
			if id, ok := claims["jti"].(string); ok {
				loggerFrom(c).Debug("token issued", logger.TokenID(id))
			}
			_, err = fmt.Fprintln(c.App.Writer, token)
			return err
		},
	}
}

func verifyCommand() *cli.Command {
	return &cli.Command{
		Name:      "verify",
		Usage:     "Verify a token and print the result as JSON",
		ArgsUsage: "[TOKEN]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "legacy-order",
				Usage: "Check expiration before the signature",
			},
		},
		Action: func(c *cli.Context) error {
			var opts []jwt.Option
			if c.Bool("legacy-order") {
				opts = append(opts, jwt.WithLegacyCheckOrder())
			}
			svc, err := newService(c, opts...)
			if err != nil {
				return err
			}

			token, err := tokenArg(c)
			if err != nil {
				return err
			}

			res := jwt.Verify[map[string]any](svc, token)
			if err := writeJSON(c.App.Writer, res); err != nil {
				return err
			}
			if !res.OK() {
				return fmt.Errorf("%w: %s", errVerificationFailed, res.Reason)
			}
			return nil
		},
	}
}

func inspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "Decode a token WITHOUT verifying its signature",
		ArgsUsage: "[TOKEN]",
		Action: func(c *cli.Context) error {
			token, err := tokenArg(c)
			if err != nil {
				return err
			}
			header, claims, err := jwt.Inspect(token)
			if err != nil {
				return err
			}
			loggerFrom(c).Warn("signature was not verified")
			return writeJSON(c.App.Writer, map[string]any{
				"header": header,
				"claims": claims,
			})
		},
	}
}

// stageConfig is the part of jwt.Config that does not require a secret.
type stageConfig struct {
	Environment string `env:"APP_ENV" envDefault:"development"`
}

// resolveEnvironment returns --env when it was given on the command line or
// through APP_ENV at startup. Otherwise APP_ENV is read again, because flags
// are parsed before --env-file is applied.
func resolveEnvironment(c *cli.Context) (string, error) {
	if c.IsSet("env") {
		return c.String("env"), nil
	}
	var stage stageConfig
	if err := config.Reload(&stage); err != nil {
		return "", fmt.Errorf("load APP_ENV: %w", err)
	}
	return stage.Environment, nil
}

func newService(c *cli.Context, opts ...jwt.Option) (*jwt.Service, error) {
	cfg := jwt.Config{
		Secret:      c.String("secret"),
		Environment: c.String("env"),
	}
	if env, ok := c.App.Metadata[envKey].(string); ok {
		cfg.Environment = env
	}
	// The secret may likewise come only from an env file.
	if cfg.Secret == "" {
		var fromEnv jwt.Config
		if err := config.Reload(&fromEnv); err != nil {
			return nil, fmt.Errorf("%w: set JWT_SECRET or pass --secret: %w", jwt.ErrMissingSigningKey, err)
		}
		cfg.Secret = fromEnv.Secret
	}
	opts = append([]jwt.Option{jwt.WithLogger(loggerFrom(c))}, opts...)
	return jwt.NewFromConfig(cfg, opts...)
}

// tokenArg returns the first argument or, without one, the first line of stdin.
func tokenArg(c *cli.Context) (string, error) {
	if c.Args().Present() {
		return strings.TrimSpace(c.Args().First()), nil
	}
	data, err := io.ReadAll(io.LimitReader(c.App.Reader, jwt.MaxTokenLength+2))
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func loggerFrom(c *cli.Context) *slog.Logger {
	if l, ok := c.App.Metadata[loggerKey].(*slog.Logger); ok {
		return l
	}
	return logger.Discard()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
