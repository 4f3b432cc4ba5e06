package kernel

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/airesearchhub/site/metal/env"
	"github.com/airesearchhub/site/pkg/portal"
	"github.com/joho/godotenv"
)

// Ignite loads envPath into the process environment and builds the
// validated configuration. A missing file is fine when the variables are
// already exported (containers, CI).
func Ignite(envPath string, validate *portal.Validator) (*env.Environment, error) {
	if err := godotenv.Load(envPath); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load environment from %s: %w", envPath, err)
		}

		slog.Warn("environment file not found, using process variables", "path", envPath)
	}

	return MakeEnv(validate), nil
}
