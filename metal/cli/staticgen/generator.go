package staticgen

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"

	"github.com/airesearchhub/site/metal/kernel"
)

type Generator struct {
	OutputDir string
}

func NewGenerator(outputDir string) Generator {
	return Generator{OutputDir: outputDir}
}

// Generate runs every route through its handler and writes the JSON body to
// <OutputDir>/<path>.json, so /posts/hello ends up in posts/hello.json.
func (g Generator) Generate(routes []kernel.StaticRoute) ([]string, error) {
	if strings.TrimSpace(g.OutputDir) == "" {
		return nil, fmt.Errorf("output directory must be provided")
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	generated := make([]string, 0, len(routes))

	for _, route := range routes {
		if strings.TrimSpace(route.Path) == "" {
			return nil, fmt.Errorf("static route path cannot be empty")
		}

		if route.Handle == nil {
			return nil, fmt.Errorf("static route %s is missing a handler", route.Path)
		}

		request := httptest.NewRequest(http.MethodGet, route.Path, nil)
		for key, value := range route.Params {
			request.SetPathValue(key, value)
		}

		recorder := httptest.NewRecorder()

		if apiErr := route.Handle(recorder, request); apiErr != nil {
			return nil, fmt.Errorf("static route %s failed: %s", route.Path, apiErr.Message)
		}

		if recorder.Code != http.StatusOK {
			return nil, fmt.Errorf("static route %s returned status %d", route.Path, recorder.Code)
		}

		body := recorder.Body.Bytes()
		if len(body) == 0 {
			return nil, fmt.Errorf("static route %s returned an empty body", route.Path)
		}

		fileName := strings.Trim(route.Path, "/")
		if fileName == "" {
			fileName = "index"
		}

		filePath := filepath.Join(g.OutputDir, filepath.FromSlash(fileName)+".json")

		if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
			return nil, fmt.Errorf("creating directory for %s: %w", filePath, err)
		}

		if err := os.WriteFile(filePath, body, 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", filePath, err)
		}

		generated = append(generated, filePath)
	}

	return generated, nil
}
