package env

const DefaultStaticOutputDir = "public/api"

// StaticEnvironment groups the settings used by the CLI static generator.
type StaticEnvironment struct {
	OutputDir string `validate:"required"`
}
