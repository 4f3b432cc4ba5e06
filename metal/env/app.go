package env

const local = "local"
const production = "production"

type AppEnvironment struct {
	Name string `validate:"required,min=4"`
	URL  string `validate:"required,url"`
	Type string `validate:"required,lowercase,oneof=local production staging"`
}

func (e AppEnvironment) IsProduction() bool {
	return e.Type == production
}

func (e AppEnvironment) IsLocal() bool {
	return e.Type == local
}
