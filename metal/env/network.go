package env

type NetEnvironment struct {
	HttpHost           string   `validate:"required,lowercase,min=7"`
	HttpPort           string   `validate:"required,numeric"`
	RateLimitPerMinute int      `validate:"required,min=1"`
	TrustedProxies     []string `validate:"omitempty,dive,ip"`
}

func (e NetEnvironment) GetHostURL() string {
	return e.HttpHost + ":" + e.HttpPort
}
