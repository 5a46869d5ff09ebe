package config

type HTTP struct {
	Port             uint32   `env:"HTTP_PORT" envDefault:"3001"`
	Swagger          bool     `env:"HTTP_SWAGGER" envDefault:"true"`
	ValidateRequests bool     `env:"HTTP_VALIDATE_REQUESTS" envDefault:"true"`
	AllowedOrigins   []string `env:"HTTP_CORS_ALLOWED_ORIGINS" envDefault:"http://localhost:3000" envSeparator:","`
}
