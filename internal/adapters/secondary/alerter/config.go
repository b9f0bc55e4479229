package alerter

type Config struct {
	URL string `envconfig:"URL"`
}
