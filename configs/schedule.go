package configs

type Schedule struct {
	Post     string `env:"SCHEDULE_POST" envDefault:"0 10 * * 1-5"`
	Check    string `env:"SCHEDULE_CHECK" envDefault:"30 15 * * 1-5"`
	Remind   string `env:"SCHEDULE_REMIND" envDefault:"0 17 * * 1-5"`
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`
}
