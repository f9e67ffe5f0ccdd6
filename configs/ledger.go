package configs

type Ledger struct {
	BaseURL  string `env:"WBW_BASE_URL" envDefault:"https://api.wiebetaaltwat.nl"`
	Email    string `env:"WBW_EMAIL,notEmpty"`
	Password string `env:"WBW_PASSWORD,notEmpty"`
	ListID   string `env:"WBW_LIST,notEmpty"`
}
