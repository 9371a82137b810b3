package config

// EnvPrefix is the prefix of every maskctl environment variable.
const EnvPrefix = "MASKCTL_"

// Settings holds the maskctl process settings.
type Settings struct {
	Env        string `env:"ENV" envDefault:"development"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat  string `env:"LOG_FORMAT"`
	FieldsFile string `env:"FIELDS_FILE" envDefault:"fields.yaml"`
	// Touch makes every field defer its writes as on touch platforms.
	Touch bool `env:"TOUCH"`
}

// LoadSettings reads Settings from MASKCTL_* variables.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := LoadPrefixed(&s, EnvPrefix); err != nil {
		return Settings{}, err
	}
	return s, nil
}
