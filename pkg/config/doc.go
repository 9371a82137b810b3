// Package config loads maskctl settings and masked field definitions.
//
// Settings come from MASKCTL_* environment variables, optionally read from
// .env files first through github.com/joho/godotenv, and are parsed with
// github.com/caarlos0/env/v11. Each configuration type is parsed once per
// prefix and cached for the lifetime of the process:
//
//	if err := config.LoadEnv(".env.local"); err != nil {
//	    return err
//	}
//	settings, err := config.LoadSettings()
//
// Field definitions are YAML documents decoded with gopkg.in/yaml.v3. Every
// field is validated the same way an edit session validates its
// configuration, so a file that loads can always be bound:
//
//	fields, err := config.LoadFieldsFile(settings.FieldsFile)
//	if err != nil {
//	    return err
//	}
//	tokens, _ := fields.TokenTable()
//
// Use ResetCache or ForceReload in tests after changing the environment.
package config
