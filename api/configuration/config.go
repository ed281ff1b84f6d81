package configuration

type Config struct {
	ProjectURL      string `yaml:"project_url"`      // Supabase project URL (https://<ref>.supabase.co)
	RedirectPort    string `yaml:"redirect_port"`    // Fixed localhost callback port for provider sign-in (empty = random)
	DefaultProvider string `yaml:"default_provider"` // Provider used by `sbauth auth login --provider` when none is given
	EnvFile         string `yaml:"env_file"`         // Path to the .env file holding SUPABASE_* variables
}
