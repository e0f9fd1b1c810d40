package config

type Config struct {
	Server ServerConfig `yaml:"server" validate:"required"`
	Log    LogConfig    `yaml:"log"`
	Cities []City       `yaml:"cities" validate:"unique=ID,dive"`
}

type ServerConfig struct {
	Address           string   `yaml:"address" validate:"required,hostname_port"`
	ReadHeaderTimeout Duration `yaml:"read_header_timeout"`
	ShutdownTimeout   Duration `yaml:"shutdown_timeout"`
}

type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

type City struct {
	ID               int               `yaml:"id" validate:"required,gt=0"`
	Name             string            `yaml:"name" validate:"required"`
	Description      string            `yaml:"description"`
	PointsOfInterest []PointOfInterest `yaml:"points_of_interest" validate:"unique=ID,dive"`
}

type PointOfInterest struct {
	ID          int    `yaml:"id" validate:"required,gt=0"`
	Name        string `yaml:"name" validate:"required"`
	Description string `yaml:"description"`
}
