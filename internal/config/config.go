package config

type Config struct {
	General `mapstructure:"general"`
	Rest    `mapstructure:"rest"`
	Worker  `mapstructure:"worker"`
	Server  `mapstructure:"server"`
}

type General struct {
	DataDir string `mapstructure:"data_dir"`
	Debug   bool   `mapstructure:"debug"`
}

type Rest struct {
	Port int `mapstructure:"port"`
}

type Worker struct {
	Name           string `mapstructure:"name"` // defaults to hostname when empty
	IP             string `mapstructure:"ip"`
	Port           int    `mapstructure:"port"`
	SyncInterval   int    `mapstructure:"sync_interval"` // in seconds
	GPUDevicesFile string `mapstructure:"gpu_devices_file"`
	SystemInfoFile string `mapstructure:"system_info_file"`
}

type Server struct {
	URL   string `mapstructure:"url"`
	Token string `mapstructure:"token"`
}
