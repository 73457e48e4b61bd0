package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"regexp"

	"github.com/spf13/viper"
)

var cfg Config
var home = os.Getenv("HOME")

func getViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName("worker_config")
	v.SetConfigType("json")
	v.AddConfigPath(".")               // config file reading order starts with current working directory
	v.AddConfigPath("$HOME/.gpufleet") // then home directory
	v.AddConfigPath("/etc/gpufleet/")  // finally /etc/gpufleet
	return v
}

func setDefaultConfig() *viper.Viper {
	v := getViper()
	v.SetDefault("general.data_dir", home+"/.gpufleet")
	v.SetDefault("general.debug", false)
	v.SetDefault("rest.port", 10150)
	v.SetDefault("worker.name", "")
	v.SetDefault("worker.ip", "0.0.0.0")
	v.SetDefault("worker.port", 10150)
	v.SetDefault("worker.sync_interval", 15)
	v.SetDefault("worker.gpu_devices_file", "")
	v.SetDefault("worker.system_info_file", "")
	v.SetDefault("server.url", "http://localhost:80")
	v.SetDefault("server.token", "")
	return v
}

func LoadConfig() {
	paths := []string{
		".",
		home + "/.gpufleet",
		"/etc/gpufleet",
	}
	configFile := "worker_config.json"
	v := setDefaultConfig()

	config, err := findConfig(paths, configFile)
	if err != nil {
		setDefaultConfig().Unmarshal(&cfg)
		return
	}

	modifiedConfig := removeComments(config)
	if err = v.ReadConfig(bytes.NewBuffer(modifiedConfig)); err != nil { // Viper only reads buffer, keeping comments in original config
		setDefaultConfig().Unmarshal(&cfg)
		return
	}

	if err = v.Unmarshal(&cfg); err != nil {
		setDefaultConfig().Unmarshal(&cfg)
	}
}

func SetConfig(key string, value interface{}) {
	v := getViper()
	v.Set(key, value)
	err := v.Unmarshal(&cfg)
	if err != nil {
		setDefaultConfig().Unmarshal(&cfg)
	}
}

func GetConfig() *Config {
	if reflect.DeepEqual(cfg, Config{}) {
		LoadConfig()
	}
	return &cfg
}

func findConfig(paths []string, filename string) ([]byte, error) {
	for _, path := range paths {
		fullPath := filepath.Join(path, filename)
		_, err := os.Stat(fullPath)
		if err == nil {
			return os.ReadFile(fullPath)
		}
	}

	return nil, fmt.Errorf("file not found in any of the paths")
}

func removeComments(configBytes []byte) []byte {
	re := regexp.MustCompile("(?s)//.*?\n") // match all '//' until the end of the line
	result := re.ReplaceAll(configBytes, nil)
	return result
}
