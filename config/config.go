package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	AgentApiPort       int
	TemplateResolution bool
	DefaultAddress     string
	DefaultUserAgent   string
}

func GetAppConfig() *Config {
	return &Config{
		AgentApiPort:       getEnvAsInt("CAEP_AGENT_API_PORT"),
		TemplateResolution: getEnvAsBool("CAEP_TEMPLATE_RESOLUTION"),
		DefaultAddress:     getOptionalEnv("CAEP_DEFAULT_ADDRESS"),
		DefaultUserAgent:   getOptionalEnv("CAEP_DEFAULT_USER_AGENT"),
	}
}

func getEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		panic(fmt.Sprintf("%s environment variable not set", key))
	}

	return value
}

func getOptionalEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return ""
	}

	return value
}

func getEnvAsInt(key string) int {
	valueStr := getEnv(key)
	valueInt, err := strconv.Atoi(valueStr)

	if err != nil {
		panic(fmt.Sprintf("Error converting %s to integer: %v", key, err))
	}

	return valueInt
}

func getEnvAsBool(key string) bool {
	valueStr := getEnv(key)
	valueBool, err := strconv.ParseBool(valueStr)

	if err != nil {
		panic(fmt.Sprintf("Error converting %s to bool: %v", key, err))
	}

	return valueBool
}
