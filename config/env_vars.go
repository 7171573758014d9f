package config

import (
	"os"
	"reflect"
)

type EdgeStackEnvironmentVariables struct {
	// when this hash changes, the edge cache is invalidated on deploy
	ContentHash string `env:"CONTENT_HASH"`
}

type CertStackEnvironmentVariables struct {
	// comma separated list of extra SubjectAlternativeNames for the edge cert
	AdditionalSANs string `env:"ADDITIONAL_SANS"`
}

func GetEnvironmentVariables[T any]() T {
	var env T
	t := reflect.TypeOf(env)
	v := reflect.ValueOf(&env).Elem()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("env")
		value := GetEnv(tag)

		if value == "" {
			if field.Tag.Get("required") == "true" {
				panic("Required environment variable not set: " + tag)
			}
			continue
		}

		v.Field(i).SetString(value)
	}

	return env
}

func GetEnv(key string) string {
	return os.Getenv(key)
}
