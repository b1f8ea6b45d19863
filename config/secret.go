package config

// SecretValue is a config string that must not leak into logs.
type SecretValue string

func (s SecretValue) String() string {
	if s == "" {
		return ""
	}
	return "*******"
}

func (s SecretValue) Value() string {
	return string(s)
}
