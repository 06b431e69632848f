package redisutils

import (
	"errors"
	"fmt"
	"net"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// ProfilePath is the root searched by LoadRedisProfile. Profiles live at
// <ProfilePath>/redis/<name>.(json|yaml|toml).
var ProfilePath = "secret"

var ErrProfileNotFound = fmt.Errorf("profile_not_found")

type RedisProfile struct {
	Host     string `mapstructure:"host"`
	Port     uint   `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (p RedisProfile) Addr() string {
	return net.JoinHostPort(p.Host, strconv.FormatUint(uint64(p.Port), 10))
}

// LoadRedisProfile reads the named profile. Any field can be overridden from
// the environment, e.g. REDIS_TEST_HOST for profile "test".
func LoadRedisProfile(profileName string) (RedisProfile, error) {
	profile := RedisProfile{}
	if profileName == "" {
		return profile, fmt.Errorf("empty profile name: %w", ErrProfileNotFound)
	}

	v := viper.New()
	v.SetConfigName(profileName)
	v.AddConfigPath(filepath.Join(ProfilePath, "redis"))
	v.SetEnvPrefix(fmt.Sprintf("redis_%s", profileName))
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	v.SetDefault("host", "localhost")
	v.SetDefault("port", 6379)
	v.SetDefault("username", "")
	v.SetDefault("password", "")
	v.SetDefault("db", 0)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return profile, fmt.Errorf("%s: %w", profileName, ErrProfileNotFound)
		}

		return profile, fmt.Errorf("read profile %s: %w", profileName, err)
	}

	if err := v.Unmarshal(&profile); err != nil {
		return profile, fmt.Errorf("unmarshal profile %s: %w", profileName, err)
	}

	return profile, nil
}
