package actions

import (
	"errors"

	"github.com/footprint-tools/clik/args"
	"github.com/footprint-tools/clik/internal/config"
	"github.com/footprint-tools/clik/internal/domain"
	"github.com/footprint-tools/clik/internal/usage"
)

// ConfigList prints every known key with its effective value.
func ConfigList(s *Session, _ []string) error {
	all := s.Config.All()
	st := s.styler()
	for _, key := range domain.ConfigKeys {
		s.printf("%s=%s\n", st.Info(key.Name), all[key.Name])
	}
	return nil
}

func ConfigGet(s *Session, v args.Values) error {
	key := v.String("key")
	value, ok := s.Config.Get(key)
	if !ok {
		return usage.InvalidConfigKey(key)
	}
	s.println(value)
	return nil
}

func ConfigSet(s *Session, v args.Values) error {
	key := v.String("key")
	if err := s.Config.Set(key, v.String("value")); err != nil {
		return configError(key, err)
	}
	value, _ := s.Config.Get(key)
	s.printf("%s %s=%s\n", s.styler().Success("updated"), key, value)
	return nil
}

func ConfigUnset(s *Session, v args.Values) error {
	key := v.String("key")
	if err := s.Config.Unset(key); err != nil {
		return configError(key, err)
	}
	value, _ := s.Config.Get(key)
	s.printf("%s %s=%s\n", s.styler().Success("reset"), key, value)
	return nil
}

func configError(key string, err error) error {
	if errors.Is(err, config.ErrUnknownKey) {
		return usage.InvalidConfigKey(key)
	}
	return err
}
