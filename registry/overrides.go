package registry

import (
	pararoute "github.com/pararoute/pararoute"
	"github.com/pararoute/pararoute/config"
	"github.com/sirupsen/logrus"
)

// userOverrides is the shape of the optional "pararoute" section of a user
// config file. Only the operational knobs are overridable; the wire-level
// tables stay embedded.
type userOverrides struct {
	Chains map[pararoute.Chain]chainOverride `yaml:"chains"`
}

type chainOverride struct {
	URL            string `yaml:"url,omitempty"`
	KeepAliveCheck *bool  `yaml:"keep_alive_check,omitempty"`
}

// LoadUserOverrides reads the optional config file and applies per-chain
// endpoint and keep-alive overrides onto the registry. Missing config files
// are not an error.
func LoadUserOverrides() error {
	overrides := userOverrides{}
	if err := config.RequireConfig("pararoute", &overrides, &userOverrides{}); err != nil {
		return err
	}
	for name, override := range overrides.Chains {
		cfg, ok := chains[name]
		if !ok {
			logrus.WithField("chain", name).Warn("config overrides unknown chain")
			continue
		}
		if override.URL != "" {
			cfg.URL = override.URL
		}
		if override.KeepAliveCheck != nil {
			cfg.KeepAliveCheck = *override.KeepAliveCheck
		}
	}
	return nil
}
