package sourceviper

import (
	"github.com/spf13/viper"

	"github.com/livinginthepast/gestalt"
)

type viperSource struct {
	v *viper.Viper
}

// New creates a config source reading through the given viper instance.
// A nil instance means viper's shared package-level instance.
func New(v *viper.Viper) gestalt.ConfigSource {
	if v == nil {
		v = viper.GetViper()
	}
	return &viperSource{v: v}
}

// Get answers (namespace, key) lookups as viper's dotted path
// "namespace.key". Absence is reported through viper's IsSet.
func (s *viperSource) Get(namespace, key string) (any, bool) {
	path := namespace + "." + key
	if !s.v.IsSet(path) {
		return nil, false
	}
	return s.v.Get(path), true
}
