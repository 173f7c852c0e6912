package flags

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	sviper "github.com/stdinfile/stdinfile/internal/viper"
)

// SnakeCharmer because Cobra and Viper. Get it?
// It's a convenience wrapper around cobra and viper, allowing the user to declare and bind flags at the same time.
//
// Example:
//
//	sc := flags.SnakeCharmer{Fmap: map[string]*pflag.Flag{}}
//	sc.Fset = cmd.Flags()
//	sc.StringP("dir", "d", "dir", "", "Directory to create the temp file in")
//	sc.BindAll()
type SnakeCharmer struct {
	Fset *pflag.FlagSet
	// Fmap maps field names (key) to flags (value).
	Fmap map[string]*pflag.Flag
	// Viper receives the bindings. The package default instance is used when nil.
	Viper *viper.Viper
}

// BindAll binds all previously added flags to their respective fields.
func (s *SnakeCharmer) BindAll() {
	v := s.Viper
	if v == nil {
		v = sviper.Default
	}
	for fieldName, flag := range s.Fmap {
		if err := v.BindPFlag(fieldName, flag); err != nil {
			log.Fatal().Msgf("Failed to bind flags and config fields: %v", err)
		}
	}
}

// Bool defines a bool flag with specified flagName, default value, usage string and then binds it to fieldName.
func (s *SnakeCharmer) Bool(flagName, fieldName string, value bool, usage string) {
	s.Fset.Bool(flagName, value, usage)
	s.addBind(flagName, fieldName)
}

// String defines a string flag with specified flagName, default value, usage string and then binds it to fieldName.
func (s *SnakeCharmer) String(flagName, fieldName, value, usage string) {
	s.Fset.String(flagName, value, usage)
	s.addBind(flagName, fieldName)
}

// StringP is like String(), but accepts a shorthand letter.
func (s *SnakeCharmer) StringP(flagName, shorthand, fieldName, value, usage string) {
	s.Fset.StringP(flagName, shorthand, value, usage)
	s.addBind(flagName, fieldName)
}

func (s *SnakeCharmer) addBind(flagName, fieldName string) {
	if s.Fmap == nil {
		s.Fmap = map[string]*pflag.Flag{}
	}
	s.Fmap[fieldName] = s.Fset.Lookup(flagName)
}
