// Package viper provides convenience functions over the official spf13/viper library.
// In particular, it satisfies the need of providing pre-configured viper instances.
package viper

import "github.com/spf13/viper"

// New returns a viper instance configured the way stdinfile expects.
// Keys use "::" as delimiter so that dotted names stay flat.
func New() *viper.Viper {
	return viper.NewWithOptions(viper.KeyDelimiter("::"))
}

// Default is the default, pre-configured instance of viper.
var Default = New()
