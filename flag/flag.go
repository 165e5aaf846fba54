// Package flag provides typed access to command line options bound in viper.
package flag

import (
	"github.com/spf13/viper"
)

// Verbose returns option "--verbose".
func Verbose() int {
	return viper.GetInt("verbose")
}

// Quiet returns option "--quiet".
func Quiet() int {
	return viper.GetInt("quiet")
}

// ConfigFile returns option "--config". Empty means the merged home and
// repository configuration files.
func ConfigFile() string {
	return viper.GetString("config")
}

// Output returns option "--output" of the write command.
func Output() string {
	return viper.GetString("output")
}

// ToCode returns option "--to-code".
func ToCode() string {
	return viper.GetString("to-code")
}

// PluralKeyword returns option "--plural-keyword".
func PluralKeyword() string {
	return viper.GetString("plural-keyword")
}

// Progress returns option "--progress".
func Progress() bool {
	return viper.GetBool("progress")
}
