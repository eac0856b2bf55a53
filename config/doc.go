// Package config loads struct-based configuration from the environment.
//
// Fields are declared with caarlos0/env struct tags and parsed on demand;
// the first load in a process also picks up a .env file from the working
// directory when one exists. Parsed values are cached by concrete type, so
// every part of the program reading the same configuration type sees one
// consistent snapshot.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/patternotp/config"
//
//	type CodesConfig struct {
//		Secret    string `env:"PATTERNOTP_SECRET"`
//		Alphabet  string `env:"PATTERNOTP_ALPHABET"`
//		Templates string `env:"PATTERNOTP_TEMPLATES"`
//	}
//
//	func main() {
//		var cfg CodesConfig
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//		// or panic on failure during startup:
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// A type is parsed from the environment at most once per process; later
// Load calls for that type return the cached value even if the environment
// changed in between. Distinct configuration types cache independently of
// each other.
package config
