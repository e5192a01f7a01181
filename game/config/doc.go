// Package config provides configuration management for the Ludo race game.
//
// The config package handles:
//   - Loading rule sets from JSON files
//   - Rule set validation and caching
//   - Default rule set selection
//   - Process settings from the environment and .env files
//
// Rule Set Format:
//
// Rule sets are stored as JSON files in the configs directory. Each one defines:
//   - Whether a single legal move is played without asking
//   - Which square of every color's arc is safe from capture
//   - An optional dice seed for reproducible games
//   - Status messages, each taking the color name as its first argument
//
// Shipped Rule Sets:
//   - classic: ninth square of each arc safe, single moves play automatically
//   - entry_safe: each color's entry square is safe
//   - manual_choice: every move waits for the player to pick a token
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	rules, err := manager.LoadConfig("entry_safe")
//	defaultRules := manager.GetDefault()
//
//	settings, err := config.LoadSettings()
//	fmt.Println(settings.Addr())
package config
