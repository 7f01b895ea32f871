// Package seatconfig loads solver.Options from a YAML file.
//
// Grounded on the teacher's pkg/dungeon/config.go: a YAML/JSON-tagged
// struct with nested sub-configs, a Validate method per level, and
// LoadConfig/LoadConfigFromBytes wrappers around yaml.Unmarshal.
package seatconfig
