// Package config loads, merges and validates the configuration of the flight
// search binaries.
//
// Sources, merged with mergo so that the first source setting a field wins:
//  1. Environment variables, after the .env file (godotenv) is loaded
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the terminal client. [LoadTrips] reads the YAML file
// of dashboard trips.
package config
