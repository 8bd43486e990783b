// Package config handles configuration loading, parsing, and validation
// from defaults, an optional config.yaml, a .env file and STOREFRONT_
// environment variables. It provides type-safe access to application
// settings while keeping configuration details separate from business logic.
package config
