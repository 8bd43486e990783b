// Package domain contains the storefront's business entities and the small
// amount of logic that belongs to them: cart mutation, order derivation and
// registration rules. It has no knowledge of HTTP or SQL.
package domain
