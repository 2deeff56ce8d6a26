// Package middleware provides the HTTP middleware wrapped around the asset server.
package middleware
