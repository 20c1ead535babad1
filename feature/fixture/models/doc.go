// Package models defines the canonical match entity and its lifecycle status.
package models
