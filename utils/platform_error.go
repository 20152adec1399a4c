package utils

import (
	"errors"
	"net/http"

	"github.com/bwmarrin/discordgo"
)

// Every Discord call can fail in one of three ways that matter to callers:
// forbidden (missing permission), not found (the target is gone, usually
// meaning the goal is already achieved), or a generic transport failure.

// IsForbidden reports whether the platform denied the request outright.
func IsForbidden(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

// IsNotFound reports whether the request's target no longer exists.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

func hasStatus(err error, status int) bool {
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) {
		return restErr.Response != nil && restErr.Response.StatusCode == status
	}
	return false
}
