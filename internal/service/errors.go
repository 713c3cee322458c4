// Package service is the async action layer: each operation performs exactly
// one API call and settles the owning store. A service also fronts its
// store's selectors, so a consumer holds one object per domain.
package service

import (
	"errors"

	"github.com/xride-labs/zoomies-web-sub000/internal/api"
)

// coerce reduces any failure to the single user-facing string the stores
// hold. Backend messages pass through; transport noise collapses to the
// generic fallback.
func coerce(err error, fallback string) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
