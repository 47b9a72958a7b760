// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package response

import (
	"net/http"

	"github.com/MKhiriev/go-r2base/internal/logger"
	"github.com/MKhiriev/go-r2base/internal/utils"
)

// TypeValidation tags the error envelopes of failed request validation.
const TypeValidation = "ValidationError"

// Write is the terminal error stage: it renders err as an error envelope.
// See FromError for how errors map to envelopes. Server-side errors are
// logged with their cause at Error level, client-side ones at Debug.
func Write(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	e := FromError(err)
	log := logger.FromRequest(r)
	if e.Code() >= http.StatusInternalServerError {
		log.Err(err).Str("name", e.Name()).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("name", e.Name()).Msg("request rejected")
	}

	if _, werr := utils.WriteJSON(w, e.Envelope(), e.Code()); werr != nil {
		log.Err(werr).Msg("error writing error response")
	}
}
