package httpapi

import (
	"net/http"
)

func (h *Handler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPreferences")
	defer span.End()

	prefs, err := h.preferenceService.Get(ctx, r.Header.Get(clientIDHeader))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, preferencesDTO{Theme: prefs.Theme})
}

func (h *Handler) PutPreferences(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PutPreferences")
	defer span.End()

	var req preferencesRequest
	if err := h.decodeAndValidate(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	prefs, err := h.preferenceService.Put(ctx, r.Header.Get(clientIDHeader), req.toDomain())
	if err != nil {
		h.logger.WarnContext(ctx, "save preferences failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, preferencesDTO{Theme: prefs.Theme})
}
