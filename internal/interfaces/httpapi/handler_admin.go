package httpapi

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/riskibarqy/phl-league/internal/domain/journal"
	"github.com/riskibarqy/phl-league/internal/domain/league"
	"github.com/riskibarqy/phl-league/internal/usecase"
)

// multipart overhead on top of the image itself
const maxUploadFormBytes = usecase.MaxImageBytes + 64<<10

func (h *Handler) CreateAdminSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateAdminSession")
	defer span.End()

	var req loginRequest
	if err := h.decodeAndValidate(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	session, err := h.authService.Login(ctx, req.Password)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, sessionDTO{Token: session.Token, ExpiresAt: session.ExpiresAt.UTC()})
}

func (h *Handler) DeleteAdminSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteAdminSession")
	defer span.End()

	token, ok := adminTokenFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: admin token is missing from request context", usecase.ErrUnauthorized))
		return
	}
	h.authService.Logout(ctx, token)
	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"revoked": true})
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeam")
	defer span.End()

	var req teamRequest
	if err := h.decodeJSON(ctx, w, r, maxJSONBodyBytes, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	req.normalize()
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.adminService.CreateTeam(ctx, req.toDomain(0))
	h.writeMutation(w, r, "create team", result, err)
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTeam")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req teamRequest
	if err := h.decodeJSON(ctx, w, r, maxJSONBodyBytes, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	req.normalize()
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.adminService.UpdateTeam(ctx, req.toDomain(teamID))
	h.writeMutation(w, r, "update team", result, err)
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTeam")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	result, err := h.adminService.DeleteTeam(ctx, teamID)
	h.writeMutation(w, r, "delete team", result, err)
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	var req matchRequest
	if err := h.decodeAndValidate(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	result, err := h.adminService.CreateMatch(ctx, req.toDomain(0))
	h.writeMutation(w, r, "create match", result, err)
}

func (h *Handler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatch")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req matchRequest
	if err := h.decodeAndValidate(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	result, err := h.adminService.UpdateMatch(ctx, req.toDomain(matchID))
	h.writeMutation(w, r, "update match", result, err)
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatch")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	result, err := h.adminService.DeleteMatch(ctx, matchID)
	h.writeMutation(w, r, "delete match", result, err)
}

func (h *Handler) CreateChampion(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateChampion")
	defer span.End()

	var req championRequest
	if err := h.decodeAndValidate(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	result, err := h.adminService.CreateChampion(ctx, req.toDomain())
	h.writeMutation(w, r, "create champion", result, err)
}

func (h *Handler) DeleteChampion(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteChampion")
	defer span.End()

	championID, err := pathID(r, "championID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	result, err := h.adminService.DeleteChampion(ctx, championID)
	h.writeMutation(w, r, "delete champion", result, err)
}

func (h *Handler) SaveLeagueInfo(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveLeagueInfo")
	defer span.End()

	var req leagueInfoRequest
	if err := h.decodeJSON(ctx, w, r, maxJSONBodyBytes, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	req.normalize()
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.adminService.SaveLeagueInfo(ctx, req.toDomain())
	h.writeMutation(w, r, "save league info", result, err)
}

func (h *Handler) SaveRegulations(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveRegulations")
	defer span.End()

	var req regulationsRequest
	if err := h.decodeAndValidate(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	result, err := h.adminService.SaveRegulations(ctx, league.Regulations{Content: req.Content})
	h.writeMutation(w, r, "save regulations", result, err)
}

func (h *Handler) CreateSocialLink(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateSocialLink")
	defer span.End()

	var req socialLinkRequest
	if err := h.decodeAndValidate(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	result, err := h.adminService.CreateSocialLink(ctx, req.toDomain())
	h.writeMutation(w, r, "create social link", result, err)
}

func (h *Handler) DeleteSocialLink(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteSocialLink")
	defer span.End()

	linkID, err := pathID(r, "linkID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	result, err := h.adminService.DeleteSocialLink(ctx, linkID)
	h.writeMutation(w, r, "delete social link", result, err)
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	var req createPlayerRequest
	if err := h.decodeAndValidate(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	playerID, err := h.adminService.CreatePlayer(ctx, req.toDomain())
	if err != nil {
		h.logger.WarnContext(ctx, "create player failed", "team_id", req.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, map[string]int64{"id": playerID})
}

func (h *Handler) UpdatePlayerStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayerStats")
	defer span.End()

	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req playerStatsRequest
	if err := h.decodeAndValidate(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.adminService.UpdatePlayerStats(ctx, req.toDomain(playerID)); err != nil {
		h.logger.WarnContext(ctx, "update player stats failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"updated": true})
}

// UploadImage accepts either a multipart "file" field or a JSON {image} data URL.
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UploadImage")
	defer span.End()

	var (
		url string
		err error
	)
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if strings.HasPrefix(mediaType, "multipart/") {
		var raw []byte
		raw, err = readUploadedFile(w, r)
		if err == nil {
			url, err = h.adminService.UploadImage(ctx, raw)
		}
	} else {
		var req uploadImageRequest
		// base64 inflates the payload by a third
		if err = h.decodeJSON(ctx, w, r, usecase.MaxImageBytes*2, &req); err == nil {
			if err = h.validateRequest(ctx, req); err == nil {
				url, err = h.adminService.UploadImageDataURL(ctx, req.Image)
			}
		}
	}
	if err != nil {
		h.logger.WarnContext(ctx, "upload image failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, map[string]string{"url": url})
}

func readUploadedFile(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadFormBytes)
	if err := r.ParseMultipartForm(maxUploadFormBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, fmt.Errorf("%w: image exceeds %d bytes", usecase.ErrInvalidInput, usecase.MaxImageBytes)
		}
		return nil, fmt.Errorf("%w: invalid multipart payload: %v", usecase.ErrInvalidInput, err)
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		return nil, fmt.Errorf("%w: multipart field \"file\" is required", usecase.ErrInvalidInput)
	}
	defer file.Close()

	raw, err := io.ReadAll(io.LimitReader(file, usecase.MaxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read uploaded file: %v", usecase.ErrInvalidInput, err)
	}
	return raw, nil
}

func (h *Handler) RefreshSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RefreshSnapshot")
	defer span.End()

	summary, err := h.adminService.Refresh(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "manual snapshot refresh failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, summaryToDTO(summary))
}

func (h *Handler) GetAdminStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAdminStandings")
	defer span.End()

	division := r.PathValue("division")
	table, err := h.standingsService.Table(ctx, division)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, adminStandingsTableToDTO(ctx, table))
}

func (h *Handler) ListJournal(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListJournal")
	defer span.End()

	limit, err := queryLimit(r, 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	entries, err := h.journalService.List(ctx, journal.Query{
		Resource: r.URL.Query().Get("resource"),
		Limit:    limit,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list journal failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]journalEntryDTO, 0, len(entries))
	for _, entry := range entries {
		items = append(items, journalEntryToDTO(ctx, entry))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) writeMutation(w http.ResponseWriter, r *http.Request, action string, result usecase.MutationResult, err error) {
	ctx := r.Context()
	if err != nil {
		h.logger.WarnContext(ctx, "admin mutation failed", "action", action, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, mutationResultToDTO(result))
}
