package sync

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/evgzln/iiko-transfer/internal/refsync"
	"github.com/evgzln/iiko-transfer/pkg/utils"
)

//go:generate mockgen -source=sync.go -destination=sync_mock.go -package=sync

type Service interface {
	Sync(ctx context.Context, category string) error
	Categories() []string
}

type SyncHandler struct {
	syncService Service
}

func New(syncService Service) *SyncHandler {
	return &SyncHandler{
		syncService: syncService,
	}
}

// Run godoc
//
//	@Summary		Run a reference data sync
//	@Description	Pull one reference data category from iiko cloud into the local snapshot tables.
//	@Tags			Sync
//	@Produce		json
//	@Param			category	path		string			true	"Category: organization, terminal_group, city, street, nomenclature, stop_list, payment_type, region or discount"
//	@Success		200			{object}	utils.Response	"Sync completed"
//	@Failure		400			{object}	utils.Response	"Unknown category"
//	@Failure		500			{object}	utils.Response	"Sync failed"
//	@Router			/api/iiko/sync/{category} [post]
func (h *SyncHandler) Run(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	if err := h.syncService.Sync(r.Context(), category); err != nil {
		if errors.Is(err, refsync.ErrUnknownCategory) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "sync completed"})
}
