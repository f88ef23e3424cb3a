package handler

import (
	"encoding/json"
	"net/http"

	"github.com/coolgym/coolgym-bff-go/internal/domain"
	"github.com/coolgym/coolgym-bff-go/internal/money"
	"github.com/coolgym/coolgym-bff-go/internal/service"

	"go.uber.org/zap"
)

// ============================================================
// Rental catalog and requests: /v1/rent
// ============================================================

// rentMachineView is a catalog machine with its monthly price
// pre-formatted in the machine's own currency.
type rentMachineView struct {
	domain.RentMachine
	FormattedPrice string `json:"formattedPrice"`
}

func rentalCatalogHandler(svc *service.RentService, f *money.Formatter, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/rent/catalog")
		defer span.End()

		machines := svc.RentalCatalog(ctx)
		views := make([]rentMachineView, 0, len(machines))
		for _, m := range machines {
			views = append(views, rentMachineView{RentMachine: m, FormattedPrice: m.FormattedPrice(f)})
		}
		writeJSON(w, http.StatusOK, views)
	}
}

type rentalRequestCreateRequest struct {
	ClientID    int    `json:"clientId"`
	ClientEmail string `json:"clientEmail"`
	ProviderID  int    `json:"providerId"`
	MachineID   int    `json:"machineId"`
}

func requestRentalHandler(svc *service.RentService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/rent/requests")
		defer span.End()

		var req rentalRequestCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		created, err := svc.RequestRental(ctx, req.ClientID, req.ClientEmail, req.ProviderID, req.MachineID)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	}
}
